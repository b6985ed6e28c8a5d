// Package rules evaluates the ordered allow/disallow rule lists that gate
// libraries and conditional arguments in a version manifest against a
// target platform and an active feature set.
package rules

import (
	"regexp"

	"github.com/rowanmc/mccore/internal/platform"
)

// Action is the verdict a rule contributes when it applies.
type Action string

const (
	Allow    Action = "allow"
	Disallow Action = "disallow"
)

// OS constrains a rule to a platform name, version (regex) and/or arch.
type OS struct {
	Name    string
	Version string // unanchored regex matched against platform.Version
	Arch    string
}

// Rule is one entry of an ordered allow/disallow list.
type Rule struct {
	Action   Action
	OS       *OS
	Features map[string]bool
}

// FeatureSet is the set of feature names currently active (e.g. from
// LaunchOptions.Features with a truthy value).
type FeatureSet map[string]bool

// Evaluate runs the ordered rule list against plat and features and
// returns whether the gated item (library or argument) is allowed.
//
// An empty rule list allows. Otherwise the last applicable rule wins: each
// rule is checked in order, and if it applies, the running verdict becomes
// that rule's action. The running verdict starts false, so a manifest that
// defines only disallow rules (or only inapplicable rules) ends up
// disallowed.
func Evaluate(ruleList []Rule, plat platform.Platform, features FeatureSet) bool {
	if len(ruleList) == 0 {
		return true
	}

	allow := false
	for _, r := range ruleList {
		if !applies(r, plat, features) {
			continue
		}
		allow = r.Action == Allow
	}
	return allow
}

func applies(r Rule, plat platform.Platform, features FeatureSet) bool {
	if r.OS != nil {
		if r.OS.Name != "" && string(plat.Name) != r.OS.Name {
			return false
		}
		if r.OS.Version != "" {
			matched, err := regexp.MatchString(r.OS.Version, plat.Version)
			if err != nil || !matched {
				return false
			}
		}
		if r.OS.Arch != "" && plat.Arch != r.OS.Arch {
			return false
		}
	}

	for feature, required := range r.Features {
		isActive := features[feature]
		if required != isActive {
			return false
		}
	}

	return true
}
