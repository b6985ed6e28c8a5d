package version

import "github.com/rowanmc/mccore/internal/rules"

func convertRules(raw []rawRule) []rules.Rule {
	out := make([]rules.Rule, 0, len(raw))
	for _, r := range raw {
		converted := rules.Rule{Action: rules.Action(r.Action)}
		if r.OS != nil {
			converted.OS = &rules.OS{Name: r.OS.Name, Version: r.OS.Version, Arch: r.OS.Arch}
		}
		if len(r.Features) > 0 {
			converted.Features = r.Features
		}
		out = append(out, converted)
	}
	return out
}

// hasFeaturePredicate reports whether any rule in the list constrains on a
// feature (as opposed to OS alone).
func hasFeaturePredicate(rs []rules.Rule) bool {
	for _, r := range rs {
		if len(r.Features) > 0 {
			return true
		}
	}
	return false
}
