package version

import (
	"strings"
	"time"

	"github.com/rowanmc/mccore/internal/platform"
	"github.com/rowanmc/mccore/internal/rules"
)

// normalizedManifest is one manifest in the chain after stage 2: libraries
// resolved and filtered, arguments in ArgumentElement form, legacy
// minecraftArguments split and flagged for replace semantics.
type normalizedManifest struct {
	ID                     string
	Type                   string
	MainClass              string
	Assets                 string
	AssetIndex             *AssetIndexRef
	Logging                *Logging
	JavaVersion            *JavaVersionReq
	MinimumLauncherVersion int
	ReleaseTime            time.Time
	Time                   time.Time
	ClientVersion          string
	MinecraftVersionField  string

	Libraries []ResolvedLibrary

	JVM     []ArgumentElement
	Game    []ArgumentElement
	Replace bool // legacy manifest: arguments replace rather than append during merge

	Downloads map[string]Artifact
}

func normalize(raw *rawManifest, plat platform.Platform) (*normalizedManifest, error) {
	nm := &normalizedManifest{
		ID:                     raw.ID,
		Type:                   raw.Type,
		MainClass:              raw.MainClass,
		Assets:                 raw.Assets,
		AssetIndex:             raw.AssetIndex,
		Logging:                raw.Logging,
		JavaVersion:            raw.JavaVersion,
		MinimumLauncherVersion: raw.MinimumLauncherVersion,
		ReleaseTime:            raw.ReleaseTime,
		Time:                   raw.Time,
		ClientVersion:          raw.ClientVersion,
		MinecraftVersionField:  raw.MinecraftVersionField,
		Downloads:              raw.Downloads,
	}

	libs := make([]ResolvedLibrary, 0, len(raw.Libraries))
	for _, rl := range raw.Libraries {
		resolved, ok, err := resolveLibrary(rl, plat)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		libs = append(libs, resolved)
	}
	nm.Libraries = libs

	if raw.Arguments == nil {
		nm.Replace = true
		if raw.MinecraftArguments != "" {
			nm.Game = plainArguments(strings.Split(raw.MinecraftArguments, " "))
		}
		nm.JVM = defaultJVMArguments()
		return nm, nil
	}

	jvm, err := parseArguments(raw.Arguments.JVM)
	if err != nil {
		return nil, err
	}
	game, err := parseArguments(raw.Arguments.Game)
	if err != nil {
		return nil, err
	}

	nm.JVM = filterJVMArguments(jvm, plat)
	nm.Game = game
	return nm, nil
}

// filterJVMArguments implements stage 2's jvm filter: an entry whose rules
// reference a feature is left untouched (conditional, to be resolved at
// launch once the feature set is known); an OS-only conditional entry is
// evaluated now and either dropped (disallowed) or flattened to plain
// values (allowed); plain strings pass through unchanged.
func filterJVMArguments(elements []ArgumentElement, plat platform.Platform) []ArgumentElement {
	out := make([]ArgumentElement, 0, len(elements))
	for _, e := range elements {
		if !e.Conditional {
			out = append(out, e)
			continue
		}
		if hasFeaturePredicate(e.Rules) {
			out = append(out, e)
			continue
		}
		if rules.Evaluate(e.Rules, plat, nil) {
			out = append(out, plainArguments(e.Values)...)
		}
	}
	return out
}
