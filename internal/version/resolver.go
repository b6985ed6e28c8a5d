package version

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rowanmc/mccore/internal/layout"
	"github.com/rowanmc/mccore/internal/platform"
)

// Resolve walks versionID's inheritsFrom chain under mcRoot, merges it per
// §4.F, and returns the canonical ResolvedVersion for plat.
func Resolve(mcRoot, versionID string, plat platform.Platform) (*ResolvedVersion, error) {
	lay := layout.New(mcRoot)

	raws, chain, err := loadChain(lay, versionID)
	if err != nil {
		return nil, err
	}

	normalized := make([]*normalizedManifest, len(raws))
	for i, raw := range raws {
		nm, err := normalize(raw, plat)
		if err != nil {
			return nil, err
		}
		normalized[i] = nm
	}

	if err := checkArgumentFormatConsistency(normalized); err != nil {
		return nil, err
	}

	rv, err := merge(normalized, chain, lay)
	if err != nil {
		return nil, err
	}

	rv.MinecraftVersion = minecraftVersion(raws, chain)
	return rv, nil
}

// loadChain performs stage 1: repeatedly read {root}/versions/{id}/{id}.json
// and follow inheritsFrom, detecting cycles. raws and chain are both
// child-to-root ordered (index 0 is versionID itself).
func loadChain(lay layout.Layout, versionID string) ([]*rawManifest, []string, error) {
	var raws []*rawManifest
	var chain []string
	seen := make(map[string]bool)

	id := versionID
	for id != "" {
		if seen[id] {
			return nil, nil, &CircularDependenciesError{Chain: append(append([]string{}, chain...), id)}
		}
		seen[id] = true

		path := lay.VersionJSON(id)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			return nil, nil, &MissingVersionJsonError{Version: id, Path: path}
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading version manifest %s: %w", path, err)
		}

		var raw rawManifest
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, nil, &CorruptedVersionJsonError{Version: id, Raw: string(data), Cause: err}
		}
		if raw.ID == "" {
			raw.ID = id
		}

		raws = append(raws, &raw)
		chain = append(chain, id)

		id = raw.InheritsFrom
	}

	return raws, chain, nil
}

func checkArgumentFormatConsistency(normalized []*normalizedManifest) error {
	// Mixing a legacy (minecraftArguments) manifest with a modern
	// (arguments block) manifest anywhere in the same chain is illegal.
	sawLegacy, sawModern := false, false
	for _, nm := range normalized {
		if nm.Replace {
			sawLegacy = true
		} else {
			sawModern = true
		}
	}
	if sawLegacy && sawModern {
		return &FormatMismatchError{Version: normalized[0].ID}
	}
	return nil
}

// merge performs stage 3: pop the (conceptual) stack from root toward
// child, accumulating fields with child-overrides-parent precedence.
func merge(normalized []*normalizedManifest, chain []string, lay layout.Layout) (*ResolvedVersion, error) {
	rv := &ResolvedVersion{
		MinecraftDirectory: lay.Root(),
		Downloads:          make(map[string]Artifact),
		JavaVersion:        JavaVersionReq{MajorVersion: 8, Component: "jre-legacy"},
	}

	libraries := make(map[string]ResolvedLibrary)
	natives := make(map[string]ResolvedLibrary)
	libOrder := make([]string, 0)
	nativeOrder := make([]string, 0)

	legacy := false
	var legacyGameTokens []string

	// root toward child: normalized/chain are child-to-root (index 0 =
	// child), so iterate in reverse.
	for i := len(normalized) - 1; i >= 0; i-- {
		nm := normalized[i]

		if nm.MainClass != "" {
			rv.MainClass = nm.MainClass
		}
		if nm.Assets != "" {
			rv.Assets = nm.Assets
		}
		if nm.AssetIndex != nil {
			rv.AssetIndex = *nm.AssetIndex
		}
		if nm.Type != "" {
			rv.Type = nm.Type
		}
		if !nm.ReleaseTime.IsZero() {
			rv.ReleaseTime = nm.ReleaseTime
		}
		if !nm.Time.IsZero() {
			rv.Time = nm.Time
		}
		if nm.Logging != nil {
			rv.Logging = nm.Logging
		}
		if nm.JavaVersion != nil {
			rv.JavaVersion = *nm.JavaVersion
		}
		if nm.MinimumLauncherVersion > rv.MinimumLauncherVersion {
			rv.MinimumLauncherVersion = nm.MinimumLauncherVersion
		}

		if nm.Replace {
			// The jvm side is always the same fixed vanilla template
			// (never merged across the chain); only the game side goes
			// through mixinArgumentString.
			legacy = true
			rv.Arguments.JVM = nm.JVM
			legacyGameTokens = mixinArgumentString(legacyGameTokens, tokensFromPlain(nm.Game))
		} else {
			rv.Arguments.JVM = append(rv.Arguments.JVM, nm.JVM...)
			rv.Arguments.Game = append(rv.Arguments.Game, nm.Game...)
		}

		for _, lib := range nm.Libraries {
			key := lib.dedupeKey()
			if lib.IsNative {
				if _, exists := natives[key]; !exists {
					nativeOrder = append(nativeOrder, key)
				}
				natives[key] = lib
			} else {
				if _, exists := libraries[key]; !exists {
					libOrder = append(libOrder, key)
				}
				libraries[key] = lib
			}
		}

		for role, artifact := range nm.Downloads {
			rv.Downloads[role] = artifact
		}
	}

	if legacy {
		rv.Arguments.Game = plainArguments(legacyGameTokens)
	}

	rv.Libraries = make([]ResolvedLibrary, 0, len(libOrder)+len(nativeOrder))
	for _, key := range libOrder {
		rv.Libraries = append(rv.Libraries, libraries[key])
	}
	for _, key := range nativeOrder {
		rv.Libraries = append(rv.Libraries, natives[key])
	}

	if rv.MainClass == "" {
		return nil, &BadVersionJsonError{Version: chain[0], Missing: "MainClass"}
	}

	rv.ID = chain[0]
	rv.Inheritances = chain
	rv.PathChain = make([]string, len(chain))
	for i, id := range chain {
		rv.PathChain[i] = lay.VersionRoot(id)
	}

	return rv, nil
}

// minecraftVersion picks the effective vanilla version id used for jar
// lookup: the first of clientVersion, _minecraftVersion found anywhere in
// the chain (child first), falling back to the root version's id.
func minecraftVersion(raws []*rawManifest, chain []string) string {
	for _, raw := range raws {
		if raw.ClientVersion != "" {
			return raw.ClientVersion
		}
	}
	for _, raw := range raws {
		if raw.MinecraftVersionField != "" {
			return raw.MinecraftVersionField
		}
	}
	return chain[len(chain)-1]
}
