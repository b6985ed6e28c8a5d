package version

import (
	"strings"

	"github.com/rowanmc/mccore/internal/library"
	"github.com/rowanmc/mccore/internal/platform"
	"github.com/rowanmc/mccore/internal/rules"
)

const (
	mojangLibrariesHost = "https://libraries.minecraft.net/"
	forgeLibrariesHost  = "https://files.minecraftforge.net/maven/"
)

// resolveLibrary implements §4.F.1: evaluate a raw library entry against
// the platform's rules, resolve natives substitution, and fill in the
// download descriptor, synthesizing one from the canonical coordinate path
// when the manifest doesn't supply it. ok is false when the library is
// dropped by its own rules or has no native mapping for this platform.
func resolveLibrary(raw rawLibrary, plat platform.Platform) (ResolvedLibrary, bool, error) {
	if len(raw.Rules) > 0 {
		if !rules.Evaluate(convertRules(raw.Rules), plat, nil) {
			return ResolvedLibrary{}, false, nil
		}
	}

	info := library.ParseCoordinate(raw.Name)

	if len(raw.Natives) > 0 {
		classifierTemplate, ok := raw.Natives[string(plat.Name)]
		if !ok {
			return ResolvedLibrary{}, false, nil
		}
		classifier := substituteArch(classifierTemplate, plat)
		info.Classifier = classifier
		info.Name = info.GroupID + ":" + info.ArtifactID + ":" + info.Version + ":" + classifier
		info.Path = nativePath(info)

		artifact := Artifact{
			Path: info.Path,
			SHA1: "",
			Size: -1,
			URL:  mojangLibrariesHost + info.Path,
		}
		if raw.Downloads != nil {
			if a, ok := raw.Downloads.Classifiers[classifier]; ok && a != nil {
				artifact = *a
			}
		}

		var exclude []string
		if raw.Extract != nil {
			exclude = raw.Extract.Exclude
		}

		return ResolvedLibrary{
			Info:           info,
			Download:       artifact,
			IsNative:       true,
			Checksums:      raw.Checksums,
			ServerReq:      raw.ServerReq,
			ClientReq:      raw.ClientReq,
			ExtractExclude: exclude,
		}, true, nil
	}

	if raw.Downloads != nil && raw.Downloads.Artifact != nil {
		artifact := *raw.Downloads.Artifact
		if artifact.URL == "" {
			artifact.URL = defaultLibraryURL(info)
		}

		isNative := strings.HasPrefix(info.Classifier, "natives")

		return ResolvedLibrary{
			Info:      info,
			Download:  artifact,
			IsNative:  isNative,
			Checksums: raw.Checksums,
			ServerReq: raw.ServerReq,
			ClientReq: raw.ClientReq,
		}, true, nil
	}

	// Legacy checksums/url form.
	baseURL := raw.URL
	if baseURL == "" {
		baseURL = mojangLibrariesHost
	}
	sha1 := ""
	if len(raw.Checksums) > 0 {
		sha1 = raw.Checksums[0]
	}

	return ResolvedLibrary{
		Info: info,
		Download: Artifact{
			Path: info.Path,
			Size: -1,
			SHA1: sha1,
			URL:  baseURL + info.Path,
		},
		Checksums: raw.Checksums,
		ServerReq: raw.ServerReq,
		ClientReq: raw.ClientReq,
	}, true, nil
}

func defaultLibraryURL(info library.Info) string {
	if info.GroupID == "net.minecraftforge" {
		return forgeLibrariesHost + info.Path
	}
	return mojangLibrariesHost + info.Path
}

// substituteArch replaces ${arch} in a native classifier template with the
// platform's arch minus a leading "x" (x64 -> 64, x86 -> 86, arm64 stays).
func substituteArch(template string, plat platform.Platform) string {
	return strings.ReplaceAll(template, "${arch}", platform.Arch64(plat.Arch))
}

func nativePath(info library.Info) string {
	// Recompute the canonical path with the substituted classifier by
	// reparsing the canonical name through the coordinate parser, keeping
	// path derivation in one place.
	return library.ParseCoordinate(info.Name).Path
}
