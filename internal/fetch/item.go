// Package fetch is the network collaborator the core stays free of: it
// turns a diagnose.Report into a concrete download plan and executes it,
// and can pull a bare version id's manifest from Mojang's public catalog
// so the resolver has something to read in the first place. Nothing in
// internal/version, internal/launch or internal/diagnose imports this
// package.
package fetch

import (
	"fmt"

	"github.com/rowanmc/mccore/internal/diagnose"
)

// mojangResourcesHost serves asset objects by content hash; it isn't named
// anywhere in a version manifest, unlike library and client jar URLs.
const mojangResourcesHost = "https://resources.download.minecraft.net/"

// Item is one file the repair pass needs to fetch.
type Item struct {
	URL  string
	Path string
	SHA1 string
	Size int64
}

// Plan turns every repairable issue in report into a download Item. A
// versionJson issue can't be repaired this way (there's no resolved
// version to pull file URLs from) and is skipped; call FetchManifest to
// repair that case instead.
func Plan(report *diagnose.Report) ([]Item, []diagnose.Issue) {
	var items []Item
	var skipped []diagnose.Issue

	if report.Version == nil {
		return nil, report.Issues
	}
	rv := report.Version

	librariesByName := make(map[string]int, len(rv.Libraries))
	for i, lib := range rv.Libraries {
		librariesByName[lib.Name] = i
	}

	for _, issue := range report.Issues {
		switch issue.Role {
		case diagnose.RoleVersionJSON:
			skipped = append(skipped, issue)

		case diagnose.RoleMinecraftJar:
			artifact, ok := rv.Downloads["client"]
			if !ok {
				skipped = append(skipped, issue)
				continue
			}
			items = append(items, Item{URL: artifact.URL, Path: issue.File, SHA1: artifact.SHA1, Size: artifact.Size})

		case diagnose.RoleAssetIndex:
			items = append(items, Item{URL: rv.AssetIndex.URL, Path: issue.File, SHA1: rv.AssetIndex.SHA1, Size: rv.AssetIndex.Size})

		case diagnose.RoleLibrary:
			idx, ok := librariesByName[issue.LibraryName]
			if !ok {
				skipped = append(skipped, issue)
				continue
			}
			dl := rv.Libraries[idx].Download
			items = append(items, Item{URL: dl.URL, Path: issue.File, SHA1: dl.SHA1, Size: dl.Size})

		case diagnose.RoleAsset:
			hash := issue.ExpectedChecksum
			if hash == "" {
				skipped = append(skipped, issue)
				continue
			}
			items = append(items, Item{URL: assetURL(hash), Path: issue.File, SHA1: hash, Size: -1})

		default:
			skipped = append(skipped, issue)
		}
	}

	return items, skipped
}

func assetURL(hash string) string {
	prefix := hash
	if len(hash) >= 2 {
		prefix = hash[:2]
	}
	return fmt.Sprintf("%s%s/%s", mojangResourcesHost, prefix, hash)
}
