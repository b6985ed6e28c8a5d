package diagnose

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/rowanmc/mccore/internal/layout"
	"github.com/rowanmc/mccore/internal/platform"
	"github.com/rowanmc/mccore/internal/version"
)

// Diagnose resolves versionID under mcRoot and checks its jar, asset
// index, asset objects and libraries against what's actually on disk.
//
// A version manifest that fails to parse (missing or corrupt JSON)
// short-circuits: the report carries a single versionJson issue and no
// further checks run. Any other resolution failure (a cycle, a missing
// mainClass, mixed argument formats) is not diagnosable and is returned
// as an error instead, since there is no coherent version to check files
// against.
func Diagnose(ctx context.Context, mcRoot, versionID string, plat platform.Platform, opts Options) (*Report, error) {
	lay := layout.New(mcRoot)

	rv, err := version.Resolve(mcRoot, versionID, plat)
	if err != nil {
		if issue, ok := versionLoadIssue(lay, versionID, err); ok {
			return &Report{MinecraftLocation: mcRoot, VersionID: versionID, Issues: []Issue{issue}}, nil
		}
		return nil, err
	}

	report := &Report{MinecraftLocation: mcRoot, VersionID: rv.ID, Version: rv}

	if ctx.Err() != nil {
		return report, nil
	}

	if client, ok := rv.Downloads["client"]; ok {
		jarPath := lay.VersionJar(rv.MinecraftVersion, layout.KindClient)
		if issue := diagnoseFile(ctx, jarPath, client.SHA1, RoleMinecraftJar, "run the repair pass to re-download the client jar"); issue != nil {
			report.Issues = append(report.Issues, *issue)
		}
	}

	assetIndexIntact := true
	if rv.AssetIndex.ID != "" {
		indexPath := lay.AssetsIndex(rv.AssetIndex.ID)
		if issue := diagnoseFile(ctx, indexPath, rv.AssetIndex.SHA1, RoleAssetIndex, "run the repair pass to re-download the asset index"); issue != nil {
			report.Issues = append(report.Issues, *issue)
			assetIndexIntact = false
		}
	}

	libraryIssues := diagnoseLibraries(ctx, lay, rv.Libraries, opts)
	report.Issues = append(report.Issues, libraryIssues...)

	if assetIndexIntact && rv.AssetIndex.ID != "" {
		assetIssues := diagnoseAssets(ctx, lay, rv.AssetIndex.ID, opts)
		report.Issues = append(report.Issues, assetIssues...)
	}

	return report, nil
}

func versionLoadIssue(lay layout.Layout, versionID string, err error) (Issue, bool) {
	switch e := err.(type) {
	case *version.MissingVersionJsonError:
		return Issue{Type: Missing, Role: RoleVersionJSON, File: e.Path, Hint: "version manifest not found"}, true
	case *version.CorruptedVersionJsonError:
		return Issue{Type: Corrupted, Role: RoleVersionJSON, File: lay.VersionJSON(versionID), Hint: "version manifest is not valid JSON"}, true
	}
	return Issue{}, false
}

// diagnoseLibraries fans the per-library check out across a bounded
// worker pool, the same work-channel-plus-WaitGroup shape the teacher's
// download manager uses for parallel downloads.
func diagnoseLibraries(ctx context.Context, lay layout.Layout, libs []version.ResolvedLibrary, opts Options) []Issue {
	if len(libs) == 0 {
		return nil
	}

	work := make(chan version.ResolvedLibrary, len(libs))
	for _, lib := range libs {
		work <- lib
	}
	close(work)

	var (
		mu     sync.Mutex
		issues []Issue
		wg     sync.WaitGroup
	)

	workers := opts.workers()
	if workers > len(libs) {
		workers = len(libs)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for lib := range work {
				select {
				case <-ctx.Done():
					return
				default:
				}

				path := lay.Library(lib.Download.Path)
				var issue *Issue
				if opts.Strict {
					issue = statOnlyCheck(ctx, path, lib.Download.Size, lib.Download.SHA1, RoleLibrary, "run the repair pass to re-download this library")
				} else {
					issue = diagnoseFile(ctx, path, lib.Download.SHA1, RoleLibrary, "run the repair pass to re-download this library")
				}
				if issue == nil {
					continue
				}
				issue.LibraryName = lib.Name
				mu.Lock()
				issues = append(issues, *issue)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return issues
}

type assetIndexFile struct {
	Objects map[string]struct {
		Hash string `json:"hash"`
		Size int64  `json:"size"`
	} `json:"objects"`
}

// diagnoseAssets parses the (already-verified-intact) asset index and
// fans the per-object check out the same way diagnoseLibraries does.
func diagnoseAssets(ctx context.Context, lay layout.Layout, assetIndexID string, opts Options) []Issue {
	data, err := os.ReadFile(lay.AssetsIndex(assetIndexID))
	if err != nil {
		return nil
	}
	var index assetIndexFile
	if err := json.Unmarshal(data, &index); err != nil {
		return nil
	}
	if len(index.Objects) == 0 {
		return nil
	}

	type object struct {
		name string
		hash string
		size int64
	}
	work := make(chan object, len(index.Objects))
	for name, obj := range index.Objects {
		work <- object{name: name, hash: obj.Hash, size: obj.Size}
	}
	close(work)

	var (
		mu     sync.Mutex
		issues []Issue
		wg     sync.WaitGroup
	)

	workers := opts.workers()
	if workers > len(index.Objects) {
		workers = len(index.Objects)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for obj := range work {
				select {
				case <-ctx.Done():
					return
				default:
				}

				path := lay.Asset(obj.hash)
				var issue *Issue
				if opts.Strict {
					issue = diagnoseFile(ctx, path, obj.hash, RoleAsset, "run the repair pass to re-download this asset")
				} else {
					issue = statOnlyCheck(ctx, path, obj.size, obj.hash, RoleAsset, "run the repair pass to re-download this asset")
				}
				if issue == nil {
					continue
				}
				issue.AssetName = obj.name
				mu.Lock()
				issues = append(issues, *issue)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return issues
}
