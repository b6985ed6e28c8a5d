// Package diagnose checks a resolved Minecraft installation against its
// version manifest: jar, asset index, asset objects and libraries, each
// verified by existence and (depending on mode) SHA-1 digest.
package diagnose

import "github.com/rowanmc/mccore/internal/version"

// IssueType classifies what's wrong with a checked file.
type IssueType string

const (
	Missing   IssueType = "missing"
	Corrupted IssueType = "corrupted"
)

// IssueRole names which part of the installation an Issue is about.
type IssueRole string

const (
	RoleVersionJSON IssueRole = "versionJson"
	RoleMinecraftJar IssueRole = "minecraftJar"
	RoleAssetIndex  IssueRole = "assetIndex"
	RoleAsset       IssueRole = "asset"
	RoleLibrary     IssueRole = "library"
)

// Issue is one problem found during a diagnose run.
type Issue struct {
	Type             IssueType
	Role             IssueRole
	File             string
	ExpectedChecksum string
	ReceivedChecksum string
	Hint             string

	// Role-specific identifiers, populated when relevant.
	LibraryName string
	AssetName   string
}

// Report is the result of a diagnose run: the installation's root, the
// version examined (nil if resolution itself failed — see RoleVersionJSON
// issues), and every Issue found.
type Report struct {
	MinecraftLocation string
	VersionID         string
	Version           *version.ResolvedVersion
	Issues            []Issue
}

// Options configures a diagnose run.
type Options struct {
	// Strict swaps the cost/thoroughness tradeoff for libraries and asset
	// objects: non-strict (the default) favors a cheap size-gated check for
	// assets and a full hash check for libraries; strict inverts both to
	// always verify libraries by size-gate and assets by full hash. See
	// DESIGN.md for why the source's asymmetry is preserved rather than
	// unified.
	Strict bool

	// Workers bounds fan-out concurrency for library/asset checks. <= 0
	// selects a default.
	Workers int
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return 8
}
