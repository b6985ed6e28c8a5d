package version

import (
	"encoding/json"
	"time"

	"github.com/rowanmc/mccore/internal/library"
	"github.com/rowanmc/mccore/internal/platform"
	"github.com/rowanmc/mccore/internal/rules"
)

// Artifact is a download descriptor: a file at Path, fetchable from URL,
// verified against SHA1, with a declared Size (-1 when unknown).
type Artifact struct {
	Path string `json:"path"`
	URL  string `json:"url"`
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
}

// ResolvedLibrary is a library.Info enriched with its resolved download
// descriptor and native/requirement metadata.
type ResolvedLibrary struct {
	library.Info

	Download       Artifact
	IsNative       bool
	Checksums      []string
	ServerReq      *bool
	ClientReq      *bool
	ExtractExclude []string
}

// dedupeKey returns the key libraries are deduplicated by during merge:
// group:artifact for ordinary libraries, and a disjoint keyspace for
// natives so a native and a non-native sharing group:artifact never
// collide (open question #1).
func (l ResolvedLibrary) dedupeKey() string {
	if l.IsNative {
		return l.GroupID + ":" + l.ArtifactID + "-" + l.Classifier
	}
	return l.GroupID + ":" + l.ArtifactID
}

// ArgumentElement is either a plain token or a rule-gated conditional
// whose Values contribute only when Rules evaluates to allow against the
// platform and feature set active at the time it's finally flattened.
type ArgumentElement struct {
	Conditional bool
	Plain       string
	Rules       []rules.Rule
	Values      []string
}

// Flatten evaluates every conditional element against plat/features and
// returns the resulting plain argument list. Unknown placeholders are left
// for the caller (the launch synthesizer) to interpolate.
func Flatten(elements []ArgumentElement, plat platform.Platform, features rules.FeatureSet) []string {
	var out []string
	for _, e := range elements {
		if !e.Conditional {
			out = append(out, e.Plain)
			continue
		}
		if rules.Evaluate(e.Rules, plat, features) {
			out = append(out, e.Values...)
		}
	}
	return out
}

// AssetIndexRef references the asset index a version uses.
type AssetIndexRef struct {
	ID        string `json:"id"`
	SHA1      string `json:"sha1"`
	Size      int64  `json:"size"`
	TotalSize int64  `json:"totalSize"`
	URL       string `json:"url"`
}

// JavaVersionReq describes a version's declared Java runtime requirement.
type JavaVersionReq struct {
	Component    string `json:"component"`
	MajorVersion int    `json:"majorVersion"`
}

// Logging carries the optional client logging configuration reference.
type Logging struct {
	Client *LoggingClient `json:"client,omitempty"`
}

// LoggingClient is the per-side logging config entry.
type LoggingClient struct {
	Argument string        `json:"argument"`
	File     LoggingConfig `json:"file"`
	Type     string        `json:"type"`
}

// LoggingConfig names the log4j config file under assets/log_configs.
type LoggingConfig struct {
	ID   string `json:"id"`
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

// ResolvedVersion is the canonical, fully-merged description of a version
// and its inheritance chain, opaque to downstream consumers beyond the
// fields below.
type ResolvedVersion struct {
	ID                     string
	MinecraftVersion       string
	Inheritances           []string
	PathChain              []string
	Assets                 string
	AssetIndex             AssetIndexRef
	JavaVersion            JavaVersionReq
	MainClass              string
	Type                   string
	ReleaseTime            time.Time
	Time                   time.Time
	Logging                *Logging
	MinimumLauncherVersion int
	MinecraftDirectory     string

	Arguments struct {
		JVM  []ArgumentElement
		Game []ArgumentElement
	}

	Libraries []ResolvedLibrary
	Downloads map[string]Artifact
}

// --- raw JSON manifest shape -------------------------------------------------

type rawManifest struct {
	ID                     string             `json:"id"`
	InheritsFrom           string             `json:"inheritsFrom"`
	Type                   string             `json:"type"`
	MainClass              string             `json:"mainClass"`
	MinecraftArguments     string             `json:"minecraftArguments"`
	Arguments              *rawArguments      `json:"arguments"`
	Libraries              []rawLibrary       `json:"libraries"`
	Downloads              map[string]Artifact `json:"downloads"`
	AssetIndex             *AssetIndexRef     `json:"assetIndex"`
	Assets                 string             `json:"assets"`
	Logging                *Logging           `json:"logging"`
	JavaVersion            *JavaVersionReq    `json:"javaVersion"`
	MinimumLauncherVersion int                `json:"minimumLauncherVersion"`
	ReleaseTime            time.Time          `json:"releaseTime"`
	Time                   time.Time          `json:"time"`
	ClientVersion          string             `json:"clientVersion"`
	MinecraftVersionField  string             `json:"_minecraftVersion"`
}

type rawArguments struct {
	JVM  []json.RawMessage `json:"jvm"`
	Game []json.RawMessage `json:"game"`
}

type rawRule struct {
	Action   string          `json:"action"`
	OS       *rawOSRule      `json:"os"`
	Features map[string]bool `json:"features"`
}

type rawOSRule struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Arch    string `json:"arch"`
}

type rawLibrary struct {
	Name      string                  `json:"name"`
	Downloads *rawLibraryDownloads    `json:"downloads"`
	Rules     []rawRule               `json:"rules"`
	Natives   map[string]string       `json:"natives"`
	Extract   *rawExtract             `json:"extract"`
	URL       string                  `json:"url"`
	Checksums []string                `json:"checksums"`
	ServerReq *bool                   `json:"serverreq"`
	ClientReq *bool                   `json:"clientreq"`
}

type rawLibraryDownloads struct {
	Artifact    *Artifact            `json:"artifact"`
	Classifiers map[string]*Artifact `json:"classifiers"`
}

type rawExtract struct {
	Exclude []string `json:"exclude"`
}
