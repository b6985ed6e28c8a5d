// Package library parses and formats Maven-style library coordinates
// (group:artifact:version[:classifier][@type]) the way Minecraft version
// manifests reference libraries, and derives the relative path under
// libraries/ that each coordinate resolves to.
package library

import "strings"

// Info is a parsed Maven coordinate.
type Info struct {
	GroupID    string
	ArtifactID string
	Version    string
	Classifier string // possibly empty
	Type       string // defaults to "jar"
	IsSnapshot bool
	Name       string // canonical group:artifact:version[:classifier][@type]
	Path       string // relative path under libraries/
}

// ParseCoordinate parses a coordinate string of the form
// group:artifact:version[:classifier][@type] into an Info, deriving its
// canonical Name and Path.
func ParseCoordinate(coordinate string) Info {
	ext := "jar"
	body := coordinate
	if idx := strings.Index(coordinate, "@"); idx >= 0 {
		body = coordinate[:idx]
		ext = coordinate[idx+1:]
	}

	parts := strings.Split(body, ":")
	info := Info{Type: ext}
	if len(parts) > 0 {
		info.GroupID = parts[0]
	}
	if len(parts) > 1 {
		info.ArtifactID = parts[1]
	}
	if len(parts) > 2 {
		info.Version = parts[2]
	}
	if len(parts) > 3 {
		info.Classifier = parts[3]
	}

	info.IsSnapshot = strings.HasSuffix(info.Version, "-SNAPSHOT")
	info.Name = canonicalName(info)
	info.Path = canonicalPath(info)
	return info
}

// ParsePath parses a relative library path (as produced by Path) back into
// an Info. Snapshot versions are parse-only here: the filename a snapshot
// coordinate resolves to (via ParseCoordinate) always uses the
// artifactId-version prefix, never the timestamped snapshot build filename
// a repository might actually serve, so this function does not attempt to
// recover a timestamped snapshot's true version from its path; see the
// open question on snapshot round-tripping.
func ParsePath(path string) Info {
	segments := strings.Split(path, "/")
	if len(segments) < 3 {
		return Info{}
	}

	n := len(segments)
	artifactID := segments[n-3]
	version := segments[n-2]
	file := segments[n-1]

	groupID := strings.Join(segments[:n-3], ".")

	ext := "jar"
	base := file
	if idx := strings.LastIndex(file, "."); idx >= 0 {
		ext = file[idx+1:]
		base = file[:idx]
	}

	classifier := ""
	switch {
	case strings.HasPrefix(base, artifactID+"-"+version):
		classifier = strings.TrimPrefix(base, artifactID+"-"+version)
	case strings.HasPrefix(base, version):
		classifier = strings.TrimPrefix(base, version)
	}
	classifier = strings.TrimPrefix(classifier, "-")

	info := Info{
		GroupID:    groupID,
		ArtifactID: artifactID,
		Version:    version,
		Classifier: classifier,
		Type:       ext,
		IsSnapshot: strings.HasSuffix(version, "-SNAPSHOT"),
	}
	info.Name = canonicalName(info)
	info.Path = path
	return info
}

func canonicalName(info Info) string {
	name := info.GroupID + ":" + info.ArtifactID + ":" + info.Version
	if info.Classifier != "" {
		name += ":" + info.Classifier
	}
	if info.Type != "" && info.Type != "jar" {
		name += "@" + info.Type
	}
	return name
}

func canonicalPath(info Info) string {
	ext := info.Type
	if ext == "" {
		ext = "jar"
	}

	file := info.ArtifactID + "-" + info.Version
	if info.Classifier != "" {
		file += "-" + info.Classifier
	}
	file += "." + ext

	group := strings.ReplaceAll(info.GroupID, ".", "/")
	return strings.Join([]string{group, info.ArtifactID, info.Version, file}, "/")
}
