// Package layout computes the canonical on-disk paths under a Minecraft
// root: versions, libraries, assets, natives, saves. The resolver and the
// launch synthesizer both depend on these conventions; the launcher must
// never invent a path outside of them.
package layout

import "path/filepath"

// JarKind distinguishes the client jar from a dedicated server jar (or any
// other side a version manifest's downloads map declares).
type JarKind string

const (
	KindClient JarKind = "client"
	KindServer JarKind = "server"
)

// Layout binds a Minecraft root directory to the path helpers below. The
// zero value is unusable; construct with New.
type Layout struct {
	root string
}

// New binds a layout to root.
func New(root string) Layout {
	return Layout{root: root}
}

// Root returns the bound Minecraft root.
func (l Layout) Root() string { return l.root }

func (l Layout) Versions() string { return VersionsDir(l.root) }

func (l Layout) VersionRoot(id string) string { return VersionRoot(l.root, id) }

func (l Layout) VersionJSON(id string) string { return VersionJSON(l.root, id) }

func (l Layout) VersionJar(id string, kind JarKind) string { return VersionJar(l.root, id, kind) }

func (l Layout) NativesRoot(id string) string { return NativesRoot(l.root, id) }

func (l Layout) Libraries() string { return LibrariesDir(l.root) }

func (l Layout) Library(relPath string) string { return LibraryPath(l.root, relPath) }

func (l Layout) Assets() string { return AssetsDir(l.root) }

func (l Layout) AssetsIndex(id string) string { return AssetsIndexPath(l.root, id) }

func (l Layout) Asset(hash string) string { return AssetPath(l.root, hash) }

func (l Layout) LogConfig(file string) string { return LogConfigPath(l.root, file) }

func (l Layout) MapInfo(name string) string { return MapInfoPath(l.root, name) }

func (l Layout) MapIcon(name string) string { return MapIconPath(l.root, name) }

// Static forms: every query is also available as a plain function taking
// root explicitly, for callers that don't want to carry a bound Layout.

func VersionsDir(root string) string { return filepath.Join(root, "versions") }

func VersionRoot(root, id string) string { return filepath.Join(VersionsDir(root), id) }

func VersionJSON(root, id string) string { return filepath.Join(VersionRoot(root, id), id+".json") }

func VersionJar(root, id string, kind JarKind) string {
	if kind == "" || kind == KindClient {
		return filepath.Join(VersionRoot(root, id), id+".jar")
	}
	return filepath.Join(VersionRoot(root, id), id+"-"+string(kind)+".jar")
}

func NativesRoot(root, id string) string {
	return filepath.Join(VersionRoot(root, id), id+"-natives")
}

func LibrariesDir(root string) string { return filepath.Join(root, "libraries") }

func LibraryPath(root, relPath string) string { return filepath.Join(LibrariesDir(root), relPath) }

func AssetsDir(root string) string { return filepath.Join(root, "assets") }

func AssetsIndexPath(root, id string) string {
	return filepath.Join(AssetsDir(root), "indexes", id+".json")
}

func AssetPath(root, hash string) string {
	prefix := hash
	if len(hash) >= 2 {
		prefix = hash[:2]
	}
	return filepath.Join(AssetsDir(root), "objects", prefix, hash)
}

func LogConfigPath(root, file string) string {
	return filepath.Join(AssetsDir(root), "log_configs", file)
}

func MapInfoPath(root, name string) string {
	return filepath.Join(root, "saves", name, "level.dat")
}

func MapIconPath(root, name string) string {
	return filepath.Join(root, "saves", name, "icon.png")
}
