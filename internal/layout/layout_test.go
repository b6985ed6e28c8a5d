package layout

import (
	"path/filepath"
	"testing"
)

func TestStaticPaths(t *testing.T) {
	root := filepath.FromSlash("/mc")

	cases := []struct {
		name string
		got  string
		want string
	}{
		{"versions", VersionsDir(root), filepath.Join(root, "versions")},
		{"versionRoot", VersionRoot(root, "1.20.1"), filepath.Join(root, "versions", "1.20.1")},
		{"versionJSON", VersionJSON(root, "1.20.1"), filepath.Join(root, "versions", "1.20.1", "1.20.1.json")},
		{"clientJar", VersionJar(root, "1.20.1", KindClient), filepath.Join(root, "versions", "1.20.1", "1.20.1.jar")},
		{"serverJar", VersionJar(root, "1.20.1", KindServer), filepath.Join(root, "versions", "1.20.1", "1.20.1-server.jar")},
		{"natives", NativesRoot(root, "1.20.1"), filepath.Join(root, "versions", "1.20.1", "1.20.1-natives")},
		{"libraries", LibrariesDir(root), filepath.Join(root, "libraries")},
		{"library", LibraryPath(root, "com/foo/bar/1.0/bar-1.0.jar"), filepath.Join(root, "libraries", "com/foo/bar/1.0/bar-1.0.jar")},
		{"assets", AssetsDir(root), filepath.Join(root, "assets")},
		{"assetsIndex", AssetsIndexPath(root, "17"), filepath.Join(root, "assets", "indexes", "17.json")},
		{"asset", AssetPath(root, "ab12cd"), filepath.Join(root, "assets", "objects", "ab", "ab12cd")},
		{"logConfig", LogConfigPath(root, "client-1.12.xml"), filepath.Join(root, "assets", "log_configs", "client-1.12.xml")},
		{"mapInfo", MapInfoPath(root, "world"), filepath.Join(root, "saves", "world", "level.dat")},
		{"mapIcon", MapIconPath(root, "world"), filepath.Join(root, "saves", "world", "icon.png")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Errorf("got %q, want %q", c.got, c.want)
			}
		})
	}
}

func TestLayoutBoundMatchesStatic(t *testing.T) {
	l := New("/mc")
	if l.VersionJSON("1.7.10") != VersionJSON("/mc", "1.7.10") {
		t.Error("bound Layout diverges from static helper")
	}
	if l.Asset("deadbeef") != AssetPath("/mc", "deadbeef") {
		t.Error("bound Layout diverges from static helper")
	}
}

func TestAssetShortHash(t *testing.T) {
	// A malformed (too-short) hash still produces a path rather than panicking.
	got := AssetPath("/mc", "a")
	want := filepath.Join("/mc", "assets", "objects", "a", "a")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
