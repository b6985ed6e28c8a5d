package library

import "testing"

func TestParseCoordinateBasic(t *testing.T) {
	info := ParseCoordinate("com.mojang:brigadier:1.0.18")
	if info.GroupID != "com.mojang" || info.ArtifactID != "brigadier" || info.Version != "1.0.18" {
		t.Fatalf("unexpected parse: %+v", info)
	}
	if info.Type != "jar" {
		t.Errorf("Type = %q, want jar", info.Type)
	}
	if info.Path != "com/mojang/brigadier/1.0.18/brigadier-1.0.18.jar" {
		t.Errorf("Path = %q", info.Path)
	}
	if info.Name != "com.mojang:brigadier:1.0.18" {
		t.Errorf("Name = %q", info.Name)
	}
}

func TestParseCoordinateClassifierAndType(t *testing.T) {
	info := ParseCoordinate("org.lwjgl:lwjgl:3.3.1:natives-linux@jar")
	if info.Classifier != "natives-linux" {
		t.Errorf("Classifier = %q", info.Classifier)
	}
	if info.Path != "org/lwjgl/lwjgl/3.3.1/lwjgl-3.3.1-natives-linux.jar" {
		t.Errorf("Path = %q", info.Path)
	}
}

func TestParseCoordinateSnapshot(t *testing.T) {
	info := ParseCoordinate("net.minecraftforge:forge:1.20.1-47.1.0-SNAPSHOT")
	if !info.IsSnapshot {
		t.Error("expected IsSnapshot = true")
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	coords := []string{
		"com.mojang:brigadier:1.0.18",
		"org.lwjgl:lwjgl:3.3.1:natives-linux",
		"com.mojang:patchy:1.3.9",
		"net.minecraftforge:forge:1.20.1-47.1.0",
	}

	for _, c := range coords {
		info := ParseCoordinate(c)
		reparsed := ParsePath(info.Path)
		if reparsed.Name != c {
			t.Errorf("round trip failed for %q: path=%q reparsed.Name=%q", c, info.Path, reparsed.Name)
		}
	}
}

func TestPathShape(t *testing.T) {
	coords := []string{
		"com.mojang:brigadier:1.0.18",
		"org.lwjgl:lwjgl:3.3.1:natives-linux",
	}
	for _, c := range coords {
		info := ParseCoordinate(c)
		prefix := "com/mojang/brigadier/1.0.18/brigadier-1.0.18"
		_ = prefix // shape checked generically below
		wantPrefix := groupSlashes(info.GroupID) + "/" + info.ArtifactID + "/" + info.Version + "/" + info.ArtifactID + "-" + info.Version
		if len(info.Path) < len(wantPrefix) || info.Path[:len(wantPrefix)] != wantPrefix {
			t.Errorf("path %q does not begin with %q", info.Path, wantPrefix)
		}
	}
}

func groupSlashes(group string) string {
	out := make([]rune, 0, len(group))
	for _, r := range group {
		if r == '.' {
			out = append(out, '/')
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}

func TestParsePathClassifier(t *testing.T) {
	info := ParsePath("org/lwjgl/lwjgl/3.3.1/lwjgl-3.3.1-natives-windows.jar")
	if info.Classifier != "natives-windows" {
		t.Errorf("Classifier = %q", info.Classifier)
	}
	if info.GroupID != "org.lwjgl" || info.ArtifactID != "lwjgl" || info.Version != "3.3.1" {
		t.Errorf("unexpected parse: %+v", info)
	}
}

func TestParsePathNoClassifier(t *testing.T) {
	info := ParsePath("com/mojang/brigadier/1.0.18/brigadier-1.0.18.jar")
	if info.Classifier != "" {
		t.Errorf("Classifier = %q, want empty", info.Classifier)
	}
	if info.Name != "com.mojang:brigadier:1.0.18" {
		t.Errorf("Name = %q", info.Name)
	}
}
