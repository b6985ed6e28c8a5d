package launch

import (
	"testing"

	"github.com/rowanmc/mccore/internal/version"
)

func TestBuildServerArgvWithExplicitJar(t *testing.T) {
	argv, err := BuildServerArgv(ServerOptions{
		JavaPath:  "/usr/bin/java",
		ServerJar: "/srv/mc/server.jar",
		MinMemory: 1024,
		MaxMemory: 4096,
		NoGUI:     true,
	})
	if err != nil {
		t.Fatalf("BuildServerArgv: %v", err)
	}

	want := []string{"/usr/bin/java", "-Xms1024M", "-Xmx4096M", "-jar", "/srv/mc/server.jar", "nogui"}
	if len(argv) != len(want) {
		t.Fatalf("argv = %v, want %v", argv, want)
	}
	for i := range want {
		if argv[i] != want[i] {
			t.Errorf("argv[%d] = %q, want %q", i, argv[i], want[i])
		}
	}
}

func TestBuildServerArgvDerivesJarFromVersion(t *testing.T) {
	rv := &version.ResolvedVersion{MinecraftVersion: "1.20.1"}
	argv, err := BuildServerArgv(ServerOptions{
		JavaPath:     "/usr/bin/java",
		Version:      rv,
		ResourcePath: "/srv/mc",
	})
	if err != nil {
		t.Fatalf("BuildServerArgv: %v", err)
	}

	jarIdx := -1
	for i, tok := range argv {
		if tok == "-jar" {
			jarIdx = i
		}
	}
	if jarIdx == -1 || jarIdx+1 >= len(argv) {
		t.Fatalf("expected -jar <path> in argv, got %v", argv)
	}
	got := argv[jarIdx+1]
	want := "/srv/mc/versions/1.20.1/1.20.1-server.jar"
	if got != want {
		t.Errorf("server jar path = %q, want %q", got, want)
	}
}

func TestBuildServerArgvRequiresJavaPath(t *testing.T) {
	_, err := BuildServerArgv(ServerOptions{ServerJar: "/x.jar"})
	if err == nil {
		t.Fatal("expected an error when JavaPath is empty")
	}
}

func TestBuildServerArgvRequiresJarOrVersion(t *testing.T) {
	_, err := BuildServerArgv(ServerOptions{JavaPath: "/usr/bin/java"})
	if err == nil {
		t.Fatal("expected an error when neither ServerJar nor Version is given")
	}
}
