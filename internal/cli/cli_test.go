package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rowanmc/mccore/internal/layout"
)

func writeManifest(t *testing.T, root, id string, manifest map[string]interface{}) {
	t.Helper()
	lay := layout.New(root)
	if err := os.MkdirAll(lay.VersionRoot(id), 0755); err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(manifest)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(lay.VersionJSON(id), data, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(context.Background(), []string{"bogus"}, &out, &errOut)
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestRunNoArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(context.Background(), nil, &out, &errOut)
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestRunResolve(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "1.20.1", map[string]interface{}{
		"id":        "1.20.1",
		"mainClass": "net.minecraft.client.main.Main",
	})

	var out, errOut bytes.Buffer
	code := Run(context.Background(), []string{"resolve", root, "1.20.1"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr=%s", code, errOut.String())
	}
	if out.Len() == 0 {
		t.Error("expected resolve to print JSON")
	}
}

func TestRunDiagnoseMissingManifest(t *testing.T) {
	root := t.TempDir()
	var out, errOut bytes.Buffer
	code := Run(context.Background(), []string{"diagnose", root, "nope"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr=%s", code, errOut.String())
	}
	if out.Len() == 0 {
		t.Error("expected a rendered report")
	}
}

func TestRunLaunchArgvRequiresJavaFlag(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "1.20.1", map[string]interface{}{
		"id":        "1.20.1",
		"mainClass": "net.minecraft.client.main.Main",
	})

	var out, errOut bytes.Buffer
	code := Run(context.Background(), []string{"launch-argv", root, "1.20.1"}, &out, &errOut)
	if code == 0 {
		t.Error("expected a non-zero exit without -java")
	}
}

func TestRunLaunchArgvProducesCommandLine(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "1.20.1", map[string]interface{}{
		"id":        "1.20.1",
		"mainClass": "net.minecraft.client.main.Main",
		"arguments": map[string]interface{}{
			"jvm":  []interface{}{"-cp", "${classpath}"},
			"game": []interface{}{"--username", "${auth_player_name}"},
		},
	})
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "xdgdata"))

	var out, errOut bytes.Buffer
	code := Run(context.Background(), []string{"launch-argv", "-java", "/usr/bin/java", root, "1.20.1"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr=%s", code, errOut.String())
	}
	if out.Len() == 0 {
		t.Error("expected a command line on stdout")
	}
}
