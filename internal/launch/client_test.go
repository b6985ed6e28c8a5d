package launch

import (
	"strings"
	"testing"

	"github.com/rowanmc/mccore/internal/library"
	"github.com/rowanmc/mccore/internal/platform"
	"github.com/rowanmc/mccore/internal/version"
)

func sampleResolvedVersion() *version.ResolvedVersion {
	rv := &version.ResolvedVersion{
		ID:               "1.20.1",
		MinecraftVersion: "1.20.1",
		MainClass:        "net.minecraft.client.main.Main",
		Type:             "release",
		Assets:           "17",
		AssetIndex:       version.AssetIndexRef{ID: "17"},
		Libraries: []version.ResolvedLibrary{
			{
				Info:     library.ParseCoordinate("com.mojang:brigadier:1.0.18"),
				Download: version.Artifact{Path: "com/mojang/brigadier/1.0.18/brigadier-1.0.18.jar"},
			},
		},
	}
	rv.Arguments.JVM = []version.ArgumentElement{
		{Plain: "-Djava.library.path=${natives_directory}"},
		{Plain: "-cp"},
		{Plain: "${classpath}"},
	}
	rv.Arguments.Game = []version.ArgumentElement{
		{Plain: "--username"},
		{Plain: "${auth_player_name}"},
		{Plain: "--version"},
		{Plain: "${version_name}"},
	}
	return rv
}

func baseOptions(rv *version.ResolvedVersion, gamePath string) Options {
	return Options{
		Version:     rv,
		GamePath:    gamePath,
		JavaPath:    "/usr/bin/java",
		MaxMemory:   2048,
		MinMemory:   512,
		GameProfile: &GameProfile{ID: "fixed-uuid", Name: "Tester"},
		AccessToken: "fixed-token",
		Platform:    platform.Platform{Name: platform.Linux, Arch: "x64"},
	}
}

func TestBuildClientArgvDeterminism(t *testing.T) {
	rv := sampleResolvedVersion()
	opts := baseOptions(rv, t.TempDir())

	argv1, err := BuildClientArgv(opts)
	if err != nil {
		t.Fatalf("BuildClientArgv: %v", err)
	}
	argv2, err := BuildClientArgv(opts)
	if err != nil {
		t.Fatalf("BuildClientArgv: %v", err)
	}
	if strings.Join(argv1, "\x00") != strings.Join(argv2, "\x00") {
		t.Errorf("argv not deterministic:\n%v\n%v", argv1, argv2)
	}
}

func TestBuildClientArgvLinuxShape(t *testing.T) {
	rv := sampleResolvedVersion()
	opts := baseOptions(rv, t.TempDir())

	argv, err := BuildClientArgv(opts)
	if err != nil {
		t.Fatalf("BuildClientArgv: %v", err)
	}

	if argv[0] != "/usr/bin/java" {
		t.Errorf("argv[0] = %q, want javaPath", argv[0])
	}
	if !containsToken(argv, "-Xms512M") {
		t.Errorf("missing -Xms512M in %v", argv)
	}
	if !containsToken(argv, "-Xmx2048M") {
		t.Errorf("missing -Xmx2048M in %v", argv)
	}
	if containsToken(argv, "-Xmx2G") {
		t.Errorf("default -Xmx2G should be omitted when MaxMemory is set: %v", argv)
	}

	var classpath string
	for i, tok := range argv {
		if tok == "-cp" && i+1 < len(argv) {
			classpath = argv[i+1]
		}
	}
	if !strings.Contains(classpath, ":") {
		t.Errorf("classpath should use ':' separator on linux, got %q", classpath)
	}

	mainIdx, usernameIdx := -1, -1
	for i, tok := range argv {
		if tok == rv.MainClass {
			mainIdx = i
		}
		if tok == "--username" {
			usernameIdx = i
		}
	}
	if mainIdx == -1 || usernameIdx == -1 || mainIdx > usernameIdx {
		t.Errorf("mainClass must precede game args: mainIdx=%d usernameIdx=%d", mainIdx, usernameIdx)
	}
}

func TestBuildClientArgvMacDock(t *testing.T) {
	rv := sampleResolvedVersion()
	opts := baseOptions(rv, t.TempDir())
	opts.Platform = platform.Platform{Name: platform.OSX, Arch: "x64"}
	opts.GameName = "Minecraft"

	argv, err := BuildClientArgv(opts)
	if err != nil {
		t.Fatalf("BuildClientArgv: %v", err)
	}
	if !containsToken(argv, "-Xdock:name=Minecraft") {
		t.Errorf("expected -Xdock:name=Minecraft, got %v", argv)
	}
}

func TestPlaceholderSafety(t *testing.T) {
	rv := sampleResolvedVersion()
	rv.Arguments.Game = append(rv.Arguments.Game, version.ArgumentElement{Plain: "${totally_unknown_placeholder}"})
	opts := baseOptions(rv, t.TempDir())

	argv, err := BuildClientArgv(opts)
	if err != nil {
		t.Fatalf("BuildClientArgv: %v", err)
	}
	if !containsToken(argv, "${totally_unknown_placeholder}") {
		t.Errorf("unknown placeholder should survive verbatim, got %v", argv)
	}
}

func TestBuildClientArgvMissingVersion(t *testing.T) {
	opts := baseOptions(nil, t.TempDir())
	opts.Version = nil
	if _, err := BuildClientArgv(opts); err == nil {
		t.Fatal("expected an error for a nil Version")
	}
}
