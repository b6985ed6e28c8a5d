package launch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rowanmc/mccore/internal/layout"
	"github.com/rowanmc/mccore/internal/platform"
	"github.com/rowanmc/mccore/internal/version"
)

const (
	defaultProfileName   = "Steve"
	defaultUserType      = "Mojang"
	defaultLauncherName  = "Launcher"
	defaultLauncherBrand = "0.0.1"
	defaultGameName      = "Minecraft"
)

// defaultExtraJVMArgs is the fixed G1GC tuning block appended when the
// caller doesn't supply its own extraJVMArgs. -Xmx2G is dropped from it
// when the caller already set maxMemory.
var defaultExtraJVMArgs = []string{
	"-Xmx2G",
	"-XX:+UnlockExperimentalVMOptions",
	"-XX:+UseG1GC",
	"-XX:G1NewSizePercent=20",
	"-XX:G1ReservePercent=20",
	"-XX:MaxGCPauseMillis=50",
	"-XX:G1HeapRegionSize=32M",
}

// BuildClientArgv implements §4.G: it synthesizes the full argument vector
// for spawning the Minecraft client, starting with the java executable
// itself. The caller is responsible for actually exec'ing it.
func BuildClientArgv(opts Options) ([]string, error) {
	if opts.Version == nil {
		return nil, &InvalidOptionsError{Field: "Version", Message: "a resolved version is required"}
	}
	if opts.JavaPath == "" {
		return nil, &InvalidOptionsError{Field: "JavaPath", Message: "must not be empty"}
	}
	for _, a := range opts.ExtraJVMArgs {
		if a == "" {
			return nil, &InvalidOptionsError{Field: "ExtraJVMArgs", Message: "entries must be non-empty strings"}
		}
	}
	for _, a := range opts.ExtraMCArgs {
		if a == "" {
			return nil, &InvalidOptionsError{Field: "ExtraMCArgs", Message: "entries must be non-empty strings"}
		}
	}

	rv := opts.Version

	gamePath, err := filepath.Abs(opts.GamePath)
	if err != nil {
		return nil, &InvalidOptionsError{Field: "GamePath", Message: err.Error()}
	}
	resourcePath := opts.ResourcePath
	if resourcePath == "" {
		resourcePath = gamePath
	}
	resourcePath, err = filepath.Abs(resourcePath)
	if err != nil {
		return nil, &InvalidOptionsError{Field: "ResourcePath", Message: err.Error()}
	}
	lay := layout.New(resourcePath)

	plat := opts.Platform
	if plat.Name == "" {
		plat = platform.Current()
	}

	profile := opts.GameProfile
	if profile == nil {
		profile = &GameProfile{ID: randomHex(16), Name: defaultProfileName}
	}
	accessToken := opts.AccessToken
	if accessToken == "" {
		accessToken = randomHex(16)
	}
	userType := opts.UserType
	if userType == "" {
		userType = defaultUserType
	}
	launcherName := opts.LauncherName
	if launcherName == "" {
		launcherName = defaultLauncherName
	}
	launcherBrand := opts.LauncherBrand
	if launcherBrand == "" {
		launcherBrand = defaultLauncherBrand
	}
	gameName := opts.GameName
	if gameName == "" {
		gameName = defaultGameName
	}
	nativeRoot := opts.NativeRoot
	if nativeRoot == "" {
		nativeRoot = lay.NativesRoot(rv.ID)
	}

	gameIcon := opts.GameIcon
	if gameIcon == "" {
		gameIcon = findGameIcon(lay, rv)
	}

	var argv []string
	argv = append(argv, opts.JavaPath)

	if plat.Name == platform.OSX {
		argv = append(argv, fmt.Sprintf("-Xdock:name=%s", gameName))
		if gameIcon != "" {
			argv = append(argv, fmt.Sprintf("-Xdock:icon=%s", gameIcon))
		}
	}

	if opts.MinMemory > 0 {
		argv = append(argv, fmt.Sprintf("-Xms%dM", opts.MinMemory))
	}
	if opts.MaxMemory > 0 {
		argv = append(argv, fmt.Sprintf("-Xmx%dM", opts.MaxMemory))
	}

	if opts.IgnoreInvalidMinecraftCertificates {
		argv = append(argv, "-Dfml.ignoreInvalidMinecraftCertificates=true")
	}
	if opts.IgnorePatchDiscrepancies {
		argv = append(argv, "-Dfml.ignorePatchDiscrepancies=true")
	}

	if opts.YggdrasilAgent != nil {
		argv = append(argv, fmt.Sprintf("-javaagent:%s=%s", opts.YggdrasilAgent.Jar, opts.YggdrasilAgent.Server))
		argv = append(argv, "-Dauthlibinjector.side=client")
		if opts.YggdrasilAgent.Prefetched != "" {
			argv = append(argv, "-Dauthlibinjector.yggdrasil.prefetched="+opts.YggdrasilAgent.Prefetched)
		}
	}

	classpath := buildClasspath(lay, rv, opts.ExtraClassPaths, plat)

	jvmVals := map[string]string{
		"natives_directory":   nativeRoot,
		"launcher_name":       launcherName,
		"launcher_version":    launcherBrand,
		"classpath":           classpath,
		"library_directory":   lay.Libraries(),
		"classpath_separator": classpathSeparator(plat),
		"version_name":        versionNameOf(opts, rv),
	}
	for k, v := range featureOverrides(opts.Features) {
		jvmVals[k] = v
	}

	jvmTokens := version.Flatten(rv.Arguments.JVM, plat, opts.Features)
	argv = append(argv, interpolateAll(jvmTokens, jvmVals)...)

	if rv.Logging != nil && rv.Logging.Client != nil {
		logPath := lay.LogConfig(rv.Logging.Client.File.ID)
		if _, err := os.Stat(logPath); err == nil {
			argv = append(argv, interpolate(rv.Logging.Client.Argument, map[string]string{"path": logPath}))
		}
	}

	extraJVM := opts.ExtraJVMArgs
	if len(extraJVM) == 0 {
		extraJVM = defaultExtraJVMArgs
		if opts.MaxMemory > 0 {
			extraJVM = dropToken(extraJVM, "-Xmx2G")
		}
	}
	argv = append(argv, extraJVM...)

	argv = append(argv, rv.MainClass)

	gameVals := map[string]string{
		"version_name":      versionNameOf(opts, rv),
		"version_type":      versionTypeOf(opts, rv),
		"assets_root":       filepath.Join(resourcePath, "assets"),
		"game_assets":       filepath.Join(resourcePath, "assets", "virtual", rv.Assets),
		"assets_index_name": rv.AssetIndex.ID,
		"game_directory":    gamePath,
		"auth_player_name":  profile.Name,
		"auth_uuid":         profile.ID,
		"auth_access_token": accessToken,
		"user_properties":   encodeProperties(opts.Properties),
		"user_type":         userType,
		"resolution_width":  "-1",
		"resolution_height": "-1",
	}
	if opts.Resolution != nil {
		gameVals["resolution_width"] = strconv.Itoa(opts.Resolution.Width)
		gameVals["resolution_height"] = strconv.Itoa(opts.Resolution.Height)
	}
	for k, v := range featureOverrides(opts.Features) {
		gameVals[k] = v
	}

	gameTokens := version.Flatten(rv.Arguments.Game, plat, opts.Features)
	argv = append(argv, interpolateAll(gameTokens, gameVals)...)
	argv = append(argv, opts.ExtraMCArgs...)

	if opts.Server != nil {
		argv = append(argv, "--server", opts.Server.IP)
		if opts.Server.Port != 0 {
			argv = append(argv, "--port", strconv.Itoa(opts.Server.Port))
		}
	}

	if opts.Resolution != nil && !containsToken(argv, "--width") {
		if opts.Resolution.Fullscreen {
			argv = append(argv, "--fullscreen")
		} else {
			argv = append(argv, "--height", strconv.Itoa(opts.Resolution.Height), "--width", strconv.Itoa(opts.Resolution.Width))
		}
	}

	return argv, nil
}

func versionNameOf(opts Options, rv *version.ResolvedVersion) string {
	if opts.VersionName != "" {
		return opts.VersionName
	}
	return rv.ID
}

func versionTypeOf(opts Options, rv *version.ResolvedVersion) string {
	if opts.VersionType != "" {
		return opts.VersionType
	}
	return rv.Type
}

func classpathSeparator(plat platform.Platform) string {
	if plat.Name == platform.Windows {
		return ";"
	}
	return ":"
}

func buildClasspath(lay layout.Layout, rv *version.ResolvedVersion, extra []string, plat platform.Platform) string {
	var entries []string
	for _, lib := range rv.Libraries {
		if lib.IsNative {
			continue
		}
		entries = append(entries, lay.Library(lib.Download.Path))
	}
	entries = append(entries, lay.VersionJar(rv.MinecraftVersion, layout.KindClient))
	entries = append(entries, extra...)
	return strings.Join(entries, classpathSeparator(plat))
}

func findGameIcon(lay layout.Layout, rv *version.ResolvedVersion) string {
	if rv.AssetIndex.ID == "" {
		return ""
	}
	data, err := os.ReadFile(lay.AssetsIndex(rv.AssetIndex.ID))
	if err != nil {
		return ""
	}

	var index struct {
		Objects map[string]struct {
			Hash string `json:"hash"`
		} `json:"objects"`
	}
	if err := json.Unmarshal(data, &index); err != nil {
		return ""
	}

	for _, key := range []string{"icons/minecraft.icns", "minecraft/icons/minecraft.icns"} {
		if obj, ok := index.Objects[key]; ok {
			return lay.Asset(obj.Hash)
		}
	}
	return ""
}

func encodeProperties(props map[string]interface{}) string {
	if len(props) == 0 {
		return "{}"
	}
	data, err := json.Marshal(props)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// featureOverrides exposes every active feature as a placeholder override
// whose value is the string "true"; a feature whose name matches a
// placeholder (e.g. "resolution_width") replaces the computed value with
// "true". Inactive features contribute nothing.
func featureOverrides(features map[string]bool) map[string]string {
	out := make(map[string]string)
	for k, v := range features {
		if v {
			out[k] = "true"
		}
	}
	return out
}

func dropToken(tokens []string, target string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == target {
			continue
		}
		out = append(out, t)
	}
	return out
}

func containsToken(tokens []string, target string) bool {
	for _, t := range tokens {
		if t == target {
			return true
		}
	}
	return false
}
