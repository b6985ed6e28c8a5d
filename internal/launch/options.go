package launch

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/rowanmc/mccore/internal/platform"
	"github.com/rowanmc/mccore/internal/rules"
	"github.com/rowanmc/mccore/internal/version"
)

// GameProfile is the player identity placed into auth_uuid/auth_player_name.
type GameProfile struct {
	ID   string
	Name string
}

// Resolution is the requested game window size.
type Resolution struct {
	Width      int
	Height     int
	Fullscreen bool
}

// Server describes an auto-join target passed to the client via --server.
type Server struct {
	IP   string
	Port int // 0 means unset
}

// YggdrasilAgent configures the authlib-injector javaagent.
type YggdrasilAgent struct {
	Jar        string
	Server     string
	Prefetched string
}

// Options is the full input to BuildClientArgv, mirroring spec §6's
// LaunchOptions table.
type Options struct {
	Version      *version.ResolvedVersion
	GamePath     string
	ResourcePath string // defaults to GamePath

	JavaPath             string
	MinMemory, MaxMemory int // MiB; 0 means unset

	GameProfile *GameProfile
	AccessToken string
	UserType    string
	Properties  map[string]interface{}
	Features    rules.FeatureSet

	LauncherName, LauncherBrand string
	NativeRoot                  string
	GameIcon, GameName          string

	IgnoreInvalidMinecraftCertificates bool
	IgnorePatchDiscrepancies           bool

	YggdrasilAgent *YggdrasilAgent

	ExtraClassPaths, ExtraJVMArgs, ExtraMCArgs []string

	Resolution *Resolution
	Server     *Server

	VersionName, VersionType string
	IsDemo                   bool

	Platform platform.Platform // zero value means use platform.Current()
}

func randomHex(nBytes int) string {
	buf := make([]byte, nBytes)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand failing means the OS entropy source is broken
	}
	return hex.EncodeToString(buf)
}
