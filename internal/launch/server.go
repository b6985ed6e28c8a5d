package launch

import (
	"fmt"

	"github.com/rowanmc/mccore/internal/layout"
	"github.com/rowanmc/mccore/internal/version"
)

// ServerOptions is the input to BuildServerArgv: a dedicated server only
// needs memory bounds, extra args and a jar location, since there are no
// game-side placeholders to interpolate.
type ServerOptions struct {
	Version      *version.ResolvedVersion // optional when ServerJar is given explicitly
	ResourcePath string
	JavaPath     string
	MinMemory    int
	MaxMemory    int
	ServerJar    string // overrides the version's derived server jar path
	ExtraJVMArgs []string
	ExtraMCArgs  []string
	NoGUI        bool
}

// BuildServerArgv synthesizes the dedicated-server argv. Unlike the client
// path, the version is only consulted (never silently left unresolved) to
// derive the default server jar location — the §9 open question 4 fix:
// the caller must have already awaited resolution, there is no
// fire-and-forget lookup here.
func BuildServerArgv(opts ServerOptions) ([]string, error) {
	if opts.JavaPath == "" {
		return nil, &InvalidOptionsError{Field: "JavaPath", Message: "must not be empty"}
	}

	serverJar := opts.ServerJar
	if serverJar == "" {
		if opts.Version == nil {
			return nil, &InvalidOptionsError{Field: "ServerJar", Message: "either ServerJar or a resolved Version is required"}
		}
		lay := layout.New(opts.ResourcePath)
		serverJar = lay.VersionJar(opts.Version.MinecraftVersion, layout.KindServer)
	}

	var argv []string
	argv = append(argv, opts.JavaPath)
	if opts.MinMemory > 0 {
		argv = append(argv, fmt.Sprintf("-Xms%dM", opts.MinMemory))
	}
	if opts.MaxMemory > 0 {
		argv = append(argv, fmt.Sprintf("-Xmx%dM", opts.MaxMemory))
	}
	argv = append(argv, opts.ExtraJVMArgs...)
	argv = append(argv, "-jar", serverJar)
	argv = append(argv, opts.ExtraMCArgs...)
	if opts.NoGUI {
		argv = append(argv, "nogui")
	}

	return argv, nil
}
