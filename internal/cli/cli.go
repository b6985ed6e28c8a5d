// Package cli implements mccore's command dispatch: resolve, launch-argv,
// diagnose and repair. It's the thin layer root main.go wires up, playing
// the same role the teacher's internal/app.App plays for its bubbletea
// entry point, minus the interactive instance browser — this CLI is
// scriptable, not a TUI.
package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rowanmc/mccore/internal/appconfig"
	"github.com/rowanmc/mccore/internal/diagnose"
	"github.com/rowanmc/mccore/internal/fetch"
	"github.com/rowanmc/mccore/internal/launch"
	"github.com/rowanmc/mccore/internal/platform"
	"github.com/rowanmc/mccore/internal/profile"
	"github.com/rowanmc/mccore/internal/reportview"
	"github.com/rowanmc/mccore/internal/version"
)

// Run dispatches args (os.Args[1:]) to a subcommand, writing to out/errOut,
// and returns the process exit code.
func Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, usage())
		return 2
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "resolve":
		err = runResolve(rest, out)
	case "launch-argv":
		err = runLaunchArgv(ctx, rest, out)
	case "diagnose":
		err = runDiagnose(ctx, rest, out)
	case "repair":
		err = runRepair(ctx, rest, out)
	case "help", "-h", "--help":
		fmt.Fprintln(out, usage())
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command %q\n%s\n", cmd, usage())
		return 2
	}

	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", cmd, err)
		return 1
	}
	return 0
}

func usage() string {
	return strings.TrimSpace(`
mccore <command> [flags]

Commands:
  resolve      <root> <version>          resolve a version manifest chain and print it as JSON
  launch-argv  <root> <version>          synthesize the client launch command line
  diagnose     <root> <version>          check an installation against its manifest
  repair       <root> <version>          download whatever diagnose flags as missing/corrupted
`)
}

func currentPlatform() platform.Platform {
	return platform.Current()
}

func runResolve(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	root, versionID, err := rootAndVersion(fs.Args())
	if err != nil {
		return err
	}

	rv, err := version.Resolve(root, versionID, currentPlatform())
	if err != nil {
		return err
	}
	return json.NewEncoder(out).Encode(rv)
}

func runLaunchArgv(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("launch-argv", flag.ContinueOnError)
	javaPath := fs.String("java", "", "path to the java executable (required)")
	playerName := fs.String("username", "", "offline player name for a newly created profile (ignored once a profile is persisted)")
	width := fs.Int("width", 0, "window width")
	height := fs.Int("height", 0, "window height")
	if err := fs.Parse(args); err != nil {
		return err
	}
	root, versionID, err := rootAndVersion(fs.Args())
	if err != nil {
		return err
	}
	if *javaPath == "" {
		return fmt.Errorf("-java is required")
	}

	rv, err := version.Resolve(root, versionID, currentPlatform())
	if err != nil {
		return err
	}

	cfg, err := appconfig.Load()
	if err != nil {
		return err
	}
	store := profile.NewStore(cfg.ProfileDir())
	if err := store.Load(); err != nil {
		return err
	}
	active, err := store.EnsureActive(*playerName)
	if err != nil {
		return err
	}

	opts := launch.Options{
		Version:      rv,
		GamePath:     root,
		ResourcePath: root,
		JavaPath:     *javaPath,
		MinMemory:    cfg.DefaultMinMemoryMB,
		MaxMemory:    cfg.DefaultMaxMemoryMB,
		GameProfile:  active.ToLaunchProfile(),
		AccessToken:  active.AccessToken,
		UserType:     "legacy",
		Platform:     currentPlatform(),
	}
	if *width > 0 && *height > 0 {
		opts.Resolution = &launch.Resolution{Width: *width, Height: *height}
	}

	argv, err := launch.BuildClientArgv(opts)
	if err != nil {
		return err
	}
	_ = ctx
	fmt.Fprintln(out, strings.Join(argv, " "))
	return nil
}

func runDiagnose(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("diagnose", flag.ContinueOnError)
	strict := fs.Bool("strict", false, "invert the library/asset check tradeoff")
	asJSON := fs.Bool("json", false, "print the raw report as JSON instead of the styled view")
	if err := fs.Parse(args); err != nil {
		return err
	}
	root, versionID, err := rootAndVersion(fs.Args())
	if err != nil {
		return err
	}

	report, err := diagnose.Diagnose(ctx, root, versionID, currentPlatform(), diagnose.Options{Strict: *strict})
	if err != nil {
		return err
	}

	if *asJSON {
		return json.NewEncoder(out).Encode(report)
	}
	fmt.Fprintln(out, reportview.Render(report))
	return nil
}

func runRepair(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("repair", flag.ContinueOnError)
	strict := fs.Bool("strict", false, "invert the library/asset check tradeoff")
	workers := fs.Int("workers", 4, "parallel downloads")
	interactive := fs.Bool("tui", false, "show a live progress bar instead of a plain summary")
	if err := fs.Parse(args); err != nil {
		return err
	}
	root, versionID, err := rootAndVersion(fs.Args())
	if err != nil {
		return err
	}

	report, err := diagnose.Diagnose(ctx, root, versionID, currentPlatform(), diagnose.Options{Strict: *strict})
	if err != nil {
		return err
	}
	if len(report.Issues) == 0 {
		fmt.Fprintln(out, "nothing to repair")
		return nil
	}

	f := fetch.New(*workers)

	if !*interactive {
		result, skipped, err := f.Repair(ctx, report, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "repaired %d, failed %d\n", result.Completed, result.Failed)
		for _, issue := range skipped {
			fmt.Fprintf(out, "skipped (unrepairable): %s %s\n", issue.Role, issue.File)
		}
		if result.Failed > 0 {
			return fmt.Errorf("%d file(s) could not be repaired", result.Failed)
		}
		return nil
	}

	model := reportview.NewRepairModel(report)
	progressChan := make(chan fetch.Progress, 8)
	program := tea.NewProgram(model)

	go func() {
		result, _, err := f.Repair(ctx, report, progressChan)
		close(progressChan)
		program.Send(reportview.RepairDoneMsg{Result: result, Err: err})
	}()
	go func() {
		for p := range progressChan {
			program.Send(reportview.RepairProgressMsg{Progress: p})
		}
	}()

	_, err = program.Run()
	return err
}

func rootAndVersion(args []string) (string, string, error) {
	if len(args) != 2 {
		return "", "", fmt.Errorf("expected <root> <version>, got %d argument(s)", len(args))
	}
	return args[0], args[1], nil
}
