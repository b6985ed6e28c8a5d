// Command mcdiag resolves a version under a Minecraft root and prints its
// styled diagnostic report, exercising internal/version, internal/diagnose
// and internal/reportview end to end without going through the main CLI's
// subcommand dispatch.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rowanmc/mccore/internal/diagnose"
	"github.com/rowanmc/mccore/internal/platform"
	"github.com/rowanmc/mccore/internal/reportview"
)

func main() {
	strict := flag.Bool("strict", false, "invert the library/asset check tradeoff")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: mcdiag [-strict] <minecraft-root> <version-id>")
		os.Exit(2)
	}
	root, versionID := args[0], args[1]

	report, err := diagnose.Diagnose(context.Background(), root, versionID, platform.Current(), diagnose.Options{Strict: *strict})
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcdiag: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(reportview.Render(report))
	if len(report.Issues) > 0 {
		os.Exit(1)
	}
}
