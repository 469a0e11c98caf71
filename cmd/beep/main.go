// Command beep writes one styled message through a beeper configured from
// flags, BEEPER_* environment variables and an optional TOML theme file.
//
//	beep [flags] <style> <format> [args...]
//	beep themes
//
// Arguments are converted to match the verbs in format, so
// `beep warn "disk %s at %d%%" /var 97` works like printf(1).
package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.NewWithOptions(stderr, log.Options{Prefix: "beep"})
	cmd := newRootCmd(logger)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		logger.Error("failed", "err", err)
		return 1
	}
	return 0
}
