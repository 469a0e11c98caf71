package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pkt.systems/beeper"
)

const envPrefix = "BEEPER_"

// flagEnv maps flags onto the environment variables FromEnv reads. A flag
// that was set on the command line overrides the variable.
var flagEnv = []struct {
	flag string
	key  string
}{
	{"id", "IDENTIFIER"},
	{"output", "OUTPUT"},
	{"wide", "WIDE"},
	{"formatted", "FORMATTED"},
	{"no-color", "NO_COLOR"},
	{"themes", "THEMES"},
	{"wide-encoding", "WIDE_ENCODING"},
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "beep [flags] <style> <format> [args...]",
		Short: "Write a styled console message",
		Long: `beep resolves <style> against the theme file and the built-in themes
(success, info, warn, fail, debug) and writes one message to every output.
Messages under "fail" exit with status 1 once written.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBeep(cmd, logger, args[0], args[1], args[2:])
		},
	}
	// Flags go before <style>. From there on every word is message text, so
	// negative numbers are not mistaken for flags.
	cmd.Flags().SetInterspersed(false)

	pf := cmd.PersistentFlags()
	pf.String("id", "beep", "identifier printed in parentheses")
	pf.StringArrayP("output", "o", nil, "stdout, stderr or a file to append to (repeatable)")
	pf.Bool("wide", false, "write through the wide (code point) path")
	pf.String("wide-encoding", "", "IANA charset wide text is encoded into (default UTF-8)")
	pf.Bool("formatted", false, "force ANSI escape sequences on or off (default: terminals only)")
	pf.Bool("no-color", false, "never write ANSI escape sequences")
	pf.String("themes", "", "TOML theme file")
	pf.Bool("debug", false, "log configuration decisions to stderr")

	cmd.Flags().String("origin", "", "file:line printed in front of the message (hidden when empty)")
	cmd.Flags().Bool("show-date", false, "prefix the date")
	cmd.Flags().Bool("show-time", false, "prefix the time")

	cmd.AddCommand(newThemesCmd(logger))
	return cmd
}

// setup builds the active beeper. Flags win over BEEPER_* variables, which
// win over the defaults.
func setup(cmd *cobra.Command, logger *log.Logger, stdout io.Writer, extra ...beeper.EnvOption) (*beeper.Beeper, io.Closer, error) {
	opts := []beeper.EnvOption{
		beeper.WithEnvPrefix(envPrefix),
		beeper.WithEnvIdentifier("beep"),
		beeper.WithEnvWriter(stdout),
		beeper.WithEnvOptions(beeper.WithWriteFailureHandler(func(r beeper.Recipient, f beeper.WriteFailure) {
			logger.Warn("message lost", "written", f.Written, "attempted", f.Attempted, "err", f.Err)
		})),
	}
	opts = append(opts, flagOverrides(cmd.Flags())...)
	opts = append(opts, extra...)
	b, closer, err := beeper.FromEnv(opts...)
	if err != nil {
		return nil, nil, err
	}
	for i, r := range b.Recipients() {
		logger.Debug("recipient", "slot", i, "wide", r.Wide, "formatted", r.Formatted)
	}
	return b, closer, nil
}

func flagOverrides(fs *pflag.FlagSet) []beeper.EnvOption {
	var opts []beeper.EnvOption
	for _, m := range flagEnv {
		f := fs.Lookup(m.flag)
		if f == nil || !f.Changed {
			continue
		}
		value := f.Value.String()
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			value = strings.Join(sv.GetSlice(), ",")
		}
		opts = append(opts, beeper.WithEnvOverride(m.key, value))
	}
	return opts
}

func runBeep(cmd *cobra.Command, logger *log.Logger, styleName, format string, raw []string) error {
	file, line, err := parseOrigin(mustString(cmd, "origin"))
	if err != nil {
		return err
	}
	args, err := coerceArgs(format, raw)
	if err != nil {
		return err
	}
	b, closer, err := setup(cmd, logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closer.Close()
	defer beeper.Destroy()

	theme, ok := b.Resolve(styleName, true)
	if ok {
		style := theme.Style
		if file == "" {
			style.HideOrigin = true
		}
		style.ShowDate = style.ShowDate || mustBool(cmd, "show-date")
		style.ShowTime = style.ShowTime || mustBool(cmd, "show-time")
		if err := b.SetStyle(styleName, style); err != nil {
			return err
		}
	}
	if err := beeper.Emit(b, file, line, styleName, format, args...); err != nil {
		return fmt.Errorf("%w (%s)", err, beeper.Code(err))
	}
	return nil
}

// parseOrigin splits "file:line". The empty string means no origin.
func parseOrigin(origin string) (string, int, error) {
	if origin == "" {
		return "", 0, nil
	}
	i := strings.LastIndex(origin, ":")
	if i <= 0 {
		return "", 0, fmt.Errorf("origin %q: want file:line", origin)
	}
	line, err := strconv.Atoi(origin[i+1:])
	if err != nil || line < 0 {
		return "", 0, fmt.Errorf("origin %q: line must be a non-negative number", origin)
	}
	return origin[:i], line, nil
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func mustBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}
