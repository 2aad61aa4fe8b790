// Package cmd implements the calc command tree.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/calculator"
	"github.com/pengelbrecht/calc/internal/config"
	"github.com/pengelbrecht/calc/internal/logging"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const (
	exitSuccess        = 0
	exitFailure        = 1
	exitUsage          = 2
	exitDivisionByZero = 3
)

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Integer calculator",
	Long: `calc performs integer arithmetic on two operands.

Division truncates toward zero. Dividing by zero is an error (exit code 3).

Examples:
  calc add 3 4
  calc divide 10 5 --json
  calc apply 10 / 5
  calc interactive`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var (
	configFlag   string
	logLevelFlag string

	logger = logging.Discard()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "options file (default $XDG_CONFIG_HOME/calc/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
}

// usageError marks errors caused by bad invocation rather than by arithmetic.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// Execute runs the command tree against os.Args and returns the exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	resetFlags()
	rootCmd.SetArgs(normalizeArgs(args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return exitCode(err)
}

func exitCode(err error) int {
	var usage usageError
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, calculator.ErrDivisionByZero):
		return exitDivisionByZero
	case errors.As(err, &usage), errors.Is(err, calculator.ErrUnknownOp):
		return exitUsage
	case strings.HasPrefix(err.Error(), "unknown command"):
		return exitUsage
	default:
		return exitFailure
	}
}

// resetFlags restores flag variables so repeated runs in one process start clean.
func resetFlags() {
	configFlag = ""
	logLevelFlag = ""
	arithJSON = false
	applyJSON = false
	configInitForce = false
	interactiveLogFile = ""
}

func setup(cmd *cobra.Command, args []string) error {
	if wd, err := os.Getwd(); err == nil {
		if err := config.LoadDotEnv(wd); err != nil {
			return err
		}
	}

	if logLevelFlag != "" {
		if _, ok := logging.ParseLevel(logLevelFlag); !ok {
			return usagef("invalid log level %q", logLevelFlag)
		}
	}
	logger = logging.New(cmd.ErrOrStderr(), logging.LevelFromEnv(logLevelFlag))
	slog.SetDefault(logger)
	return nil
}

// loadConfig reads the options file, falling back to defaults when absent.
func loadConfig() (config.Config, string, error) {
	path, err := config.ResolvePath(configFlag)
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return config.Config{}, path, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, path, nil
}

var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

// valueFlags take their value as the following argument.
var valueFlags = map[string]bool{"--config": true, "--log-level": true}

// normalizeArgs lets negative operands through the flag parser. When a
// negative number is present and no "--" was given, the command path stays
// in front, flags move before an inserted "--" and operands follow it.
func normalizeArgs(args []string) []string {
	hasNegative := false
	for _, a := range args {
		if a == "--" {
			return args
		}
		if negativeNumber.MatchString(a) {
			hasNegative = true
		}
	}
	if !hasNegative {
		return args
	}

	var prefix, flags, positional []string
	cmd := rootCmd
	i := 0
	for ; i < len(args); i++ {
		a := args[i]
		if sub := findSubcommand(cmd, a); sub != nil {
			cmd = sub
			prefix = append(prefix, a)
			continue
		}
		if !isFlag(a) {
			break
		}
		prefix = append(prefix, a)
		if valueFlags[a] && i+1 < len(args) {
			i++
			prefix = append(prefix, args[i])
		}
	}

	for ; i < len(args); i++ {
		a := args[i]
		if isFlag(a) {
			flags = append(flags, a)
			if valueFlags[a] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
			continue
		}
		positional = append(positional, a)
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, prefix...)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional...)
}

func isFlag(arg string) bool {
	return len(arg) > 1 && strings.HasPrefix(arg, "-") && !negativeNumber.MatchString(arg)
}

func findSubcommand(parent *cobra.Command, name string) *cobra.Command {
	for _, c := range parent.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return c
		}
	}
	return nil
}

func printResult(w io.Writer, res calculator.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintln(w, res.Value)
	return err
}
