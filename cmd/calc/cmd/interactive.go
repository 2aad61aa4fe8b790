package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/configwatch"
	"github.com/pengelbrecht/calc/internal/logging"
	"github.com/pengelbrecht/calc/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"tui"},
	Short:   "Start the interactive calculator",
	Long: `Start the interactive calculator.

Type the first operand, an operator (+ - * /), the second operand and press
enter. Use tab to switch fields and the arrow keys to change the operator.
Edits to the options file are picked up while the calculator runs.

The calculator draws on the terminal, so logs are dropped unless --log-file
names a file to append them to.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

var interactiveLogFile string

func init() {
	interactiveCmd.Flags().StringVar(&interactiveLogFile, "log-file", "", "append logs to this file while running")
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	log, closeLog, err := interactiveLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts := []tui.Option{tui.WithLogger(log)}

	watcher := configwatch.New(path, configwatch.WithLogger(log))
	switch err := watcher.Start(); {
	case errors.Is(err, configwatch.ErrDirMissing):
		log.Debug("config watch skipped", "path", path)
	case err != nil:
		log.Warn("config watch disabled", "path", path, "error", err)
	default:
		defer watcher.Stop()
		opts = append(opts, tui.WithReloads(watcher.Events()))
	}

	return tui.Run(tui.New(cfg, opts...))
}

// interactiveLogger keeps log records off the terminal bubbletea draws on.
func interactiveLogger() (*slog.Logger, func(), error) {
	if interactiveLogFile == "" {
		return logging.Discard(), func() {}, nil
	}
	f, err := tea.LogToFile(interactiveLogFile, "calc")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logging.New(f, logging.LevelFromEnv(logLevelFlag)), func() { _ = f.Close() }, nil
}
