package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"rusty-sweeper/internal/clean"
	"rusty-sweeper/internal/detect"
	"rusty-sweeper/internal/scanner"
	"rusty-sweeper/internal/tui"
)

var (
	tuiCross   bool
	tuiNoColor bool
)

var tuiCmd = &cobra.Command{
	Use:   "tui [path]",
	Short: "Browse disk usage interactively",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().BoolVarP(&tuiCross, "cross", "x", false, "cross filesystem/mount boundaries while scanning")
	tuiCmd.Flags().BoolVar(&tuiNoColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	root := "/"
	if len(args) == 1 {
		root = args[0]
	}

	if tuiNoColor {
		_ = os.Setenv("NO_COLOR", "1")
	}

	opts := scanner.Options{
		OneFileSystem: !tuiCross,
	}

	tree, err := scanner.NewParallelScanner().Scan(cmd.Context(), root, opts, nil)
	if err != nil {
		log.Error().Err(err).Str("path", root).Msg("initial scan failed")
		return withExitCode(ExitGeneralError, err)
	}

	registry := detect.NewDefaultRegistry()
	executor := clean.NewExecutor(zerologLogAdapter{})

	model := tui.New(root, tree, registry, executor, opts)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return withExitCode(ExitGeneralError, fmt.Errorf("tui exited with error: %w", err))
	}
	return nil
}
