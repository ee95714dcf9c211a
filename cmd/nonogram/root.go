package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nonogram",
	Short: "Solve, validate and render nonogram (Picross) puzzles",
	Long: `nonogram reads a puzzle's row/column clues from a file and either
solves it exhaustively, checks it has a unique solution, or renders a
solved grid as an image.

Supported file formats: native (GRID/ROWS/COLUMNS), NIN and NON,
detected from the file extension (.txt/.native, .nin, .non) or forced
with --format.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false}).
			Level(level).
			With().Timestamp().Logger()
	},
}

// Execute runs the root command; called once from main.main. The exit
// code distinguishes usage errors (cobra's own arg/flag validation) from
// file-loader parse/IO failures and solve-time errors, mirroring the
// original CLI's exit(1) on argument parsing versus its return_status
// set from the file loader's ErrorHandler or from the catch block around
// solving (main.cpp).
func Execute() {
	rootCmd.SilenceUsage = true
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var le *loadErr
	var se *solveErr
	switch {
	case errors.As(err, &le):
		os.Exit(exitLoad)
	case errors.As(err, &se):
		os.Exit(exitSolve)
	default:
		os.Exit(exitUsage)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug diagnostics from the solver")
	rootCmd.AddCommand(solveCmd, validateCmd, renderCmd)
}
