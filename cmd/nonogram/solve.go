package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nonogram/grid"
	"github.com/katalvlaran/nonogram/internal/ui"
	"github.com/katalvlaran/nonogram/solver"
	"github.com/katalvlaran/nonogram/tile"
)

var (
	solveFormat         string
	solveMaxNbSolutions int
	solveTimeout        time.Duration
	solveLineOnly       bool
	solveProgress       bool
)

var solveCmd = &cobra.Command{
	Use:   "solve FILE",
	Short: "Solve every grid in FILE, printing each completion found",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grids, err := loadInputs(args[0], solveFormat)
		if err != nil {
			return err
		}
		for _, input := range grids {
			if err := solveOne(input); err != nil {
				return fmt.Errorf("%s: %w", input.Name, err)
			}
		}
		return nil
	},
}

func solveOne(input grid.InputGrid) error {
	ctx := context.Background()
	if solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solveTimeout)
		defer cancel()
	}

	var spin *ui.Spinner
	observer := func(solver.Event, *tile.Line, int, uint32) {}
	if solveProgress {
		spin = ui.NewSpinner(fmt.Sprintf("solving %s (%s)", input.Name, input.SizeString()), verbose)
		spin.Start()
		defer spin.Stop()
		observer = func(event solver.Event, _ *tile.Line, _ int, misc uint32) {
			if event == solver.EventProgress {
				spin.SetProgress(solver.ProgressValue(misc))
			}
		}
	}

	var stats solver.Stats
	s := solver.New(
		solver.WithContext(ctx),
		solver.WithLogger(logger),
		solver.WithObserver(observer),
		solver.WithStats(&stats),
	)

	if solveLineOnly {
		sol, status, err := s.LineSolve(input, true)
		if status == solver.StatusNotLineSolvable {
			fmt.Printf("%s: not line-solvable, best partial result:\n%s\n", input.Name, sol.Grid)
			return nil
		}
		if err != nil {
			return wrapSolve(err)
		}
		fmt.Printf("%s:\n%s\n", input.Name, sol.Grid)
		return nil
	}

	nbSolutions := 0
	status, err := s.Solve(input, solveMaxNbSolutions, func(sol solver.Solution) bool {
		nbSolutions++
		fmt.Printf("%s solution %d:\n%s\n", input.Name, nbSolutions, sol.Grid)
		return true
	})
	if err != nil {
		return wrapSolve(err)
	}
	logger.Debug().
		Str("grid", input.Name).
		Str("status", status.String()).
		Int("solutions", nbSolutions).
		Uint32("branching_calls", stats.NbBranchingCalls).
		Msg("solve finished")
	if status == solver.StatusContradictoryGrid {
		fmt.Printf("%s: no solution\n", input.Name)
	}
	return nil
}

func init() {
	solveCmd.Flags().StringVar(&solveFormat, "format", "", "input format: native, nin, non (default: from file extension)")
	solveCmd.Flags().IntVar(&solveMaxNbSolutions, "max-nb-solutions", 0, "stop after this many solutions (0 = unlimited)")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "abort the solve after this long (0 = no timeout)")
	solveCmd.Flags().BoolVar(&solveLineOnly, "line-solver", false, "only run line-solving, no branching search")
	solveCmd.Flags().BoolVar(&solveProgress, "progress", false, "show a spinner driven by branching progress")
}
