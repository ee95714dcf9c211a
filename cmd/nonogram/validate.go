package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nonogram/solver"
)

var validateFormat string

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check each grid in FILE for a unique solution, one line per grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grids, err := loadInputs(args[0], validateFormat)
		if err != nil {
			return err
		}
		s := solver.New(solver.WithLogger(logger))
		for _, input := range grids {
			code, depth, err := s.Validate(input)
			if err != nil {
				fmt.Printf("%s,%s,ERROR,%s\n", input.Name, input.SizeString(), err)
				continue
			}
			difficulty := ""
			if code == solver.ValidationUnique && depth == 0 {
				difficulty = "LINE"
			}
			fmt.Printf("%s,%s,%s,%s\n", input.Name, input.SizeString(), code, difficulty)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateFormat, "format", "", "input format: native, nin, non (default: from file extension)")
}
