package cli

import (
	"github.com/spf13/cobra"

	"github.com/pittengermdp/advent-of-code/internal/infra/inputfile"
	"github.com/pittengermdp/advent-of-code/internal/infra/logger"
	"github.com/pittengermdp/advent-of-code/internal/ui/tui"
	"github.com/pittengermdp/advent-of-code/internal/usecase"
)

func inspectCmd() *cobra.Command {
	var input string
	var ceiling ceilingFlags

	c := &cobra.Command{
		Use:   "inspect",
		Short: "Browse the parsed games interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bound, err := ceiling.resolve(cmd)
			if err != nil {
				return err
			}

			uc := usecase.NewTally(inputfile.NewSource())
			res, err := uc.Execute(cmd.Context(), input, bound)
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Result: res,
				Logger: logger.L(),
			})
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "Puzzle input file (required)")
	ceiling.register(c)

	_ = c.MarkFlagRequired("input")
	return c
}
