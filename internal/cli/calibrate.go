package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pittengermdp/advent-of-code/internal/infra/inputfile"
	"github.com/pittengermdp/advent-of-code/internal/usecase/calibrate"
)

func calibrateCmd() *cobra.Command {
	var input string
	var words bool

	c := &cobra.Command{
		Use:   "calibrate",
		Short: "Sum first/last-digit calibration values of an input",
		RunE: func(_ *cobra.Command, _ []string) error {
			text, err := inputfile.NewSource().Load(input)
			if err != nil {
				return err
			}

			sum := calibrate.Sum(text)
			if words {
				sum = calibrate.SumWithWords(text)
			}
			fmt.Println(sum)
			return nil
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "Puzzle input file (required)")
	c.Flags().BoolVar(&words, "words", false, "Also count spelled-out digits one..nine")

	_ = c.MarkFlagRequired("input")
	return c
}
