package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pittengermdp/advent-of-code/internal/domain"
	"github.com/pittengermdp/advent-of-code/internal/infra/inputfile"
	"github.com/pittengermdp/advent-of-code/internal/infra/logger"
	"github.com/pittengermdp/advent-of-code/internal/usecase"
)

func tallyCmd() *cobra.Command {
	var input string
	var format string
	var ceiling ceilingFlags

	c := &cobra.Command{
		Use:   "tally",
		Short: "Parse a cube-game input and report both tallies",
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

			logger.L().Info("tally.done",
				"games", len(res.Games),
				"feasible_id_sum", res.FeasibleIDSum,
				"min_set_power_sum", res.MinSetPowerSum,
			)

			return printTally(os.Stdout, res, format)
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "Puzzle input file (required)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	ceiling.register(c)

	_ = c.MarkFlagRequired("input")
	return c
}

func printTally(w io.Writer, res domain.TallyResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"games":             len(res.Games),
			"ceiling":           res.Ceiling,
			"feasible_id_sum":   res.FeasibleIDSum,
			"min_set_power_sum": res.MinSetPowerSum,
		}
		return enc.Encode(payload)
	case "pretty", "":
		fmt.Fprintf(w, "Games:        %d\n", len(res.Games))
		fmt.Fprintf(w, "Ceiling:      %s\n", res.Ceiling)
		fmt.Fprintf(w, "Feasible sum: %d\n", res.FeasibleIDSum)
		fmt.Fprintf(w, "Power sum:    %d\n", res.MinSetPowerSum)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
