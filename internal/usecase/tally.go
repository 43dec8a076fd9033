package usecase

import (
	"context"

	"github.com/pittengermdp/advent-of-code/internal/domain"
	"github.com/pittengermdp/advent-of-code/internal/parse"
	"github.com/pittengermdp/advent-of-code/internal/ports"
)

// Tally runs the full pipeline for one input document: load text, parse it
// into game records, then compute both aggregate sums.
type Tally struct {
	source ports.InputSource
}

func NewTally(src ports.InputSource) *Tally {
	return &Tally{source: src}
}

// Execute loads and parses the document at inputPath and aggregates it
// against ceiling. The parse is all-or-nothing: on any parse failure the
// zero result and the error are returned.
func (uc *Tally) Execute(ctx context.Context, inputPath string, ceiling domain.CubeSet) (domain.TallyResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.TallyResult{}, err
	}

	text, err := uc.source.Load(inputPath)
	if err != nil {
		return domain.TallyResult{}, err
	}

	games, err := parse.Games(text)
	if err != nil {
		return domain.TallyResult{}, err
	}

	return domain.TallyResult{
		Games:          games,
		Ceiling:        ceiling,
		FeasibleIDSum:  FeasibleIDSum(games, ceiling),
		MinSetPowerSum: MinSetPowerSum(games),
	}, nil
}
