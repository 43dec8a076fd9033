package tui

import (
	"log/slog"

	"github.com/pittengermdp/advent-of-code/internal/domain"
)

type Deps struct {
	// Result is the fully parsed and aggregated document to browse.
	Result domain.TallyResult

	Logger *slog.Logger
}
