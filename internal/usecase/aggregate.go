package usecase

import "github.com/pittengermdp/advent-of-code/internal/domain"

// FeasibleIDSum sums the ids of games whose every round stays within
// ceiling. A game with no rounds always counts. Each game contributes
// independently, so the result does not depend on record order.
func FeasibleIDSum(games []domain.Game, ceiling domain.CubeSet) int {
	sum := 0
	for _, g := range games {
		if g.Feasible(ceiling) {
			sum += g.ID
		}
	}
	return sum
}

// MinSetPowerSum sums, over all games, the power of the smallest cube set
// covering every round. Widened to int64: real inputs multiply three counts
// that can push the sum past 32-bit range.
func MinSetPowerSum(games []domain.Game) int64 {
	var sum int64
	for _, g := range games {
		sum += g.MinSet().Power()
	}
	return sum
}
