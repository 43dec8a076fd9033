package usecase

import (
	"testing"

	"github.com/pittengermdp/advent-of-code/internal/domain"
	"github.com/pittengermdp/advent-of-code/internal/parse"
)

const sampleInput = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green`

func mustParse(t *testing.T, input string) []domain.Game {
	t.Helper()
	games, err := parse.Games(input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return games
}

func TestFeasibleIDSum_Sample(t *testing.T) {
	games := mustParse(t, sampleInput)
	got := FeasibleIDSum(games, domain.CubeSet{Red: 12, Green: 13, Blue: 14})
	if got != 8 {
		t.Fatalf("expected feasible id sum 8, got %d", got)
	}
}

func TestFeasibleIDSum_EmptyRoundsAlwaysCount(t *testing.T) {
	games := []domain.Game{{ID: 41}}
	if got := FeasibleIDSum(games, domain.CubeSet{}); got != 41 {
		t.Fatalf("expected a game without rounds to count for any ceiling, got %d", got)
	}
}

func TestFeasibleIDSum_NoGames(t *testing.T) {
	if got := FeasibleIDSum(nil, domain.DefaultCeiling); got != 0 {
		t.Fatalf("expected 0 for no games, got %d", got)
	}
}

func TestFeasibleIDSum_CeilingIsParameter(t *testing.T) {
	games := mustParse(t, sampleInput)

	// A zero ceiling admits nothing; a huge one admits everything.
	if got := FeasibleIDSum(games, domain.CubeSet{}); got != 0 {
		t.Fatalf("expected 0 under zero ceiling, got %d", got)
	}
	all := FeasibleIDSum(games, domain.CubeSet{Red: 100, Green: 100, Blue: 100})
	if all != 15 {
		t.Fatalf("expected 15 under a permissive ceiling, got %d", all)
	}
}

func TestMinSetPowerSum_Sample(t *testing.T) {
	games := mustParse(t, sampleInput)
	if got := MinSetPowerSum(games); got != 2286 {
		t.Fatalf("expected power sum 2286, got %d", got)
	}
}

func TestMinSetPowerSum_NoRoundsContributesZero(t *testing.T) {
	games := []domain.Game{
		{ID: 1},
		{ID: 2, Rounds: []domain.CubeSet{{Red: 2, Green: 3, Blue: 4}}},
	}
	if got := MinSetPowerSum(games); got != 24 {
		t.Fatalf("expected 24, got %d", got)
	}
}

func TestMinSetPowerSum_Widened(t *testing.T) {
	games := []domain.Game{
		{ID: 1, Rounds: []domain.CubeSet{{Red: 2000, Green: 2000, Blue: 2000}}},
	}
	if got := MinSetPowerSum(games); got != 8000000000 {
		t.Fatalf("expected 8000000000, got %d", got)
	}
}
