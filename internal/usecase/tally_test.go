package usecase

import (
	"context"
	"testing"

	"github.com/pittengermdp/advent-of-code/internal/domain"
)

type memSource struct {
	text string
	err  error
}

func (m memSource) Load(string) (string, error) { return m.text, m.err }

func TestTally_Execute(t *testing.T) {
	uc := NewTally(memSource{text: sampleInput})

	res, err := uc.Execute(context.Background(), "input.txt", domain.DefaultCeiling)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Games) != 5 {
		t.Fatalf("expected 5 games, got %d", len(res.Games))
	}
	if res.FeasibleIDSum != 8 {
		t.Fatalf("expected feasible id sum 8, got %d", res.FeasibleIDSum)
	}
	if res.MinSetPowerSum != 2286 {
		t.Fatalf("expected power sum 2286, got %d", res.MinSetPowerSum)
	}
	if res.Ceiling != domain.DefaultCeiling {
		t.Fatalf("expected result to carry the ceiling used")
	}
}

func TestTally_ExecuteParseFailure(t *testing.T) {
	uc := NewTally(memSource{text: "Game 1 1 red"})

	res, err := uc.Execute(context.Background(), "input.txt", domain.DefaultCeiling)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !domain.IsKind(err, domain.KindUnexpectedToken) {
		t.Fatalf("expected unexpected_token, got %v", err)
	}
	if res.Games != nil {
		t.Fatalf("expected no partial result on failure")
	}
}

func TestTally_ExecuteCancelled(t *testing.T) {
	uc := NewTally(memSource{text: sampleInput})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := uc.Execute(ctx, "input.txt", domain.DefaultCeiling); err == nil {
		t.Fatalf("expected context error")
	}
}
