package domain

import (
	"fmt"
	"strings"
)

// Game is one parsed record: an id plus the cube draws of each round, in
// source order. Ids follow the input and need not be contiguous or sorted.
// A game with no rounds is legal.
type Game struct {
	ID     int
	Rounds []CubeSet
}

// MinSet is the smallest cube set that covers every round: the
// component-wise maximum across all rounds, starting from the zero set.
func (g Game) MinSet() CubeSet {
	var m CubeSet
	for _, r := range g.Rounds {
		m = m.Max(r)
	}
	return m
}

// Feasible reports whether every round of the game stays within ceiling.
// A game with no rounds is feasible for any ceiling.
func (g Game) Feasible(ceiling CubeSet) bool {
	for _, r := range g.Rounds {
		if !r.Within(ceiling) {
			return false
		}
	}
	return true
}

// String renders the game in the canonical source syntax, e.g.
// "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green".
func (g Game) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Game %d:", g.ID)
	for i, r := range g.Rounds {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteByte(' ')
		b.WriteString(r.String())
	}
	return b.String()
}

// Render joins the canonical text form of games with newlines. The result
// parses back to an equal game sequence.
func Render(games []Game) string {
	lines := make([]string, len(games))
	for i, g := range games {
		lines[i] = g.String()
	}
	return strings.Join(lines, "\n")
}
