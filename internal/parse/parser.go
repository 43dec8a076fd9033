// Package parse turns the raw cube-game text into domain.Game records.
//
// The grammar, informally:
//
//	input  := game (newline game)*
//	game   := ws "Game" ws id ws ":" [round (";" round)*]
//	round  := pair ("," pair)*
//	pair   := ws count ws color-word ws
//
// Whitespace is horizontal only; newlines separate games and are never
// legal inside one. Parsing is whole-input and fail-fast: anything left
// over after the last game is an error and no partial result is returned.
package parse

import (
	"fmt"
	"strings"

	"github.com/pittengermdp/advent-of-code/internal/domain"
)

// cursor walks the input byte by byte. All token methods skip leading
// horizontal whitespace themselves, so callers never have to.
type cursor struct {
	input string
	pos   int
}

// Games parses the whole input into its game records. Either every record
// parses and the full list is returned, or the first failure aborts the
// parse with a *domain.ParseError and no records at all.
func Games(input string) ([]domain.Game, error) {
	c := &cursor{input: input}
	games := []domain.Game{}

	if input == "" {
		return games, nil
	}

	for {
		g, err := c.game()
		if err != nil {
			return nil, err
		}
		games = append(games, g)

		if !c.newline() {
			break
		}
		// A single trailing newline after the last record is tolerated,
		// since puzzle files conventionally end with one.
		if c.eof() {
			break
		}
	}

	if !c.eof() {
		return nil, c.fail("parse.games", domain.KindTrailingInput,
			domain.ErrTrailingInput, "unparsed input remains")
	}
	return games, nil
}

// game parses one record: header, then an optional round list.
func (c *cursor) game() (domain.Game, error) {
	if err := c.literal("Game"); err != nil {
		return domain.Game{}, err
	}
	id, err := c.uint()
	if err != nil {
		return domain.Game{}, err
	}
	if err := c.literal(":"); err != nil {
		return domain.Game{}, err
	}

	rounds, err := c.rounds()
	if err != nil {
		return domain.Game{}, err
	}
	return domain.Game{ID: id, Rounds: rounds}, nil
}

// rounds parses the semicolon-separated round list. The list may be empty:
// a header directly followed by end of line is a legal zero-round game.
func (c *cursor) rounds() ([]domain.CubeSet, error) {
	if c.atRecordEnd() {
		return nil, nil
	}

	var rounds []domain.CubeSet
	for {
		r, err := c.round()
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, r)
		if !c.sep(';') {
			return rounds, nil
		}
	}
}

// round folds the comma-separated (count, color) pairs into one CubeSet.
// Counts for the same color accumulate; pairs with a color word outside
// the fixed vocabulary are dropped rather than failing the round.
func (c *cursor) round() (domain.CubeSet, error) {
	var set domain.CubeSet
	for {
		n, col, err := c.pair()
		if err != nil {
			return domain.CubeSet{}, err
		}
		set = set.AddColor(col, n)
		if !c.sep(',') {
			return set, nil
		}
	}
}

// pair parses one "count color" draw.
func (c *cursor) pair() (int, domain.Color, error) {
	n, err := c.uint()
	if err != nil {
		return 0, domain.ColorUnknown, err
	}
	col, err := c.color()
	if err != nil {
		return 0, domain.ColorUnknown, err
	}
	c.space()
	return n, col, nil
}

// space consumes zero or more horizontal whitespace bytes. It never fails.
func (c *cursor) space() {
	for c.pos < len(c.input) {
		b := c.input[c.pos]
		if b != ' ' && b != '\t' {
			return
		}
		c.pos++
	}
}

// literal consumes the exact tag after leading whitespace.
func (c *cursor) literal(tag string) error {
	c.space()
	if !strings.HasPrefix(c.input[c.pos:], tag) {
		return c.fail("parse.literal", domain.KindUnexpectedToken,
			domain.ErrUnexpectedToken, fmt.Sprintf("expected %q", tag))
	}
	c.pos += len(tag)
	c.space()
	return nil
}

// uint consumes one or more decimal digits. No range check: record ids and
// counts are whatever the input says.
func (c *cursor) uint() (int, error) {
	c.space()
	start := c.pos
	n := 0
	for c.pos < len(c.input) {
		b := c.input[c.pos]
		if b < '0' || b > '9' {
			break
		}
		n = n*10 + int(b-'0')
		c.pos++
	}
	if c.pos == start {
		return 0, c.fail("parse.uint", domain.KindExpectedDigits,
			domain.ErrExpectedDigits, "expected an unsigned integer")
	}
	c.space()
	return n, nil
}

// color consumes one lowercase word and maps it onto the closed color set.
// A word outside {red, green, blue} yields ColorUnknown without error; the
// caller decides what to do with it. A missing word is a hard failure.
func (c *cursor) color() (domain.Color, error) {
	c.space()
	start := c.pos
	for c.pos < len(c.input) {
		b := c.input[c.pos]
		if b < 'a' || b > 'z' {
			break
		}
		c.pos++
	}
	word := c.input[start:c.pos]
	if word == "" {
		return domain.ColorUnknown, c.fail("parse.color", domain.KindUnknownColor,
			domain.ErrUnknownColor, "expected a color name")
	}

	switch word {
	case "red":
		return domain.ColorRed, nil
	case "green":
		return domain.ColorGreen, nil
	case "blue":
		return domain.ColorBlue, nil
	}
	return domain.ColorUnknown, nil
}

// sep consumes a single-byte separator surrounded by optional whitespace.
// When the separator is absent the cursor is restored, whitespace included.
func (c *cursor) sep(b byte) bool {
	save := c.pos
	c.space()
	if c.pos < len(c.input) && c.input[c.pos] == b {
		c.pos++
		return true
	}
	c.pos = save
	return false
}

// newline consumes a record separator, CRLF or bare LF.
func (c *cursor) newline() bool {
	if strings.HasPrefix(c.input[c.pos:], "\r\n") {
		c.pos += 2
		return true
	}
	if c.pos < len(c.input) && c.input[c.pos] == '\n' {
		c.pos++
		return true
	}
	return false
}

// atRecordEnd peeks past horizontal whitespace for end of input or a
// record separator, restoring the cursor either way.
func (c *cursor) atRecordEnd() bool {
	save := c.pos
	c.space()
	end := c.pos >= len(c.input) || c.input[c.pos] == '\n' || c.input[c.pos] == '\r'
	c.pos = save
	return end
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.input)
}

func (c *cursor) fail(op string, kind domain.ErrorKind, sentinel error, msg string) error {
	return &domain.ParseError{
		Op:     op,
		Kind:   kind,
		Offset: c.pos,
		Err:    fmt.Errorf("%w: %s", sentinel, msg),
	}
}
