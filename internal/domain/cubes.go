package domain

import "fmt"

// Color identifies one of the cube colors that can appear in a draw.
// ColorUnknown marks a color word outside the fixed vocabulary; pairs
// carrying it are dropped during the round fold rather than failing
// the parse.
type Color string

const (
	ColorRed     Color = "red"
	ColorGreen   Color = "green"
	ColorBlue    Color = "blue"
	ColorUnknown Color = "unknown"
)

// CubeSet is an immutable triple of non-negative cube counts, one per color.
// The zero value is the identity for both Add and Max.
type CubeSet struct {
	Red   int
	Green int
	Blue  int
}

// Add returns the component-wise sum of s and other.
func (s CubeSet) Add(other CubeSet) CubeSet {
	return CubeSet{
		Red:   s.Red + other.Red,
		Green: s.Green + other.Green,
		Blue:  s.Blue + other.Blue,
	}
}

// AddColor returns s with n added to the component named by c.
// ColorUnknown leaves s unchanged.
func (s CubeSet) AddColor(c Color, n int) CubeSet {
	switch c {
	case ColorRed:
		s.Red += n
	case ColorGreen:
		s.Green += n
	case ColorBlue:
		s.Blue += n
	case ColorUnknown:
		// Deliberate: unknown colors do not contribute to the round.
	}
	return s
}

// Max returns the component-wise maximum of s and other.
func (s CubeSet) Max(other CubeSet) CubeSet {
	return CubeSet{
		Red:   max(s.Red, other.Red),
		Green: max(s.Green, other.Green),
		Blue:  max(s.Blue, other.Blue),
	}
}

// Within reports whether every component of s is <= the corresponding
// component of bound. This is a partial order: Within(a, b) and
// Within(b, a) can both be false.
func (s CubeSet) Within(bound CubeSet) bool {
	return s.Red <= bound.Red && s.Green <= bound.Green && s.Blue <= bound.Blue
}

// Power is the product of the three counts, widened to int64 so sums of
// powers over large inputs cannot overflow 32-bit arithmetic.
func (s CubeSet) Power() int64 {
	return int64(s.Red) * int64(s.Green) * int64(s.Blue)
}

// String renders the set in the source text's pair syntax, e.g.
// "4 red, 2 green, 6 blue". Zero components are omitted; the zero set
// renders all three so the result is never empty.
func (s CubeSet) String() string {
	if s == (CubeSet{}) {
		return "0 red, 0 green, 0 blue"
	}
	out := ""
	appendPair := func(n int, c Color) {
		if n == 0 {
			return
		}
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%d %s", n, c)
	}
	appendPair(s.Red, ColorRed)
	appendPair(s.Green, ColorGreen)
	appendPair(s.Blue, ColorBlue)
	return out
}
