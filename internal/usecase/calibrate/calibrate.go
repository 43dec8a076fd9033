// Package calibrate extracts calibration values from lines of text: the
// first and last digit on each line form a two-digit number, summed over
// all lines. It is independent of the cube-game parser and shares no state
// with it.
package calibrate

import "strings"

var numberWords = []string{
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

// Sum adds up the calibration value of every line, considering digit
// characters only. A line without digits contributes 0; a line with a
// single digit uses it as both first and last.
func Sum(input string) int {
	total := 0
	for _, line := range strings.Split(input, "\n") {
		first, last := 0, 0
		for i := 0; i < len(line); i++ {
			if d, ok := digitAt(line, i); ok {
				first = d
				break
			}
		}
		for i := len(line) - 1; i >= 0; i-- {
			if d, ok := digitAt(line, i); ok {
				last = d
				break
			}
		}
		total += first*10 + last
	}
	return total
}

// SumWithWords is Sum with the spelled-out words one..nine also counting
// as digits. Words may overlap: in "eightwo" the last digit is two.
func SumWithWords(input string) int {
	total := 0
	for _, line := range strings.Split(input, "\n") {
		first, last := 0, 0
		for i := 0; i < len(line); i++ {
			if d, ok := digitOrWordAt(line, i); ok {
				first = d
				break
			}
		}
		for i := len(line) - 1; i >= 0; i-- {
			if d, ok := digitOrWordAt(line, i); ok {
				last = d
				break
			}
		}
		total += first*10 + last
	}
	return total
}

func digitAt(line string, i int) (int, bool) {
	b := line[i]
	if b >= '0' && b <= '9' {
		return int(b - '0'), true
	}
	return 0, false
}

func digitOrWordAt(line string, i int) (int, bool) {
	if d, ok := digitAt(line, i); ok {
		return d, true
	}
	for w, word := range numberWords {
		if strings.HasPrefix(line[i:], word) {
			return w + 1, true
		}
	}
	return 0, false
}
