// Package inputfile loads raw puzzle text from the filesystem.
package inputfile

import (
	"os"

	"github.com/pittengermdp/advent-of-code/internal/domain"
)

// Source implements ports.InputSource over os.ReadFile.
type Source struct{}

func NewSource() Source { return Source{} }

func (Source) Load(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &domain.OpError{
			Op:   "input.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return string(b), nil
}
