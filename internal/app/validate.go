package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	ErrEmptyLabel   = errors.New("label is empty")
	ErrLabelTooWide = errors.New("label does not fit")
)

// fitWidth accepts labels that are not blank and fit in the given number of
// cells.
type fitWidth int

// Validate implements control.Validator.
func (w fitWidth) Validate(label string) error {
	if strings.TrimSpace(label) == "" {
		return ErrEmptyLabel
	}
	if n := runewidth.StringWidth(label); n > int(w) {
		return fmt.Errorf("%w: %d cells, room for %d", ErrLabelTooWide, n, int(w))
	}
	return nil
}
