// Package mnemonic extracts keyboard accelerators from control labels.
//
// A label marks its accelerator with a single '&' before the character
// ("&Save", "Sa&ve"). A doubled "&&" stands for a literal ampersand.
package mnemonic

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix marks the character that follows it as the accelerator.
const Prefix = '&'

// NoAccel is the accelerator index of a label without one.
const NoAccel = -1

// ErrDuplicateAccel reports a label carrying more than one accelerator marker.
var ErrDuplicateAccel = errors.New("duplicate accel char in control label")

// Label is a parsed label: the display text with markers removed and the byte
// offset of the accelerator character within it.
type Label struct {
	Text      string
	Accel     int
	Duplicate bool
}

// Parse strips accelerator markers from raw. Only the first marker becomes the
// accelerator; any later one sets Duplicate and is kept as a plain character.
// A trailing '&' with nothing after it is dropped.
func Parse(raw string) Label {
	l := Label{Accel: NoAccel}
	if raw == "" {
		return l
	}

	var b strings.Builder
	b.Grow(len(raw))
	// '&' is ASCII, so it never occurs inside a multi-byte sequence and the
	// scan can work on bytes.
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != Prefix {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(raw) {
			break
		}
		if raw[i] == Prefix {
			b.WriteByte(Prefix)
			continue
		}
		if l.Accel == NoAccel {
			l.Accel = b.Len()
		} else {
			l.Duplicate = true
		}
		b.WriteByte(raw[i])
	}
	l.Text = b.String()
	return l
}

// Err returns ErrDuplicateAccel when the parsed label had more than one marker.
func (l Label) Err() error {
	if l.Duplicate {
		return ErrDuplicateAccel
	}
	return nil
}

// HasAccel reports whether the label has an accelerator.
func (l Label) HasAccel() bool {
	return l.Accel >= 0 && l.Accel < len(l.Text)
}

// AccelRune returns the accelerator character, or 0 if there is none.
func (l Label) AccelRune() rune {
	if !l.HasAccel() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.Text[l.Accel:])
	return r
}

// Matches reports whether r selects this label's accelerator, ignoring case.
func (l Label) Matches(r rune) bool {
	a := l.AccelRune()
	return a != 0 && unicode.ToLower(a) == unicode.ToLower(r)
}

// Escape doubles every '&' in text so that Parse returns it unchanged and
// without an accelerator.
func Escape(text string) string {
	return strings.ReplaceAll(text, string(Prefix), string(Prefix)+string(Prefix))
}

// Raw returns a marked-up label that parses back to l.
func (l Label) Raw() string {
	var b strings.Builder
	b.Grow(len(l.Text) + 1)
	for i := 0; i < len(l.Text); i++ {
		if i == l.Accel {
			b.WriteByte(Prefix)
		}
		if l.Text[i] == Prefix {
			b.WriteByte(Prefix)
		}
		b.WriteByte(l.Text[i])
	}
	return b.String()
}
