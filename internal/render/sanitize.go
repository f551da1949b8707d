package render

import "github.com/mattn/go-runewidth"

// droppedRune reports whether r is left out when drawing a label. These
// codepoints join or modify the previous character and make tcell's cell
// width disagree with the terminal's:
// - skin tone modifiers (U+1F3FB..U+1F3FF)
// - zero width joiner (U+200D)
// - variation selectors (U+FE00..U+FE0F, U+E0100..U+E01EF)
func droppedRune(r rune) bool {
	switch {
	case r >= 0x1F3FB && r <= 0x1F3FF:
		return true
	case r == 0x200D:
		return true
	case r >= 0xFE00 && r <= 0xFE0F:
		return true
	case r >= 0xE0100 && r <= 0xE01EF:
		return true
	default:
		return false
	}
}

// labelWidth returns the cells text occupies once dropped runes are skipped.
func labelWidth(text string) int {
	w := 0
	for _, r := range text {
		if !droppedRune(r) {
			w += runewidth.RuneWidth(r)
		}
	}
	return w
}
