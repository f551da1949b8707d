package render

import "github.com/gdamore/tcell/v2"

// Palette holds the colours a Frame renderer draws with.
type Palette struct {
	Bg            tcell.Color
	Fg            tcell.Color
	Border        tcell.Color
	BorderFocus   tcell.Color
	BorderDefault tcell.Color
	PressedBg     tcell.Color
	PressedFg     tcell.Color
	HighlightFg   tcell.Color
	Accel         tcell.Color
}

// DefaultPalette returns a k9s-inspired dark palette.
func DefaultPalette() Palette {
	return Palette{
		Bg:            tcell.ColorBlack,
		Fg:            tcell.ColorCadetBlue,
		Border:        tcell.ColorDodgerBlue,
		BorderFocus:   tcell.ColorLightSkyBlue,
		BorderDefault: tcell.ColorFuchsia,
		PressedBg:     tcell.ColorAqua,
		PressedFg:     tcell.ColorBlack,
		HighlightFg:   tcell.ColorPapayaWhip,
		Accel:         tcell.ColorOrange,
	}
}

// MonoPalette leaves every colour to the terminal.
func MonoPalette() Palette {
	return Palette{
		Bg:            tcell.ColorDefault,
		Fg:            tcell.ColorDefault,
		Border:        tcell.ColorDefault,
		BorderFocus:   tcell.ColorDefault,
		BorderDefault: tcell.ColorDefault,
		PressedBg:     tcell.ColorDefault,
		PressedFg:     tcell.ColorDefault,
		HighlightFg:   tcell.ColorDefault,
		Accel:         tcell.ColorDefault,
	}
}

// Override replaces the colours named in overrides. Keys are the lower-case
// field names ("bg", "border_focus", ...); values are tcell colour names or
// "#rrggbb". Unknown keys and colours are returned as an error list.
func (p Palette) Override(overrides map[string]string) (Palette, []string) {
	var bad []string
	for key, val := range overrides {
		c := tcell.GetColor(val)
		if c == tcell.ColorDefault && val != "default" {
			bad = append(bad, key+"="+val)
			continue
		}
		switch key {
		case "bg":
			p.Bg = c
		case "fg":
			p.Fg = c
		case "border":
			p.Border = c
		case "border_focus":
			p.BorderFocus = c
		case "border_default":
			p.BorderDefault = c
		case "pressed_bg":
			p.PressedBg = c
		case "pressed_fg":
			p.PressedFg = c
		case "highlight_fg":
			p.HighlightFg = c
		case "accel":
			p.Accel = c
		default:
			bad = append(bad, key)
		}
	}
	return p, bad
}
