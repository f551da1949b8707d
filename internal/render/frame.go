// Package render contains the bundled renderers.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/univ/internal/surface"
	"github.com/matheus3301/univ/internal/theme"
	"github.com/mattn/go-runewidth"
)

// Frame draws boxed controls: a border around the whole surface, a filled
// background and a centred label.
type Frame struct {
	Palette Palette
	Border  Charset
	// DefaultBorder is used for the default control of a window.
	DefaultBorder Charset
	CheckOn       string
	CheckOff      string
}

// NewFrame creates a Frame renderer.
func NewFrame(p Palette, border, defaultBorder Charset) *Frame {
	return &Frame{
		Palette:       p,
		Border:        border,
		DefaultBorder: defaultBorder,
		CheckOn:       "[x]",
		CheckOff:      "[ ]",
	}
}

func (fr *Frame) base(f theme.Flags) tcell.Style {
	st := tcell.StyleDefault.Background(fr.Palette.Bg).Foreground(fr.Palette.Fg)
	switch {
	case f.Pressed:
		st = st.Background(fr.Palette.PressedBg).Foreground(fr.Palette.PressedFg)
	case f.Highlighted:
		st = st.Foreground(fr.Palette.HighlightFg)
	}
	return st
}

// DrawBackground fills the whole surface.
func (fr *Frame) DrawBackground(s surface.Surface, f theme.Flags) {
	w, h := s.Size()
	s.Fill(surface.Rect{W: w, H: h}, ' ', fr.base(f))
}

// DrawBorder outlines the surface. Surfaces smaller than 2x2 get no border.
func (fr *Frame) DrawBorder(s surface.Surface, f theme.Flags) {
	w, h := s.Size()
	if w < 2 || h < 2 {
		return
	}
	cs := fr.Border
	color := fr.Palette.Border
	if f.Default {
		cs = fr.DefaultBorder
		color = fr.Palette.BorderDefault
	}
	if f.Focused {
		color = fr.Palette.BorderFocus
	}
	st := tcell.StyleDefault.Background(fr.Palette.Bg).Foreground(color)

	for x := 1; x < w-1; x++ {
		s.SetContent(x, 0, cs.H, st)
		s.SetContent(x, h-1, cs.H, st)
	}
	for y := 1; y < h-1; y++ {
		s.SetContent(0, y, cs.V, st)
		s.SetContent(w-1, y, cs.V, st)
	}
	s.SetContent(0, 0, cs.TL, st)
	s.SetContent(w-1, 0, cs.TR, st)
	s.SetContent(0, h-1, cs.BL, st)
	s.SetContent(w-1, h-1, cs.BR, st)
}

// DrawLabel centres text in r and marks the character at byte offset accel.
// Text wider than r is cut at the last whole cell.
func (fr *Frame) DrawLabel(s surface.Surface, r surface.Rect, text string, accel int, f theme.Flags) {
	if r.Empty() {
		return
	}
	st := fr.base(f)
	accelSt := st.Foreground(fr.Palette.Accel).Underline(true)
	if f.Pressed {
		accelSt = st.Underline(true)
	}

	x := r.X
	if w := labelWidth(text); w < r.W {
		x += (r.W - w) / 2
	}
	y := r.Y + (r.H-1)/2
	for i, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 || droppedRune(ch) {
			continue
		}
		if x+cw > r.X+r.W {
			break
		}
		if i == accel {
			s.SetContent(x, y, ch, accelSt)
		} else {
			s.SetContent(x, y, ch, st)
		}
		x += cw
	}
}

// DrawCheck draws a check box indicator at the top-left of r.
func (fr *Frame) DrawCheck(s surface.Surface, r surface.Rect, checked bool, f theme.Flags) {
	mark := fr.CheckOff
	if checked {
		mark = fr.CheckOn
	}
	st := fr.base(f)
	x := r.X
	for _, ch := range mark {
		if x >= r.X+r.W {
			return
		}
		s.SetContent(x, r.Y, ch, st)
		x++
	}
}
