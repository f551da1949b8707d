package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rivo/tview"
)

// StatusBar shows the active theme, the focused control and its key hints.
type StatusBar struct {
	*tview.TextView
	theme   string
	focused string
	hints   []string
	flash   string
	level   Level
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(tview.Styles.MoreContrastBackgroundColor)

	return &StatusBar{TextView: tv}
}

// Update replaces the displayed state. It only redraws the text when
// something changed.
func (sb *StatusBar) Update(theme, focused string, hints []string, flash string, level Level) {
	if sb.theme == theme && sb.focused == focused && sb.flash == flash && sb.level == level && slices.Equal(sb.hints, hints) {
		return
	}
	sb.level = level
	sb.theme = theme
	sb.focused = focused
	sb.hints = hints
	sb.flash = flash
	sb.render()
}

// Line returns the current status line with color tags.
func (sb *StatusBar) Line() string {
	focused := sb.focused
	if focused == "" {
		focused = "-"
	}
	line := fmt.Sprintf(" [::b]%s[-:-:-] | %s", sb.theme, focused)
	if len(sb.hints) > 0 {
		line += " | " + strings.Join(sb.hints, " ")
	}
	if sb.flash != "" {
		color := "yellow"
		if sb.level == LevelError {
			color = "red"
		}
		line += fmt.Sprintf(" | [%s]%s[-]", color, tview.Escape(sb.flash))
	}
	return line
}

func (sb *StatusBar) render() {
	sb.Clear()
	_, _ = fmt.Fprint(sb, sb.Line())
}
