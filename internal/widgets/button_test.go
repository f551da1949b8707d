package widgets

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/univ/internal/action"
	"github.com/matheus3301/univ/internal/event"
	"github.com/matheus3301/univ/internal/theme"
)

func TestButtonKind(t *testing.T) {
	b := NewButton(registry(t), nil, nil)
	if b.Kind() != theme.KindButton {
		t.Errorf("Kind() = %q, want %q", b.Kind(), theme.KindButton)
	}
}

func TestButtonPerformAction(t *testing.T) {
	tests := []struct {
		name            string
		pressed         bool
		highlighted     bool
		act             action.Action
		wantChanged     bool
		wantPressed     bool
		wantHighlighted bool
		wantClicks      int
	}{
		{"press", false, false, action.Press, true, true, false, 0},
		{"press while pressed", true, false, action.Press, false, true, false, 0},
		{"release", true, false, action.Release, true, false, false, 0},
		{"release while up", false, false, action.Release, false, false, false, 0},
		{"release clears hover", true, true, action.Release, true, false, false, 0},
		{"release hovered only", false, true, action.Release, true, false, false, 0},
		{"click while pressed", true, true, action.Click, true, false, true, 1},
		{"click while up", false, false, action.Click, false, false, false, 1},
		{"toggle is ignored", false, false, action.Toggle, false, false, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewButton(registry(t), nil, nil)
			b.pressed = tt.pressed
			b.highlighted = tt.highlighted
			clicks := 0
			b.SetOnClick(func() { clicks++ })

			if got := b.PerformAction(tt.act); got != tt.wantChanged {
				t.Errorf("PerformAction(%q) = %v, want %v", tt.act, got, tt.wantChanged)
			}
			if b.IsPressed() != tt.wantPressed {
				t.Errorf("IsPressed() = %v, want %v", b.IsPressed(), tt.wantPressed)
			}
			if b.IsHighlighted() != tt.wantHighlighted {
				t.Errorf("IsHighlighted() = %v, want %v", b.IsHighlighted(), tt.wantHighlighted)
			}
			if clicks != tt.wantClicks {
				t.Errorf("clicks = %d, want %d", clicks, tt.wantClicks)
			}
		})
	}
}

func TestButtonKeyboardClick(t *testing.T) {
	b := NewButton(registry(t), nil, nil)
	p := create(t, b.Control, 10, 3, 0)
	clicks := 0
	b.SetOnClick(func() { clicks++ })

	space := tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	b.OnKeyDown(space)
	if !b.IsPressed() {
		t.Fatal("not pressed after key down")
	}
	b.OnKeyUp(space)
	if b.IsPressed() || clicks != 1 {
		t.Errorf("after key up: pressed = %v, clicks = %d", b.IsPressed(), clicks)
	}
	if p.repaints != 2 {
		t.Errorf("repaints = %d, want 2", p.repaints)
	}
}

func TestButtonPointer(t *testing.T) {
	b := NewButton(registry(t), nil, nil)
	create(t, b.Control, 10, 3, 0)
	clicks := 0
	b.SetOnClick(func() { clicks++ })

	b.OnPointer(event.PointerEvent{Kind: event.PointerEnter})
	if !b.IsHighlighted() {
		t.Error("not highlighted after enter")
	}
	b.OnPointer(event.PointerEvent{Kind: event.PointerDown, Button: event.Secondary})
	if b.IsPressed() {
		t.Error("secondary button pressed the button")
	}
	b.OnPointer(event.PointerEvent{Kind: event.PointerDown, Button: event.Primary})
	b.OnPointer(event.PointerEvent{Kind: event.PointerUp, Button: event.Primary})
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	b.OnPointer(event.PointerEvent{Kind: event.PointerLeave})
	if b.IsHighlighted() {
		t.Error("still highlighted after leave")
	}
}

func TestButtonDefault(t *testing.T) {
	b := NewButton(registry(t), nil, nil)
	p := create(t, b.Control, 10, 3, 0)

	b.SetDefault(true)
	if !b.IsDefault() {
		t.Error("IsDefault() = false after SetDefault(true)")
	}
	b.SetDefault(true)
	if p.repaints != 1 {
		t.Errorf("repaints = %d, want 1", p.repaints)
	}

	b.Paint()
	if got := p.last.row(0); got != "╔════════╗" {
		t.Errorf("default border = %q", got)
	}
}

func TestButtonActivate(t *testing.T) {
	b := NewButton(registry(t), nil, nil)
	create(t, b.Control, 10, 3, 0)
	clicks := 0
	b.SetOnClick(func() { clicks++ })

	if !b.Control.Activate() {
		t.Error("Activate() = false, want handled")
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestButtonDraw(t *testing.T) {
	b := NewButton(registry(t), nil, nil)
	p := create(t, b.Control, 10, 3, 0)
	b.SetLabel("&Save")

	b.Paint()
	rows := []string{"┌────────┐", "│  Save  │", "└────────┘"}
	for y, want := range rows {
		if got := p.last.row(y); got != want {
			t.Errorf("row %d = %q, want %q", y, got, want)
		}
	}
}
