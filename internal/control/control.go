// Package control implements the look-and-feel independent base control.
//
// A Control owns its label and accelerator and borrows everything else: the
// renderer and input handler come from the theme registry, the drawing
// surface, focus and repaint scheduling from its windowing peer, and the
// kind-specific behavior from a Behavior.
package control

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/matheus3301/univ/internal/bus"
	"github.com/matheus3301/univ/internal/lifecycle"
	"github.com/matheus3301/univ/internal/mnemonic"
	"github.com/matheus3301/univ/internal/surface"
	"github.com/matheus3301/univ/internal/theme"
	"go.uber.org/zap"
)

var (
	// ErrNilParent is returned by Create without a parent.
	ErrNilParent = errors.New("control parent is nil")

	// ErrParentNotCreated is returned by Create when the parent window is not ready.
	ErrParentNotCreated = errors.New("control parent is not created")

	// ErrDestroyed is returned by Create after Destroy.
	ErrDestroyed = errors.New("control is destroyed")
)

// Diagnostic is the payload of a bus.ControlDiagnostic event.
type Diagnostic struct {
	ID    string
	Label string
	Err   error
}

// Control is the base control. All methods must be called from the UI
// goroutine.
type Control struct {
	kind     theme.Kind
	themes   Themes
	behavior Behavior
	bus      *bus.Bus
	logger   *zap.Logger
	life     *lifecycle.Machine

	id        string
	name      string
	bounds    surface.Rect
	style     Style
	validator Validator
	bg        tcell.Color
	window    Window
	handler   theme.InputHandler

	label string
	accel int
}

// New returns an uncreated control of the given kind. A nil behavior means
// Base; b and logger may be nil.
func New(kind theme.Kind, themes Themes, behavior Behavior, b *bus.Bus, logger *zap.Logger) *Control {
	if behavior == nil {
		behavior = Base{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Control{
		kind:     kind,
		themes:   themes,
		behavior: behavior,
		bus:      b,
		logger:   logger,
		life:     lifecycle.NewMachine(b),
		accel:    mnemonic.NoAccel,
		bg:       tcell.ColorDefault,
	}
}

// Create attaches the control to parent. An empty id is replaced by a
// generated one. On failure the control is left exactly as it was.
// Creating an already created control replaces its peer and input handler.
func (c *Control) Create(parent Parent, id string, pos Point, size Size, style Style, validator Validator, name string) error {
	if parent == nil {
		return ErrNilParent
	}
	if !parent.IsCreated() {
		return ErrParentNotCreated
	}
	if c.life.Current() == lifecycle.Destroyed {
		return ErrDestroyed
	}
	if id == "" {
		id = uuid.NewString()
	}
	bounds := surface.Rect{X: pos.X, Y: pos.Y, W: size.W, H: size.H}

	win, err := parent.Attach(c, id, bounds, style)
	if err != nil {
		return fmt.Errorf("create %s %q: %w", c.kind, name, err)
	}
	if c.window != nil && c.window != win {
		c.window.Detach()
	}

	c.id = id
	c.name = name
	c.bounds = bounds
	c.style = style
	c.validator = validator
	c.window = win
	c.bg = parent.BackgroundColor()
	c.handler = c.themes.GetInputHandler(c.kind)

	c.life.SetID(id)
	if err := c.life.Transition(lifecycle.Created); err != nil {
		return err
	}
	c.logger.Debug("control created",
		zap.String("id", id),
		zap.String("kind", string(c.kind)),
		zap.String("name", name),
	)
	return nil
}

// Destroy detaches the control and drops its borrowed references. It is safe
// to call on an uncreated control and more than once.
func (c *Control) Destroy() {
	if c.life.Current() == lifecycle.Destroyed {
		return
	}
	if c.window != nil {
		c.window.Detach()
	}
	c.window = nil
	c.handler = nil
	_ = c.life.Transition(lifecycle.Destroyed)
	c.logger.Debug("control destroyed", zap.String("id", c.id))
}

// Rebind fetches the input handler for the control's kind again, e.g. after
// the active theme changed.
func (c *Control) Rebind() {
	if c.life.Current() != lifecycle.Created {
		return
	}
	c.handler = c.themes.GetInputHandler(c.kind)
}

// State returns the lifecycle state.
func (c *Control) State() lifecycle.State { return c.life.Current() }

// IsCreated reports whether Create succeeded and Destroy has not been called.
func (c *Control) IsCreated() bool { return c.life.Current() == lifecycle.Created }

// ID returns the identity given to Create, or the generated one.
func (c *Control) ID() string { return c.id }

// Name returns the name given to Create.
func (c *Control) Name() string { return c.name }

// Kind returns the theme kind the control draws and maps input as.
func (c *Control) Kind() theme.Kind { return c.kind }

// Bounds returns the position and size given to Create.
func (c *Control) Bounds() surface.Rect { return c.bounds }

// Style returns the style flags given to Create.
func (c *Control) Style() Style { return c.style }

// Handler returns the input handler fetched at Create or the last Rebind.
func (c *Control) Handler() theme.InputHandler { return c.handler }

// BackgroundColor returns the colour copied from the parent at Create.
func (c *Control) BackgroundColor() tcell.Color { return c.bg }

// SetBackgroundColor overrides the inherited background colour.
func (c *Control) SetBackgroundColor(bg tcell.Color) { c.bg = bg }

// Validate runs the control's validator on its label.
func (c *Control) Validate() error {
	if c.validator == nil {
		return nil
	}
	return c.validator.Validate(c.label)
}

// IsFocused reports whether the control holds keyboard focus.
func (c *Control) IsFocused() bool {
	return c.window != nil && c.window.HasFocus()
}

// IsPressed reports the behavior's pressed state.
func (c *Control) IsPressed() bool { return c.behavior.IsPressed() }

// IsDefault reports whether the behavior is the default control of its window.
func (c *Control) IsDefault() bool { return c.behavior.IsDefault() }

// IsHighlighted reports the behavior's hover state, if it has one.
func (c *Control) IsHighlighted() bool {
	h, ok := c.behavior.(Highlighter)
	return ok && h.IsHighlighted()
}

// SetLabel parses raw for an accelerator marker and stores the stripped text.
// A repaint is requested only when the stripped text changes. A label with
// more than one marker is logged and reported on the bus; the first marker
// wins.
func (c *Control) SetLabel(raw string) {
	l := mnemonic.Parse(raw)
	if err := l.Err(); err != nil {
		c.logger.Warn("malformed control label",
			zap.String("id", c.id),
			zap.String("label", raw),
			zap.Error(err),
		)
		c.bus.Emit(bus.ControlDiagnostic, Diagnostic{ID: c.id, Label: raw, Err: err})
	}

	old := c.label
	c.label = l.Text
	c.accel = l.Accel
	if c.label != old {
		c.Refresh()
	}
}

// Label returns the stripped label text.
func (c *Control) Label() string { return c.label }

// AccelIndex returns the byte offset of the accelerator in Label, or
// mnemonic.NoAccel.
func (c *Control) AccelIndex() int { return c.accel }

// Mnemonic returns the parsed label.
func (c *Control) Mnemonic() mnemonic.Label {
	return mnemonic.Label{Text: c.label, Accel: c.accel}
}

// Refresh asks the windowing peer for a repaint. It does nothing before
// Create.
func (c *Control) Refresh() {
	if c.window != nil {
		c.window.RequestRepaint()
	}
}
