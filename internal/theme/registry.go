package theme

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/matheus3301/univ/internal/bus"
	"go.uber.org/zap"
)

// ErrUnknownTheme is returned by Use for a name that was never registered.
var ErrUnknownTheme = errors.New("unknown theme")

// Change is the payload of a bus.ThemeChanged event.
type Change struct {
	From string
	To   string
}

// Registry holds the registered themes and the active one. Lookups never fail:
// missing pieces fall back to a handler that maps nothing and a renderer that
// draws nothing.
type Registry struct {
	mu     sync.RWMutex
	themes map[string]*Theme
	active *Theme
	bus    *bus.Bus
	logger *zap.Logger
}

// NewRegistry creates an empty registry. b and logger may be nil.
func NewRegistry(b *bus.Bus, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		themes: make(map[string]*Theme),
		bus:    b,
		logger: logger,
	}
}

// Register adds t, replacing any theme of the same name. The first theme
// registered becomes active.
func (r *Registry) Register(t *Theme) error {
	if t == nil {
		return errors.New("register nil theme")
	}
	if err := ValidateName(t.Name); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes[t.Name] = t
	if r.active == nil || r.active.Name == t.Name {
		r.active = t
	}
	r.logger.Debug("theme registered", zap.String("theme", t.Name))
	return nil
}

// Use makes the named theme active and announces the switch on the bus.
// Controls pick up the new renderer on their next paint.
func (r *Registry) Use(name string) error {
	r.mu.Lock()
	t, ok := r.themes[name]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("use theme %q: %w", name, ErrUnknownTheme)
	}
	from := ""
	if r.active != nil {
		from = r.active.Name
	}
	r.active = t
	r.mu.Unlock()

	if from == name {
		return nil
	}
	r.logger.Info("theme changed", zap.String("from", from), zap.String("to", name))
	r.bus.Emit(bus.ThemeChanged, Change{From: from, To: name})
	return nil
}

// Active returns the name of the active theme, or empty if none is registered.
func (r *Registry) Active() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.active == nil {
		return ""
	}
	return r.active.Name
}

// Names returns the registered theme names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.themes))
	for n := range r.themes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// GetRenderer returns the active theme's renderer.
func (r *Registry) GetRenderer() Renderer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.active == nil || r.active.Renderer == nil {
		return nopRenderer{}
	}
	return r.active.Renderer
}

// GetInputHandler returns the active theme's handler for kind, falling back
// to the handler for KindControl.
func (r *Registry) GetInputHandler(kind Kind) InputHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.active == nil {
		return nopHandler{}
	}
	if h, ok := r.active.Handlers[kind]; ok && h != nil {
		return h
	}
	if h, ok := r.active.Handlers[KindControl]; ok && h != nil {
		return h
	}
	return nopHandler{}
}
