// Package themes bundles the stock themes and builds a registry from config.
package themes

import (
	"errors"
	"fmt"

	"github.com/matheus3301/univ/internal/bus"
	"github.com/matheus3301/univ/internal/config"
	"github.com/matheus3301/univ/internal/input"
	"github.com/matheus3301/univ/internal/render"
	"github.com/matheus3301/univ/internal/theme"
	"go.uber.org/zap"
)

const (
	ClassicName = "classic"
	MonoName    = "mono"
)

func handlers() map[theme.Kind]theme.InputHandler {
	return map[theme.Kind]theme.InputHandler{
		theme.KindControl:  input.Standard(),
		theme.KindButton:   input.Button(),
		theme.KindCheckBox: input.CheckBox(),
		theme.KindStatic:   input.Standard(),
	}
}

// Classic is the coloured default: single-line borders, double-line for the
// default control.
func Classic() *theme.Theme {
	return &theme.Theme{
		Name:     ClassicName,
		Renderer: render.NewFrame(render.DefaultPalette(), render.SingleLine, render.DoubleLine),
		Handlers: handlers(),
	}
}

// Mono uses terminal colours and ASCII borders.
func Mono() *theme.Theme {
	fr := render.NewFrame(render.MonoPalette(), render.ASCII, render.ASCII)
	fr.CheckOn = "[*]"
	return &theme.Theme{
		Name:     MonoName,
		Renderer: fr,
		Handlers: handlers(),
	}
}

// Apply overrides the palette and borders of t's Frame renderer. Themes not
// drawn by a Frame are left alone. Unusable entries are returned.
func Apply(t *theme.Theme, tc config.ThemeConfig) []string {
	fr, ok := t.Renderer.(*render.Frame)
	if !ok {
		return nil
	}
	var bad []string
	if tc.Border != "" {
		if cs, ok := render.CharsetByName(tc.Border); ok {
			fr.Border = cs
		} else {
			bad = append(bad, "border="+tc.Border)
		}
	}
	if tc.DefaultBorder != "" {
		if cs, ok := render.CharsetByName(tc.DefaultBorder); ok {
			fr.DefaultBorder = cs
		} else {
			bad = append(bad, "default_border="+tc.DefaultBorder)
		}
	}
	if len(tc.Palette) > 0 {
		var badColors []string
		fr.Palette, badColors = fr.Palette.Override(tc.Palette)
		bad = append(bad, badColors...)
	}
	return bad
}

// NewRegistry registers the bundled themes with cfg's overrides applied and
// activates the configured theme. An unknown theme name falls back to classic.
// b and logger may be nil.
func NewRegistry(cfg *config.Config, b *bus.Bus, logger *zap.Logger) (*theme.Registry, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := theme.NewRegistry(b, logger)
	for _, t := range []*theme.Theme{Classic(), Mono()} {
		if tc, ok := cfg.Themes[t.Name]; ok {
			if bad := Apply(t, tc); len(bad) > 0 {
				logger.Warn("ignoring theme overrides", zap.String("theme", t.Name), zap.Strings("entries", bad))
			}
		}
		if err := reg.Register(t); err != nil {
			return nil, fmt.Errorf("register %s: %w", t.Name, err)
		}
	}
	for name := range cfg.Themes {
		if name != ClassicName && name != MonoName {
			logger.Warn("overrides for unknown theme", zap.String("theme", name))
		}
	}

	name := config.ResolveTheme("", cfg)
	if err := reg.Use(name); err != nil {
		if !errors.Is(err, theme.ErrUnknownTheme) {
			return nil, err
		}
		logger.Warn("unknown theme, using classic", zap.String("theme", name))
	}
	return reg, nil
}
