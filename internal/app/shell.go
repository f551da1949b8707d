// Package app composes the demo application: a window of controls, a status
// bar and a command prompt, wired together with fx.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/univ/internal/bus"
	"github.com/matheus3301/univ/internal/config"
	"github.com/matheus3301/univ/internal/control"
	"github.com/matheus3301/univ/internal/host"
	"github.com/matheus3301/univ/internal/theme"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const (
	flashTTL     = 4 * time.Second
	promptHeight = 3
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
	ErrNoControl      = errors.New("no such control")
)

// Shell is the demo application shell.
type Shell struct {
	app      *tview.Application
	layout   *tview.Flex
	window   *host.Window
	status   *StatusBar
	prompt   *Prompt
	registry *theme.Registry
	cfg      *config.Config
	cfgPath  string
	bus      *bus.Bus
	logger   *zap.Logger
	flash    *Flash
	demo     *Demo

	promptOpen bool
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewShell lays out w with a prompt and status bar and fills it with the
// demo controls.
func NewShell(p Params, cfg *config.Config, app *tview.Application, w *host.Window, reg *theme.Registry, b *bus.Bus, logger *zap.Logger) (*Shell, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Shell{
		app:      app,
		window:   w,
		status:   NewStatusBar(),
		prompt:   NewPrompt(),
		flash:    NewFlash(flashTTL),
		registry: reg,
		cfg:      cfg,
		cfgPath:  p.configPath(),
		bus:      b,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}

	demo, err := NewDemo(s)
	if err != nil {
		cancel()
		return nil, err
	}
	s.demo = demo

	s.setupPrompt()
	s.setupLayout()
	return s, nil
}

func (s *Shell) setupPrompt() {
	s.prompt.SetOnSubmit(func(text string) {
		s.closePrompt()
		if err := s.Execute(ParseCommand(text)); err != nil {
			s.flash.Error(err.Error())
		}
	})
	s.prompt.SetOnCancel(s.closePrompt)
}

func (s *Shell) setupLayout() {
	s.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(s.window, 0, 1, true).
		AddItem(s.prompt, 0, 0, false).
		AddItem(s.status, 1, 0, false)

	s.app.SetRoot(s.layout, true)
	s.app.EnableMouse(true)
	s.app.SetFocus(s.window)

	s.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if s.promptOpen {
			return event
		}
		if event.Key() == tcell.KeyRune && event.Rune() == ':' && event.Modifiers()&tcell.ModAlt == 0 {
			s.openPrompt()
			return nil
		}
		return event
	})

	s.app.SetBeforeDrawFunc(func(tcell.Screen) bool {
		s.refreshStatus()
		return false
	})
}

func (s *Shell) openPrompt() {
	s.promptOpen = true
	s.layout.ResizeItem(s.prompt, promptHeight, 0)
	s.app.SetFocus(s.prompt)
}

func (s *Shell) closePrompt() {
	s.promptOpen = false
	s.layout.ResizeItem(s.prompt, 0, 0)
	s.app.SetFocus(s.window)
}

func (s *Shell) refreshStatus() {
	var focused string
	var hints []string
	if c := s.window.Focused(); c != nil {
		focused = c.Name()
		if h, ok := c.Handler().(interface{ Hints() []string }); ok {
			hints = h.Hints()
		}
	}
	text, level, _ := s.flash.Current()
	s.status.Update(s.registry.Active(), focused, hints, text, level)
}

// Execute runs a prompt command.
func (s *Shell) Execute(cmd Command) error {
	switch cmd.Name {
	case "theme":
		if cmd.Args == "" {
			return fmt.Errorf("%w: theme <name>", ErrUsage)
		}
		return s.registry.Use(cmd.Args)
	case "themes":
		s.flash.Info("themes: " + strings.Join(s.registry.Names(), ", "))
		return nil
	case "label":
		id, text, ok := strings.Cut(cmd.Args, " ")
		if !ok || id == "" {
			return fmt.Errorf("%w: label <id> <text>", ErrUsage)
		}
		c := s.control(id)
		if c == nil {
			return fmt.Errorf("label %q: %w", id, ErrNoControl)
		}
		prev := c.Mnemonic().Raw()
		c.SetLabel(text)
		if err := c.Validate(); err != nil {
			c.SetLabel(prev)
			return fmt.Errorf("label %q: %w", id, err)
		}
		return nil
	case "save":
		s.cfg.Theme = s.registry.Active()
		if err := config.Save(s.cfgPath, s.cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		s.flash.Info("saved " + s.cfgPath)
		return nil
	case "q", "quit":
		s.Stop()
		return nil
	}
	return fmt.Errorf("%q: %w", cmd.Name, ErrUnknownCommand)
}

// control returns the hosted control with the given id.
func (s *Shell) control(id string) *control.Control {
	for _, c := range s.window.Controls() {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

// NextTheme activates the theme after the active one, wrapping around.
func (s *Shell) NextTheme() {
	names := s.registry.Names()
	if len(names) == 0 {
		return
	}
	next := names[0]
	for i, n := range names {
		if n == s.registry.Active() {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if err := s.registry.Use(next); err != nil {
		s.logger.Warn("theme switch failed", zap.String("theme", next), zap.Error(err))
	}
}

// Start follows bus events that the shell reports in its status bar.
func (s *Shell) Start() {
	s.window.Start(s.ctx)

	ch, unsub := s.bus.Subscribe("", 32)
	go func() {
		defer unsub()
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case evt := <-ch:
				if msg, level := describe(evt); msg != "" {
					s.flash.show(msg, level)
					s.app.QueueUpdateDraw(func() {})
				}
			case <-ticker.C:
				s.app.QueueUpdateDraw(func() {})
			case <-s.ctx.Done():
				return
			}
		}
	}()
}

// describe turns a bus event into a flash message. Events that need no
// message yield empty.
func describe(evt bus.Event) (string, Level) {
	switch p := evt.Payload.(type) {
	case theme.Change:
		return "theme: " + p.To, LevelInfo
	case control.Diagnostic:
		return fmt.Sprintf("%s: %v", p.ID, p.Err), LevelError
	}
	return "", LevelInfo
}

// Run runs the terminal UI until it is stopped.
func (s *Shell) Run() error {
	return s.app.Run()
}

// Stop ends the terminal UI and the shell's goroutines.
func (s *Shell) Stop() {
	s.cancel()
	s.window.Stop()
	s.app.Stop()
}
