package app

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/univ/internal/bus"
	"github.com/matheus3301/univ/internal/config"
	"github.com/matheus3301/univ/internal/control"
	"github.com/matheus3301/univ/internal/host"
	"github.com/matheus3301/univ/internal/theme"
	"github.com/matheus3301/univ/internal/themes"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

func newShell(t *testing.T) *Shell {
	t.Helper()
	b := bus.New()
	logger := zap.NewNop()
	cfg := config.Default()
	reg, err := themes.NewRegistry(cfg, b, logger)
	if err != nil {
		t.Fatal(err)
	}
	w := host.NewWindow(nil, b, logger)
	w.Create("test", tcell.ColorDefault)

	p := Params{ConfigPath: filepath.Join(t.TempDir(), "config.toml")}
	s, err := NewShell(p, cfg, tview.NewApplication(), w, reg, b, logger)
	if err != nil {
		t.Fatalf("NewShell() error = %v", err)
	}
	t.Cleanup(s.Stop)
	return s
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"quit", Command{Name: "quit"}},
		{":theme mono", Command{Name: "theme", Args: "mono"}},
		{"  LABEL ok  &Okay ", Command{Name: "label", Args: "ok  &Okay"}},
		{"", Command{}},
	}
	for _, tt := range tests {
		if got := ParseCommand(tt.input); got != tt.want {
			t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestDemoControls(t *testing.T) {
	s := newShell(t)

	if got := len(s.window.Controls()); got != 6 {
		t.Fatalf("Controls() = %d, want 6", got)
	}
	if s.window.Focused() != s.demo.Wrap.Control {
		t.Error("first focusable control is not the check box")
	}
	if !s.demo.OK.IsDefault() {
		t.Error("OK is not the default button")
	}
	if got := s.demo.NameLabel.MnemonicTarget(); got != s.demo.Wrap.Control {
		t.Error("caption does not forward its mnemonic to the check box")
	}
}

func TestExecuteTheme(t *testing.T) {
	s := newShell(t)

	if err := s.Execute(Command{Name: "theme", Args: themes.MonoName}); err != nil {
		t.Fatalf("Execute(theme) error = %v", err)
	}
	if got := s.registry.Active(); got != themes.MonoName {
		t.Errorf("Active() = %q, want %q", got, themes.MonoName)
	}

	err := s.Execute(Command{Name: "theme", Args: "neon"})
	if !errors.Is(err, theme.ErrUnknownTheme) {
		t.Errorf("unknown theme error = %v, want %v", err, theme.ErrUnknownTheme)
	}
	if err := s.Execute(Command{Name: "theme"}); !errors.Is(err, ErrUsage) {
		t.Errorf("missing name error = %v, want %v", err, ErrUsage)
	}
}

func TestNextThemeWraps(t *testing.T) {
	s := newShell(t)

	s.NextTheme()
	if got := s.registry.Active(); got != themes.MonoName {
		t.Errorf("Active() = %q, want %q", got, themes.MonoName)
	}
	s.NextTheme()
	if got := s.registry.Active(); got != themes.ClassicName {
		t.Errorf("Active() = %q, want %q", got, themes.ClassicName)
	}
}

func TestExecuteLabel(t *testing.T) {
	s := newShell(t)

	if err := s.Execute(ParseCommand("label ok Ok&ay")); err != nil {
		t.Fatalf("Execute(label) error = %v", err)
	}
	if got := s.demo.OK.Label(); got != "Okay" {
		t.Errorf("Label() = %q, want %q", got, "Okay")
	}
	if r := s.demo.OK.Mnemonic().AccelRune(); r != 'a' {
		t.Errorf("AccelRune() = %q, want %q", r, 'a')
	}

	if err := s.Execute(ParseCommand("label nope X")); !errors.Is(err, ErrNoControl) {
		t.Errorf("missing control error = %v, want %v", err, ErrNoControl)
	}
	if err := s.Execute(ParseCommand("label ok")); !errors.Is(err, ErrUsage) {
		t.Errorf("missing text error = %v, want %v", err, ErrUsage)
	}
}

func TestExecuteSave(t *testing.T) {
	s := newShell(t)
	if err := s.Execute(Command{Name: "theme", Args: themes.MonoName}); err != nil {
		t.Fatal(err)
	}

	if err := s.Execute(Command{Name: "save"}); err != nil {
		t.Fatalf("Execute(save) error = %v", err)
	}
	cfg, err := config.Load(s.cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme != themes.MonoName {
		t.Errorf("saved theme = %q, want %q", cfg.Theme, themes.MonoName)
	}
}

func TestExecuteUnknown(t *testing.T) {
	s := newShell(t)

	if err := s.Execute(Command{Name: "frobnicate"}); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("error = %v, want %v", err, ErrUnknownCommand)
	}
}

func TestExecuteThemesFlashes(t *testing.T) {
	s := newShell(t)

	if err := s.Execute(Command{Name: "themes"}); err != nil {
		t.Fatal(err)
	}
	if got, _, _ := s.flash.Current(); got != "themes: classic, mono" {
		t.Errorf("flash = %q", got)
	}
}

func TestStatusLine(t *testing.T) {
	s := newShell(t)
	s.flash.Info("hello")

	s.refreshStatus()
	line := s.status.Line()
	for _, want := range []string{"classic", "wrap", "space:toggle", "[yellow]hello"} {
		if !strings.Contains(line, want) {
			t.Errorf("status line %q does not contain %q", line, want)
		}
	}

	s.flash.Error("boom")
	s.refreshStatus()
	if line := s.status.Line(); !strings.Contains(line, "[red]boom") {
		t.Errorf("status line %q does not show the error in red", line)
	}
}

func TestExecuteErrorFlashesRed(t *testing.T) {
	s := newShell(t)

	s.prompt.onSubmit("frobnicate")
	text, level, ok := s.flash.Current()
	if !ok || level != LevelError || !strings.Contains(text, "frobnicate") {
		t.Errorf("Current() = %q, %v, %v, want error about frobnicate", text, level, ok)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name      string
		evt       bus.Event
		want      string
		wantLevel Level
	}{
		{"theme", bus.Event{Kind: bus.ThemeChanged, Payload: theme.Change{From: "classic", To: "mono"}}, "theme: mono", LevelInfo},
		{"diagnostic", bus.Event{Kind: bus.ControlDiagnostic, Payload: control.Diagnostic{ID: "ok", Err: errors.New("boom")}}, "ok: boom", LevelError},
		{"other", bus.Event{Kind: bus.ControlLifecycle}, "", LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, level := describe(tt.evt)
			if got != tt.want || level != tt.wantLevel {
				t.Errorf("describe() = %q, %v, want %q, %v", got, level, tt.want, tt.wantLevel)
			}
		})
	}
}

func TestFlash(t *testing.T) {
	f := NewFlash(time.Minute)
	if _, _, ok := f.Current(); ok {
		t.Error("new flash has a notice")
	}

	f.Error("disk full")
	text, level, ok := f.Current()
	if !ok || text != "disk full" || level != LevelError {
		t.Errorf("Current() = %q, %v, %v", text, level, ok)
	}

	f.Info("saved")
	if _, level, _ := f.Current(); level != LevelInfo {
		t.Errorf("level = %v, want %v", level, LevelInfo)
	}
}

func TestFlashExpires(t *testing.T) {
	f := NewFlash(0)
	f.Info("gone")
	if text, _, ok := f.Current(); ok || text != "" {
		t.Errorf("Current() = %q, %v, want expired", text, ok)
	}
}

func TestExecuteLabelValidates(t *testing.T) {
	s := newShell(t)

	tests := []struct {
		name string
		cmd  string
		want error
	}{
		{"too wide", "label ok &Acknowledge everything", ErrLabelTooWide},
		{"blank", "label ok &  ", ErrEmptyLabel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Execute(ParseCommand(tt.cmd))
			if !errors.Is(err, tt.want) {
				t.Errorf("Execute(%q) error = %v, want %v", tt.cmd, err, tt.want)
			}
			if got := s.demo.OK.Label(); got != "OK" {
				t.Errorf("Label() = %q, want previous label %q", got, "OK")
			}
			if got := s.demo.OK.AccelIndex(); got != 0 {
				t.Errorf("AccelIndex() = %d, want 0", got)
			}
		})
	}
}

func TestFitWidth(t *testing.T) {
	tests := []struct {
		label string
		want  error
	}{
		{"Save", nil},
		{"0123456789", nil},
		{"0123456789a", ErrLabelTooWide},
		{"日本語日本", nil},
		{"日本語日本語", ErrLabelTooWide},
		{"   ", ErrEmptyLabel},
	}
	for _, tt := range tests {
		if err := fitWidth(10).Validate(tt.label); !errors.Is(err, tt.want) {
			t.Errorf("Validate(%q) error = %v, want %v", tt.label, err, tt.want)
		}
	}
}
