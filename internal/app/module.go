package app

import (
	"context"

	"github.com/matheus3301/univ/internal/bus"
	"github.com/matheus3301/univ/internal/config"
	"github.com/matheus3301/univ/internal/host"
	"github.com/matheus3301/univ/internal/logging"
	"github.com/matheus3301/univ/internal/theme"
	"github.com/matheus3301/univ/internal/themes"
	"github.com/rivo/tview"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Params holds the command-line settings passed to the fx module.
type Params struct {
	ConfigPath string // empty = use default
	Theme      string // overrides the config file's theme
}

func (p Params) configPath() string {
	if p.ConfigPath != "" {
		return p.ConfigPath
	}
	return config.ConfigPath()
}

// Module returns the fx module for the demo, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("univ",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideRegistry,
			provideApplication,
			provideScheduler,
			provideWindow,
			NewShell,
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(p.configPath())
	if err != nil {
		return nil, err
	}
	cfg.Theme = config.ResolveTheme(p.Theme, cfg)
	return cfg, nil
}

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.LogPath, false)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideRegistry(cfg *config.Config, b *bus.Bus, logger *zap.Logger) (*theme.Registry, error) {
	return themes.NewRegistry(cfg, b, logger)
}

func provideApplication() *tview.Application {
	return tview.NewApplication()
}

func provideScheduler(app *tview.Application) host.Scheduler {
	return host.AppScheduler{App: app}
}

func provideWindow(sched host.Scheduler, b *bus.Bus, logger *zap.Logger) *host.Window {
	w := host.NewWindow(sched, b, logger)
	w.Create("univ", tview.Styles.PrimitiveBackgroundColor)
	return w
}

func registerLifecycle(lc fx.Lifecycle, sd fx.Shutdowner, shell *Shell, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			shell.Start()

			// Run the terminal UI in background; leaving it ends the app.
			go func() {
				if err := shell.Run(); err != nil {
					logger.Error("terminal UI error", zap.Error(err))
				}
				if err := sd.Shutdown(); err != nil {
					logger.Warn("shutdown", zap.Error(err))
				}
			}()

			logger.Info("demo started")
			return nil
		},
		OnStop: func(_ context.Context) error {
			shell.Stop()
			logger.Info("demo stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
