package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/matheus3301/univ/internal/app"
	"github.com/matheus3301/univ/internal/theme"
	"go.uber.org/fx"
)

func main() {
	configFlag := flag.String("config", "", "config file (default ~/.univ/config.toml)")
	themeFlag := flag.String("theme", "", "theme name (overrides config)")
	flag.Parse()

	if *themeFlag != "" {
		if err := theme.ValidateName(*themeFlag); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	fxApp := fx.New(
		app.Module(app.Params{ConfigPath: *configFlag, Theme: *themeFlag}),
	)

	fxApp.Run()
}
