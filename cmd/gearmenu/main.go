package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sevengears/gearmenu/pkg/gearmenu"
	"github.com/sevengears/gearmenu/pkg/gearmenu/config"
	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
)

func main() {
	configPath := flag.String("config", os.Getenv(constants.ConfigPathEnvVar), "path to the toml configuration file")
	debug := flag.Bool("debug", false, "outline every widget rectangle")
	fullscreen := flag.Bool("fullscreen", false, "start fullscreen")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *debug {
		cfg.Render.DebugOutlines = true
	}
	if *fullscreen {
		cfg.Window.Fullscreen = true
	}

	if err := gearmenu.Init(gearmenu.Options{Config: cfg}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := gearmenu.GetLogger()
	logger.Info("Menu started", "config", *configPath, "language", cfg.Language)

	err = gearmenu.Run()
	gearmenu.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
