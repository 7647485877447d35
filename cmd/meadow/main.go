package main

import (
	"flag"
	"fmt"
	"os"

	"meadow/internal/app"
	"meadow/internal/config"
	"meadow/internal/debug"
	"meadow/internal/env"
	"meadow/internal/graphics"
	"meadow/internal/input"
	"meadow/internal/logger"
	"meadow/internal/palette"
	"meadow/internal/platform"
	"meadow/internal/scene"
)

func main() {
	log := logger.New(logger.DefaultPath)
	if err := env.Load(env.DefaultPath); err != nil {
		log.Logf("Env: %v", err)
	}
	envSeed, err := env.Int64(env.Seed, 0)
	if err != nil {
		log.Logf("Env: %v", err)
	}

	configPath := flag.String("config", env.String(env.ConfigPath, config.DefaultPath), "YAML config file")
	initConfig := flag.Bool("init-config", false, "write the default config to -config and exit")
	seed := flag.Int64("seed", envSeed, "world seed (0 uses the config seed, or the clock if that is 0 too)")
	flag.Parse()

	if *initConfig {
		if err := config.Save(*configPath, config.Default()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("wrote", *configPath)
		return
	}

	load := func() config.Config {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Logf("Config: %v (using defaults)", err)
		}
		if *seed != 0 {
			cfg.World.Seed = *seed
		}
		return cfg
	}
	cfg := load()

	watcher, err := config.NewWatcher(*configPath)
	if err != nil {
		log.Logf("Config watch disabled: %v", err)
	}
	if watcher != nil {
		defer watcher.Close()
	}

	a := app.New(cfg, log, cfg.Window.Width, cfg.Window.Height)
	scn := scene.New(cfg)
	hud := debug.New()
	hud.ShowFPS, hud.ShowStats = cfg.Debug.ShowFPS, cfg.Debug.ShowStats

	// The platform source needs an open window, so it is created on the first frame.
	var src *platform.Source
	update := func(dt float32) {
		if src == nil {
			src = platform.NewSource()
			w, h := src.Size()
			a.HandleResize(input.ResizeEvent{Width: w, Height: h})
			log.Logf("Window open at %dx%d", w, h)
		}
		if watcher != nil {
			select {
			case err := <-watcher.Errors:
				log.Logf("Config watch: %v", err)
			default:
			}
		}
		if watcher != nil && watcher.Changed() {
			if err := a.Reload(*configPath, *seed); err != nil {
				log.Logf("Config reload: %v (keeping current settings)", err)
			} else {
				scn.Apply(a.Config)
				hud.ShowFPS, hud.ShowStats = a.Config.Debug.ShowFPS, a.Config.Debug.ShowStats
				log.Logf("Config reloaded from %s", *configPath)
			}
		}
		a.Tick(src, dt)
	}
	draw := func() {
		scn.Draw(a.Frame())
		hud.Draw(a)
	}

	// Window size, title and sky colour are read once; changing them needs a restart.
	graphics.Run(cfg.Window, palette.MustParse(cfg.Colors.Sky), update, draw, scn.Unload)
	log.Log("Window closed")
}
