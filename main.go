package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/prefabs"
)

func main() {
	variant := flag.String("variant", "v3", "game variant from prefabs/game.yaml (v1, v2, v3)")
	debug := flag.Bool("debug", false, "enable debug mode (collider outlines, collision logs)")
	watch := flag.Bool("watch", false, "reload prefabs/ from disk when they change")
	aiScript := flag.String("ai-script", "", "tengo script in prefabs/scripts driving the enemy paddle")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		logger.Error("startup: load game spec", "err", err)
		os.Exit(1)
	}

	game, err := NewGame(Config{
		Spec:     spec,
		Variant:  *variant,
		AIScript: *aiScript,
		Debug:    *debug,
		Watch:    *watch,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("startup: build game", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(spec.Width, spec.Height)
	ebiten.SetWindowTitle(spec.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(spec.TPS)

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}
