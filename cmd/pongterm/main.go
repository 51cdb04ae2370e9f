// Command pongterm plays Pong in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/ecs/entity"
	"github.com/milk9111/pong/ecs/system"
	"github.com/milk9111/pong/prefabs"
)

func main() {
	variant := flag.String("variant", "v3", "game variant (v1, v2, v3)")
	aiScript := flag.String("ai-script", "", "tengo script driving the enemy paddle")
	logPath := flag.String("log", "", "write logs to this file")
	debug := flag.Bool("debug", false, "log every collision")
	flag.Parse()

	logger, closeLog, err := newLogger(*logPath, *debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	t, err := newTerminal(screen, spec, *variant, *aiScript, logger)
	if err == nil {
		err = t.Run()
	}
	screen.Fini()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// The screen owns stderr, so logs go to a file or nowhere.
func newLogger(path string, debug bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("pongterm: open log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), func() { _ = f.Close() }, nil
}

type terminal struct {
	screen    tcell.Screen
	tps       int
	world     *ecs.World
	scheduler *ecs.Scheduler
	input     *KeyInputSystem
	view      *View
	paused    bool
}

func newTerminal(screen tcell.Screen, spec *prefabs.GameSpec, variant, aiScript string, logger *slog.Logger) (*terminal, error) {
	w := ecs.NewWorld()
	if err := entity.BuildMatch(w, spec, variant); err != nil {
		return nil, err
	}
	if aiScript != "" {
		ecs.ForEach(w, component.EnemyAIComponent.Kind(), func(_ ecs.Entity, ai *component.EnemyAI) {
			ai.Script = aiScript
		})
	}

	input := NewKeyInputSystem()
	scheduler := ecs.NewScheduler(input)
	for _, s := range system.NewSimulation(logger) {
		scheduler.Add(s)
	}
	scheduler.Add(NewBellSystem(screen))

	screen.HideCursor()
	return &terminal{
		screen:    screen,
		tps:       spec.TPS,
		world:     w,
		scheduler: scheduler,
		input:     input,
		view:      NewView(screen),
	}, nil
}

// handleKey applies one key press and reports whether the game should exit.
func (t *terminal) handleKey(ev *tcell.EventKey) bool {
	if t.input.HandleKey(ev) {
		return false
	}
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
		return true
	case ev.Rune() == 'p':
		t.paused = !t.paused
	case ev.Key() == tcell.KeyEnter:
		if system.MatchOver(t.world) {
			system.RestartMatch(t.world)
		}
	}
	return false
}

func (t *terminal) step() {
	if !t.paused && !system.MatchOver(t.world) {
		t.scheduler.Update(t.world)
	}
	t.view.Draw(t.world, t.paused)
}

func (t *terminal) Run() error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	tps := t.tps
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if t.handleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case <-ticker.C:
			t.step()
		}
	}
}
