package main

import (
	"fmt"
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/ecs/entity"
	"github.com/milk9111/pong/ecs/system"
	"github.com/milk9111/pong/prefabs"
)

type Config struct {
	Spec     *prefabs.GameSpec
	Variant  string
	AIScript string
	Debug    bool
	Watch    bool
	Logger   *slog.Logger
}

type Game struct {
	cfg    Config
	logger *slog.Logger

	world     *ecs.World
	scheduler *ecs.Scheduler
	renderer  *Renderer
	sounds    *SoundSystem
	watcher   *prefabs.Watcher

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool
}

func NewGame(cfg Config) (*Game, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	g := &Game{
		cfg:      cfg,
		logger:   cfg.Logger,
		renderer: NewRenderer(cfg.Debug),
		sounds:   NewSoundSystem(cfg.Logger),
	}
	if err := g.rebuild(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if cfg.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			g.logger.Warn("prefabs: hot reload disabled", "err", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// rebuild spawns a fresh match from the current spec.
func (g *Game) rebuild() error {
	w := ecs.NewWorld()
	if err := entity.BuildMatch(w, g.cfg.Spec, g.cfg.Variant); err != nil {
		return err
	}
	if g.cfg.AIScript != "" {
		ecs.ForEach(w, component.EnemyAIComponent.Kind(), func(_ ecs.Entity, ai *component.EnemyAI) {
			ai.Script = g.cfg.AIScript
		})
	}

	scheduler := ecs.NewScheduler(NewKeyboardInputSystem())
	for _, s := range system.NewSimulation(g.logger) {
		scheduler.Add(s)
	}
	scheduler.Add(g.sounds)

	g.world = w
	g.scheduler = scheduler
	g.logger.Info("game: match ready", "variant", g.cfg.Variant)
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if system.MatchOver(g.world) {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.Restart()
		}
		return nil
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.Spec.Width), float64(g.cfg.Spec.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Resume() {
	g.paused = false
}

func (g *Game) Restart() {
	system.RestartMatch(g.world)
	g.paused = false
}

func (g *Game) Quit() {
	g.quit = true
}

// ScoreLine formats the current score, e.g. "Pong v3: player 3 - enemy 5".
func (g *Game) ScoreLine() string {
	_, score, ok := ecs.First(g.world, component.ScoreComponent.Kind())
	if !ok {
		return fmt.Sprintf("%s %s", g.cfg.Spec.Title, g.cfg.Variant)
	}
	return fmt.Sprintf("%s %s: player %d - enemy %d", g.cfg.Spec.Title, g.cfg.Variant, score.Player, score.Enemy)
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Poll()
	if err != nil {
		g.logger.Warn("prefabs: watch error", "err", err)
	}
	if len(changed) == 0 {
		return
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		g.logger.Error("prefabs: reload failed, keeping current match", "files", changed, "err", err)
		return
	}
	prev := g.cfg.Spec
	g.cfg.Spec = spec
	if err := g.rebuild(); err != nil {
		g.cfg.Spec = prev
		g.logger.Error("prefabs: rebuild failed, keeping current match", "files", changed, "err", err)
		return
	}
	g.logger.Info("prefabs: reloaded", "files", changed)
}
