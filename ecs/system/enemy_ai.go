package system

import (
	"log/slog"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// EnemyAISystem steers enemy paddles toward the ball's height, at most Speed per tick.
type EnemyAISystem struct {
	logger  *slog.Logger
	scripts map[ecs.Entity]*enemyScript
}

func NewEnemyAISystem(logger *slog.Logger) *EnemyAISystem {
	return &EnemyAISystem{
		logger:  loggerOrDefault(logger),
		scripts: map[ecs.Entity]*enemyScript{},
	}
}

func (a *EnemyAISystem) Update(w *ecs.World) {
	if w == nil || MatchOver(w) {
		return
	}
	_, ball, ballT, ok := findBall(w)
	if !ok {
		return
	}
	arena, ok := findArena(w)
	if !ok {
		return
	}

	ecs.ForEach3(w,
		component.PaddleComponent.Kind(),
		component.EnemyAIComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, paddle *component.Paddle, ai *component.EnemyAI, t *component.Transform) {
			dy := ballT.Y - t.Y
			if rt := a.scriptFor(e, ai.Script); rt != nil {
				move, err := rt.decide(ball, ballT, t)
				if err != nil {
					a.logger.Error("ai: script decide failed, using tracker", "entity", e.String(), "script", rt.path, "err", err)
					rt.failed = true
				} else {
					dy = move
				}
			}

			t.Y += common.Clamp(dy, -paddle.Speed, paddle.Speed)
			clampPaddle(t, paddle, arena)
		})
}

func (a *EnemyAISystem) scriptFor(e ecs.Entity, path string) *enemyScript {
	if path == "" {
		return nil
	}
	if rt, ok := a.scripts[e]; ok && rt.path == path {
		if rt.failed {
			return nil
		}
		return rt
	}

	rt, err := loadEnemyScript(path)
	if err != nil {
		a.logger.Error("ai: load script failed, using tracker", "entity", e.String(), "script", path, "err", err)
		rt = &enemyScript{path: path, failed: true}
	}
	a.scripts[e] = rt
	if rt.failed {
		return nil
	}
	return rt
}
