package system

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// findBall returns the single ball entity with its transform.
func findBall(w *ecs.World) (ecs.Entity, *component.Ball, *component.Transform, bool) {
	e, ok := w.First(component.BallComponent.Kind(), component.TransformComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	ball, _ := ecs.Get(w, e, component.BallComponent.Kind())
	t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	return e, ball, t, true
}

func findArena(w *ecs.World) (component.Arena, bool) {
	_, arena, ok := ecs.First(w, component.ArenaComponent.Kind())
	if !ok {
		return component.Arena{}, false
	}
	return *arena, true
}

func findRules(w *ecs.World) component.Rules {
	_, rules, ok := ecs.First(w, component.RulesComponent.Kind())
	if !ok {
		return component.Rules{SpeedUp: 1}
	}
	return *rules
}

// MatchOver reports whether a side has reached the win score.
func MatchOver(w *ecs.World) bool {
	_, score, ok := ecs.First(w, component.ScoreComponent.Kind())
	return ok && score.Over
}

// colliderBox returns the world-space box of a collider from its transform scale.
func colliderBox(t *component.Transform) cp.BB {
	return common.BoxFromCenter(cp.Vector{X: t.X, Y: t.Y}, t.ScaleX, t.ScaleY)
}

// clampPaddle keeps a paddle's center inside the playfield interior.
func clampPaddle(t *component.Transform, paddle *component.Paddle, arena component.Arena) {
	limit := arena.PaddleLimit(paddle.Height)
	t.Y = common.Clamp(t.Y, -limit, limit)
}
