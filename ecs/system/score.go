package system

import (
	"log/slog"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// ScoreSystem awards a point for every goal pushed this tick. A ball leaving
// on the right is the enemy's point.
type ScoreSystem struct {
	logger *slog.Logger
}

func NewScoreSystem(logger *slog.Logger) *ScoreSystem {
	return &ScoreSystem{logger: loggerOrDefault(logger)}
}

func (s *ScoreSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, score, ok := ecs.First(w, component.ScoreComponent.Kind())
	if !ok || score.Over {
		return
	}

	for _, data := range w.Events().OfType(ecs.EventGoal) {
		goal, ok := data.(ecs.GoalEvent)
		if !ok {
			continue
		}
		scorer := component.SidePlayer
		if goal.Exit == common.SideRight {
			scorer = component.SideEnemy
		}
		if scorer == component.SideEnemy {
			score.Enemy++
		} else {
			score.Player++
		}
		s.logger.Info("score: point", "scorer", scorer.String(), "player", score.Player, "enemy", score.Enemy)

		if score.WinScore > 0 && (score.Player >= score.WinScore || score.Enemy >= score.WinScore) {
			score.Over = true
			score.Winner = scorer
			s.logger.Info("score: match over", "winner", scorer.String())
			return
		}
	}
}

// RestartMatch zeroes the score and puts the ball and paddles back at their spawn state.
func RestartMatch(w *ecs.World) {
	if w == nil {
		return
	}
	if _, score, ok := ecs.First(w, component.ScoreComponent.Kind()); ok {
		*score = component.Score{WinScore: score.WinScore}
	}
	ecs.ForEach2(w, component.BallComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, ball *component.Ball, t *component.Transform) {
		t.X, t.Y = 0, 0
		ball.Velocity = ball.Initial
	})
	ecs.ForEach2(w, component.PaddleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Paddle, t *component.Transform) {
		t.Y = 0
	})
}
