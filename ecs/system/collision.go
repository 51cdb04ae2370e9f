package system

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// CollisionSystem bounces the ball off walls and paddles.
type CollisionSystem struct {
	logger *slog.Logger
}

func NewCollisionSystem(logger *slog.Logger) *CollisionSystem {
	return &CollisionSystem{logger: loggerOrDefault(logger)}
}

func (c *CollisionSystem) Update(w *ecs.World) {
	if w == nil || MatchOver(w) {
		return
	}
	ballEntity, ball, ballT, ok := findBall(w)
	if !ok {
		return
	}
	rules := findRules(w)

	for _, e := range w.Query(component.ColliderComponent.Kind(), component.TransformComponent.Kind()) {
		if e == ballEntity {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		center := cp.Vector{X: ballT.X, Y: ballT.Y}
		side, hit := common.CollideWithSide(center, ball.Radius, colliderBox(t), rules.TieBreak)
		if !hit {
			continue
		}

		if !bounce(ball, side) {
			continue
		}

		isPaddle := ecs.Has(w, e, component.PaddleComponent.Kind())
		if isPaddle && rules.SpeedUp > 0 && rules.SpeedUp != 1 {
			ball.Velocity = ball.Velocity.Mult(rules.SpeedUp)
		}

		c.logger.Debug("collision: ball bounced",
			"side", side.String(),
			"other", e.String(),
			"paddle", isPaddle,
			"vx", ball.Velocity.X,
			"vy", ball.Velocity.Y,
		)

		w.Events().Push(ecs.Event{
			Type: ecs.EventHit,
			Data: ecs.HitEvent{Ball: ballEntity, Other: e, Side: side, Paddle: isPaddle},
		})
	}
}

// bounce flips the velocity axis for the touched side when the ball is moving
// into that side. It reports whether the velocity changed, so a ball that stays
// overlapped for several ticks only bounces once.
func bounce(ball *component.Ball, side common.Side) bool {
	v := &ball.Velocity
	switch side {
	case common.SideLeft:
		if v.X > 0 {
			v.X = -v.X
			return true
		}
	case common.SideRight:
		if v.X < 0 {
			v.X = -v.X
			return true
		}
	case common.SideTop:
		if v.Y < 0 {
			v.Y = -v.Y
			return true
		}
	case common.SideBottom:
		if v.Y > 0 {
			v.Y = -v.Y
			return true
		}
	}
	return false
}
