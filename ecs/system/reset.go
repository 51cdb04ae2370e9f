package system

import (
	"log/slog"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// ResetSystem recenters the ball once it leaves the arena horizontally.
type ResetSystem struct {
	logger *slog.Logger
}

func NewResetSystem(logger *slog.Logger) *ResetSystem {
	return &ResetSystem{logger: loggerOrDefault(logger)}
}

func (r *ResetSystem) Update(w *ecs.World) {
	if w == nil || MatchOver(w) {
		return
	}
	ballEntity, ball, t, ok := findBall(w)
	if !ok {
		return
	}
	arena, ok := findArena(w)
	if !ok {
		return
	}

	var exit common.Side
	switch {
	case t.X >= arena.HalfWidth:
		exit = common.SideRight
	case t.X <= -arena.HalfWidth:
		exit = common.SideLeft
	default:
		return
	}

	t.X, t.Y = 0, 0
	ball.Velocity = resetVelocity(ball, findRules(w).Reset, exit)

	r.logger.Info("reset: ball left the arena", "exit", exit.String(), "vx", ball.Velocity.X, "vy", ball.Velocity.Y)
	w.Events().Push(ecs.Event{Type: ecs.EventGoal, Data: ecs.GoalEvent{Ball: ballEntity, Exit: exit}})
}

func resetVelocity(ball *component.Ball, mode component.ResetMode, exit common.Side) cp.Vector {
	switch mode {
	case component.ResetInitial:
		return ball.Initial
	case component.ResetServeAway:
		v := ball.Initial
		v.X = math.Abs(v.X)
		if exit == common.SideRight {
			v.X = -v.X
		}
		return v
	}
	v := ball.Velocity
	v.X = math.Abs(v.X)
	return v
}
