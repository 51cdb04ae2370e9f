package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

func TestResetRecentersBall(t *testing.T) {
	initial := cp.Vector{X: 2.5, Y: 1}
	cases := []struct {
		name     string
		mode     component.ResetMode
		x        float64
		velocity cp.Vector
		wantExit common.Side
		wantV    cp.Vector
	}{
		{"serve right after right exit", component.ResetServeRight, 401, cp.Vector{X: 3, Y: -2}, common.SideRight, cp.Vector{X: 3, Y: -2}},
		{"serve right after left exit", component.ResetServeRight, -400, cp.Vector{X: -3, Y: 2}, common.SideLeft, cp.Vector{X: 3, Y: 2}},
		{"initial", component.ResetInitial, 400, cp.Vector{X: 6, Y: -4}, common.SideRight, initial},
		{"serve away from right", component.ResetServeAway, 410, cp.Vector{X: 6, Y: -4}, common.SideRight, cp.Vector{X: -2.5, Y: 1}},
		{"serve away from left", component.ResetServeAway, -410, cp.Vector{X: -6, Y: -4}, common.SideLeft, cp.Vector{X: 2.5, Y: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t, component.Rules{SpeedUp: 1, Reset: tc.mode})
			ball, tr := addBall(t, w, tc.x, 37, initial)
			ball.Velocity = tc.velocity

			NewResetSystem(quietLogger()).Update(w)

			if tr.X != 0 || tr.Y != 0 {
				t.Fatalf("position = (%v,%v), want (0,0)", tr.X, tr.Y)
			}
			if ball.Velocity != tc.wantV {
				t.Fatalf("velocity = %v, want %v", ball.Velocity, tc.wantV)
			}
			goals := w.Events().OfType(ecs.EventGoal)
			if len(goals) != 1 || goals[0].(ecs.GoalEvent).Exit != tc.wantExit {
				t.Fatalf("goals = %+v, want one exit %s", goals, tc.wantExit)
			}
		})
	}
}

func TestResetIgnoresBallInBounds(t *testing.T) {
	w := newTestWorld(t, strictRules)
	_, tr := addBall(t, w, 399.9, 10, cp.Vector{X: 2.5, Y: 1})

	NewResetSystem(quietLogger()).Update(w)
	if tr.X != 399.9 || tr.Y != 10 {
		t.Fatalf("ball moved to (%v,%v)", tr.X, tr.Y)
	}
	if n := len(w.Events().Items()); n != 0 {
		t.Fatalf("got %d events", n)
	}
}
