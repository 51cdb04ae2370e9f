package system

import (
	"fmt"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

func pushGoal(w *ecs.World, exit common.Side) {
	w.Events().Push(ecs.Event{Type: ecs.EventGoal, Data: ecs.GoalEvent{Exit: exit}})
}

func TestScoreAwardsPoints(t *testing.T) {
	w := newTestWorld(t, strictRules)
	score := addScoreboard(t, w, 11)
	sys := NewScoreSystem(quietLogger())

	pushGoal(w, common.SideRight)
	pushGoal(w, common.SideLeft)
	pushGoal(w, common.SideLeft)
	sys.Update(w)

	if score.Enemy != 1 || score.Player != 2 {
		t.Fatalf("score = player %d enemy %d, want 2-1", score.Player, score.Enemy)
	}
	if score.Over {
		t.Fatalf("match over too early")
	}
}

func TestScoreEndsMatchAtWinScore(t *testing.T) {
	w := newTestWorld(t, strictRules)
	score := addScoreboard(t, w, 2)
	sys := NewScoreSystem(quietLogger())

	pushGoal(w, common.SideRight)
	pushGoal(w, common.SideRight)
	pushGoal(w, common.SideRight)
	sys.Update(w)

	if !score.Over || score.Winner != component.SideEnemy {
		t.Fatalf("score = %+v, want enemy win", *score)
	}
	if score.Enemy != 2 {
		t.Fatalf("enemy = %d, goals after the win should not count", score.Enemy)
	}
	if !MatchOver(w) {
		t.Fatalf("MatchOver = false")
	}
}

func TestRestartMatch(t *testing.T) {
	w := newTestWorld(t, strictRules)
	score := addScoreboard(t, w, 2)
	*score = component.Score{Player: 2, Enemy: 1, WinScore: 2, Winner: component.SidePlayer, Over: true}
	ball, ballT := addBall(t, w, 120, -40, cp.Vector{X: 2.5, Y: 1})
	ball.Velocity = cp.Vector{X: -7, Y: 3}
	_, paddleT := addPaddle(t, w, component.SidePlayer, 390, 200)

	RestartMatch(w)

	if MatchOver(w) || score.Player != 0 || score.Enemy != 0 || score.WinScore != 2 {
		t.Fatalf("score = %+v after restart", *score)
	}
	if ballT.X != 0 || ballT.Y != 0 || ball.Velocity != ball.Initial {
		t.Fatalf("ball = (%v,%v) v=%v after restart", ballT.X, ballT.Y, ball.Velocity)
	}
	if paddleT.Y != 0 || paddleT.X != 390 {
		t.Fatalf("paddle = (%v,%v) after restart", paddleT.X, paddleT.Y)
	}
}

func TestSimulationOrder(t *testing.T) {
	systems := NewSimulation(nil)
	want := []string{"*system.PaddleControllerSystem", "*system.EnemyAISystem", "*system.BallMovementSystem", "*system.CollisionSystem", "*system.ResetSystem", "*system.ScoreSystem"}
	if len(systems) != len(want) {
		t.Fatalf("got %d systems, want %d", len(systems), len(want))
	}
	for i, s := range systems {
		if got := fmt.Sprintf("%T", s); got != want[i] {
			t.Fatalf("system %d = %s, want %s", i, got, want[i])
		}
	}
}
