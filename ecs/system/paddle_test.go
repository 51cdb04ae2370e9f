package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

func TestPaddleStaysInsidePlayfield(t *testing.T) {
	limit := testArena.PaddleLimit(50)
	if limit != 265 {
		t.Fatalf("PaddleLimit(50) = %v, want 265", limit)
	}

	cases := []struct {
		name  string
		moveY float64
		want  float64
	}{
		{"held up", 1, limit},
		{"held down", -1, -limit},
		{"idle", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t, strictRules)
			e, tr := addPaddle(t, w, component.SidePlayer, 390, 0)
			mustAdd(t, w, e, component.InputComponent, &component.Input{MoveY: tc.moveY})

			sys := NewPaddleControllerSystem()
			for i := 0; i < 1000; i++ {
				sys.Update(w)
				if math.Abs(tr.Y) > limit {
					t.Fatalf("tick %d: paddle y = %v beyond %v", i, tr.Y, limit)
				}
			}
			if tr.Y != tc.want {
				t.Fatalf("paddle y = %v, want %v", tr.Y, tc.want)
			}
		})
	}
}

func TestPaddleMovesSpeedPerTick(t *testing.T) {
	w := newTestWorld(t, strictRules)
	e, tr := addPaddle(t, w, component.SidePlayer, 390, 0)
	mustAdd(t, w, e, component.InputComponent, &component.Input{MoveY: 1})

	NewPaddleControllerSystem().Update(w)
	if tr.Y != 5 {
		t.Fatalf("paddle y = %v, want 5", tr.Y)
	}
}

func addEnemy(t *testing.T, w *ecs.World, y float64, script string) *component.Transform {
	t.Helper()
	e, tr := addPaddle(t, w, component.SideEnemy, -390, y)
	mustAdd(t, w, e, component.EnemyAIComponent, &component.EnemyAI{Script: script})
	return tr
}

func TestEnemyConvergesOnBall(t *testing.T) {
	cases := []struct {
		name  string
		start float64
		ballY float64
	}{
		{"below", -200, 40},
		{"above", 250, -120.5},
		{"fractional gap", 0, 2.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t, strictRules)
			addBall(t, w, 0, tc.ballY, cp.Vector{})
			tr := addEnemy(t, w, tc.start, "")
			sys := NewEnemyAISystem(quietLogger())

			prev := math.Abs(tc.ballY - tr.Y)
			for i := 0; i < 200; i++ {
				sys.Update(w)
				gap := math.Abs(tc.ballY - tr.Y)
				if gap > prev {
					t.Fatalf("tick %d: gap grew from %v to %v", i, prev, gap)
				}
				if prev-gap > 5+1e-9 {
					t.Fatalf("tick %d: moved %v, faster than speed 5", i, prev-gap)
				}
				prev = gap
			}
			if prev != 0 {
				t.Fatalf("paddle did not reach the ball: y = %v, ball = %v", tr.Y, tc.ballY)
			}
		})
	}
}

func TestEnemyRespectsPlayfield(t *testing.T) {
	w := newTestWorld(t, strictRules)
	addBall(t, w, 0, 299, cp.Vector{})
	tr := addEnemy(t, w, 0, "")
	sys := NewEnemyAISystem(quietLogger())
	for i := 0; i < 200; i++ {
		sys.Update(w)
	}
	if tr.Y != testArena.PaddleLimit(50) {
		t.Fatalf("enemy y = %v, want the playfield limit", tr.Y)
	}
}

func TestEnemyScript(t *testing.T) {
	src := []byte(`
decide := func(ball, paddle) {
	return (ball.y - paddle.y) * 2
}
`)
	rt, err := compileEnemyScript("double.tengo", src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	ball := &component.Ball{Radius: 5}
	move, err := rt.decide(ball, &component.Transform{Y: 3}, &component.Transform{Y: 1})
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if move != 4 {
		t.Fatalf("move = %v, want 4", move)
	}
}

func TestEnemyScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax", "decide := func(ball, paddle) {"},
		{"non number", `decide := func(ball, paddle) { return "up" }`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rt, err := compileEnemyScript(tc.name, []byte(tc.src))
			if err != nil {
				return
			}
			if _, err := rt.decide(&component.Ball{}, &component.Transform{}, &component.Transform{}); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestEnemyEmbeddedScriptDriftsToCenter(t *testing.T) {
	w := newTestWorld(t, strictRules)
	// ball heading away from the enemy: the script steers back to y = 0
	addBall(t, w, 0, 200, cp.Vector{X: 2.5, Y: 0})
	tr := addEnemy(t, w, 100, "enemy_paddle.tengo")
	sys := NewEnemyAISystem(quietLogger())

	for i := 0; i < 100; i++ {
		sys.Update(w)
	}
	if tr.Y != 0 {
		t.Fatalf("enemy y = %v, want 0", tr.Y)
	}
	if rt := sys.scripts[w.Query(component.EnemyAIComponent.Kind())[0]]; rt == nil || rt.failed {
		t.Fatalf("embedded script was not used")
	}
}

func TestEnemyMissingScriptFallsBackToTracker(t *testing.T) {
	w := newTestWorld(t, strictRules)
	addBall(t, w, 0, 50, cp.Vector{})
	tr := addEnemy(t, w, 0, "does_not_exist.tengo")
	sys := NewEnemyAISystem(quietLogger())

	sys.Update(w)
	if tr.Y != 5 {
		t.Fatalf("enemy y = %v, want 5 from the tracker", tr.Y)
	}
}
