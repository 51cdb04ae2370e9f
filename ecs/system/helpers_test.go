package system

import (
	"io"
	"log/slog"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

var testArena = component.Arena{HalfWidth: 400, HalfHeight: 300, WallThickness: 20, PaddleGap: 5}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, h.Kind(), v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func newTestWorld(t *testing.T, rules component.Rules) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.ArenaComponent, &testArena)
	mustAdd(t, w, e, component.RulesComponent, &rules)
	return w
}

func addBall(t *testing.T, w *ecs.World, x, y float64, v cp.Vector) (*component.Ball, *component.Transform) {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.BallComponent, &component.Ball{Velocity: v, Initial: v, Radius: 5})
	ball, _ := ecs.Get(w, e, component.BallComponent.Kind())
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	return ball, tr
}

func addWall(t *testing.T, w *ecs.World, y float64) {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent, &component.Transform{
		Y:      y,
		ScaleX: testArena.HalfWidth*2 + testArena.WallThickness,
		ScaleY: testArena.WallThickness,
	})
	mustAdd(t, w, e, component.WallComponent, &component.Wall{})
	mustAdd(t, w, e, component.ColliderComponent, &component.Collider{})
}

func addPaddle(t *testing.T, w *ecs.World, side component.PaddleSide, x, y float64) (ecs.Entity, *component.Transform) {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 5, ScaleY: 50})
	mustAdd(t, w, e, component.PaddleComponent, &component.Paddle{Width: 5, Height: 50, Speed: 5, Side: side})
	mustAdd(t, w, e, component.ColliderComponent, &component.Collider{})
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	return e, tr
}

func addScoreboard(t *testing.T, w *ecs.World, winScore int) *component.Score {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.ScoreComponent, &component.Score{WinScore: winScore})
	s, _ := ecs.Get(w, e, component.ScoreComponent.Kind())
	return s
}

func hitEvents(w *ecs.World) []ecs.HitEvent {
	var out []ecs.HitEvent
	for _, d := range w.Events().OfType(ecs.EventHit) {
		if h, ok := d.(ecs.HitEvent); ok {
			out = append(out, h)
		}
	}
	return out
}

var strictRules = component.Rules{Variant: "v1", SpeedUp: 1, TieBreak: common.TieStrict, Reset: component.ResetServeRight}
