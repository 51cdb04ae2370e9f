package entity

import (
	"strings"
	"testing"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/prefabs"
)

func loadGame(t *testing.T) *prefabs.GameSpec {
	t.Helper()
	game, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	return game
}

func TestBuildMatchVariants(t *testing.T) {
	cases := []struct {
		variant   string
		paddles   int
		enemy     bool
		tie       common.TieBreak
		reset     component.ResetMode
		speedUpGT bool
	}{
		{variant: "v1", paddles: 1, tie: common.TieStrict, reset: component.ResetServeRight},
		{variant: "v2", paddles: 1, tie: common.TieInclusive, reset: component.ResetInitial},
		{variant: "v3", paddles: 2, enemy: true, tie: common.TieInclusive, reset: component.ResetServeAway, speedUpGT: true},
	}
	for _, tc := range cases {
		t.Run(tc.variant, func(t *testing.T) {
			w := ecs.NewWorld()
			if err := BuildMatch(w, loadGame(t), tc.variant); err != nil {
				t.Fatalf("BuildMatch: %v", err)
			}

			if n := len(w.Query(component.BallComponent.Kind())); n != 1 {
				t.Fatalf("balls = %d, want 1", n)
			}
			if n := len(w.Query(component.WallComponent.Kind(), component.ColliderComponent.Kind())); n != 2 {
				t.Fatalf("walls = %d, want 2", n)
			}
			if n := len(w.Query(component.PaddleComponent.Kind())); n != tc.paddles {
				t.Fatalf("paddles = %d, want %d", n, tc.paddles)
			}
			if got := len(w.Query(component.EnemyAIComponent.Kind())) > 0; got != tc.enemy {
				t.Fatalf("enemy present = %v, want %v", got, tc.enemy)
			}

			_, rules, ok := ecs.First(w, component.RulesComponent.Kind())
			if !ok {
				t.Fatalf("no rules")
			}
			if rules.TieBreak != tc.tie || rules.Reset != tc.reset || (rules.SpeedUp > 1) != tc.speedUpGT {
				t.Fatalf("rules = %+v", *rules)
			}
			if _, score, ok := ecs.First(w, component.ScoreComponent.Kind()); !ok || score.WinScore != 11 {
				t.Fatalf("scoreboard missing or wrong win score")
			}
		})
	}
}

func TestBuildMatchPlacesPaddles(t *testing.T) {
	w := ecs.NewWorld()
	if err := BuildMatch(w, loadGame(t), "v3"); err != nil {
		t.Fatalf("BuildMatch: %v", err)
	}
	ecs.ForEach2(w, component.PaddleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Paddle, tr *component.Transform) {
		want := 390.0
		if p.Side == component.SideEnemy {
			want = -390
		}
		if tr.X != want || tr.Y != 0 {
			t.Fatalf("%s paddle at (%v,%v), want (%v,0)", p.Side, tr.X, tr.Y, want)
		}
		if tr.ScaleX != p.Width || tr.ScaleY != p.Height {
			t.Fatalf("%s paddle collider %vx%v, want %vx%v", p.Side, tr.ScaleX, tr.ScaleY, p.Width, p.Height)
		}
	})

	_, ball, _ := ecs.First(w, component.BallComponent.Kind())
	if ball.Radius != 5 || ball.Velocity.X != 2.5 || ball.Velocity.Y != 1 || ball.Initial != ball.Velocity {
		t.Fatalf("ball = %+v", *ball)
	}
}

func TestBuildMatchErrors(t *testing.T) {
	game := loadGame(t)

	if err := BuildMatch(ecs.NewWorld(), game, "v9"); err == nil || !strings.Contains(err.Error(), "unknown variant") {
		t.Fatalf("unknown variant: got %v", err)
	}

	broken := *game
	broken.Variants = map[string]prefabs.VariantSpec{
		"noball":   {Prefabs: []string{"player_paddle.yaml"}},
		"twoballs": {Prefabs: []string{"ball.yaml", "ball.yaml"}},
		"badtie":   {Prefabs: []string{"ball.yaml"}, TieBreak: "diagonal"},
		"missing":  {Prefabs: []string{"nope.yaml"}},
	}
	for name := range broken.Variants {
		t.Run(name, func(t *testing.T) {
			if err := BuildMatch(ecs.NewWorld(), &broken, name); err == nil {
				t.Fatalf("expected an error for %s", name)
			}
		})
	}

	if err := BuildMatch(nil, game, "v1"); err == nil {
		t.Fatalf("expected an error for a nil world")
	}
}

func TestBuildEntityRejectsPrefabWithoutComponents(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := BuildEntity(w, "game.yaml"); err == nil {
		t.Fatalf("expected game.yaml to be rejected as an entity prefab")
	}
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("failed build left %d entities", n)
	}
}
