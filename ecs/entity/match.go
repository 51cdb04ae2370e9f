package entity

import (
	"fmt"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/prefabs"
)

// BuildMatch spawns everything a variant needs into w: the arena and its
// rules, the top and bottom walls, the scoreboard and the variant's prefabs.
func BuildMatch(w *ecs.World, game *prefabs.GameSpec, variant string) error {
	if w == nil || game == nil {
		return fmt.Errorf("entity: build match: nil world or game spec")
	}
	vs, err := game.Variant(variant)
	if err != nil {
		return fmt.Errorf("entity: build match: %w", err)
	}

	arena := component.Arena{
		HalfWidth:     game.Arena.HalfWidth,
		HalfHeight:    game.Arena.HalfHeight,
		WallThickness: game.Arena.WallThickness,
		PaddleGap:     game.Arena.PaddleGap,
	}
	rules, err := rulesFor(variant, vs)
	if err != nil {
		return fmt.Errorf("entity: build match %s: %w", variant, err)
	}

	if _, err := NewArena(w, arena, rules); err != nil {
		return err
	}
	for _, y := range []float64{arena.HalfHeight, -arena.HalfHeight} {
		if _, err := NewWall(w, arena, y); err != nil {
			return err
		}
	}
	if _, err := NewScoreboard(w, game.WinScore); err != nil {
		return err
	}

	for _, prefab := range vs.Prefabs {
		e, err := BuildEntity(w, prefab)
		if err != nil {
			return fmt.Errorf("entity: build match %s: %w", variant, err)
		}
		if err := placePaddle(w, e, arena); err != nil {
			return fmt.Errorf("entity: build match %s: %w", variant, err)
		}
	}

	if n := len(w.Query(component.BallComponent.Kind())); n != 1 {
		return fmt.Errorf("entity: build match %s: want exactly one ball, got %d", variant, n)
	}
	return nil
}

func rulesFor(variant string, vs prefabs.VariantSpec) (component.Rules, error) {
	tie, err := common.ParseTieBreak(vs.TieBreak)
	if err != nil {
		return component.Rules{}, err
	}
	reset, err := component.ParseResetMode(vs.Reset)
	if err != nil {
		return component.Rules{}, err
	}
	speedUp := vs.SpeedUp
	if speedUp <= 0 {
		speedUp = 1
	}
	return component.Rules{Variant: variant, SpeedUp: speedUp, TieBreak: tie, Reset: reset}, nil
}

func NewArena(w *ecs.World, arena component.Arena, rules component.Rules) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ArenaComponent.Kind(), &arena); err != nil {
		return 0, fmt.Errorf("entity: arena: %w", err)
	}
	if err := ecs.Add(w, e, component.RulesComponent.Kind(), &rules); err != nil {
		return 0, fmt.Errorf("entity: arena: %w", err)
	}
	return e, nil
}

// NewWall spawns a horizontal wall centered at (0, y) spanning the arena width.
func NewWall(w *ecs.World, arena component.Arena, y float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	t := &component.Transform{
		Y:      y,
		ScaleX: arena.HalfWidth*2 + arena.WallThickness,
		ScaleY: arena.WallThickness,
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), t); err != nil {
		return 0, fmt.Errorf("entity: wall: %w", err)
	}
	if err := ecs.Add(w, e, component.WallComponent.Kind(), &component.Wall{}); err != nil {
		return 0, fmt.Errorf("entity: wall: %w", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{}); err != nil {
		return 0, fmt.Errorf("entity: wall: %w", err)
	}
	return e, nil
}

func NewScoreboard(w *ecs.World, winScore int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ScoreComponent.Kind(), &component.Score{WinScore: winScore}); err != nil {
		return 0, fmt.Errorf("entity: scoreboard: %w", err)
	}
	return e, nil
}

// placePaddle moves a freshly built paddle next to its side of the arena.
// Entities without a paddle are left where their prefab put them.
func placePaddle(w *ecs.World, e ecs.Entity, arena component.Arena) error {
	paddle, ok := ecs.Get(w, e, component.PaddleComponent.Kind())
	if !ok {
		return nil
	}
	x := arena.HalfWidth - paddle.Width - arena.PaddleGap
	if paddle.Side == component.SideEnemy {
		x = -x
	}
	return SetEntityTransform(w, e, x, 0, 0)
}
