package entity

import (
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"transform": addTransform,
	"ball":      addBall,
	"paddle":    addPaddle,
	"collider":  addCollider,
	"wall":      addWall,
	"input":     addInput,
	"enemy_ai":  addEnemyAI,
}

// transform first so later builders can read the spawn position.
var componentBuildOrder = []string{"transform"}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	names := make([]string, 0, len(spec.Components))
	for name := range spec.Components {
		names = append(names, name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		return buildRank(names[i]) < buildRank(names[j]) ||
			(buildRank(names[i]) == buildRank(names[j]) && names[i] < names[j])
	})

	for _, name := range names {
		builder, ok := componentRegistry[name]
		if !ok {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

func buildRank(name string) int {
	for i, n := range componentBuildOrder {
		if n == name {
			return i
		}
	}
	return len(componentBuildOrder)
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

func addBall(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.BallComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ball spec: %w", err)
	}
	if spec.Radius <= 0 {
		return fmt.Errorf("ball radius must be positive, got %v", spec.Radius)
	}
	v := cp.Vector{X: spec.Velocity.X, Y: spec.Velocity.Y}
	return ecs.Add(w, e, component.BallComponent.Kind(), &component.Ball{
		Velocity: v,
		Initial:  v,
		Radius:   spec.Radius,
	})
}

// addPaddle also sizes the transform so the collider box matches the paddle.
func addPaddle(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PaddleComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode paddle spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("paddle size must be positive, got %vx%v", spec.Width, spec.Height)
	}
	side, err := component.ParsePaddleSide(spec.Side)
	if err != nil {
		return err
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.ScaleX = spec.Width
		t.ScaleY = spec.Height
	}
	return ecs.Add(w, e, component.PaddleComponent.Kind(), &component.Paddle{
		Width:  spec.Width,
		Height: spec.Height,
		Speed:  spec.Speed,
		Side:   side,
	})
}

func addCollider(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{})
}

func addWall(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.WallComponent.Kind(), &component.Wall{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addEnemyAI(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.EnemyAIComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode enemy_ai spec: %w", err)
	}
	return ecs.Add(w, e, component.EnemyAIComponent.Kind(), &component.EnemyAI{Script: spec.Script})
}
