package system

import (
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

type BallMovementSystem struct{}

func NewBallMovementSystem() *BallMovementSystem {
	return &BallMovementSystem{}
}

func (b *BallMovementSystem) Update(w *ecs.World) {
	if w == nil || MatchOver(w) {
		return
	}
	ecs.ForEach2(w, component.BallComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, ball *component.Ball, t *component.Transform) {
		t.X += ball.Velocity.X
		t.Y += ball.Velocity.Y
	})
}
