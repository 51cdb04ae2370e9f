package system

import (
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// PaddleControllerSystem moves input-driven paddles by their speed each tick.
type PaddleControllerSystem struct{}

func NewPaddleControllerSystem() *PaddleControllerSystem {
	return &PaddleControllerSystem{}
}

func (p *PaddleControllerSystem) Update(w *ecs.World) {
	if w == nil || MatchOver(w) {
		return
	}
	arena, ok := findArena(w)
	if !ok {
		return
	}

	ecs.ForEach3(w,
		component.PaddleComponent.Kind(),
		component.InputComponent.Kind(),
		component.TransformComponent.Kind(),
		func(_ ecs.Entity, paddle *component.Paddle, input *component.Input, t *component.Transform) {
			switch {
			case input.MoveY > 0:
				t.Y += paddle.Speed
			case input.MoveY < 0:
				t.Y -= paddle.Speed
			}
			clampPaddle(t, paddle, arena)
		})
}
