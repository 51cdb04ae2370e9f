package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// KeyboardInputSystem copies arrow keys, W/S and the first gamepad's left
// stick into every Input component.
type KeyboardInputSystem struct{}

func NewKeyboardInputSystem() *KeyboardInputSystem {
	return &KeyboardInputSystem{}
}

func (k *KeyboardInputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	const stickDeadzone = 0.2

	up := ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	down := ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)

	moveY := 0.0
	if up {
		moveY += 1
	}
	if down {
		moveY -= 1
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		// stick up is negative
		leftY := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(leftY) > stickDeadzone {
			moveY = -leftY
		}
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.MoveY = moveY
	})
}
