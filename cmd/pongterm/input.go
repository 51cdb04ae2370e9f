package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// Terminals only report key presses, never releases, so a press counts as
// held for holdTicks. Auto-repeat keeps a held key alive.
const holdTicks = 8

// KeyInputSystem turns tcell key presses into Input components.
type KeyInputSystem struct {
	tick      int
	upUntil   int
	downUntil int
}

func NewKeyInputSystem() *KeyInputSystem {
	return &KeyInputSystem{}
}

// HandleKey records a key press. It reports whether the key moves a paddle.
func (k *KeyInputSystem) HandleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyUp || ev.Rune() == 'w':
		k.upUntil = k.tick + holdTicks
		k.downUntil = 0
		return true
	case ev.Key() == tcell.KeyDown || ev.Rune() == 's':
		k.downUntil = k.tick + holdTicks
		k.upUntil = 0
		return true
	}
	return false
}

func (k *KeyInputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	k.tick++

	moveY := 0.0
	if k.tick <= k.upUntil {
		moveY = 1
	} else if k.tick <= k.downUntil {
		moveY = -1
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.MoveY = moveY
	})
}
