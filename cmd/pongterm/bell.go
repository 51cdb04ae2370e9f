package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/pong/ecs"
)

// BellSystem rings the terminal bell when the ball leaves a paddle.
type BellSystem struct {
	screen tcell.Screen
	rings  int
}

func NewBellSystem(screen tcell.Screen) *BellSystem {
	return &BellSystem{screen: screen}
}

func (b *BellSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, data := range w.Events().OfType(ecs.EventHit) {
		hit, ok := data.(ecs.HitEvent)
		if !ok || !hit.Paddle {
			continue
		}
		b.rings++
		_ = b.screen.Beep()
	}
}
