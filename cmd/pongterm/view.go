package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

const (
	ballRune   = 'O'
	paddleRune = '█'
	wallRune   = '▀'
	netRune    = '┆'
)

var (
	fieldStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	netStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	hudStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// View draws the world into a tcell screen, stretching the arena over the
// whole terminal.
type View struct {
	screen tcell.Screen
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

func (v *View) Draw(w *ecs.World, paused bool) {
	v.screen.Clear()
	_, arena, ok := ecs.First(w, component.ArenaComponent.Kind())
	if !ok {
		v.screen.Show()
		return
	}
	cols, rows := v.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	m := cellMapper{arena: *arena, cols: cols, rows: rows}

	mid := cols / 2
	for y := 0; y < rows; y += 2 {
		v.screen.SetContent(mid, y, netRune, nil, netStyle)
	}

	for _, e := range w.Query(component.ColliderComponent.Kind(), component.TransformComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		r := wallRune
		if ecs.Has(w, e, component.PaddleComponent.Kind()) {
			r = paddleRune
		}
		x0, y0 := m.cell(t.X-t.ScaleX/2, t.Y+t.ScaleY/2)
		x1, y1 := m.cell(t.X+t.ScaleX/2, t.Y-t.ScaleY/2)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				v.screen.SetContent(x, y, r, nil, fieldStyle)
			}
		}
	}

	ecs.ForEach2(w, component.BallComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Ball, t *component.Transform) {
		x, y := m.cell(t.X, t.Y)
		v.screen.SetContent(x, y, ballRune, nil, fieldStyle)
	})

	if _, score, ok := ecs.First(w, component.ScoreComponent.Kind()); ok {
		v.centered(fmt.Sprintf(" %d  %d ", score.Enemy, score.Player), 1)
		if score.Over {
			v.centered(fmt.Sprintf(" %s wins - Enter to restart, q to quit ", score.Winner), rows/2)
		}
	}
	if paused {
		v.centered(" paused - p to resume ", rows/2+1)
	}

	v.screen.Show()
}

func (v *View) centered(s string, y int) {
	cols, _ := v.screen.Size()
	x := (cols - runewidth.StringWidth(s)) / 2
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, hudStyle)
		x += runewidth.RuneWidth(r)
	}
}

// cellMapper converts world coordinates (origin at center, y up) to terminal cells.
type cellMapper struct {
	arena      component.Arena
	cols, rows int
}

func (m cellMapper) cell(x, y float64) (int, int) {
	tx := (x + m.arena.HalfWidth) / (m.arena.HalfWidth * 2)
	ty := (m.arena.HalfHeight - y) / (m.arena.HalfHeight * 2)
	col := int(math.Floor(common.Lerp(0, float64(m.cols), tx)))
	row := int(math.Floor(common.Lerp(0, float64(m.rows), ty)))
	return clampInt(col, 0, m.cols-1), clampInt(row, 0, m.rows-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
