package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = colornames.Black
	fieldColor      = colornames.White
	netColor        = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40}
	debugColor      = colornames.Red
)

// Renderer draws the world in screen space: arena center at the middle of the
// screen, y growing downward.
type Renderer struct {
	debug bool
	face  text.Face
}

func NewRenderer(debug bool) *Renderer {
	return &Renderer{
		debug: debug,
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	_, arena, ok := ecs.First(w, component.ArenaComponent.Kind())
	if !ok {
		return
	}
	toScreen := func(x, y float64) (float32, float32) {
		return float32(x + arena.HalfWidth), float32(arena.HalfHeight - y)
	}

	// net
	for y := 0.0; y < arena.HalfHeight*2; y += 20 {
		vector.FillRect(screen, float32(arena.HalfWidth)-1, float32(y), 2, 10, netColor, false)
	}

	for _, e := range w.Query(component.ColliderComponent.Kind(), component.TransformComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		x, y := toScreen(t.X-t.ScaleX/2, t.Y+t.ScaleY/2)
		vector.FillRect(screen, x, y, float32(t.ScaleX), float32(t.ScaleY), fieldColor, false)
		if r.debug {
			vector.StrokeRect(screen, x, y, float32(t.ScaleX), float32(t.ScaleY), 1, debugColor, false)
		}
	}

	ecs.ForEach2(w, component.BallComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, ball *component.Ball, t *component.Transform) {
		cx, cy := toScreen(t.X, t.Y)
		vector.FillCircle(screen, cx, cy, float32(ball.Radius), fieldColor, true)
		if r.debug {
			vector.StrokeCircle(screen, cx, cy, float32(ball.Radius), 1, debugColor, true)
		}
	})

	r.drawHUD(w, screen, *arena)

	if r.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.1f  FPS: %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

func (r *Renderer) drawHUD(w *ecs.World, screen *ebiten.Image, arena component.Arena) {
	_, score, ok := ecs.First(w, component.ScoreComponent.Kind())
	if !ok {
		return
	}
	rules := component.Rules{}
	if _, rp, ok := ecs.First(w, component.RulesComponent.Kind()); ok {
		rules = *rp
	}

	r.drawCentered(screen, fmt.Sprintf("%d   %d", score.Enemy, score.Player), arena.HalfWidth, arena.WallThickness+16)
	r.drawCentered(screen, rules.Variant, arena.HalfWidth, arena.HalfHeight*2-arena.WallThickness-18)

	if score.Over {
		r.drawCentered(screen, fmt.Sprintf("%s wins - press Enter", score.Winner), arena.HalfWidth, arena.HalfHeight-20)
	}
}

func (r *Renderer) drawCentered(screen *ebiten.Image, s string, cx, y float64) {
	width, _ := text.Measure(s, r.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-width/2, y)
	op.ColorScale.ScaleWithColor(fieldColor)
	text.Draw(screen, s, r.face, op)
}
