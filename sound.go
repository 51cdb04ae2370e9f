package main

import (
	"log/slog"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/sfx"
)

// SoundSystem plays a blip for every hit and goal event of the tick.
type SoundSystem struct {
	paddle *audio.Player
	wall   *audio.Player
	goal   *audio.Player
}

func NewSoundSystem(logger *slog.Logger) *SoundSystem {
	ctx := audio.NewContext(int(sfx.SampleRate))
	load := func(name string, s beep.Streamer) *audio.Player {
		pcm, err := sfx.EncodePCM16(s)
		if err != nil {
			logger.Warn("audio: render sound", "sound", name, "err", err)
			return nil
		}
		return ctx.NewPlayerFromBytes(pcm)
	}
	return &SoundSystem{
		paddle: load("paddle", sfx.PaddleHit(sfx.SampleRate)),
		wall:   load("wall", sfx.WallHit(sfx.SampleRate)),
		goal:   load("goal", sfx.Goal(sfx.SampleRate)),
	}
}

func (s *SoundSystem) Update(w *ecs.World) {
	for _, evt := range w.Events().Items() {
		switch data := evt.Data.(type) {
		case ecs.HitEvent:
			if data.Paddle {
				play(s.paddle)
			} else {
				play(s.wall)
			}
		case ecs.GoalEvent:
			play(s.goal)
		}
	}
}

func play(p *audio.Player) {
	if p == nil {
		return
	}
	_ = p.Rewind()
	p.Play()
}
