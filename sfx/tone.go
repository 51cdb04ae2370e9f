package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate matches the ebiten audio context created by the game.
const SampleRate = beep.SampleRate(44100)

// Tone is a square wave with a linear decay, the classic arcade blip.
type Tone struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
	total  int
}

func NewTone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) *Tone {
	return &Tone{
		sr:     sr,
		freq:   freq,
		volume: volume,
		total:  sr.N(d),
	}
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		phase := math.Mod(float64(t.pos)*t.freq/float64(t.sr), 1)
		v := t.volume
		if phase >= 0.5 {
			v = -v
		}
		v *= 1 - float64(t.pos)/float64(t.total)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error {
	return nil
}

// PaddleHit is a short high blip.
func PaddleHit(sr beep.SampleRate) beep.Streamer {
	return NewTone(sr, 480, 60*time.Millisecond, 0.3)
}

// WallHit is lower and shorter than PaddleHit.
func WallHit(sr beep.SampleRate) beep.Streamer {
	return NewTone(sr, 240, 40*time.Millisecond, 0.25)
}

// Goal is a falling two-note jingle.
func Goal(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		NewTone(sr, 330, 120*time.Millisecond, 0.3),
		beep.Silence(sr.N(30*time.Millisecond)),
		NewTone(sr, 165, 200*time.Millisecond, 0.3),
	)
}
