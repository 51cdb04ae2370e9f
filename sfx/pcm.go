package sfx

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gopxl/beep"
)

const bufferFrames = 512

// EncodePCM16 drains s into interleaved little-endian 16-bit stereo PCM,
// the byte layout ebiten's audio players read.
func EncodePCM16(s beep.Streamer) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("sfx: encode: nil streamer")
	}
	var out []byte
	buf := make([][2]float64, bufferFrames)
	frame := make([]byte, 4)
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			binary.LittleEndian.PutUint16(frame[0:2], uint16(toInt16(sample[0])))
			binary.LittleEndian.PutUint16(frame[2:4], uint16(toInt16(sample[1])))
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("sfx: encode: %w", err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
