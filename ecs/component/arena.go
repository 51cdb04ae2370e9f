package component

import (
	"fmt"

	"github.com/milk9111/pong/common"
)

// Arena stores the playfield extents. The playfield is centered on the origin.
type Arena struct {
	HalfWidth     float64
	HalfHeight    float64
	WallThickness float64
	PaddleGap     float64
}

var ArenaComponent = NewComponent[Arena]()

// PaddleLimit is the largest |y| a paddle center may reach without entering a wall.
func (a Arena) PaddleLimit(paddleHeight float64) float64 {
	limit := a.HalfHeight - a.WallThickness/2 - paddleHeight/2
	if limit < 0 {
		return 0
	}
	return limit
}

// ResetMode selects how the ball's velocity is restored after a goal.
type ResetMode int

const (
	// ResetServeRight keeps the current velocity and forces it rightward.
	ResetServeRight ResetMode = iota
	// ResetInitial restores the spawn velocity.
	ResetInitial
	// ResetServeAway restores the spawn speed, heading away from the exit side.
	ResetServeAway
)

func ParseResetMode(s string) (ResetMode, error) {
	switch s {
	case "", "serve_right":
		return ResetServeRight, nil
	case "initial":
		return ResetInitial, nil
	case "serve_away":
		return ResetServeAway, nil
	}
	return ResetServeRight, fmt.Errorf("unknown reset mode %q", s)
}

func (m ResetMode) String() string {
	switch m {
	case ResetInitial:
		return "initial"
	case ResetServeAway:
		return "serve_away"
	}
	return "serve_right"
}

// Rules holds the per-variant gameplay switches.
type Rules struct {
	Variant  string
	SpeedUp  float64
	TieBreak common.TieBreak
	Reset    ResetMode
}

var RulesComponent = NewComponent[Rules]()
