package common

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Side names the face of a box the ball touched, or the arena edge it left by.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

// Horizontal reports whether the side is left or right.
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}

// TieBreak decides which axis wins when the contact offset is diagonal.
type TieBreak int

const (
	// TieStrict picks left/right only when |dx| > |dy|.
	TieStrict TieBreak = iota
	// TieInclusive picks left/right when |dx| >= |dy|.
	TieInclusive
)

// ParseTieBreak maps "strict"/"inclusive" to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "", "strict":
		return TieStrict, nil
	case "inclusive":
		return TieInclusive, nil
	}
	return TieStrict, fmt.Errorf("unknown tie break %q", s)
}

func (t TieBreak) String() string {
	if t == TieInclusive {
		return "inclusive"
	}
	return "strict"
}

// BoxFromCenter builds an axis-aligned box from its center and full size.
func BoxFromCenter(center cp.Vector, width, height float64) cp.BB {
	return cp.NewBBForExtents(center, width/2, height/2)
}

// CollideWithSide tests a circle against an axis-aligned box. On contact it
// reports which face of the box the circle is touching.
func CollideWithSide(center cp.Vector, radius float64, box cp.BB, tie TieBreak) (Side, bool) {
	closest := box.ClampVect(&center)
	offset := center.Sub(closest)
	if offset.LengthSq() > radius*radius {
		return 0, false
	}

	ax, ay := abs(offset.X), abs(offset.Y)
	xWins := ax > ay
	if tie == TieInclusive {
		xWins = ax >= ay
	}

	if xWins {
		if offset.X < 0 {
			return SideLeft, true
		}
		return SideRight, true
	}
	if offset.Y > 0 {
		return SideTop, true
	}
	return SideBottom, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
