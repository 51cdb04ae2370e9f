package component

import "github.com/jakecoffman/cp"

// Ball is the single moving circle. Velocity is in world units per tick.
type Ball struct {
	Velocity cp.Vector
	Initial  cp.Vector
	Radius   float64
}

var BallComponent = NewComponent[Ball]()
