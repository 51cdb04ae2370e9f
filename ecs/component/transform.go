package component

// Transform places an entity in world space: origin at the arena center, y up.
// Walls and paddles keep their box size in ScaleX/ScaleY.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
