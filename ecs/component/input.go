package component

// Input stores per-frame input state for an entity.
// MoveY is +1 while up is held and -1 while down is held.
type Input struct {
	MoveY float64
}

var InputComponent = NewComponent[Input]()
