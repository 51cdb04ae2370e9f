package component

// Wall marks static arena walls.
type Wall struct{}

var WallComponent = NewComponent[Wall]()

// Collider marks entities the ball is tested against.
type Collider struct{}

var ColliderComponent = NewComponent[Collider]()
