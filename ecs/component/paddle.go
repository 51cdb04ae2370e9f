package component

import "fmt"

type PaddleSide int

const (
	SidePlayer PaddleSide = iota
	SideEnemy
)

func ParsePaddleSide(s string) (PaddleSide, error) {
	switch s {
	case "", "player":
		return SidePlayer, nil
	case "enemy":
		return SideEnemy, nil
	}
	return SidePlayer, fmt.Errorf("unknown paddle side %q", s)
}

func (s PaddleSide) String() string {
	if s == SideEnemy {
		return "enemy"
	}
	return "player"
}

type Paddle struct {
	Width  float64
	Height float64
	Speed  float64
	Side   PaddleSide
}

var PaddleComponent = NewComponent[Paddle]()
