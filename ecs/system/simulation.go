package system

import (
	"log/slog"

	"github.com/milk9111/pong/ecs"
)

// NewSimulation returns the fixed-tick gameplay systems in run order:
// movement, then collision, then reset and scoring. Frontends add their own
// input system before these and presentation systems after.
func NewSimulation(logger *slog.Logger) []ecs.System {
	return []ecs.System{
		NewPaddleControllerSystem(),
		NewEnemyAISystem(logger),
		NewBallMovementSystem(),
		NewCollisionSystem(logger),
		NewResetSystem(logger),
		NewScoreSystem(logger),
	}
}
