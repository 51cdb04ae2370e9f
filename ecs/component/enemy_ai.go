package component

// EnemyAI drives a paddle toward the ball. Script optionally names a tengo
// script under prefabs/scripts that decides each tick's move.
type EnemyAI struct {
	Script string
}

var EnemyAIComponent = NewComponent[EnemyAI]()
