package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/prefabs"
)

// Scripts define `decide(ball, paddle)` and return the vertical move they want;
// the system still caps it at the paddle speed and the playfield.
const enemyDispatchScript = `
__move := decide(__ball, __paddle)
`

type enemyScript struct {
	path     string
	compiled *tengo.Compiled
	failed   bool
}

func loadEnemyScript(path string) (*enemyScript, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	return compileEnemyScript(path, src)
}

func compileEnemyScript(path string, src []byte) (*enemyScript, error) {
	script := tengo.NewScript(append(append([]byte{}, src...), enemyDispatchScript...))
	_ = script.Add("__ball", map[string]any{})
	_ = script.Add("__paddle", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", path, err)
	}
	return &enemyScript{path: path, compiled: compiled}, nil
}

func (s *enemyScript) decide(ball *component.Ball, ballT, paddleT *component.Transform) (float64, error) {
	if err := s.compiled.Set("__ball", map[string]any{
		"x":      ballT.X,
		"y":      ballT.Y,
		"vx":     ball.Velocity.X,
		"vy":     ball.Velocity.Y,
		"radius": ball.Radius,
	}); err != nil {
		return 0, err
	}
	if err := s.compiled.Set("__paddle", map[string]any{
		"x": paddleT.X,
		"y": paddleT.Y,
	}); err != nil {
		return 0, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, fmt.Errorf("script: run %s: %w", s.path, err)
	}

	move := s.compiled.Get("__move")
	switch move.ValueType() {
	case "float", "int":
		return move.Float(), nil
	}
	return 0, fmt.Errorf("script: %s: decide returned %s, want a number", s.path, move.ValueType())
}
