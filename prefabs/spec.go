package prefabs

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// GameFile is the prefab holding arena constants and variant definitions.
const GameFile = "game.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type GameSpec struct {
	Title    string                 `yaml:"title"`
	Width    int                    `yaml:"width"`
	Height   int                    `yaml:"height"`
	TPS      int                    `yaml:"tps"`
	WinScore int                    `yaml:"win_score"`
	Arena    ArenaSpec              `yaml:"arena"`
	Variants map[string]VariantSpec `yaml:"variants"`
}

type ArenaSpec struct {
	HalfWidth     float64 `yaml:"half_width"`
	HalfHeight    float64 `yaml:"half_height"`
	WallThickness float64 `yaml:"wall_thickness"`
	PaddleGap     float64 `yaml:"paddle_gap"`
}

// VariantSpec lists the prefabs a variant spawns and its gameplay switches.
type VariantSpec struct {
	Description string   `yaml:"description"`
	Prefabs     []string `yaml:"prefabs"`
	SpeedUp     float64  `yaml:"speed_up"`
	TieBreak    string   `yaml:"tie_break"`
	Reset       string   `yaml:"reset"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameFile)
	if err != nil {
		return nil, err
	}
	if spec.Arena.HalfWidth <= 0 || spec.Arena.HalfHeight <= 0 {
		return nil, fmt.Errorf("prefabs: %s: arena extents must be positive", GameFile)
	}
	if len(spec.Variants) == 0 {
		return nil, fmt.Errorf("prefabs: %s: no variants defined", GameFile)
	}
	if spec.Title == "" {
		spec.Title = "Pong"
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		spec.Width = int(spec.Arena.HalfWidth * 2)
		spec.Height = int(spec.Arena.HalfHeight * 2)
	}
	if spec.TPS <= 0 {
		spec.TPS = 60
	}
	return &spec, nil
}

// Variant looks up a variant by name.
func (g *GameSpec) Variant(name string) (VariantSpec, error) {
	v, ok := g.Variants[name]
	if !ok {
		return VariantSpec{}, fmt.Errorf("prefabs: unknown variant %q (have %v)", name, g.VariantNames())
	}
	return v, nil
}

// VariantNames returns the variant names in sorted order.
func (g *GameSpec) VariantNames() []string {
	names := make([]string, 0, len(g.Variants))
	for name := range g.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
