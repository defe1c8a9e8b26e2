package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel mirrors JSONLevel for hand-authored YAML assets.
type YAMLLevel struct {
	LevelNumber int      `yaml:"level_number"`
	GridWidth   int      `yaml:"grid_width"`
	GridHeight  int      `yaml:"grid_height"`
	MoveCount   int      `yaml:"move_count"`
	Grid        []string `yaml:"grid"`
}

func init() {
	Register(".yaml", ParseYAML)
	Register(".yml", ParseYAML)
}

// ParseYAML parses a YAML level asset.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	return Level{
		Number: yl.LevelNumber,
		Width:  yl.GridWidth,
		Height: yl.GridHeight,
		Moves:  yl.MoveCount,
		Grid:   yl.Grid,
	}, nil
}
