package formats

import (
	"encoding/json"
	"fmt"
)

// JSONLevel is the on-disk JSON structure of a level asset.
type JSONLevel struct {
	LevelNumber int      `json:"level_number"`
	GridWidth   int      `json:"grid_width"`
	GridHeight  int      `json:"grid_height"`
	MoveCount   int      `json:"move_count"`
	Grid        []string `json:"grid"`
}

func init() {
	Register(".json", ParseJSON)
}

// ParseJSON parses a JSON level asset.
func ParseJSON(data []byte) (Level, error) {
	var jl JSONLevel
	if err := json.Unmarshal(data, &jl); err != nil {
		return Level{}, fmt.Errorf("json unmarshal: %w", err)
	}

	return Level{
		Number: jl.LevelNumber,
		Width:  jl.GridWidth,
		Height: jl.GridHeight,
		Moves:  jl.MoveCount,
		Grid:   jl.Grid,
	}, nil
}

// EncodeJSON renders a level in the JSON asset format.
func EncodeJSON(l Level) ([]byte, error) {
	return json.MarshalIndent(JSONLevel{
		LevelNumber: l.Number,
		GridWidth:   l.Width,
		GridHeight:  l.Height,
		MoveCount:   l.Moves,
		Grid:        l.Grid,
	}, "", "  ")
}
