package formats

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONLevel mirrors the levels.json asset shipped with the mobile game.
// Presentation-only keys such as floatOffset are ignored.
type JSONLevel struct {
	ID         int         `json:"id"`
	Title      string      `json:"title"`
	Star       int         `json:"star"`
	Size       *int        `json:"size"`
	Components []Component `json:"components"`
	StartPos   *Position   `json:"startPos"`
}

// ParseJSON parses either a single level object or an array of levels.
func ParseJSON(data []byte) ([]Level, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("json: empty document")
	}

	var raw []JSONLevel
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	} else {
		var one JSONLevel
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
		raw = []JSONLevel{one}
	}

	out := make([]Level, 0, len(raw))
	for i, jl := range raw {
		if jl.Size == nil {
			return nil, fmt.Errorf("json: level %d: missing size", i)
		}
		if jl.StartPos == nil {
			return nil, fmt.Errorf("json: level %d: missing startPos", i)
		}
		out = append(out, Level{
			ID:         jl.ID,
			Title:      jl.Title,
			Star:       jl.Star,
			Radius:     *jl.Size,
			Start:      *jl.StartPos,
			Components: jl.Components,
		})
	}
	return out, nil
}
