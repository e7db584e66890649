package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID         int               `yaml:"id"`
	Title      string            `yaml:"title"`
	Star       int               `yaml:"star,omitempty"`
	Radius     *int              `yaml:"radius"`
	Start      *Position         `yaml:"start"`
	Components []Component       `yaml:"components"`
	Metadata   map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level file holding exactly one level.
func ParseYAML(data []byte) ([]Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.Radius == nil {
		return nil, fmt.Errorf("yaml: missing radius")
	}
	if yl.Start == nil {
		return nil, fmt.Errorf("yaml: missing start")
	}

	return []Level{{
		ID:         yl.ID,
		Title:      yl.Title,
		Star:       yl.Star,
		Radius:     *yl.Radius,
		Start:      *yl.Start,
		Components: yl.Components,
		Metadata:   yl.Metadata,
	}}, nil
}
