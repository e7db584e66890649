// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"strings"
)

// Component is a component entry as written in a level file.
type Component struct {
	Type string `json:"type" yaml:"type"`
	Q    int    `json:"q" yaml:"q"`
	R    int    `json:"r" yaml:"r"`
}

// Position is an axial position as written in a level file.
type Position struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// Level is a parsed level, independent of the file format.
type Level struct {
	ID         int
	Title      string
	Star       int // star rating the designer targets, informational
	Radius     int
	Start      Position
	Components []Component
	Metadata   map[string]string
}

// Parser decodes one file into one or more levels.
type Parser func(data []byte) ([]Level, error)

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

// ParserFor returns the parser registered for ext.
func ParserFor(ext string) (Parser, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return ParseJSON, nil
	case ".yaml", ".yml":
		return ParseYAML, nil
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}
