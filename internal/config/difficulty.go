package config

import (
	"math"

	"github.com/vovakirdan/voltkid/internal/circuit"
)

// DifficultyPreset represents a named grading level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in increasing strictness.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// IsValidPreset reports whether p names a preset. Empty means normal.
func IsValidPreset(p DifficultyPreset) bool {
	switch p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ThresholdsForPreset returns the star thresholds for a preset.
// Normal matches circuit.DefaultThresholds.
func ThresholdsForPreset(p DifficultyPreset) circuit.StarThresholds {
	switch p {
	case DifficultyEasy:
		return circuit.StarThresholds{Three: 1.25, Two: 2.0}
	case DifficultyHard:
		return circuit.StarThresholds{Three: 1.0, Two: 1.25}
	default:
		return circuit.DefaultThresholds
	}
}

// StepBudget returns the largest step count that still earns stars
// for the given optimal count.
func StepBudget(th circuit.StarThresholds, optimal, stars int) int {
	switch stars {
	case 3:
		return int(math.Floor(float64(optimal) * th.Three))
	case 2:
		return int(math.Floor(float64(optimal) * th.Two))
	default:
		return math.MaxInt
	}
}
