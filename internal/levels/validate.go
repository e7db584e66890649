package levels

import (
	"fmt"

	"github.com/vovakirdan/voltkid/internal/circuit"
	"github.com/vovakirdan/voltkid/internal/hex"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a level can be played:
//   - it has a positive id and a non-negative radius
//   - the start and every component lie on the grid
//   - no two components share a hex
//   - there is at least one battery and one bulb
func Validate(l Level) error {
	if l.ID <= 0 {
		return ValidationError{
			Code:    "MISSING_ID",
			Message: fmt.Sprintf("level id must be positive, got %d", l.ID),
		}
	}
	if l.Radius < 0 {
		return ValidationError{
			Code:    "BAD_RADIUS",
			Message: fmt.Sprintf("level %d: radius %d is negative", l.ID, l.Radius),
		}
	}

	origin := hex.C(0, 0)
	if !hex.InRange(l.Start, origin, l.Radius) {
		return ValidationError{
			Code:    "START_OFF_GRID",
			Message: fmt.Sprintf("level %d: start %v outside radius %d", l.ID, l.Start, l.Radius),
		}
	}

	seen := make(map[hex.Coord]bool, len(l.Components))
	var batteries, bulbs int
	for _, c := range l.Components {
		if !hex.InRange(c.At, origin, l.Radius) {
			return ValidationError{
				Code:    "COMPONENT_OFF_GRID",
				Message: fmt.Sprintf("level %d: %s at %v outside radius %d", l.ID, c.Type, c.At, l.Radius),
			}
		}
		if seen[c.At] {
			return ValidationError{
				Code:    "DUPLICATE_COMPONENT",
				Message: fmt.Sprintf("level %d: more than one component at %v", l.ID, c.At),
			}
		}
		seen[c.At] = true

		switch c.Type {
		case circuit.Battery:
			batteries++
		case circuit.Bulb:
			bulbs++
		}
	}

	if batteries == 0 {
		return ValidationError{
			Code:    "NO_BATTERY",
			Message: fmt.Sprintf("level %d has no battery", l.ID),
		}
	}
	if bulbs == 0 {
		return ValidationError{
			Code:    "NO_BULB",
			Message: fmt.Sprintf("level %d has no bulb", l.ID),
		}
	}
	return nil
}
