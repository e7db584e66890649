package hex

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCoord parses "q,r", optionally wrapped in parentheses.
func ParseCoord(s string) (Coord, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	qs, rs, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, fmt.Errorf("hex: %q is not q,r", s)
	}
	q, err := strconv.Atoi(strings.TrimSpace(qs))
	if err != nil {
		return Coord{}, fmt.Errorf("hex: bad q in %q: %w", s, err)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Coord{}, fmt.Errorf("hex: bad r in %q: %w", s, err)
	}
	return C(q, r), nil
}

// ParseCoords parses a ';'-separated list such as "1,0;-1,1".
// Empty entries are skipped.
func ParseCoords(s string) ([]Coord, error) {
	var out []Coord
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseCoord(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
