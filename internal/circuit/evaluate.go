package circuit

import "github.com/vovakirdan/voltkid/internal/hex"

// Verdict is the result of evaluating a board.
type Verdict uint8

const (
	VerdictIncomplete Verdict = iota // some component not yet activated
	VerdictNoBattery
	VerdictNoBulb
	VerdictNotClosed   // player has not returned next to the start
	VerdictOpenCircuit // strict rule only: no conducting route battery -> bulb
	VerdictVictory
)

// String returns a human-readable reason.
func (v Verdict) String() string {
	switch v {
	case VerdictIncomplete:
		return "incomplete"
	case VerdictNoBattery:
		return "no battery"
	case VerdictNoBulb:
		return "no bulb"
	case VerdictNotClosed:
		return "loop not closed"
	case VerdictOpenCircuit:
		return "open circuit"
	case VerdictVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Rule selects how strictly a closed circuit is judged.
type Rule uint8

const (
	// RuleProxy treats ending within one hex of the start as a closed loop.
	RuleProxy Rule = iota
	// RuleStrict also requires current to flow from a battery to a bulb
	// through activated components.
	RuleStrict
)

// String returns the config name of the rule.
func (r Rule) String() string {
	if r == RuleStrict {
		return "strict"
	}
	return "proxy"
}

// ParseRule maps a config name to a Rule.
func ParseRule(s string) (Rule, bool) {
	switch s {
	case "", "proxy":
		return RuleProxy, true
	case "strict":
		return RuleStrict, true
	default:
		return RuleProxy, false
	}
}

// Evaluate checks the board under the proxy rule.
func Evaluate(b *Board) Verdict {
	return EvaluateWith(b, RuleProxy)
}

// EvaluateWith checks the board, stopping at the first failed check:
// all components activated, a battery, a bulb, then the loop closure.
func EvaluateWith(b *Board, rule Rule) Verdict {
	for c := range b.components {
		if !b.activated[c] {
			return VerdictIncomplete
		}
	}
	if !b.hasActivated(Battery) {
		return VerdictNoBattery
	}
	if !b.hasActivated(Bulb) {
		return VerdictNoBulb
	}
	if len(b.path) == 0 || hex.Distance(b.start, b.player) > 1 {
		return VerdictNotClosed
	}
	if rule == RuleStrict && !Connected(b) {
		return VerdictOpenCircuit
	}
	return VerdictVictory
}

func (b *Board) hasActivated(t ComponentType) bool {
	for c := range b.activated {
		if b.components[c].Type == t {
			return true
		}
	}
	return false
}

// Connected reports whether current can flow from an activated battery to
// an activated bulb. Current runs along the wire the player has drawn (the
// traversed path and the start hex) and through adjacent activated
// components. Other hexes block it, and so does any unactivated component,
// so a switch conducts only once it has been activated.
func Connected(b *Board) bool {
	blocked := make(map[hex.Coord]bool)
	for _, c := range b.Cells() {
		if !b.conducts(c) {
			blocked[c] = true
		}
	}
	opts := hex.PathOptions{
		Blocked: blocked,
		Bounded: true,
		Center:  hex.C(0, 0),
		Radius:  b.radius,
	}

	for _, from := range b.Activated() {
		if b.components[from].Type != Battery {
			continue
		}
		for _, to := range b.Activated() {
			if b.components[to].Type != Bulb {
				continue
			}
			if hex.FindPath(from, to, opts) != nil {
				return true
			}
		}
	}
	return false
}

func (b *Board) conducts(c hex.Coord) bool {
	if _, ok := b.components[c]; ok {
		return b.activated[c]
	}
	if c == b.start {
		return true
	}
	for _, p := range b.path {
		if p == c {
			return true
		}
	}
	return false
}

// StarThresholds scale the optimal step count into star ratings.
type StarThresholds struct {
	// Three stars at or below optimal*Three steps.
	Three float64
	// Two stars at or below floor(optimal*Two) steps.
	Two float64
}

// DefaultThresholds are the classic 1.0x / 1.5x bands.
var DefaultThresholds = StarThresholds{Three: 1.0, Two: 1.5}

// Stars rates a solved board: optimal = components+1 steps.
// Three stars within optimal, two within 1.5x, otherwise one.
func Stars(b *Board, componentCount int) int {
	return StarsWith(b, componentCount, DefaultThresholds)
}

// StarsWith rates a board with custom thresholds.
func StarsWith(b *Board, componentCount int, th StarThresholds) int {
	optimal := componentCount + 1
	actual := len(b.path)

	switch {
	case actual <= int(float64(optimal)*th.Three):
		return 3
	case actual <= int(float64(optimal)*th.Two):
		return 2
	default:
		return 1
	}
}
