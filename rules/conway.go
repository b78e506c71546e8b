package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// maxTally is the largest live-neighbor count a cell can have
const maxTally = 8

// ErrInvalidRule is returned when a rule string cannot be parsed
var ErrInvalidRule = errors.New("invalid rule")

// Rule holds the birth and survival tallies as bitmasks indexed by neighbor count
type Rule struct {
	Birth   uint16
	Survive uint16
}

/*
Conway is the classic Game of Life rule, B3/S23.

A live cell with 2 or 3 live neighbors survives, a dead cell with exactly 3 live
neighbors is born, every other cell is dead in the next generation.
*/
var Conway = Rule{
	Birth:   1 << 3,
	Survive: 1<<2 | 1<<3,
}

// Apply returns the next state of a cell given its current state and tally
func (r Rule) Apply(alive bool, tally int) bool {
	if tally < 0 || tally > maxTally {
		return false
	}
	if alive {
		return r.Survive&(1<<tally) != 0
	}
	return r.Birth&(1<<tally) != 0
}

// ApplyConwayRules applies Conway's rule to a single cell
func ApplyConwayRules(neighbors int, alive bool) bool {
	return Conway.Apply(alive, neighbors)
}

// String renders the rule in B/S notation, e.g. "B3/S23"
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteString("B")
	writeTallies(&sb, r.Birth)
	sb.WriteString("/S")
	writeTallies(&sb, r.Survive)
	return sb.String()
}

func writeTallies(sb *strings.Builder, mask uint16) {
	for n := range maxTally + 1 {
		if mask&(1<<n) != 0 {
			sb.WriteByte(byte('0' + n))
		}
	}
}

// ParseRule parses a rule in B/S notation. The order of the two halves and the
// case of the letters do not matter, so "s23/b3" is the same rule as "B3/S23".
func ParseRule(s string) (Rule, error) {
	var (
		rule         Rule
		seenB, seenS bool
	)
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Rule{}, errors.Wrapf(ErrInvalidRule, "[ParseRule] expected two halves: %+v", s)
	}

	for _, part := range parts {
		if part == "" {
			return Rule{}, errors.Wrapf(ErrInvalidRule, "[ParseRule] empty half: %+v", s)
		}
		mask, err := parseTallies(part[1:])
		if err != nil {
			return Rule{}, errors.Wrapf(err, "[ParseRule] failed to parse tallies: %+v", s)
		}
		switch part[0] {
		case 'B', 'b':
			if seenB {
				return Rule{}, errors.Wrapf(ErrInvalidRule, "[ParseRule] duplicate birth half: %+v", s)
			}
			seenB, rule.Birth = true, mask
		case 'S', 's':
			if seenS {
				return Rule{}, errors.Wrapf(ErrInvalidRule, "[ParseRule] duplicate survival half: %+v", s)
			}
			seenS, rule.Survive = true, mask
		default:
			return Rule{}, errors.Wrapf(ErrInvalidRule, "[ParseRule] unknown prefix %q: %+v", part[0], s)
		}
	}

	return rule, nil
}

func parseTallies(digits string) (uint16, error) {
	var mask uint16
	for _, c := range digits {
		if c < '0' || c > '0'+maxTally {
			return 0, errors.Wrapf(ErrInvalidRule, "tally %q out of range", c)
		}
		mask |= 1 << (c - '0')
	}
	return mask, nil
}
