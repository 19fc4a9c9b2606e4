package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Expression is a parsed dice expression ready to be rolled.
//
// Postcondition of Parse: Count >= 1, Sides >= 2, at most one of
// KeepHighest/KeepLowest is set.
type Expression struct {
	Raw      string // original input string
	Count    int    // number of dice
	Sides    int    // faces per die
	Modifier int    // flat modifier (may be negative)
	// KeepHighest keeps only the N highest dice (e.g. "2d20kh1" for an
	// advantage attack roll). 0 = keep all.
	KeepHighest int
	// KeepLowest keeps only the N lowest dice (e.g. "2d20kl1" for a
	// disadvantage attack roll). 0 = keep all.
	KeepLowest int
}

// Parse parses a dice expression string.
// Supported forms: "d20", "2d6", "2d6+3", "4d8-2", "2d20kh1", "2d20kl1+5".
func Parse(expr string) (Expression, error) {
	if expr == "" {
		return Expression{}, fmt.Errorf("dice: empty expression")
	}

	raw := expr
	s := strings.ToLower(strings.TrimSpace(expr))

	dIdx := strings.Index(s, "d")
	if dIdx < 0 {
		return Expression{}, fmt.Errorf("dice: missing 'd' in expression %q", raw)
	}

	count := 1
	if countStr := s[:dIdx]; countStr != "" {
		n, err := strconv.Atoi(countStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: %w", raw, err)
		}
		if n <= 0 {
			return Expression{}, fmt.Errorf("dice: die count in %q must be >= 1", raw)
		}
		count = n
	}

	rest := s[dIdx+1:]

	// Split off the trailing modifier, if any. The first '+' or '-' past
	// position 0 starts the modifier.
	modifier := 0
	if off := modifierOffset(rest); off >= 0 {
		m, err := strconv.Atoi(rest[off:])
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid modifier in %q: %w", raw, err)
		}
		modifier = m
		rest = rest[:off]
	}

	// Split off a keep suffix ("khN" or "klN").
	keepHighest, keepLowest := 0, 0
	if kIdx := strings.IndexAny(rest, "k"); kIdx >= 0 {
		suffix := rest[kIdx:]
		rest = rest[:kIdx]
		var highest bool
		switch {
		case strings.HasPrefix(suffix, "kh"):
			highest = true
		case strings.HasPrefix(suffix, "kl"):
		default:
			return Expression{}, fmt.Errorf("dice: unknown keep suffix in %q", raw)
		}
		keep, err := strconv.Atoi(suffix[2:])
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid keep value in %q: %w", raw, err)
		}
		if keep <= 0 || keep >= count {
			return Expression{}, fmt.Errorf("dice: keep value %d must be > 0 and < count %d in %q", keep, count, raw)
		}
		if highest {
			keepHighest = keep
		} else {
			keepLowest = keep
		}
	}

	sides, err := strconv.Atoi(rest)
	if err != nil {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: %w", raw, err)
	}
	if sides < 2 {
		return Expression{}, fmt.Errorf("dice: die sides in %q must be >= 2", raw)
	}

	return Expression{
		Raw:         raw,
		Count:       count,
		Sides:       sides,
		Modifier:    modifier,
		KeepHighest: keepHighest,
		KeepLowest:  keepLowest,
	}, nil
}

// modifierOffset returns the index of the first '+' or '-' past position 0,
// or -1 when there is no modifier part.
func modifierOffset(s string) int {
	for i := 1; i < len(s); i++ {
		if s[i] == '+' || s[i] == '-' {
			return i
		}
	}
	return -1
}

// MustParse parses expr and panics on error. Useful for constants.
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for " + expr + ": " + err.Error())
	}
	return e
}

// Advantage is the standard advantage attack roll: two d20, keep highest.
var Advantage = MustParse("2d20kh1")

// Disadvantage is the standard disadvantage attack roll: two d20, keep lowest.
var Disadvantage = MustParse("2d20kl1")
