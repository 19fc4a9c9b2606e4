// Package dice provides the randomness abstraction, dice-expression
// parsing, and roll-result types used by the combat services.
package dice

import (
	"crypto/rand"
	"math/big"
)

// Source is the randomness provider for dice rolls.
//
// Implementations must be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// cryptoSource implements Source using crypto/rand so rolls are uniform
// and not reproducible by observing prior rolls.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics if n <= 0 or if crypto/rand fails.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(v.Int64())
}

// D20 rolls a single twenty-sided die with src.
//
// Postcondition: result in [1,20].
func D20(src Source) int {
	return src.Intn(20) + 1
}
