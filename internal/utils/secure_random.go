package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomNumericCode returns a zero-padded random numeric string of the given
// number of digits, e.g. RandomNumericCode(4) -> "0731". It draws from
// crypto/rand so concurrent callers do not share a seed.
func RandomNumericCode(digits int) (string, error) {
	if digits <= 0 {
		return "", fmt.Errorf("digits must be positive")
	}
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}
