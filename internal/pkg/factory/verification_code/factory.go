package verification_code

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
)

const Length = 6

var codeSpace = big.NewInt(1_000_000)

type Factory struct{}

func New() *Factory {
	return &Factory{}
}

// NewCode - 6 цифр из crypto/rand, ведущие нули сохраняются
func (f *Factory) NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%0*d", Length, n.Int64()), nil
}

// Match сравнение за постоянное время
func Match(expected, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(expected), []byte(presented)) == 1
}

func IsWellFormed(code string) bool {
	if len(code) != Length {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
