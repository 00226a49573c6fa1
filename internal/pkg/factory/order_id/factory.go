package order_id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const (
	prefix       = "PP"
	layout       = "200601021504"
	suffixDigits = 4
)

var suffixSpace = big.NewInt(10_000)

// Factory - PP + UTC YYYYMMDDhhmm + 4 случайные цифры.
// Уникальность не гарантирует, ее проверяет уникальный индекс, а сервис перегенерирует.
type Factory struct {
	now func() time.Time
}

func New() *Factory {
	return &Factory{now: time.Now}
}

func (f *Factory) NewOrderID() (string, error) {
	n, err := rand.Int(rand.Reader, suffixSpace)
	if err != nil {
		return "", fmt.Errorf("generate order id suffix: %w", err)
	}
	return fmt.Sprintf("%s%s%0*d", prefix, f.now().UTC().Format(layout), suffixDigits, n.Int64()), nil
}

// Valid проверяет форму без обращения к базе
func Valid(orderID string) bool {
	digits, ok := strings.CutPrefix(orderID, prefix)
	if !ok || len(digits) != len(layout)+suffixDigits {
		return false
	}

	for _, char := range digits {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
