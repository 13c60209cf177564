package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

const (
	MinReferenceLength = 10
	MaxReferenceLength = 50
)

// NormalizeReference upper-cases a transaction reference and strips whitespace and hyphens.
func NormalizeReference(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToUpper(raw) {
		if r == '-' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidReference reports whether a normalized reference is 10-50 characters of A-Z and 0-9.
func ValidReference(ref string) bool {
	if len(ref) < MinReferenceLength || len(ref) > MaxReferenceLength {
		return false
	}
	for i := 0; i < len(ref); i++ {
		c := ref[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// VerificationResult is the public, non-identifying confirmation of a recorded donation.
type VerificationResult struct {
	Found          bool             `json:"found"`
	Date           *time.Time       `json:"date,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	CurrencySymbol string           `json:"currencySymbol,omitempty"`
	CauseName      string           `json:"causeName,omitempty"`
}

// VerificationRecord is what the store returns for a matched reference.
type VerificationRecord struct {
	Date           time.Time
	Amount         decimal.Decimal
	CurrencySymbol string
	CauseName      *string
}
