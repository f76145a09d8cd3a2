package utils

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DecimalOuZero coerces an optional decimal to a usable value.
// Missing or invalid source fields default to zero rather than failing.
func DecimalOuZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// DecimalOuDefaut coerces an optional decimal, falling back to def when absent.
func DecimalOuDefaut(d decimal.NullDecimal, def decimal.Decimal) decimal.Decimal {
	if !d.Valid {
		return def
	}
	return d.Decimal
}

// FormatMontant renders an amount as "1 234 567 FCFA": thousands grouped
// with spaces, no decimals. The core hands out raw decimals; this is the
// display boundary.
func FormatMontant(montant decimal.Decimal) string {
	entier := montant.Round(0)
	s := entier.Abs().String()

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	formatted := strings.Join(groups, " ")
	if entier.IsNegative() {
		formatted = "-" + formatted
	}
	return formatted + " FCFA"
}

// JoursDeRetard returns how many whole days echeance is in the past,
// or 0 if it is today or later. Both instants are truncated to dates.
func JoursDeRetard(echeance, now time.Time) int {
	e := time.Date(echeance.Year(), echeance.Month(), echeance.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !e.Before(n) {
		return 0
	}
	return int(n.Sub(e).Hours() / 24)
}

// JoursAvant returns how many whole days until date, negative if past.
func JoursAvant(date, now time.Time) int {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(n).Hours() / 24)
}
