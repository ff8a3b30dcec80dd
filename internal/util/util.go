package util

import (
	"fmt"
	"strings"
	"time"

	"platter/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount for display: rounded half-up to the minor
// unit, thousands grouped with commas, prefixed with symbol.
func FormatAmount(amount decimal.Decimal, symbol string) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(entity.MinorUnitPlaces)
	whole, frac, _ := strings.Cut(fixed, ".")

	return sign + symbol + groupThousands(whole) + "." + frac
}

// FormatPlain renders an amount rounded to the minor unit without symbol or grouping.
func FormatPlain(amount decimal.Decimal) string {
	return amount.StringFixed(entity.MinorUnitPlaces)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
