// Pure money/date arithmetic shared by the payment lifecycle and the
// financial reports. No state, no side effects; amounts stay as
// fixed-point decimals and are only rounded at presentation boundaries.
package money

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var thirty = decimal.NewFromInt(30)

// DaysBetween returns b - a in whole calendar days, normalized to UTC
// midnight so time-of-day and DST never leak into the count. Negative
// when b precedes a.
func DaysBetween(a, b time.Time) int {
	au := truncateUTC(a)
	bu := truncateUTC(b)
	return int(bu.Sub(au).Hours() / 24)
}

func truncateUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SimpleInterest accrues simple interest on principal at monthlyRate
// for the given day count. The daily rate is monthlyRate/30. A zero
// rate or zero days returns the principal unchanged.
func SimpleInterest(principal, monthlyRate decimal.Decimal, days int) decimal.Decimal {
	if monthlyRate.IsZero() || days == 0 {
		return principal
	}
	daily := monthlyRate.Div(thirty)
	return principal.Add(principal.Mul(daily).Mul(decimal.NewFromInt(int64(days))))
}

// Penalty is a flat (non-prorated) fee: principal * rate.
func Penalty(principal, rate decimal.Decimal) decimal.Decimal {
	return principal.Mul(rate)
}

// Round2 rounds to 2 fraction digits. Presentation/report boundary
// only; never call mid-calculation.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatBRL renders an amount as Brazilian currency, e.g. "R$ 1.234,56".
func FormatBRL(d decimal.Decimal) string {
	s := d.Round(2).StringFixed(2) // "-1234.56"
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
