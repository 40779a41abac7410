package money

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 10, DaysBetween(date(2024, 1, 10), date(2024, 1, 20)))
	assert.Equal(t, -10, DaysBetween(date(2024, 1, 20), date(2024, 1, 10)))
	assert.Equal(t, 0, DaysBetween(date(2024, 1, 10), date(2024, 1, 10)))
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 3, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(a, b))
}

func TestDaysBetweenNormalizesZones(t *testing.T) {
	sp, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// 23:00 in São Paulo is already the next day in UTC
	a := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 10, 23, 0, 0, 0, sp)
	assert.Equal(t, 1, DaysBetween(a, b))
}

func TestSimpleInterestIdentity(t *testing.T) {
	p := decimal.NewFromFloat(100)
	assert.True(t, SimpleInterest(p, decimal.Zero, 15).Equal(p))
	assert.True(t, SimpleInterest(p, decimal.NewFromFloat(0.01), 0).Equal(p))
}

func TestSimpleInterestTenDaysLate(t *testing.T) {
	// 100 at 1%/month for 10 days → 100 + 100*(0.01/30)*10 ≈ 100.33
	p := decimal.NewFromInt(100)
	got := SimpleInterest(p, decimal.NewFromFloat(0.01), 10)
	assert.Equal(t, "100.33", Round2(got).StringFixed(2))
}

func TestPenaltyFlat(t *testing.T) {
	p := decimal.NewFromInt(100)
	got := Penalty(p, decimal.NewFromFloat(0.02))
	assert.Equal(t, "2.00", got.StringFixed(2))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", FormatBRL(decimal.NewFromFloat(1234.56)))
	assert.Equal(t, "R$ 0,50", FormatBRL(decimal.NewFromFloat(0.5)))
	assert.Equal(t, "-R$ 10,00", FormatBRL(decimal.NewFromInt(-10)))
	assert.Equal(t, "R$ 1.000.000,00", FormatBRL(decimal.NewFromInt(1000000)))
}
