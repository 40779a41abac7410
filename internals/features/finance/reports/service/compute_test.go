package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"condominiogt_backend/internals/helpers/money"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func series(vals ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(vals))
	for _, v := range vals {
		out = append(out, dec(v))
	}
	return out
}

/* ===== Trend classification ===== */

func TestClassifyTrendGrowing(t *testing.T) {
	// strictly increasing 12-point series
	s := series("100", "200", "300", "400", "500", "600", "700", "800", "900", "1000", "1100", "1200")
	assert.Equal(t, TrendGrowing, ClassifyTrend(s))
}

func TestClassifyTrendDeclining(t *testing.T) {
	s := series("1200", "1100", "1000", "900", "800", "700", "600", "500", "400", "300", "200", "100")
	assert.Equal(t, TrendDeclining, ClassifyTrend(s))
}

func TestClassifyTrendStableConstant(t *testing.T) {
	s := series("500", "500", "500", "500", "500", "500", "500", "500", "500", "500", "500", "500")
	assert.Equal(t, TrendStable, ClassifyTrend(s))
}

func TestClassifyTrendFewPoints(t *testing.T) {
	assert.Equal(t, TrendStable, ClassifyTrend(nil))
	assert.Equal(t, TrendStable, ClassifyTrend(series("999")))
}

func TestClassifyTrendSmallDrift(t *testing.T) {
	// slope well under 5% of the mean stays stable
	s := series("1000", "1001", "1002", "1003", "1004", "1005")
	assert.Equal(t, TrendStable, ClassifyTrend(s))
}

func TestForecastSeriesExtendsLine(t *testing.T) {
	// perfect line y = 100 + 50x, next two points are 300 and 350
	s := series("100", "150", "200", "250")
	out := ForecastSeries(s, 2)
	require.Len(t, out, 2)
	assert.True(t, out[0].Equal(dec("300")), "got %s", out[0])
	assert.True(t, out[1].Equal(dec("350")), "got %s", out[1])

	assert.Nil(t, ForecastSeries(s, 0))
}

/* ===== Month buckets ===== */

func TestFillMonthBucketsZeroFillsGaps(t *testing.T) {
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	rows := []MonthlyTotal{
		{Year: 2024, Month: 4, Kind: "revenue", Total: dec("900")},
		{Year: 2024, Month: 6, Kind: "revenue", Total: dec("1100")},
		{Year: 2024, Month: 6, Kind: "expense", Total: dec("400")},
		{Year: 2023, Month: 12, Kind: "revenue", Total: dec("7777")}, // outside window
	}

	buckets := FillMonthBuckets(end, 4, rows)
	require.Len(t, buckets, 4)

	assert.Equal(t, time.March, buckets[0].Month)
	assert.True(t, buckets[0].Revenue.IsZero())

	assert.Equal(t, time.April, buckets[1].Month)
	assert.True(t, buckets[1].Revenue.Equal(dec("900")))

	assert.Equal(t, time.May, buckets[2].Month)
	assert.True(t, buckets[2].Balance.IsZero())

	assert.Equal(t, time.June, buckets[3].Month)
	assert.True(t, buckets[3].Balance.Equal(dec("700")))
}

func TestFillMonthBucketsCrossesYear(t *testing.T) {
	end := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	buckets := FillMonthBuckets(end, 4, nil)
	require.Len(t, buckets, 4)
	assert.Equal(t, 2023, buckets[0].Year)
	assert.Equal(t, time.November, buckets[0].Month)
	assert.Equal(t, 2024, buckets[3].Year)
	assert.Equal(t, time.February, buckets[3].Month)
}

/* ===== Cash flow ===== */

func TestRunningBalance(t *testing.T) {
	// opening 500, revenue 200 then expense 50 => [700, 650]
	day := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	entries := RunningBalance(dec("500"), []CashFlowInput{
		{PaymentID: uuid.New(), Description: "taxa condominial", Kind: "revenue", PaidDate: day, Value: dec("200")},
		{PaymentID: uuid.New(), Description: "jardinagem", Kind: "expense", PaidDate: day.AddDate(0, 0, 3), Value: dec("50")},
	})

	require.Len(t, entries, 2)
	assert.True(t, entries[0].Balance.Equal(dec("700")), "got %s", entries[0].Balance)
	assert.True(t, entries[1].Balance.Equal(dec("650")), "got %s", entries[1].Balance)
}

func TestRunningBalanceEmptyMonth(t *testing.T) {
	entries := RunningBalance(dec("123.45"), nil)
	assert.Empty(t, entries)
}

/* ===== Cost per unit ===== */

func TestProrateCostPerUnitEqualAreas(t *testing.T) {
	// 1000 across two 50 m² units: 10/m², 500 each, 50% each
	units := []UnitArea{
		{UnitID: uuid.New(), Identifier: "101", AreaSqm: dec("50")},
		{UnitID: uuid.New(), Identifier: "102", AreaSqm: dec("50")},
	}
	costPerSqm, shares := ProrateCostPerUnit(dec("1000"), units)

	assert.True(t, costPerSqm.Equal(dec("10")), "got %s", costPerSqm)
	require.Len(t, shares, 2)
	for _, sh := range shares {
		assert.True(t, sh.Cost.Equal(dec("500")), "got %s", sh.Cost)
		assert.True(t, sh.Percent.Equal(dec("50")), "got %s", sh.Percent)
	}
}

func TestProrateCostPerUnitZeroArea(t *testing.T) {
	units := []UnitArea{
		{UnitID: uuid.New(), Identifier: "101", AreaSqm: decimal.Zero},
	}
	costPerSqm, shares := ProrateCostPerUnit(dec("1000"), units)
	assert.True(t, costPerSqm.IsZero())
	require.Len(t, shares, 1)
	assert.True(t, shares[0].Cost.IsZero())
	assert.True(t, shares[0].Percent.IsZero())
}

/* ===== Delinquency ===== */

func TestGroupDelinquencySortsByTotalOwed(t *testing.T) {
	asOf := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	small, big := uuid.New(), uuid.New()
	rows := []OverduePaymentRow{
		{PaymentID: uuid.New(), UnitID: small, DueDate: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), Value: dec("100")},
		{PaymentID: uuid.New(), UnitID: big, DueDate: time.Date(2023, time.December, 10, 0, 0, 0, 0, time.UTC), Value: dec("300")},
		{PaymentID: uuid.New(), UnitID: big, DueDate: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), Value: dec("150")},
	}

	units := GroupDelinquency(rows, asOf, money.DaysBetween)
	require.Len(t, units, 2)

	assert.Equal(t, big, units[0].UnitID)
	assert.Equal(t, 2, units[0].Count)
	assert.True(t, units[0].TotalOwed.Equal(dec("450")))
	assert.Equal(t, 41, units[0].Payments[0].DaysLate)
	assert.Equal(t, 10, units[0].Payments[1].DaysLate)

	assert.Equal(t, small, units[1].UnitID)
	assert.Equal(t, 10, units[1].Payments[0].DaysLate)
}

func TestGroupDelinquencyEmpty(t *testing.T) {
	units := GroupDelinquency(nil, time.Now(), money.DaysBetween)
	assert.Empty(t, units)
	assert.True(t, DelinquencyRate(len(units), 0).IsZero())
}

func TestDelinquencyRate(t *testing.T) {
	assert.True(t, DelinquencyRate(0, 0).IsZero())
	assert.True(t, DelinquencyRate(1, 4).Equal(dec("25")))
	assert.True(t, DelinquencyRate(3, 3).Equal(dec("100")))
}
