// file: internals/features/finance/reports/service/compute.go
//
// Pure reductions over already-fetched rows. Nothing here touches the
// database, every function is total over well formed input and every
// ratio defines the zero denominator case as 0.
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

/* =========================================================
   Trend classification
   ========================================================= */

type TrendDirection string

const (
	TrendGrowing   TrendDirection = "growing"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// olsFit returns the least-squares slope and intercept of series over
// the index axis 0..n-1. Fewer than 2 points has no defined slope and
// reports (0, y0).
func olsFit(series []decimal.Decimal) (slope, intercept decimal.Decimal) {
	n := len(series)
	if n < 2 {
		if n == 1 {
			return decimal.Zero, series[0]
		}
		return decimal.Zero, decimal.Zero
	}

	dn := decimal.NewFromInt(int64(n))
	sumX, sumX2 := decimal.Zero, decimal.Zero
	sumY, sumXY := decimal.Zero, decimal.Zero
	for i, y := range series {
		x := decimal.NewFromInt(int64(i))
		sumX = sumX.Add(x)
		sumX2 = sumX2.Add(x.Mul(x))
		sumY = sumY.Add(y)
		sumXY = sumXY.Add(x.Mul(y))
	}

	// denominator n*Σx² - (Σx)² is never zero for n ≥ 2 distinct x
	den := dn.Mul(sumX2).Sub(sumX.Mul(sumX))
	slope = dn.Mul(sumXY).Sub(sumX.Mul(sumY)).DivRound(den, 12)
	intercept = sumY.Sub(slope.Mul(sumX)).DivRound(dn, 12)
	return slope, intercept
}

var trendThreshold = decimal.NewFromFloat(0.05)

// ClassifyTrend compares the least-squares slope against ±5% of the
// series mean. Fewer than 2 points is stable by definition.
func ClassifyTrend(series []decimal.Decimal) TrendDirection {
	if len(series) < 2 {
		return TrendStable
	}
	slope, _ := olsFit(series)

	sum := decimal.Zero
	for _, y := range series {
		sum = sum.Add(y)
	}
	mean := sum.DivRound(decimal.NewFromInt(int64(len(series))), 12)
	threshold := mean.Mul(trendThreshold)

	switch {
	case slope.GreaterThan(threshold):
		return TrendGrowing
	case slope.LessThan(threshold.Neg()):
		return TrendDeclining
	default:
		return TrendStable
	}
}

// ForecastSeries extends the least-squares line of series by horizon
// further points.
func ForecastSeries(series []decimal.Decimal, horizon int) []decimal.Decimal {
	if horizon <= 0 {
		return nil
	}
	slope, intercept := olsFit(series)
	out := make([]decimal.Decimal, 0, horizon)
	for i := 0; i < horizon; i++ {
		x := decimal.NewFromInt(int64(len(series) + i))
		out = append(out, intercept.Add(slope.Mul(x)))
	}
	return out
}

/* =========================================================
   Month buckets
   ========================================================= */

type MonthBucket struct {
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// MonthlyTotal is one SQL group-by row: total paid value for one
// calendar month and kind.
type MonthlyTotal struct {
	Year  int
	Month int
	Kind  string
	Total decimal.Decimal
}

// FillMonthBuckets lays out `months` consecutive calendar months ending
// at end's month, oldest first, and folds rows into them. Months with
// no rows stay at zero.
func FillMonthBuckets(end time.Time, months int, rows []MonthlyTotal) []MonthBucket {
	if months <= 0 {
		return nil
	}

	type key struct {
		y int
		m int
	}
	index := make(map[key]int, months)

	buckets := make([]MonthBucket, months)
	cursor := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	for i := 0; i < months; i++ {
		buckets[i] = MonthBucket{
			Year:    cursor.Year(),
			Month:   cursor.Month(),
			Revenue: decimal.Zero,
			Expense: decimal.Zero,
			Balance: decimal.Zero,
		}
		index[key{cursor.Year(), int(cursor.Month())}] = i
		cursor = cursor.AddDate(0, 1, 0)
	}

	for _, r := range rows {
		i, ok := index[key{r.Year, r.Month}]
		if !ok {
			continue // outside the window
		}
		switch r.Kind {
		case "revenue":
			buckets[i].Revenue = buckets[i].Revenue.Add(r.Total)
		case "expense":
			buckets[i].Expense = buckets[i].Expense.Add(r.Total)
		}
	}
	for i := range buckets {
		buckets[i].Balance = buckets[i].Revenue.Sub(buckets[i].Expense)
	}
	return buckets
}

/* =========================================================
   Cash flow
   ========================================================= */

type CashFlowInput struct {
	PaymentID   uuid.UUID
	Description string
	Kind        string // revenue | expense
	PaidDate    time.Time
	Value       decimal.Decimal
}

type CashFlowEntry struct {
	PaymentID   uuid.UUID       `json:"payment_id"`
	Description string          `json:"description"`
	Kind        string          `json:"kind"`
	PaidDate    time.Time       `json:"paid_date"`
	Value       decimal.Decimal `json:"value"`
	Balance     decimal.Decimal `json:"balance"`
}

// RunningBalance walks entries in order, adding revenue and subtracting
// expense from the opening balance. Input order is preserved.
func RunningBalance(opening decimal.Decimal, entries []CashFlowInput) []CashFlowEntry {
	out := make([]CashFlowEntry, 0, len(entries))
	balance := opening
	for _, e := range entries {
		if e.Kind == "revenue" {
			balance = balance.Add(e.Value)
		} else {
			balance = balance.Sub(e.Value)
		}
		out = append(out, CashFlowEntry{
			PaymentID:   e.PaymentID,
			Description: e.Description,
			Kind:        e.Kind,
			PaidDate:    e.PaidDate,
			Value:       e.Value,
			Balance:     balance,
		})
	}
	return out
}

/* =========================================================
   Cost per unit proration
   ========================================================= */

type UnitArea struct {
	UnitID     uuid.UUID
	Identifier string
	AreaSqm    decimal.Decimal
}

type UnitCostShare struct {
	UnitID     uuid.UUID       `json:"unit_id"`
	Identifier string          `json:"unit_identifier"`
	AreaSqm    decimal.Decimal `json:"unit_area_sqm"`
	Cost       decimal.Decimal `json:"cost"`
	Percent    decimal.Decimal `json:"percent"`
}

// ProrateCostPerUnit splits totalExpense across units proportionally to
// their area. Zero total area yields zero cost per m² and zero shares.
func ProrateCostPerUnit(totalExpense decimal.Decimal, units []UnitArea) (costPerSqm decimal.Decimal, shares []UnitCostShare) {
	totalArea := decimal.Zero
	for _, u := range units {
		totalArea = totalArea.Add(u.AreaSqm)
	}
	if totalArea.IsZero() {
		costPerSqm = decimal.Zero
	} else {
		costPerSqm = totalExpense.DivRound(totalArea, 6)
	}

	shares = make([]UnitCostShare, 0, len(units))
	for _, u := range units {
		cost := costPerSqm.Mul(u.AreaSqm)
		percent := decimal.Zero
		if !totalArea.IsZero() {
			percent = u.AreaSqm.DivRound(totalArea, 6).Mul(decimal.NewFromInt(100))
		}
		shares = append(shares, UnitCostShare{
			UnitID:     u.UnitID,
			Identifier: u.Identifier,
			AreaSqm:    u.AreaSqm,
			Cost:       cost,
			Percent:    percent,
		})
	}
	return costPerSqm, shares
}

/* =========================================================
   Delinquency
   ========================================================= */

type OverduePaymentRow struct {
	PaymentID uuid.UUID
	UnitID    uuid.UUID
	DueDate   time.Time
	Value     decimal.Decimal
}

type DelinquentPayment struct {
	PaymentID uuid.UUID       `json:"payment_id"`
	DueDate   time.Time       `json:"due_date"`
	Value     decimal.Decimal `json:"value"`
	DaysLate  int             `json:"days_late"`
}

type DelinquentUnit struct {
	UnitID    uuid.UUID           `json:"unit_id"`
	Count     int                 `json:"count"`
	TotalOwed decimal.Decimal     `json:"total_owed"`
	Payments  []DelinquentPayment `json:"payments"`
}

// GroupDelinquency folds overdue rows by unit, computing per-payment
// days late against asOf, and sorts units by total owed descending.
func GroupDelinquency(rows []OverduePaymentRow, asOf time.Time, daysBetween func(a, b time.Time) int) []DelinquentUnit {
	byUnit := make(map[uuid.UUID]*DelinquentUnit)
	order := make([]uuid.UUID, 0)
	for _, r := range rows {
		u, ok := byUnit[r.UnitID]
		if !ok {
			u = &DelinquentUnit{UnitID: r.UnitID, TotalOwed: decimal.Zero}
			byUnit[r.UnitID] = u
			order = append(order, r.UnitID)
		}
		u.Count++
		u.TotalOwed = u.TotalOwed.Add(r.Value)
		u.Payments = append(u.Payments, DelinquentPayment{
			PaymentID: r.PaymentID,
			DueDate:   r.DueDate,
			Value:     r.Value,
			DaysLate:  daysBetween(r.DueDate, asOf),
		})
	}

	out := make([]DelinquentUnit, 0, len(byUnit))
	for _, id := range order {
		out = append(out, *byUnit[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalOwed.GreaterThan(out[j].TotalOwed)
	})
	return out
}

// DelinquencyRate is unitsWithDebt over totalUnits as a percentage,
// 0 when there are no units.
func DelinquencyRate(unitsWithDebt, totalUnits int) decimal.Decimal {
	if totalUnits == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(unitsWithDebt)).
		DivRound(decimal.NewFromInt(int64(totalUnits)), 6).
		Mul(decimal.NewFromInt(100))
}
