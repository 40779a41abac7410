// file: internals/features/finance/reports/service/aggregation.go
package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	unitModel "condominiogt_backend/internals/features/condominium/units/model"
	paymentModel "condominiogt_backend/internals/features/payment/payments/model"
	"condominiogt_backend/internals/helpers/money"
)

// FinanceService reads the payment store and reduces it into report
// structures. Read-only, snapshot semantics, no locking.
type FinanceService struct {
	DB *gorm.DB
}

func NewFinanceService(db *gorm.DB) *FinanceService {
	return &FinanceService{DB: db}
}

// effective value used by every aggregate
const effectiveExpr = "COALESCE(payment_final_value, payment_base_value)"

func (s *FinanceService) paymentsAlive(condoID uuid.UUID) *gorm.DB {
	return paymentModel.ScopeAlive(s.DB.Model(&paymentModel.PaymentModel{})).
		Scopes(paymentModel.ScopeByCondominium(condoID))
}

/* =========================================================
   Summarize
   ========================================================= */

type Summary struct {
	TotalReceived    decimal.Decimal `json:"total_received"`
	TotalPending     decimal.Decimal `json:"total_pending"`
	TotalOverdue     decimal.Decimal `json:"total_overdue"`
	TotalExpensePaid decimal.Decimal `json:"total_expense_paid"`
	Balance          decimal.Decimal `json:"balance"`
}

// Summarize totals effective values per status within the optional due
// date range. Balance is paid revenue minus paid expense.
func (s *FinanceService) Summarize(condoID uuid.UUID, from, to *time.Time) (*Summary, error) {
	type row struct {
		Status string
		Kind   string
		Total  decimal.Decimal
	}

	q := s.paymentsAlive(condoID).
		Select("payment_status AS status, payment_kind AS kind, SUM(" + effectiveExpr + ") AS total").
		Group("payment_status, payment_kind")
	if from != nil {
		q = q.Where("payment_due_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("payment_due_date <= ?", *to)
	}

	var rows []row
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := &Summary{
		TotalReceived:    decimal.Zero,
		TotalPending:     decimal.Zero,
		TotalOverdue:     decimal.Zero,
		TotalExpensePaid: decimal.Zero,
	}
	for _, r := range rows {
		switch {
		case r.Status == string(paymentModel.PaymentPaid) && r.Kind == string(paymentModel.PaymentRevenue):
			out.TotalReceived = out.TotalReceived.Add(r.Total)
		case r.Status == string(paymentModel.PaymentPaid) && r.Kind == string(paymentModel.PaymentExpense):
			out.TotalExpensePaid = out.TotalExpensePaid.Add(r.Total)
		case r.Status == string(paymentModel.PaymentPending) && r.Kind == string(paymentModel.PaymentRevenue):
			out.TotalPending = out.TotalPending.Add(r.Total)
		case r.Status == string(paymentModel.PaymentOverdue) && r.Kind == string(paymentModel.PaymentRevenue):
			out.TotalOverdue = out.TotalOverdue.Add(r.Total)
		}
	}
	out.Balance = out.TotalReceived.Sub(out.TotalExpensePaid)
	return out, nil
}

/* =========================================================
   Delinquency
   ========================================================= */

type DelinquencyReport struct {
	AsOf       time.Time        `json:"as_of"`
	TotalUnits int              `json:"total_units"`
	Rate       decimal.Decimal  `json:"rate"`
	Units      []DelinquentUnit `json:"units"`
}

// Delinquency lists, per unit, the overdue revenue payments whose due
// date precedes asOf. Rate is unitsWithDebt / totalUnits * 100.
func (s *FinanceService) Delinquency(condoID uuid.UUID, asOf time.Time) (*DelinquencyReport, error) {
	type row struct {
		PaymentID uuid.UUID
		UnitID    *uuid.UUID
		DueDate   time.Time
		Value     decimal.Decimal
	}

	var raw []row
	err := s.paymentsAlive(condoID).
		Scopes(paymentModel.ScopeByStatus(paymentModel.PaymentOverdue)).
		Where("payment_kind = ?", paymentModel.PaymentRevenue).
		Where("payment_unit_id IS NOT NULL").
		Where("payment_due_date < ?", asOf).
		Select("payment_id AS payment_id, payment_unit_id AS unit_id, payment_due_date AS due_date, " + effectiveExpr + " AS value").
		Scan(&raw).Error
	if err != nil {
		return nil, err
	}

	rows := make([]OverduePaymentRow, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, OverduePaymentRow{
			PaymentID: r.PaymentID,
			UnitID:    *r.UnitID,
			DueDate:   r.DueDate,
			Value:     r.Value,
		})
	}
	units := GroupDelinquency(rows, asOf, money.DaysBetween)

	var totalUnits int64
	err = unitModel.ScopeAlive(s.DB.Model(&unitModel.UnitModel{})).
		Where("unit_condominium_id = ?", condoID).
		Count(&totalUnits).Error
	if err != nil {
		return nil, err
	}

	return &DelinquencyReport{
		AsOf:       asOf,
		TotalUnits: int(totalUnits),
		Rate:       DelinquencyRate(len(units), int(totalUnits)),
		Units:      units,
	}, nil
}

/* =========================================================
   Cost per unit
   ========================================================= */

type CostPerUnitReport struct {
	TotalExpense decimal.Decimal `json:"total_expense"`
	CostPerSqm   decimal.Decimal `json:"cost_per_sqm"`
	Units        []UnitCostShare `json:"units"`
}

// CostPerUnit divides the period's paid expenses by total unit area and
// prorates each unit's share by its area.
func (s *FinanceService) CostPerUnit(condoID uuid.UUID, from, to time.Time) (*CostPerUnitReport, error) {
	var total decimal.NullDecimal
	err := s.paymentsAlive(condoID).
		Scopes(paymentModel.ScopeByStatus(paymentModel.PaymentPaid)).
		Where("payment_kind = ?", paymentModel.PaymentExpense).
		Where("payment_paid_date >= ? AND payment_paid_date <= ?", from, to).
		Select("SUM(" + effectiveExpr + ")").
		Scan(&total).Error
	if err != nil {
		return nil, err
	}
	totalExpense := decimal.Zero
	if total.Valid {
		totalExpense = total.Decimal
	}

	var units []unitModel.UnitModel
	err = unitModel.ScopeAlive(s.DB).
		Where("unit_condominium_id = ?", condoID).
		Order("unit_identifier ASC").
		Find(&units).Error
	if err != nil {
		return nil, err
	}

	areas := make([]UnitArea, 0, len(units))
	for _, u := range units {
		areas = append(areas, UnitArea{
			UnitID:     u.UnitID,
			Identifier: u.UnitIdentifier,
			AreaSqm:    u.UnitAreaSqm,
		})
	}
	costPerSqm, shares := ProrateCostPerUnit(totalExpense, areas)

	return &CostPerUnitReport{
		TotalExpense: totalExpense,
		CostPerSqm:   costPerSqm,
		Units:        shares,
	}, nil
}

/* =========================================================
   Trend analysis
   ========================================================= */

type TrendReport struct {
	Months       int            `json:"months"`
	Buckets      []MonthBucket  `json:"buckets"`
	RevenueTrend TrendDirection `json:"revenue_trend"`
	ExpenseTrend TrendDirection `json:"expense_trend"`
}

func (s *FinanceService) monthlyTotals(condoID uuid.UUID, start, end time.Time) ([]MonthlyTotal, error) {
	var rows []MonthlyTotal
	err := s.paymentsAlive(condoID).
		Scopes(paymentModel.ScopeByStatus(paymentModel.PaymentPaid)).
		Where("payment_paid_date >= ? AND payment_paid_date <= ?", start, end).
		Select("EXTRACT(YEAR FROM payment_paid_date)::int AS year, EXTRACT(MONTH FROM payment_paid_date)::int AS month, payment_kind AS kind, SUM(" + effectiveExpr + ") AS total").
		Group("1, 2, 3").
		Scan(&rows).Error
	return rows, err
}

// Trend buckets the last `months` calendar months of paid transactions
// ending at asOf and classifies the revenue and expense series.
func (s *FinanceService) Trend(condoID uuid.UUID, months int, asOf time.Time) (*TrendReport, error) {
	end := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, 0).AddDate(0, 0, -1) // last day of asOf's month
	start := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(months - 1), 0)

	rows, err := s.monthlyTotals(condoID, start, end)
	if err != nil {
		return nil, err
	}
	buckets := FillMonthBuckets(end, months, rows)

	revenue := make([]decimal.Decimal, len(buckets))
	expense := make([]decimal.Decimal, len(buckets))
	for i, b := range buckets {
		revenue[i] = b.Revenue
		expense[i] = b.Expense
	}

	return &TrendReport{
		Months:       months,
		Buckets:      buckets,
		RevenueTrend: ClassifyTrend(revenue),
		ExpenseTrend: ClassifyTrend(expense),
	}, nil
}

/* =========================================================
   Cash flow
   ========================================================= */

type CashFlowReport struct {
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	Entries        []CashFlowEntry `json:"entries"`
}

// CashFlow orders the month's paid transactions chronologically and
// produces a running balance starting from the carried-forward opening
// balance (all prior paid revenue minus prior paid expense, unbounded
// look-back).
func (s *FinanceService) CashFlow(condoID uuid.UUID, month, year int) (*CashFlowReport, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).AddDate(0, 0, -1)

	var opening decimal.NullDecimal
	err := s.paymentsAlive(condoID).
		Scopes(paymentModel.ScopeByStatus(paymentModel.PaymentPaid)).
		Where("payment_paid_date < ?", monthStart).
		Select("SUM(CASE WHEN payment_kind = 'revenue' THEN " + effectiveExpr + " ELSE -" + effectiveExpr + " END)").
		Scan(&opening).Error
	if err != nil {
		return nil, err
	}
	openingBalance := decimal.Zero
	if opening.Valid {
		openingBalance = opening.Decimal
	}

	var payments []paymentModel.PaymentModel
	err = s.paymentsAlive(condoID).
		Scopes(paymentModel.ScopeByStatus(paymentModel.PaymentPaid)).
		Where("payment_paid_date >= ? AND payment_paid_date <= ?", monthStart, monthEnd).
		Order("payment_paid_date ASC, payment_created_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	inputs := make([]CashFlowInput, 0, len(payments))
	for _, p := range payments {
		inputs = append(inputs, CashFlowInput{
			PaymentID:   p.PaymentID,
			Description: p.PaymentDescription,
			Kind:        string(p.PaymentKind),
			PaidDate:    *p.PaymentPaidDate,
			Value:       p.EffectiveValue(),
		})
	}
	entries := RunningBalance(openingBalance, inputs)

	closing := openingBalance
	if n := len(entries); n > 0 {
		closing = entries[n-1].Balance
	}

	return &CashFlowReport{
		Month:          month,
		Year:           year,
		OpeningBalance: openingBalance,
		ClosingBalance: closing,
		Entries:        entries,
	}, nil
}

/* =========================================================
   Forecast
   ========================================================= */

type ForecastPoint struct {
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Balance decimal.Decimal `json:"balance"`
}

type ForecastReport struct {
	BasedOnMonths int             `json:"based_on_months"`
	Horizon       int             `json:"horizon"`
	Points        []ForecastPoint `json:"points"`
}

// Forecast extends the balance trend line of the last `months` calendar
// months by `horizon` further months.
func (s *FinanceService) Forecast(condoID uuid.UUID, months, horizon int, asOf time.Time) (*ForecastReport, error) {
	trend, err := s.Trend(condoID, months, asOf)
	if err != nil {
		return nil, err
	}

	series := make([]decimal.Decimal, len(trend.Buckets))
	for i, b := range trend.Buckets {
		series[i] = b.Balance
	}
	projected := ForecastSeries(series, horizon)

	points := make([]ForecastPoint, 0, horizon)
	cursor := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i, v := range projected {
		at := cursor.AddDate(0, i+1, 0)
		points = append(points, ForecastPoint{Year: at.Year(), Month: at.Month(), Balance: v})
	}

	return &ForecastReport{
		BasedOnMonths: months,
		Horizon:       horizon,
		Points:        points,
	}, nil
}
