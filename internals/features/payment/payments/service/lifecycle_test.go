package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "condominiogt_backend/internals/features/payment/payments/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newPending(t *testing.T, base float64, due time.Time) *model.PaymentModel {
	t.Helper()
	p, err := NewPayment(CreateInput{
		Description: "taxa condominial",
		Kind:        model.PaymentRevenue,
		BaseValue:   decimal.NewFromFloat(base),
		DueDate:     due,
	})
	require.NoError(t, err)
	return p
}

/* ======================= Create ======================= */

func TestNewPaymentDefaults(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))

	assert.Equal(t, model.PaymentPending, p.PaymentStatus)
	require.NotNil(t, p.PaymentFinalValue)
	assert.True(t, p.PaymentFinalValue.Equal(p.PaymentBaseValue), "final starts as base")
	assert.True(t, p.PaymentInterestValue.IsZero())
	assert.True(t, p.PaymentPenaltyValue.IsZero())
}

func TestNewPaymentValidation(t *testing.T) {
	_, err := NewPayment(CreateInput{
		Description: "x",
		Kind:        model.PaymentKind("transfer"),
		BaseValue:   decimal.NewFromInt(-5),
	})
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "kind")
	assert.Contains(t, ve.Fields, "base_value")
	assert.Contains(t, ve.Fields, "due_date")
}

/* ======================= Overdue ======================= */

func TestApplyOverdueTenDaysLate(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))

	require.NoError(t, ApplyOverdue(p, date(2024, 1, 20)))

	assert.Equal(t, model.PaymentOverdue, p.PaymentStatus)
	assert.Equal(t, "2.00", p.PaymentPenaltyValue.Round(2).StringFixed(2))
	assert.Equal(t, "0.33", p.PaymentInterestValue.Round(2).StringFixed(2))
	assert.Equal(t, "102.33", p.PaymentFinalValue.Round(2).StringFixed(2))
	assert.True(t, p.PaymentFinalValue.GreaterThanOrEqual(p.PaymentBaseValue))
}

func TestApplyOverdueNotYetDue(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))

	assert.ErrorIs(t, ApplyOverdue(p, date(2024, 1, 10)), ErrInvalidTransition)
	assert.ErrorIs(t, ApplyOverdue(p, date(2024, 1, 5)), ErrInvalidTransition)
	assert.Equal(t, model.PaymentPending, p.PaymentStatus)
}

func TestApplyOverdueIdempotentSameDay(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))
	require.NoError(t, ApplyOverdue(p, date(2024, 1, 20)))
	first := *p.PaymentFinalValue

	require.NoError(t, ApplyOverdue(p, date(2024, 1, 20)))
	assert.True(t, p.PaymentFinalValue.Equal(first))
}

func TestApplyOverdueRecomputesOnLaterDay(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))
	require.NoError(t, ApplyOverdue(p, date(2024, 1, 20)))
	first := *p.PaymentFinalValue

	require.NoError(t, ApplyOverdue(p, date(2024, 1, 30)))
	assert.True(t, p.PaymentFinalValue.GreaterThan(first))
}

func TestApplyOverdueRejectedFromTerminal(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))
	require.NoError(t, ApplyRegisterPayment(p, PayInput{}, date(2024, 1, 9)))

	assert.ErrorIs(t, ApplyOverdue(p, date(2024, 2, 1)), ErrInvalidTransition)
}

/* ======================= Register payment ======================= */

func TestRegisterPaymentDefaultsPaidDateToNow(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))
	now := date(2024, 1, 8)

	require.NoError(t, ApplyRegisterPayment(p, PayInput{}, now))

	assert.Equal(t, model.PaymentPaid, p.PaymentStatus)
	require.NotNil(t, p.PaymentPaidDate)
	assert.True(t, p.PaymentPaidDate.Equal(now))
}

func TestRegisterPaymentOnTimeZeroesAccruals(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))
	require.NoError(t, ApplyOverdue(p, date(2024, 1, 20)))

	// recorded late but actually paid on the due date
	paid := date(2024, 1, 10)
	require.NoError(t, ApplyRegisterPayment(p, PayInput{PaidDate: &paid}, date(2024, 1, 20)))

	assert.True(t, p.PaymentInterestValue.IsZero())
	assert.True(t, p.PaymentPenaltyValue.IsZero())
	assert.True(t, p.PaymentFinalValue.Equal(p.PaymentBaseValue))
}

func TestRegisterPaymentLateKeepsAccruals(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))
	require.NoError(t, ApplyOverdue(p, date(2024, 1, 20)))
	owed := *p.PaymentFinalValue

	paid := date(2024, 1, 20)
	require.NoError(t, ApplyRegisterPayment(p, PayInput{PaidDate: &paid}, paid))

	assert.True(t, p.PaymentFinalValue.Equal(owed), "amount due is the last computed final")
	assert.False(t, p.PaymentInterestValue.IsZero())
}

func TestRegisterPaymentTwiceRejected(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))
	require.NoError(t, ApplyRegisterPayment(p, PayInput{}, date(2024, 1, 9)))

	assert.ErrorIs(t, ApplyRegisterPayment(p, PayInput{}, date(2024, 1, 9)), ErrInvalidTransition)
}

/* ======================= Cancel ======================= */

func TestCancelStoresReasonAndFreezesValue(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))
	require.NoError(t, ApplyOverdue(p, date(2024, 1, 20)))
	owed := *p.PaymentFinalValue

	reason := "lançamento duplicado"
	require.NoError(t, ApplyCancel(p, &reason, nil))

	assert.Equal(t, model.PaymentCanceled, p.PaymentStatus)
	require.NotNil(t, p.PaymentNotes)
	assert.Contains(t, *p.PaymentNotes, reason)
	assert.True(t, p.PaymentFinalValue.Equal(owed), "cancel never alters final_value")
}

func TestTerminalStatesAreMutuallyExclusive(t *testing.T) {
	paid := newPending(t, 100, date(2024, 1, 10))
	require.NoError(t, ApplyRegisterPayment(paid, PayInput{}, date(2024, 1, 9)))
	assert.ErrorIs(t, ApplyCancel(paid, nil, nil), ErrInvalidTransition)

	canceled := newPending(t, 100, date(2024, 1, 10))
	require.NoError(t, ApplyCancel(canceled, nil, nil))
	assert.ErrorIs(t, ApplyRegisterPayment(canceled, PayInput{}, date(2024, 1, 9)), ErrInvalidTransition)
}

/* ======================= Edit ======================= */

func TestEditPendingKeepsFinalInSyncWithBase(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))
	nv := decimal.NewFromInt(250)

	require.NoError(t, ApplyEdit(p, EditInput{BaseValue: &nv}, date(2024, 1, 5)))

	assert.True(t, p.PaymentFinalValue.Equal(nv))
}

func TestEditOverdueBaseRecomputesAccruals(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))
	require.NoError(t, ApplyOverdue(p, date(2024, 1, 20)))

	nv := decimal.NewFromInt(200)
	require.NoError(t, ApplyEdit(p, EditInput{BaseValue: &nv}, date(2024, 1, 20)))

	// still 10 days late, accruals now follow the new base
	assert.Equal(t, model.PaymentOverdue, p.PaymentStatus)
	assert.Equal(t, "4.00", p.PaymentPenaltyValue.Round(2).StringFixed(2))
	assert.Equal(t, "0.67", p.PaymentInterestValue.Round(2).StringFixed(2))
	assert.Equal(t, "204.67", p.PaymentFinalValue.Round(2).StringFixed(2))
	assert.True(t, p.PaymentFinalValue.GreaterThanOrEqual(p.PaymentBaseValue),
		"overdue final must never fall below base")
}

func TestEditOverdueDueDateRecomputesAccruals(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))
	require.NoError(t, ApplyOverdue(p, date(2024, 1, 20)))

	// pulling the due date back doubles the days late
	newDue := date(2023, 12, 31)
	require.NoError(t, ApplyEdit(p, EditInput{DueDate: &newDue}, date(2024, 1, 20)))

	assert.Equal(t, "2.00", p.PaymentPenaltyValue.Round(2).StringFixed(2))
	assert.Equal(t, "0.67", p.PaymentInterestValue.Round(2).StringFixed(2))
	assert.Equal(t, "102.67", p.PaymentFinalValue.Round(2).StringFixed(2))
}

func TestEditOverdueDueDateIntoFutureClearsAccruals(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))
	require.NoError(t, ApplyOverdue(p, date(2024, 1, 20)))

	newDue := date(2024, 2, 10)
	require.NoError(t, ApplyEdit(p, EditInput{DueDate: &newDue}, date(2024, 1, 20)))

	assert.Equal(t, model.PaymentOverdue, p.PaymentStatus)
	assert.True(t, p.PaymentInterestValue.IsZero())
	assert.True(t, p.PaymentPenaltyValue.IsZero())
	assert.True(t, p.PaymentFinalValue.Equal(p.PaymentBaseValue))
}

func TestEditStatusToOverdueUsesEditedDueDate(t *testing.T) {
	p := newPending(t, 100, date(2024, 2, 1))
	newDue := date(2024, 1, 10)
	overdue := model.PaymentOverdue

	require.NoError(t, ApplyEdit(p, EditInput{DueDate: &newDue, Status: &overdue}, date(2024, 1, 20)))

	// 10 days late against the edited due date
	assert.Equal(t, "102.33", p.PaymentFinalValue.Round(2).StringFixed(2))
}

func TestEditStatusToPaidAppliesRegisterSemantics(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))
	paidStatus := model.PaymentPaid
	paidDate := date(2024, 1, 8)

	require.NoError(t, ApplyEdit(p, EditInput{Status: &paidStatus, PaidDate: &paidDate}, date(2024, 1, 20)))

	assert.Equal(t, model.PaymentPaid, p.PaymentStatus)
	require.NotNil(t, p.PaymentPaidDate)
	assert.True(t, p.PaymentPaidDate.Equal(paidDate))
}

func TestEditCanceledRejected(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))
	require.NoError(t, ApplyCancel(p, nil, nil))

	d := "nova descrição"
	assert.ErrorIs(t, ApplyEdit(p, EditInput{Description: &d}, date(2024, 1, 11)), ErrInvalidTransition)
}

func TestEditReopenRejected(t *testing.T) {
	p := newPending(t, 100, date(2024, 1, 10))
	require.NoError(t, ApplyOverdue(p, date(2024, 1, 20)))
	pending := model.PaymentPending

	assert.ErrorIs(t, ApplyEdit(p, EditInput{Status: &pending}, date(2024, 1, 21)), ErrInvalidTransition)
}
