// Pure payment state machine. Every function here mutates only the
// struct it is given; persistence and notification live in service.go
// so these transitions stay deterministic under test.
package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "condominiogt_backend/internals/features/payment/payments/model"
	"condominiogt_backend/internals/helpers/money"
)

// Contractual rates: 2% flat penalty, 1%/month simple interest.
var (
	PenaltyRate         = decimal.NewFromFloat(0.02)
	MonthlyInterestRate = decimal.NewFromFloat(0.01)
)

/* =========================
   Create
   ========================= */

type CreateInput struct {
	CondominiumID *uuid.UUID
	UnitID        *uuid.UUID
	Description   string
	Kind          model.PaymentKind
	Category      *string
	BaseValue     decimal.Decimal
	DueDate       time.Time
	Method        *string
	Notes         *string
	CreatedBy     *uuid.UUID
}

// NewPayment validates and builds a pending payment. final_value starts
// as base_value; interest and penalty start at zero.
func NewPayment(in CreateInput) (*model.PaymentModel, error) {
	fields := map[string]string{}
	if strings.TrimSpace(in.Description) == "" {
		fields["description"] = "required"
	}
	if !in.Kind.Valid() {
		fields["kind"] = "must be revenue or expense"
	}
	if !in.BaseValue.IsPositive() {
		fields["base_value"] = "must be greater than zero"
	}
	if in.DueDate.IsZero() {
		fields["due_date"] = "required"
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	final := in.BaseValue
	return &model.PaymentModel{
		PaymentCondominiumID: in.CondominiumID,
		PaymentUnitID:        in.UnitID,
		PaymentDescription:   strings.TrimSpace(in.Description),
		PaymentKind:          in.Kind,
		PaymentCategory:      in.Category,
		PaymentStatus:        model.PaymentPending,
		PaymentBaseValue:     in.BaseValue,
		PaymentFinalValue:    &final,
		PaymentInterestValue: decimal.Zero,
		PaymentPenaltyValue:  decimal.Zero,
		PaymentDueDate:       in.DueDate,
		PaymentMethod:        in.Method,
		PaymentNotes:         in.Notes,
		PaymentCreatedBy:     in.CreatedBy,
		PaymentUpdatedBy:     in.CreatedBy,
	}, nil
}

/* =========================
   pending → overdue
   ========================= */

// ApplyOverdue moves a pending payment past its due date into overdue
// and accrues penalty + interest:
//
//	penalty  = base * 2%
//	interest = base * (1%/30) * daysLate   (the delta, not the total)
//	final    = base + interest + penalty
//
// Calling it again on an already-overdue payment recomputes with the
// new asOf; same-day calls produce identical values.
func ApplyOverdue(p *model.PaymentModel, asOf time.Time) error {
	if p.PaymentStatus != model.PaymentPending && p.PaymentStatus != model.PaymentOverdue {
		return ErrInvalidTransition
	}

	daysLate := money.DaysBetween(p.PaymentDueDate, asOf)
	if daysLate <= 0 {
		return ErrInvalidTransition
	}

	base := p.PaymentBaseValue
	penalty := money.Penalty(base, PenaltyRate)
	interest := money.SimpleInterest(base, MonthlyInterestRate, daysLate).Sub(base)
	final := base.Add(interest).Add(penalty)

	p.PaymentStatus = model.PaymentOverdue
	p.PaymentPenaltyValue = penalty
	p.PaymentInterestValue = interest
	p.PaymentFinalValue = &final
	return nil
}

/* =========================
   pending|overdue → paid
   ========================= */

type PayInput struct {
	PaidDate         *time.Time
	Method           *string
	ReceiptReference *string
	UpdatedBy        *uuid.UUID
}

// ApplyRegisterPayment settles the payment. paid_date defaults to now.
// A paid_date on or before the due date means the charge was settled on
// time even if recorded late, so accrued interest/penalty is zeroed and
// the amount owed reverts to base. A late paid_date keeps whatever was
// last accrued: the amount due is the last computed final_value.
func ApplyRegisterPayment(p *model.PaymentModel, in PayInput, now time.Time) error {
	if p.PaymentStatus != model.PaymentPending && p.PaymentStatus != model.PaymentOverdue {
		return ErrInvalidTransition
	}

	paidDate := now
	if in.PaidDate != nil {
		paidDate = *in.PaidDate
	}

	if money.DaysBetween(p.PaymentDueDate, paidDate) <= 0 {
		base := p.PaymentBaseValue
		p.PaymentInterestValue = decimal.Zero
		p.PaymentPenaltyValue = decimal.Zero
		p.PaymentFinalValue = &base
	}

	p.PaymentStatus = model.PaymentPaid
	p.PaymentPaidDate = &paidDate
	if in.Method != nil {
		p.PaymentMethod = in.Method
	}
	if in.ReceiptReference != nil {
		p.PaymentReceiptReference = in.ReceiptReference
	}
	if in.UpdatedBy != nil {
		p.PaymentUpdatedBy = in.UpdatedBy
	}
	return nil
}

/* =========================
   pending|overdue → canceled
   ========================= */

// ApplyCancel voids the payment without touching its values. The
// optional reason lands in notes.
func ApplyCancel(p *model.PaymentModel, reason *string, updatedBy *uuid.UUID) error {
	if p.PaymentStatus != model.PaymentPending && p.PaymentStatus != model.PaymentOverdue {
		return ErrInvalidTransition
	}

	p.PaymentStatus = model.PaymentCanceled
	if reason != nil && strings.TrimSpace(*reason) != "" {
		r := strings.TrimSpace(*reason)
		if p.PaymentNotes != nil && strings.TrimSpace(*p.PaymentNotes) != "" {
			r = *p.PaymentNotes + "\n" + r
		}
		p.PaymentNotes = &r
	}
	if updatedBy != nil {
		p.PaymentUpdatedBy = updatedBy
	}
	return nil
}

/* =========================
   Partial edit
   ========================= */

type EditInput struct {
	Description *string
	Kind        *model.PaymentKind
	Category    *string
	BaseValue   *decimal.Decimal
	DueDate     *time.Time
	Status      *model.PaymentStatus
	PaidDate    *time.Time
	Method      *string
	Receipt     *string
	Notes       *string
	UpdatedBy   *uuid.UUID
}

// ApplyEdit patches mutable fields. A status change rides the same
// transition rules as the dedicated entry points: →overdue recomputes
// interest/penalty against the (possibly edited) due date with now as
// asOf; →paid follows ApplyRegisterPayment semantics. Editing the base
// value or due date of a payment that is (or becomes) overdue also
// recomputes the accruals, so final stays base + interest + penalty.
// Canceled payments accept no edits at all.
func ApplyEdit(p *model.PaymentModel, in EditInput, now time.Time) error {
	if p.PaymentStatus == model.PaymentCanceled {
		return ErrInvalidTransition
	}

	fields := map[string]string{}
	if in.Description != nil && strings.TrimSpace(*in.Description) == "" {
		fields["description"] = "must not be empty"
	}
	if in.Kind != nil && !in.Kind.Valid() {
		fields["kind"] = "must be revenue or expense"
	}
	if in.BaseValue != nil && !in.BaseValue.IsPositive() {
		fields["base_value"] = "must be greater than zero"
	}
	if in.Status != nil && !in.Status.Valid() {
		fields["status"] = "unknown status"
	}
	if len(fields) > 0 {
		return newValidationError(fields)
	}

	if in.Description != nil {
		d := strings.TrimSpace(*in.Description)
		p.PaymentDescription = d
	}
	if in.Kind != nil {
		p.PaymentKind = *in.Kind
	}
	if in.Category != nil {
		p.PaymentCategory = in.Category
	}
	if in.BaseValue != nil {
		p.PaymentBaseValue = *in.BaseValue
		if p.PaymentStatus == model.PaymentPending {
			base := *in.BaseValue
			p.PaymentFinalValue = &base
		}
	}
	if in.DueDate != nil {
		p.PaymentDueDate = *in.DueDate
	}
	if in.Method != nil {
		p.PaymentMethod = in.Method
	}
	if in.Receipt != nil {
		p.PaymentReceiptReference = in.Receipt
	}
	if in.Notes != nil {
		p.PaymentNotes = in.Notes
	}
	if in.UpdatedBy != nil {
		p.PaymentUpdatedBy = in.UpdatedBy
	}

	if in.Status != nil && *in.Status != p.PaymentStatus {
		switch *in.Status {
		case model.PaymentOverdue:
			if err := ApplyOverdue(p, now); err != nil {
				return err
			}
		case model.PaymentPaid:
			if err := ApplyRegisterPayment(p, PayInput{
				PaidDate:  in.PaidDate,
				Method:    in.Method,
				UpdatedBy: in.UpdatedBy,
			}, now); err != nil {
				return err
			}
		case model.PaymentCanceled:
			if err := ApplyCancel(p, in.Notes, in.UpdatedBy); err != nil {
				return err
			}
		case model.PaymentPending:
			// reopening is not supported
			return ErrInvalidTransition
		}
	}

	// overdue keeps final = base + interest + penalty, so an edited base
	// or due date forces a recompute against now
	if p.PaymentStatus == model.PaymentOverdue && (in.BaseValue != nil || in.DueDate != nil) {
		if err := ApplyOverdue(p, now); err != nil {
			// due date moved past now: nothing is accrued anymore
			base := p.PaymentBaseValue
			p.PaymentInterestValue = decimal.Zero
			p.PaymentPenaltyValue = decimal.Zero
			p.PaymentFinalValue = &base
		}
	}

	return nil
}
