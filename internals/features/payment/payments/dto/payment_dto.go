// file: internals/features/payment/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "condominiogt_backend/internals/features/payment/payments/model"
	service "condominiogt_backend/internals/features/payment/payments/service"
	helper "condominiogt_backend/internals/helpers"
	"condominiogt_backend/internals/helpers/money"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreatePaymentRequest struct {
	PaymentCondominiumID *uuid.UUID `json:"payment_condominium_id"`
	PaymentUnitID        *uuid.UUID `json:"payment_unit_id"`

	PaymentDescription string  `json:"payment_description" validate:"required"`
	PaymentKind        string  `json:"payment_kind"        validate:"required,oneof=revenue expense"`
	PaymentCategory    *string `json:"payment_category"    validate:"omitempty,max=80"`

	PaymentBaseValue decimal.Decimal `json:"payment_base_value" validate:"required"`

	// "YYYY-MM-DD"
	PaymentDueDate string `json:"payment_due_date" validate:"required,datetime=2006-01-02"`

	PaymentMethod *string `json:"payment_method" validate:"omitempty,max=40"`
	PaymentNotes  *string `json:"payment_notes"`
}

func (r *CreatePaymentRequest) ToInput(createdBy *uuid.UUID) (service.CreateInput, error) {
	due, err := helper.ParseDateYMD(r.PaymentDueDate)
	if err != nil {
		return service.CreateInput{}, err
	}
	return service.CreateInput{
		CondominiumID: r.PaymentCondominiumID,
		UnitID:        r.PaymentUnitID,
		Description:   r.PaymentDescription,
		Kind:          model.PaymentKind(r.PaymentKind),
		Category:      r.PaymentCategory,
		BaseValue:     r.PaymentBaseValue,
		DueDate:       due,
		Method:        r.PaymentMethod,
		Notes:         r.PaymentNotes,
		CreatedBy:     createdBy,
	}, nil
}

/* =========================================================
   REQUEST: Patch
   ========================================================= */

type UpdatePaymentRequest struct {
	PaymentDescription *string          `json:"payment_description"`
	PaymentKind        *string          `json:"payment_kind"     validate:"omitempty,oneof=revenue expense"`
	PaymentCategory    *string          `json:"payment_category" validate:"omitempty,max=80"`
	PaymentBaseValue   *decimal.Decimal `json:"payment_base_value"`
	PaymentDueDate     *string          `json:"payment_due_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentStatus      *string          `json:"payment_status"   validate:"omitempty,oneof=pending paid overdue canceled"`
	PaymentPaidDate    *string          `json:"payment_paid_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod      *string          `json:"payment_method"   validate:"omitempty,max=40"`
	PaymentReceipt     *string          `json:"payment_receipt_reference" validate:"omitempty,max=120"`
	PaymentNotes       *string          `json:"payment_notes"`
}

func (r *UpdatePaymentRequest) ToInput(updatedBy *uuid.UUID) (service.EditInput, error) {
	due, err := helper.ParseDateYMDPtr(r.PaymentDueDate)
	if err != nil {
		return service.EditInput{}, err
	}
	paid, err := helper.ParseDateYMDPtr(r.PaymentPaidDate)
	if err != nil {
		return service.EditInput{}, err
	}

	in := service.EditInput{
		Description: r.PaymentDescription,
		Category:    r.PaymentCategory,
		BaseValue:   r.PaymentBaseValue,
		DueDate:     due,
		PaidDate:    paid,
		Method:      r.PaymentMethod,
		Receipt:     r.PaymentReceipt,
		Notes:       r.PaymentNotes,
		UpdatedBy:   updatedBy,
	}
	if r.PaymentKind != nil {
		k := model.PaymentKind(*r.PaymentKind)
		in.Kind = &k
	}
	if r.PaymentStatus != nil {
		st := model.PaymentStatus(*r.PaymentStatus)
		in.Status = &st
	}
	return in, nil
}

/* =========================================================
   REQUEST: transitions
   ========================================================= */

type PayPaymentRequest struct {
	PaymentPaidDate  *string `json:"payment_paid_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod    *string `json:"payment_method"    validate:"omitempty,max=40"`
	PaymentReceipt   *string `json:"payment_receipt_reference" validate:"omitempty,max=120"`
}

func (r *PayPaymentRequest) ToInput(updatedBy *uuid.UUID) (service.PayInput, error) {
	paid, err := helper.ParseDateYMDPtr(r.PaymentPaidDate)
	if err != nil {
		return service.PayInput{}, err
	}
	return service.PayInput{
		PaidDate:         paid,
		Method:           r.PaymentMethod,
		ReceiptReference: r.PaymentReceipt,
		UpdatedBy:        updatedBy,
	}, nil
}

type CancelPaymentRequest struct {
	PaymentCancelReason *string `json:"payment_cancel_reason"`
}

type CheckoutPaymentRequest struct {
	PayerName  string `json:"payer_name"  validate:"required"`
	PayerEmail string `json:"payer_email" validate:"required,email"`
}

/* =========================================================
   REQUEST: List query
   ========================================================= */

type ListPaymentQuery struct {
	CondominiumID *uuid.UUID `query:"condominium_id"`
	UnitID        *uuid.UUID `query:"unit_id"`
	Status        *string    `query:"status"   validate:"omitempty,oneof=pending paid overdue canceled"`
	Kind          *string    `query:"kind"     validate:"omitempty,oneof=revenue expense"`
	Category      *string    `query:"category"`
	DueFrom       *string    `query:"due_from" validate:"omitempty,datetime=2006-01-02"`
	DueTo         *string    `query:"due_to"   validate:"omitempty,datetime=2006-01-02"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type PaymentResponse struct {
	PaymentID            uuid.UUID  `json:"payment_id"`
	PaymentCondominiumID *uuid.UUID `json:"payment_condominium_id,omitempty"`
	PaymentUnitID        *uuid.UUID `json:"payment_unit_id,omitempty"`

	PaymentDescription string  `json:"payment_description"`
	PaymentKind        string  `json:"payment_kind"`
	PaymentCategory    *string `json:"payment_category,omitempty"`
	PaymentStatus      string  `json:"payment_status"`

	PaymentBaseValue      string `json:"payment_base_value"`
	PaymentFinalValue     string `json:"payment_final_value"`
	PaymentInterestValue  string `json:"payment_interest_value"`
	PaymentPenaltyValue   string `json:"payment_penalty_value"`
	PaymentFormattedValue string `json:"payment_formatted_value"`

	PaymentDueDate  string  `json:"payment_due_date"`
	PaymentPaidDate *string `json:"payment_paid_date,omitempty"`

	PaymentMethod           *string `json:"payment_method,omitempty"`
	PaymentReceiptReference *string `json:"payment_receipt_reference,omitempty"`
	PaymentNotes            *string `json:"payment_notes,omitempty"`
	PaymentGatewayOrderID   *string `json:"payment_gateway_order_id,omitempty"`

	PaymentCreatedBy *uuid.UUID `json:"payment_created_by,omitempty"`
	PaymentUpdatedBy *uuid.UUID `json:"payment_updated_by,omitempty"`
	PaymentCreatedAt time.Time  `json:"payment_created_at"`
	PaymentUpdatedAt time.Time  `json:"payment_updated_at"`
}

// FromModelPayment rounds to 2 digits here and only here: the API is a
// presentation boundary.
func FromModelPayment(p *model.PaymentModel) PaymentResponse {
	eff := p.EffectiveValue()

	resp := PaymentResponse{
		PaymentID:            p.PaymentID,
		PaymentCondominiumID: p.PaymentCondominiumID,
		PaymentUnitID:        p.PaymentUnitID,
		PaymentDescription:   p.PaymentDescription,
		PaymentKind:          string(p.PaymentKind),
		PaymentCategory:      p.PaymentCategory,
		PaymentStatus:        string(p.PaymentStatus),

		PaymentBaseValue:      money.Round2(p.PaymentBaseValue).StringFixed(2),
		PaymentFinalValue:     money.Round2(eff).StringFixed(2),
		PaymentInterestValue:  money.Round2(p.PaymentInterestValue).StringFixed(2),
		PaymentPenaltyValue:   money.Round2(p.PaymentPenaltyValue).StringFixed(2),
		PaymentFormattedValue: money.FormatBRL(eff),

		PaymentDueDate: p.PaymentDueDate.Format("2006-01-02"),

		PaymentMethod:           p.PaymentMethod,
		PaymentReceiptReference: p.PaymentReceiptReference,
		PaymentNotes:            p.PaymentNotes,
		PaymentGatewayOrderID:   p.PaymentGatewayOrderID,

		PaymentCreatedBy: p.PaymentCreatedBy,
		PaymentUpdatedBy: p.PaymentUpdatedBy,
		PaymentCreatedAt: p.PaymentCreatedAt,
		PaymentUpdatedAt: p.PaymentUpdatedAt,
	}
	if p.PaymentPaidDate != nil {
		d := p.PaymentPaidDate.Format("2006-01-02")
		resp.PaymentPaidDate = &d
	}
	return resp
}

func FromModelPayments(list []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelPayment(&list[i]))
	}
	return out
}
