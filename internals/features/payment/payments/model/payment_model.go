// file: internals/features/payment/payments/model/payment_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Enums
   ========================= */

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentOverdue  PaymentStatus = "overdue"
	PaymentCanceled PaymentStatus = "canceled"
)

// IsTerminal: paid and canceled accept no further transitions.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentPaid || s == PaymentCanceled
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentOverdue, PaymentCanceled:
		return true
	}
	return false
}

type PaymentKind string

const (
	PaymentRevenue PaymentKind = "revenue"
	PaymentExpense PaymentKind = "expense"
)

func (k PaymentKind) Valid() bool {
	return k == PaymentRevenue || k == PaymentExpense
}

/* =========================
   Snapshot payloads (JSONB)
   ========================= */

type PaymentUnitSnapshotPayload struct {
	ID         uuid.UUID `json:"id"`
	Identifier string    `json:"identifier,omitempty"`
	Block      string    `json:"block,omitempty"`
}

/* =========================
   Model: payments
   ========================= */

type PaymentModel struct {
	PaymentID uuid.UUID `json:"payment_id" gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// weak refs: the condominium/unit may be removed independently
	PaymentCondominiumID *uuid.UUID `json:"payment_condominium_id,omitempty" gorm:"column:payment_condominium_id;type:uuid;index;constraint:OnDelete:SET NULL"`
	PaymentUnitID        *uuid.UUID `json:"payment_unit_id,omitempty"        gorm:"column:payment_unit_id;type:uuid;index;constraint:OnDelete:SET NULL"`

	PaymentDescription string        `json:"payment_description" gorm:"column:payment_description;type:text;not null"`
	PaymentKind        PaymentKind   `json:"payment_kind"        gorm:"column:payment_kind;type:varchar(10);not null"`
	PaymentCategory    *string       `json:"payment_category,omitempty" gorm:"column:payment_category;type:varchar(80)"`
	PaymentStatus      PaymentStatus `json:"payment_status"      gorm:"column:payment_status;type:varchar(10);not null;default:pending;index"`

	// amounts stay unrounded in storage; round only at report boundaries
	PaymentBaseValue     decimal.Decimal  `json:"payment_base_value"              gorm:"column:payment_base_value;type:numeric(14,6);not null"`
	PaymentFinalValue    *decimal.Decimal `json:"payment_final_value,omitempty"   gorm:"column:payment_final_value;type:numeric(14,6)"`
	PaymentInterestValue decimal.Decimal  `json:"payment_interest_value"          gorm:"column:payment_interest_value;type:numeric(14,6);not null;default:0"`
	PaymentPenaltyValue  decimal.Decimal  `json:"payment_penalty_value"           gorm:"column:payment_penalty_value;type:numeric(14,6);not null;default:0"`

	PaymentDueDate  time.Time  `json:"payment_due_date"            gorm:"column:payment_due_date;type:date;not null;index"`
	PaymentPaidDate *time.Time `json:"payment_paid_date,omitempty" gorm:"column:payment_paid_date;type:date"`

	PaymentMethod           *string `json:"payment_method,omitempty"            gorm:"column:payment_method;type:varchar(40)"`
	PaymentReceiptReference *string `json:"payment_receipt_reference,omitempty" gorm:"column:payment_receipt_reference;type:varchar(120)"`
	PaymentNotes            *string `json:"payment_notes,omitempty"             gorm:"column:payment_notes;type:text"`

	// gateway order id, set when an online checkout was issued
	PaymentGatewayOrderID *string `json:"payment_gateway_order_id,omitempty" gorm:"column:payment_gateway_order_id;type:varchar(64);uniqueIndex"`

	// unit snapshot at creation (JSONB, nullable)
	PaymentUnitSnapshot datatypes.JSON `json:"payment_unit_snapshot,omitempty" gorm:"column:payment_unit_snapshot;type:jsonb"`

	// audit
	PaymentCreatedBy *uuid.UUID `json:"payment_created_by,omitempty" gorm:"column:payment_created_by;type:uuid"`
	PaymentUpdatedBy *uuid.UUID `json:"payment_updated_by,omitempty" gorm:"column:payment_updated_by;type:uuid"`

	// timestamps (soft delete manual)
	PaymentCreatedAt time.Time  `json:"payment_created_at"           gorm:"column:payment_created_at;type:timestamptz;not null;default:now()"`
	PaymentUpdatedAt time.Time  `json:"payment_updated_at"           gorm:"column:payment_updated_at;type:timestamptz;not null;default:now()"`
	PaymentDeletedAt *time.Time `json:"payment_deleted_at,omitempty" gorm:"column:payment_deleted_at;type:timestamptz"`
}

func (PaymentModel) TableName() string { return "payments" }

/* =========================
   Hooks: refresh updated_at
   ========================= */

func (p *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	p.PaymentUpdatedAt = time.Now().UTC()
	return nil
}
func (p *PaymentModel) BeforeUpdate(tx *gorm.DB) error {
	p.PaymentUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("payment_deleted_at IS NULL")
}
func ScopeByCondominium(condoID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("payment_condominium_id = ?", condoID)
	}
}
func ScopeByStatus(status PaymentStatus) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("payment_status = ?", status)
	}
}

/* =========================
   Derived helpers
   ========================= */

// EffectiveValue is what the payment is actually worth: final when
// computed, base otherwise.
func (p *PaymentModel) EffectiveValue() decimal.Decimal {
	if p.PaymentFinalValue != nil {
		return *p.PaymentFinalValue
	}
	return p.PaymentBaseValue
}

func (p *PaymentModel) SetUnitSnapshot(s *PaymentUnitSnapshotPayload) error {
	if s == nil {
		p.PaymentUnitSnapshot = nil
		return nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	p.PaymentUnitSnapshot = datatypes.JSON(b)
	return nil
}
