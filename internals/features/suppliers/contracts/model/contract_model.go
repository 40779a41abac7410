// file: internals/features/suppliers/contracts/model/contract_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ContractStatus string

const (
	ContractActive   ContractStatus = "active"
	ContractExpired  ContractStatus = "expired"
	ContractCanceled ContractStatus = "canceled"
)

type ContractModel struct {
	ContractID uuid.UUID `json:"contract_id" gorm:"column:contract_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	ContractCondominiumID uuid.UUID  `json:"contract_condominium_id" gorm:"column:contract_condominium_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	ContractSupplierID    *uuid.UUID `json:"contract_supplier_id,omitempty" gorm:"column:contract_supplier_id;type:uuid;index;constraint:OnDelete:SET NULL"`

	ContractDescription  string          `json:"contract_description"   gorm:"column:contract_description;type:text;not null"`
	ContractMonthlyValue decimal.Decimal `json:"contract_monthly_value" gorm:"column:contract_monthly_value;type:numeric(14,2);not null;default:0"`

	ContractStartDate time.Time  `json:"contract_start_date"          gorm:"column:contract_start_date;type:date;not null"`
	ContractEndDate   *time.Time `json:"contract_end_date,omitempty"  gorm:"column:contract_end_date;type:date;index"`

	ContractStatus ContractStatus `json:"contract_status" gorm:"column:contract_status;type:varchar(10);not null;default:active"`
	ContractNotes  *string        `json:"contract_notes,omitempty" gorm:"column:contract_notes;type:text"`

	ContractCreatedAt time.Time  `json:"contract_created_at"           gorm:"column:contract_created_at;type:timestamptz;not null;default:now()"`
	ContractUpdatedAt time.Time  `json:"contract_updated_at"           gorm:"column:contract_updated_at;type:timestamptz;not null;default:now()"`
	ContractDeletedAt *time.Time `json:"contract_deleted_at,omitempty" gorm:"column:contract_deleted_at;type:timestamptz"`
}

func (ContractModel) TableName() string { return "contracts" }

func (m *ContractModel) BeforeCreate(tx *gorm.DB) error {
	m.ContractUpdatedAt = time.Now().UTC()
	return nil
}
func (m *ContractModel) BeforeUpdate(tx *gorm.DB) error {
	m.ContractUpdatedAt = time.Now().UTC()
	return nil
}

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("contract_deleted_at IS NULL")
}
