// file: internals/features/suppliers/suppliers/model/supplier_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierModel struct {
	SupplierID uuid.UUID `json:"supplier_id" gorm:"column:supplier_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	SupplierCondominiumID *uuid.UUID `json:"supplier_condominium_id,omitempty" gorm:"column:supplier_condominium_id;type:uuid;index;constraint:OnDelete:SET NULL"`

	SupplierName     string  `json:"supplier_name"               gorm:"column:supplier_name;type:varchar(120);not null"`
	SupplierCNPJ     *string `json:"supplier_cnpj,omitempty"     gorm:"column:supplier_cnpj;type:varchar(18)"`
	SupplierCategory *string `json:"supplier_category,omitempty" gorm:"column:supplier_category;type:varchar(80)"`
	SupplierEmail    *string `json:"supplier_email,omitempty"    gorm:"column:supplier_email;type:varchar(255)"`
	SupplierPhone    *string `json:"supplier_phone,omitempty"    gorm:"column:supplier_phone;type:varchar(20)"`
	SupplierNotes    *string `json:"supplier_notes,omitempty"    gorm:"column:supplier_notes;type:text"`

	SupplierIsActive bool `json:"supplier_is_active" gorm:"column:supplier_is_active;not null;default:true"`

	SupplierCreatedAt time.Time  `json:"supplier_created_at"           gorm:"column:supplier_created_at;type:timestamptz;not null;default:now()"`
	SupplierUpdatedAt time.Time  `json:"supplier_updated_at"           gorm:"column:supplier_updated_at;type:timestamptz;not null;default:now()"`
	SupplierDeletedAt *time.Time `json:"supplier_deleted_at,omitempty" gorm:"column:supplier_deleted_at;type:timestamptz"`
}

func (SupplierModel) TableName() string { return "suppliers" }

func (m *SupplierModel) BeforeCreate(tx *gorm.DB) error {
	m.SupplierUpdatedAt = time.Now().UTC()
	return nil
}
func (m *SupplierModel) BeforeUpdate(tx *gorm.DB) error {
	m.SupplierUpdatedAt = time.Now().UTC()
	return nil
}

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("supplier_deleted_at IS NULL")
}
