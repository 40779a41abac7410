// file: internals/features/condominium/condominiums/model/condominium_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CondominiumStatus string

const (
	CondominiumActive   CondominiumStatus = "active"
	CondominiumInactive CondominiumStatus = "inactive"
)

type CondominiumModel struct {
	CondominiumID uuid.UUID `json:"condominium_id" gorm:"column:condominium_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	CondominiumName    string  `json:"condominium_name"              gorm:"column:condominium_name;type:varchar(120);not null"`
	CondominiumCNPJ    *string `json:"condominium_cnpj,omitempty"    gorm:"column:condominium_cnpj;type:varchar(18);uniqueIndex"`
	CondominiumAddress *string `json:"condominium_address,omitempty" gorm:"column:condominium_address;type:text"`
	CondominiumCity    *string `json:"condominium_city,omitempty"    gorm:"column:condominium_city;type:varchar(80)"`
	CondominiumState   *string `json:"condominium_state,omitempty"   gorm:"column:condominium_state;type:varchar(2)"`
	CondominiumZip     *string `json:"condominium_zip,omitempty"     gorm:"column:condominium_zip;type:varchar(10)"`

	CondominiumStatus CondominiumStatus `json:"condominium_status" gorm:"column:condominium_status;type:varchar(10);not null;default:active"`
	CondominiumNotes  *string           `json:"condominium_notes,omitempty" gorm:"column:condominium_notes;type:text"`

	CondominiumCreatedAt time.Time  `json:"condominium_created_at"           gorm:"column:condominium_created_at;type:timestamptz;not null;default:now()"`
	CondominiumUpdatedAt time.Time  `json:"condominium_updated_at"           gorm:"column:condominium_updated_at;type:timestamptz;not null;default:now()"`
	CondominiumDeletedAt *time.Time `json:"condominium_deleted_at,omitempty" gorm:"column:condominium_deleted_at;type:timestamptz"`
}

func (CondominiumModel) TableName() string { return "condominiums" }

func (m *CondominiumModel) BeforeCreate(tx *gorm.DB) error {
	m.CondominiumUpdatedAt = time.Now().UTC()
	return nil
}
func (m *CondominiumModel) BeforeUpdate(tx *gorm.DB) error {
	m.CondominiumUpdatedAt = time.Now().UTC()
	return nil
}

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("condominium_deleted_at IS NULL")
}
