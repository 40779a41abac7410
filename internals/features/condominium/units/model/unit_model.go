// file: internals/features/condominium/units/model/unit_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UnitStatus string

const (
	UnitOccupied UnitStatus = "occupied"
	UnitVacant   UnitStatus = "vacant"
)

type UnitModel struct {
	UnitID uuid.UUID `json:"unit_id" gorm:"column:unit_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	UnitCondominiumID uuid.UUID `json:"unit_condominium_id" gorm:"column:unit_condominium_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`

	UnitIdentifier string  `json:"unit_identifier"        gorm:"column:unit_identifier;type:varchar(20);not null"`
	UnitBlock      *string `json:"unit_block,omitempty"   gorm:"column:unit_block;type:varchar(20)"`
	UnitFloor      *int    `json:"unit_floor,omitempty"   gorm:"column:unit_floor"`

	// m², used by the cost-per-unit proration
	UnitAreaSqm decimal.Decimal `json:"unit_area_sqm" gorm:"column:unit_area_sqm;type:numeric(10,2);not null;default:0"`

	UnitStatus UnitStatus `json:"unit_status" gorm:"column:unit_status;type:varchar(10);not null;default:vacant"`
	UnitNotes  *string    `json:"unit_notes,omitempty" gorm:"column:unit_notes;type:text"`

	UnitCreatedAt time.Time  `json:"unit_created_at"           gorm:"column:unit_created_at;type:timestamptz;not null;default:now()"`
	UnitUpdatedAt time.Time  `json:"unit_updated_at"           gorm:"column:unit_updated_at;type:timestamptz;not null;default:now()"`
	UnitDeletedAt *time.Time `json:"unit_deleted_at,omitempty" gorm:"column:unit_deleted_at;type:timestamptz"`
}

func (UnitModel) TableName() string { return "units" }

func (m *UnitModel) BeforeCreate(tx *gorm.DB) error {
	m.UnitUpdatedAt = time.Now().UTC()
	return nil
}
func (m *UnitModel) BeforeUpdate(tx *gorm.DB) error {
	m.UnitUpdatedAt = time.Now().UTC()
	return nil
}

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("unit_deleted_at IS NULL")
}
func ScopeByCondominium(condoID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("unit_condominium_id = ?", condoID)
	}
}
