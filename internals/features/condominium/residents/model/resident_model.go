// file: internals/features/condominium/residents/model/resident_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResidentRelation string

const (
	ResidentOwner  ResidentRelation = "owner"
	ResidentTenant ResidentRelation = "tenant"
)

type ResidentModel struct {
	ResidentID uuid.UUID `json:"resident_id" gorm:"column:resident_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	ResidentCondominiumID uuid.UUID  `json:"resident_condominium_id" gorm:"column:resident_condominium_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	ResidentUnitID        *uuid.UUID `json:"resident_unit_id,omitempty" gorm:"column:resident_unit_id;type:uuid;index;constraint:OnDelete:SET NULL"`

	// link to the login account, when the resident has one
	ResidentUserID *uuid.UUID `json:"resident_user_id,omitempty" gorm:"column:resident_user_id;type:uuid;index"`

	ResidentName     string           `json:"resident_name"             gorm:"column:resident_name;type:varchar(120);not null"`
	ResidentEmail    *string          `json:"resident_email,omitempty"  gorm:"column:resident_email;type:varchar(255)"`
	ResidentPhone    *string          `json:"resident_phone,omitempty"  gorm:"column:resident_phone;type:varchar(20)"`
	ResidentCPF      *string          `json:"resident_cpf,omitempty"    gorm:"column:resident_cpf;type:varchar(14)"`
	ResidentRelation ResidentRelation `json:"resident_relation"         gorm:"column:resident_relation;type:varchar(10);not null;default:owner"`

	ResidentMoveInDate  *time.Time `json:"resident_move_in_date,omitempty"  gorm:"column:resident_move_in_date;type:date"`
	ResidentMoveOutDate *time.Time `json:"resident_move_out_date,omitempty" gorm:"column:resident_move_out_date;type:date"`

	ResidentCreatedAt time.Time  `json:"resident_created_at"           gorm:"column:resident_created_at;type:timestamptz;not null;default:now()"`
	ResidentUpdatedAt time.Time  `json:"resident_updated_at"           gorm:"column:resident_updated_at;type:timestamptz;not null;default:now()"`
	ResidentDeletedAt *time.Time `json:"resident_deleted_at,omitempty" gorm:"column:resident_deleted_at;type:timestamptz"`
}

func (ResidentModel) TableName() string { return "residents" }

func (m *ResidentModel) BeforeCreate(tx *gorm.DB) error {
	m.ResidentUpdatedAt = time.Now().UTC()
	return nil
}
func (m *ResidentModel) BeforeUpdate(tx *gorm.DB) error {
	m.ResidentUpdatedAt = time.Now().UTC()
	return nil
}

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("resident_deleted_at IS NULL")
}
