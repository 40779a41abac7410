// file: internals/features/operations/maintenance/model/maintenance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   Ticket status
   ========================================================= */

type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketDone       TicketStatus = "done"
	TicketCanceled   TicketStatus = "canceled"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketDone, TicketCanceled:
		return true
	}
	return false
}

func (s TicketStatus) IsTerminal() bool {
	return s == TicketDone || s == TicketCanceled
}

// CanTransition reports whether a ticket may move from s to next.
// open → in_progress | canceled; in_progress → done | canceled.
func (s TicketStatus) CanTransition(next TicketStatus) bool {
	switch s {
	case TicketOpen:
		return next == TicketInProgress || next == TicketCanceled
	case TicketInProgress:
		return next == TicketDone || next == TicketCanceled
	}
	return false
}

/* =========================================================
   Model
   ========================================================= */

type MaintenanceTicketModel struct {
	TicketID uuid.UUID `json:"ticket_id" gorm:"column:ticket_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	TicketCondominiumID uuid.UUID  `json:"ticket_condominium_id"        gorm:"column:ticket_condominium_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	TicketUnitID        *uuid.UUID `json:"ticket_unit_id,omitempty"     gorm:"column:ticket_unit_id;type:uuid;index"`
	TicketSupplierID    *uuid.UUID `json:"ticket_supplier_id,omitempty" gorm:"column:ticket_supplier_id;type:uuid;index"`

	TicketTitle       string  `json:"ticket_title"                 gorm:"column:ticket_title;type:varchar(160);not null"`
	TicketDescription *string `json:"ticket_description,omitempty" gorm:"column:ticket_description;type:text"`
	TicketPriority    string  `json:"ticket_priority"              gorm:"column:ticket_priority;type:varchar(10);not null;default:'normal'"`

	TicketStatus     TicketStatus `json:"ticket_status"                gorm:"column:ticket_status;type:varchar(20);not null;default:'open';index"`
	TicketResolvedAt *time.Time   `json:"ticket_resolved_at,omitempty" gorm:"column:ticket_resolved_at;type:timestamptz"`

	TicketCreatedBy *uuid.UUID `json:"ticket_created_by,omitempty" gorm:"column:ticket_created_by;type:uuid"`

	TicketCreatedAt time.Time  `json:"ticket_created_at"           gorm:"column:ticket_created_at;type:timestamptz;not null;default:now()"`
	TicketUpdatedAt time.Time  `json:"ticket_updated_at"           gorm:"column:ticket_updated_at;type:timestamptz;not null;default:now()"`
	TicketDeletedAt *time.Time `json:"ticket_deleted_at,omitempty" gorm:"column:ticket_deleted_at;type:timestamptz"`
}

func (MaintenanceTicketModel) TableName() string { return "maintenance_tickets" }

func (m *MaintenanceTicketModel) BeforeCreate(tx *gorm.DB) error {
	m.TicketUpdatedAt = time.Now().UTC()
	return nil
}
func (m *MaintenanceTicketModel) BeforeUpdate(tx *gorm.DB) error {
	m.TicketUpdatedAt = time.Now().UTC()
	return nil
}

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("ticket_deleted_at IS NULL")
}
