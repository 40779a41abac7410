// file: internals/features/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationKind string

const (
	NotificationPaymentOverdue  NotificationKind = "payment_overdue"
	NotificationPaymentReceived NotificationKind = "payment_received"
	NotificationGeneral         NotificationKind = "general"
)

type NotificationModel struct {
	NotificationID uuid.UUID `json:"notification_id" gorm:"column:notification_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	NotificationCondominiumID *uuid.UUID `json:"notification_condominium_id,omitempty" gorm:"column:notification_condominium_id;type:uuid;index"`
	NotificationUnitID        *uuid.UUID `json:"notification_unit_id,omitempty"        gorm:"column:notification_unit_id;type:uuid;index"`
	NotificationPaymentID     *uuid.UUID `json:"notification_payment_id,omitempty"     gorm:"column:notification_payment_id;type:uuid;index"`

	NotificationKind    NotificationKind `json:"notification_kind"    gorm:"column:notification_kind;type:varchar(30);not null;index"`
	NotificationTitle   string           `json:"notification_title"   gorm:"column:notification_title;type:varchar(160);not null"`
	NotificationMessage string           `json:"notification_message" gorm:"column:notification_message;type:text;not null"`

	NotificationReadAt *time.Time `json:"notification_read_at,omitempty" gorm:"column:notification_read_at;type:timestamptz"`

	NotificationCreatedAt time.Time  `json:"notification_created_at"           gorm:"column:notification_created_at;type:timestamptz;not null;default:now()"`
	NotificationDeletedAt *time.Time `json:"notification_deleted_at,omitempty" gorm:"column:notification_deleted_at;type:timestamptz"`
}

func (NotificationModel) TableName() string { return "notifications" }

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("notification_deleted_at IS NULL")
}

func ScopeUnread(db *gorm.DB) *gorm.DB {
	return db.Where("notification_read_at IS NULL")
}
