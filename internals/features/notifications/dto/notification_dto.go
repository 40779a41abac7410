package dto

import (
	"strings"

	"github.com/google/uuid"

	model "condominiogt_backend/internals/features/notifications/model"
)

// CreateNotificationRequest covers the manual/broadcast case. Payment
// notifications are written by the notification service, not over HTTP.
type CreateNotificationRequest struct {
	NotificationCondominiumID *uuid.UUID `json:"notification_condominium_id"`
	NotificationUnitID        *uuid.UUID `json:"notification_unit_id"`
	NotificationTitle         string     `json:"notification_title"   validate:"required,max=160"`
	NotificationMessage       string     `json:"notification_message" validate:"required"`
}

func (r *CreateNotificationRequest) ToModel() *model.NotificationModel {
	return &model.NotificationModel{
		NotificationCondominiumID: r.NotificationCondominiumID,
		NotificationUnitID:        r.NotificationUnitID,
		NotificationKind:          model.NotificationGeneral,
		NotificationTitle:         strings.TrimSpace(r.NotificationTitle),
		NotificationMessage:       r.NotificationMessage,
	}
}
