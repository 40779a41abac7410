package dto

import (
	"strings"

	"github.com/google/uuid"

	model "condominiogt_backend/internals/features/operations/maintenance/model"
)

type CreateTicketRequest struct {
	TicketCondominiumID uuid.UUID  `json:"ticket_condominium_id" validate:"required"`
	TicketUnitID        *uuid.UUID `json:"ticket_unit_id"`
	TicketSupplierID    *uuid.UUID `json:"ticket_supplier_id"`
	TicketTitle         string     `json:"ticket_title"    validate:"required,max=160"`
	TicketDescription   *string    `json:"ticket_description"`
	TicketPriority      *string    `json:"ticket_priority" validate:"omitempty,oneof=low normal high urgent"`
}

func (r *CreateTicketRequest) ToModel(createdBy *uuid.UUID) *model.MaintenanceTicketModel {
	m := &model.MaintenanceTicketModel{
		TicketCondominiumID: r.TicketCondominiumID,
		TicketUnitID:        r.TicketUnitID,
		TicketSupplierID:    r.TicketSupplierID,
		TicketTitle:         strings.TrimSpace(r.TicketTitle),
		TicketDescription:   r.TicketDescription,
		TicketPriority:      "normal",
		TicketStatus:        model.TicketOpen,
		TicketCreatedBy:     createdBy,
	}
	if r.TicketPriority != nil {
		m.TicketPriority = *r.TicketPriority
	}
	return m
}

type UpdateTicketRequest struct {
	TicketTitle       *string    `json:"ticket_title"    validate:"omitempty,max=160"`
	TicketDescription *string    `json:"ticket_description"`
	TicketPriority    *string    `json:"ticket_priority" validate:"omitempty,oneof=low normal high urgent"`
	TicketSupplierID  *uuid.UUID `json:"ticket_supplier_id"`
}

func (r *UpdateTicketRequest) ApplyTo(m *model.MaintenanceTicketModel) {
	if r.TicketTitle != nil {
		m.TicketTitle = strings.TrimSpace(*r.TicketTitle)
	}
	if r.TicketDescription != nil {
		m.TicketDescription = r.TicketDescription
	}
	if r.TicketPriority != nil {
		m.TicketPriority = *r.TicketPriority
	}
	if r.TicketSupplierID != nil {
		m.TicketSupplierID = r.TicketSupplierID
	}
}

type TransitionTicketRequest struct {
	TicketStatus string `json:"ticket_status" validate:"required,oneof=in_progress done canceled"`
}
