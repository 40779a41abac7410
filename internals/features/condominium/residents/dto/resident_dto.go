package dto

import (
	"strings"

	"github.com/google/uuid"

	model "condominiogt_backend/internals/features/condominium/residents/model"
	helper "condominiogt_backend/internals/helpers"
)

type CreateResidentRequest struct {
	ResidentCondominiumID uuid.UUID  `json:"resident_condominium_id" validate:"required"`
	ResidentUnitID        *uuid.UUID `json:"resident_unit_id"`
	ResidentUserID        *uuid.UUID `json:"resident_user_id"`

	ResidentName     string  `json:"resident_name"     validate:"required,max=120"`
	ResidentEmail    *string `json:"resident_email"    validate:"omitempty,email"`
	ResidentPhone    *string `json:"resident_phone"    validate:"omitempty,max=20"`
	ResidentCPF      *string `json:"resident_cpf"      validate:"omitempty,max=14"`
	ResidentRelation *string `json:"resident_relation" validate:"omitempty,oneof=owner tenant"`

	// "YYYY-MM-DD"
	ResidentMoveInDate *string `json:"resident_move_in_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateResidentRequest) ToModel() (*model.ResidentModel, error) {
	moveIn, err := helper.ParseDateYMDPtr(r.ResidentMoveInDate)
	if err != nil {
		return nil, err
	}

	m := &model.ResidentModel{
		ResidentCondominiumID: r.ResidentCondominiumID,
		ResidentUnitID:        r.ResidentUnitID,
		ResidentUserID:        r.ResidentUserID,
		ResidentName:          strings.TrimSpace(r.ResidentName),
		ResidentEmail:         r.ResidentEmail,
		ResidentPhone:         r.ResidentPhone,
		ResidentCPF:           r.ResidentCPF,
		ResidentRelation:      model.ResidentOwner,
		ResidentMoveInDate:    moveIn,
	}
	if r.ResidentRelation != nil {
		m.ResidentRelation = model.ResidentRelation(*r.ResidentRelation)
	}
	return m, nil
}

type UpdateResidentRequest struct {
	ResidentUnitID      *uuid.UUID `json:"resident_unit_id"`
	ResidentName        *string    `json:"resident_name"     validate:"omitempty,max=120"`
	ResidentEmail       *string    `json:"resident_email"    validate:"omitempty,email"`
	ResidentPhone       *string    `json:"resident_phone"    validate:"omitempty,max=20"`
	ResidentCPF         *string    `json:"resident_cpf"      validate:"omitempty,max=14"`
	ResidentRelation    *string    `json:"resident_relation" validate:"omitempty,oneof=owner tenant"`
	ResidentMoveInDate  *string    `json:"resident_move_in_date"  validate:"omitempty,datetime=2006-01-02"`
	ResidentMoveOutDate *string    `json:"resident_move_out_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateResidentRequest) ApplyTo(m *model.ResidentModel) error {
	if r.ResidentUnitID != nil {
		m.ResidentUnitID = r.ResidentUnitID
	}
	if r.ResidentName != nil {
		m.ResidentName = strings.TrimSpace(*r.ResidentName)
	}
	if r.ResidentEmail != nil {
		m.ResidentEmail = r.ResidentEmail
	}
	if r.ResidentPhone != nil {
		m.ResidentPhone = r.ResidentPhone
	}
	if r.ResidentCPF != nil {
		m.ResidentCPF = r.ResidentCPF
	}
	if r.ResidentRelation != nil {
		m.ResidentRelation = model.ResidentRelation(*r.ResidentRelation)
	}
	if r.ResidentMoveInDate != nil {
		t, err := helper.ParseDateYMDPtr(r.ResidentMoveInDate)
		if err != nil {
			return err
		}
		m.ResidentMoveInDate = t
	}
	if r.ResidentMoveOutDate != nil {
		t, err := helper.ParseDateYMDPtr(r.ResidentMoveOutDate)
		if err != nil {
			return err
		}
		m.ResidentMoveOutDate = t
	}
	return nil
}
