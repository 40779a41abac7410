package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "condominiogt_backend/internals/features/condominium/units/model"
)

type CreateUnitRequest struct {
	UnitCondominiumID uuid.UUID        `json:"unit_condominium_id" validate:"required"`
	UnitIdentifier    string           `json:"unit_identifier"     validate:"required,max=20"`
	UnitBlock         *string          `json:"unit_block"          validate:"omitempty,max=20"`
	UnitFloor         *int             `json:"unit_floor"`
	UnitAreaSqm       *decimal.Decimal `json:"unit_area_sqm"`
	UnitStatus        *string          `json:"unit_status" validate:"omitempty,oneof=occupied vacant"`
	UnitNotes         *string          `json:"unit_notes"`
}

func (r *CreateUnitRequest) ToModel() *model.UnitModel {
	m := &model.UnitModel{
		UnitCondominiumID: r.UnitCondominiumID,
		UnitIdentifier:    strings.TrimSpace(r.UnitIdentifier),
		UnitBlock:         r.UnitBlock,
		UnitFloor:         r.UnitFloor,
		UnitAreaSqm:       decimal.Zero,
		UnitStatus:        model.UnitVacant,
		UnitNotes:         r.UnitNotes,
	}
	if r.UnitAreaSqm != nil {
		m.UnitAreaSqm = *r.UnitAreaSqm
	}
	if r.UnitStatus != nil {
		m.UnitStatus = model.UnitStatus(*r.UnitStatus)
	}
	return m
}

type UpdateUnitRequest struct {
	UnitIdentifier *string          `json:"unit_identifier" validate:"omitempty,max=20"`
	UnitBlock      *string          `json:"unit_block"      validate:"omitempty,max=20"`
	UnitFloor      *int             `json:"unit_floor"`
	UnitAreaSqm    *decimal.Decimal `json:"unit_area_sqm"`
	UnitStatus     *string          `json:"unit_status" validate:"omitempty,oneof=occupied vacant"`
	UnitNotes      *string          `json:"unit_notes"`
}

func (r *UpdateUnitRequest) ApplyTo(m *model.UnitModel) {
	if r.UnitIdentifier != nil {
		m.UnitIdentifier = strings.TrimSpace(*r.UnitIdentifier)
	}
	if r.UnitBlock != nil {
		m.UnitBlock = r.UnitBlock
	}
	if r.UnitFloor != nil {
		m.UnitFloor = r.UnitFloor
	}
	if r.UnitAreaSqm != nil {
		m.UnitAreaSqm = *r.UnitAreaSqm
	}
	if r.UnitStatus != nil {
		m.UnitStatus = model.UnitStatus(*r.UnitStatus)
	}
	if r.UnitNotes != nil {
		m.UnitNotes = r.UnitNotes
	}
}
