package dto

import (
	"strings"

	model "condominiogt_backend/internals/features/condominium/condominiums/model"
)

type CreateCondominiumRequest struct {
	CondominiumName    string  `json:"condominium_name"    validate:"required,max=120"`
	CondominiumCNPJ    *string `json:"condominium_cnpj"    validate:"omitempty,max=18"`
	CondominiumAddress *string `json:"condominium_address"`
	CondominiumCity    *string `json:"condominium_city"    validate:"omitempty,max=80"`
	CondominiumState   *string `json:"condominium_state"   validate:"omitempty,len=2"`
	CondominiumZip     *string `json:"condominium_zip"     validate:"omitempty,max=10"`
	CondominiumNotes   *string `json:"condominium_notes"`
}

func (r *CreateCondominiumRequest) ToModel() *model.CondominiumModel {
	return &model.CondominiumModel{
		CondominiumName:    strings.TrimSpace(r.CondominiumName),
		CondominiumCNPJ:    r.CondominiumCNPJ,
		CondominiumAddress: r.CondominiumAddress,
		CondominiumCity:    r.CondominiumCity,
		CondominiumState:   r.CondominiumState,
		CondominiumZip:     r.CondominiumZip,
		CondominiumStatus:  model.CondominiumActive,
		CondominiumNotes:   r.CondominiumNotes,
	}
}

type UpdateCondominiumRequest struct {
	CondominiumName    *string `json:"condominium_name"    validate:"omitempty,max=120"`
	CondominiumCNPJ    *string `json:"condominium_cnpj"    validate:"omitempty,max=18"`
	CondominiumAddress *string `json:"condominium_address"`
	CondominiumCity    *string `json:"condominium_city"    validate:"omitempty,max=80"`
	CondominiumState   *string `json:"condominium_state"   validate:"omitempty,len=2"`
	CondominiumZip     *string `json:"condominium_zip"     validate:"omitempty,max=10"`
	CondominiumStatus  *string `json:"condominium_status"  validate:"omitempty,oneof=active inactive"`
	CondominiumNotes   *string `json:"condominium_notes"`
}

func (r *UpdateCondominiumRequest) ApplyTo(m *model.CondominiumModel) {
	if r.CondominiumName != nil {
		m.CondominiumName = strings.TrimSpace(*r.CondominiumName)
	}
	if r.CondominiumCNPJ != nil {
		m.CondominiumCNPJ = r.CondominiumCNPJ
	}
	if r.CondominiumAddress != nil {
		m.CondominiumAddress = r.CondominiumAddress
	}
	if r.CondominiumCity != nil {
		m.CondominiumCity = r.CondominiumCity
	}
	if r.CondominiumState != nil {
		m.CondominiumState = r.CondominiumState
	}
	if r.CondominiumZip != nil {
		m.CondominiumZip = r.CondominiumZip
	}
	if r.CondominiumStatus != nil {
		m.CondominiumStatus = model.CondominiumStatus(*r.CondominiumStatus)
	}
	if r.CondominiumNotes != nil {
		m.CondominiumNotes = r.CondominiumNotes
	}
}
