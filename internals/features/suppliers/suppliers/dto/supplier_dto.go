package dto

import (
	"strings"

	"github.com/google/uuid"

	model "condominiogt_backend/internals/features/suppliers/suppliers/model"
)

type CreateSupplierRequest struct {
	SupplierCondominiumID *uuid.UUID `json:"supplier_condominium_id"`
	SupplierName          string     `json:"supplier_name"     validate:"required,max=120"`
	SupplierCNPJ          *string    `json:"supplier_cnpj"     validate:"omitempty,max=18"`
	SupplierCategory      *string    `json:"supplier_category" validate:"omitempty,max=80"`
	SupplierEmail         *string    `json:"supplier_email"    validate:"omitempty,email"`
	SupplierPhone         *string    `json:"supplier_phone"    validate:"omitempty,max=20"`
	SupplierNotes         *string    `json:"supplier_notes"`
}

func (r *CreateSupplierRequest) ToModel() *model.SupplierModel {
	return &model.SupplierModel{
		SupplierCondominiumID: r.SupplierCondominiumID,
		SupplierName:          strings.TrimSpace(r.SupplierName),
		SupplierCNPJ:          r.SupplierCNPJ,
		SupplierCategory:      r.SupplierCategory,
		SupplierEmail:         r.SupplierEmail,
		SupplierPhone:         r.SupplierPhone,
		SupplierNotes:         r.SupplierNotes,
		SupplierIsActive:      true,
	}
}

type UpdateSupplierRequest struct {
	SupplierName     *string `json:"supplier_name"     validate:"omitempty,max=120"`
	SupplierCNPJ     *string `json:"supplier_cnpj"     validate:"omitempty,max=18"`
	SupplierCategory *string `json:"supplier_category" validate:"omitempty,max=80"`
	SupplierEmail    *string `json:"supplier_email"    validate:"omitempty,email"`
	SupplierPhone    *string `json:"supplier_phone"    validate:"omitempty,max=20"`
	SupplierNotes    *string `json:"supplier_notes"`
	SupplierIsActive *bool   `json:"supplier_is_active"`
}

func (r *UpdateSupplierRequest) ApplyTo(m *model.SupplierModel) {
	if r.SupplierName != nil {
		m.SupplierName = strings.TrimSpace(*r.SupplierName)
	}
	if r.SupplierCNPJ != nil {
		m.SupplierCNPJ = r.SupplierCNPJ
	}
	if r.SupplierCategory != nil {
		m.SupplierCategory = r.SupplierCategory
	}
	if r.SupplierEmail != nil {
		m.SupplierEmail = r.SupplierEmail
	}
	if r.SupplierPhone != nil {
		m.SupplierPhone = r.SupplierPhone
	}
	if r.SupplierNotes != nil {
		m.SupplierNotes = r.SupplierNotes
	}
	if r.SupplierIsActive != nil {
		m.SupplierIsActive = *r.SupplierIsActive
	}
}
