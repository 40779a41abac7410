package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "condominiogt_backend/internals/features/suppliers/contracts/model"
	helper "condominiogt_backend/internals/helpers"
)

type CreateContractRequest struct {
	ContractCondominiumID uuid.UUID  `json:"contract_condominium_id" validate:"required"`
	ContractSupplierID    *uuid.UUID `json:"contract_supplier_id"`

	ContractDescription  string           `json:"contract_description"   validate:"required"`
	ContractMonthlyValue *decimal.Decimal `json:"contract_monthly_value"`

	// "YYYY-MM-DD"
	ContractStartDate string  `json:"contract_start_date" validate:"required,datetime=2006-01-02"`
	ContractEndDate   *string `json:"contract_end_date"   validate:"omitempty,datetime=2006-01-02"`

	ContractNotes *string `json:"contract_notes"`
}

func (r *CreateContractRequest) ToModel() (*model.ContractModel, error) {
	start, err := helper.ParseDateYMD(r.ContractStartDate)
	if err != nil {
		return nil, err
	}
	end, err := helper.ParseDateYMDPtr(r.ContractEndDate)
	if err != nil {
		return nil, err
	}

	m := &model.ContractModel{
		ContractCondominiumID: r.ContractCondominiumID,
		ContractSupplierID:    r.ContractSupplierID,
		ContractDescription:   strings.TrimSpace(r.ContractDescription),
		ContractMonthlyValue:  decimal.Zero,
		ContractStartDate:     start,
		ContractEndDate:       end,
		ContractStatus:        model.ContractActive,
		ContractNotes:         r.ContractNotes,
	}
	if r.ContractMonthlyValue != nil {
		m.ContractMonthlyValue = *r.ContractMonthlyValue
	}
	return m, nil
}

type UpdateContractRequest struct {
	ContractSupplierID   *uuid.UUID       `json:"contract_supplier_id"`
	ContractDescription  *string          `json:"contract_description"`
	ContractMonthlyValue *decimal.Decimal `json:"contract_monthly_value"`
	ContractStartDate    *string          `json:"contract_start_date" validate:"omitempty,datetime=2006-01-02"`
	ContractEndDate      *string          `json:"contract_end_date"   validate:"omitempty,datetime=2006-01-02"`
	ContractStatus       *string          `json:"contract_status"     validate:"omitempty,oneof=active expired canceled"`
	ContractNotes        *string          `json:"contract_notes"`
}

func (r *UpdateContractRequest) ApplyTo(m *model.ContractModel) error {
	if r.ContractSupplierID != nil {
		m.ContractSupplierID = r.ContractSupplierID
	}
	if r.ContractDescription != nil {
		m.ContractDescription = strings.TrimSpace(*r.ContractDescription)
	}
	if r.ContractMonthlyValue != nil {
		m.ContractMonthlyValue = *r.ContractMonthlyValue
	}
	if r.ContractStartDate != nil {
		t, err := helper.ParseDateYMD(*r.ContractStartDate)
		if err != nil {
			return err
		}
		m.ContractStartDate = t
	}
	if r.ContractEndDate != nil {
		t, err := helper.ParseDateYMDPtr(r.ContractEndDate)
		if err != nil {
			return err
		}
		m.ContractEndDate = t
	}
	if r.ContractStatus != nil {
		m.ContractStatus = model.ContractStatus(*r.ContractStatus)
	}
	if r.ContractNotes != nil {
		m.ContractNotes = r.ContractNotes
	}
	return nil
}
