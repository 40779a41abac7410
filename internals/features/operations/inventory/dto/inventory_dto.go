package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "condominiogt_backend/internals/features/operations/inventory/model"
)

type CreateInventoryItemRequest struct {
	InventoryItemCondominiumID uuid.UUID `json:"inventory_item_condominium_id" validate:"required"`
	InventoryItemName          string    `json:"inventory_item_name"           validate:"required,max=120"`
	InventoryItemDescription   *string   `json:"inventory_item_description"`
	InventoryItemLocation      *string   `json:"inventory_item_location"   validate:"omitempty,max=120"`
	InventoryItemQuantity      int       `json:"inventory_item_quantity"   validate:"gte=0"`
	InventoryItemUnitCost      *string   `json:"inventory_item_unit_cost"  validate:"omitempty"`
}

func (r *CreateInventoryItemRequest) ToModel(createdBy *uuid.UUID) (*model.InventoryItemModel, error) {
	m := &model.InventoryItemModel{
		InventoryItemCondominiumID: r.InventoryItemCondominiumID,
		InventoryItemName:          strings.TrimSpace(r.InventoryItemName),
		InventoryItemDescription:   r.InventoryItemDescription,
		InventoryItemLocation:      r.InventoryItemLocation,
		InventoryItemQuantity:      r.InventoryItemQuantity,
		InventoryItemCreatedBy:     createdBy,
	}
	if r.InventoryItemUnitCost != nil {
		cost, err := decimal.NewFromString(*r.InventoryItemUnitCost)
		if err != nil {
			return nil, err
		}
		m.InventoryItemUnitCost = &cost
	}
	return m, nil
}

type UpdateInventoryItemRequest struct {
	InventoryItemName        *string `json:"inventory_item_name"       validate:"omitempty,max=120"`
	InventoryItemDescription *string `json:"inventory_item_description"`
	InventoryItemLocation    *string `json:"inventory_item_location"   validate:"omitempty,max=120"`
	InventoryItemQuantity    *int    `json:"inventory_item_quantity"   validate:"omitempty,gte=0"`
	InventoryItemUnitCost    *string `json:"inventory_item_unit_cost"`
}

func (r *UpdateInventoryItemRequest) ApplyTo(m *model.InventoryItemModel) error {
	if r.InventoryItemName != nil {
		m.InventoryItemName = strings.TrimSpace(*r.InventoryItemName)
	}
	if r.InventoryItemDescription != nil {
		m.InventoryItemDescription = r.InventoryItemDescription
	}
	if r.InventoryItemLocation != nil {
		m.InventoryItemLocation = r.InventoryItemLocation
	}
	if r.InventoryItemQuantity != nil {
		m.InventoryItemQuantity = *r.InventoryItemQuantity
	}
	if r.InventoryItemUnitCost != nil {
		cost, err := decimal.NewFromString(*r.InventoryItemUnitCost)
		if err != nil {
			return err
		}
		m.InventoryItemUnitCost = &cost
	}
	return nil
}
