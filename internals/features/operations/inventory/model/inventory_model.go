// file: internals/features/operations/inventory/model/inventory_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InventoryItemModel struct {
	InventoryItemID uuid.UUID `json:"inventory_item_id" gorm:"column:inventory_item_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	InventoryItemCondominiumID uuid.UUID `json:"inventory_item_condominium_id" gorm:"column:inventory_item_condominium_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`

	InventoryItemName        string           `json:"inventory_item_name"                  gorm:"column:inventory_item_name;type:varchar(120);not null"`
	InventoryItemDescription *string          `json:"inventory_item_description,omitempty" gorm:"column:inventory_item_description;type:text"`
	InventoryItemLocation    *string          `json:"inventory_item_location,omitempty"    gorm:"column:inventory_item_location;type:varchar(120)"`
	InventoryItemQuantity    int              `json:"inventory_item_quantity"              gorm:"column:inventory_item_quantity;not null;default:0"`
	InventoryItemUnitCost    *decimal.Decimal `json:"inventory_item_unit_cost,omitempty"   gorm:"column:inventory_item_unit_cost;type:numeric(14,2)"`

	InventoryItemCreatedBy *uuid.UUID `json:"inventory_item_created_by,omitempty" gorm:"column:inventory_item_created_by;type:uuid"`

	InventoryItemCreatedAt time.Time  `json:"inventory_item_created_at"           gorm:"column:inventory_item_created_at;type:timestamptz;not null;default:now()"`
	InventoryItemUpdatedAt time.Time  `json:"inventory_item_updated_at"           gorm:"column:inventory_item_updated_at;type:timestamptz;not null;default:now()"`
	InventoryItemDeletedAt *time.Time `json:"inventory_item_deleted_at,omitempty" gorm:"column:inventory_item_deleted_at;type:timestamptz"`
}

func (InventoryItemModel) TableName() string { return "inventory_items" }

func (m *InventoryItemModel) BeforeCreate(tx *gorm.DB) error {
	m.InventoryItemUpdatedAt = time.Now().UTC()
	return nil
}
func (m *InventoryItemModel) BeforeUpdate(tx *gorm.DB) error {
	m.InventoryItemUpdatedAt = time.Now().UTC()
	return nil
}

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("inventory_item_deleted_at IS NULL")
}
