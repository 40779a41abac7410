package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "condominiogt_backend/internals/features/operations/inventory/dto"
	model "condominiogt_backend/internals/features/operations/inventory/model"
	helper "condominiogt_backend/internals/helpers"
	helperAuth "condominiogt_backend/internals/helpers/auth"
)

type InventoryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{DB: db, Validator: validator.New()}
}

// ========== Create ==========
func (ctl *InventoryController) Create(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	var req dto.CreateInventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel(helperAuth.GetUserIDPtr(c))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Inventory item created", m)
}

// ========== List ==========
func (ctl *InventoryController) List(c *fiber.Ctx) error {
	pag := helper.ParsePagination(c, "inventory_item_name", "asc")

	db := model.ScopeAlive(ctl.DB.Model(&model.InventoryItemModel{}))
	if cid := c.Query("condominium_id"); cid != "" {
		db = db.Where("inventory_item_condominium_id = ?", cid)
	}
	if loc := c.Query("location"); loc != "" {
		db = db.Where("inventory_item_location = ?", loc)
	}
	if q := c.Query("q"); q != "" {
		db = db.Where("inventory_item_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.InventoryItemModel
	if err := db.Order(pag.SortBy + " " + pag.SortOrder).
		Limit(pag.Limit()).Offset(pag.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": rows,
		"meta":  helper.BuildMeta(pag, total),
	})
}

// ========== Detail ==========
func (ctl *InventoryController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.InventoryItemModel
	if err := model.ScopeAlive(ctl.DB).First(&m, "inventory_item_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Inventory item not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", m)
}

// ========== Patch ==========
func (ctl *InventoryController) Patch(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.InventoryItemModel
	if err := model.ScopeAlive(ctl.DB).First(&m, "inventory_item_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Inventory item not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateInventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyTo(&m); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Inventory item updated", m)
}

// ========== Delete (soft) ==========
func (ctl *InventoryController) Delete(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	tx := ctl.DB.Model(&model.InventoryItemModel{}).
		Where("inventory_item_id = ? AND inventory_item_deleted_at IS NULL", id).
		Update("inventory_item_deleted_at", gorm.Expr("NOW()"))
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Inventory item not found")
	}
	return helper.Success(c, "Inventory item deleted", nil)
}
