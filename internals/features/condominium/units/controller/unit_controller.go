package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	condoModel "condominiogt_backend/internals/features/condominium/condominiums/model"
	dto "condominiogt_backend/internals/features/condominium/units/dto"
	model "condominiogt_backend/internals/features/condominium/units/model"
	helper "condominiogt_backend/internals/helpers"
	helperAuth "condominiogt_backend/internals/helpers/auth"
)

type UnitController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUnitController(db *gorm.DB) *UnitController {
	return &UnitController{DB: db, Validator: validator.New()}
}

// ========== Create ==========
func (ctl *UnitController) Create(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	var req dto.CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// the condominium must exist and be alive
	var exists int64
	if err := condoModel.ScopeAlive(ctl.DB.Model(&condoModel.CondominiumModel{})).
		Where("condominium_id = ?", req.UnitCondominiumID).
		Count(&exists).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if exists == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Condominium not found")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Unit created", m)
}

// ========== List ==========
// GET /units?condominium_id=...&status=...&block=...
func (ctl *UnitController) List(c *fiber.Ctx) error {
	pag := helper.ParsePagination(c, "unit_identifier", "asc")

	db := model.ScopeAlive(ctl.DB.Model(&model.UnitModel{}))
	if cid := c.Query("condominium_id"); cid != "" {
		db = db.Where("unit_condominium_id = ?", cid)
	}
	if st := c.Query("status"); st != "" {
		db = db.Where("unit_status = ?", st)
	}
	if blk := c.Query("block"); blk != "" {
		db = db.Where("unit_block = ?", blk)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.UnitModel
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
func (ctl *UnitController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.UnitModel
	if err := model.ScopeAlive(ctl.DB).First(&m, "unit_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Unit not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", m)
}

// ========== Patch ==========
func (ctl *UnitController) Patch(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.UnitModel
	if err := model.ScopeAlive(ctl.DB).First(&m, "unit_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Unit not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Unit updated", m)
}

// ========== Delete (soft) ==========
func (ctl *UnitController) Delete(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	tx := ctl.DB.Model(&model.UnitModel{}).
		Where("unit_id = ? AND unit_deleted_at IS NULL", id).
		Update("unit_deleted_at", gorm.Expr("NOW()"))
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Unit not found")
	}
	return helper.Success(c, "Unit deleted", nil)
}
