package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "condominiogt_backend/internals/features/condominium/residents/dto"
	model "condominiogt_backend/internals/features/condominium/residents/model"
	helper "condominiogt_backend/internals/helpers"
	helperAuth "condominiogt_backend/internals/helpers/auth"
)

type ResidentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewResidentController(db *gorm.DB) *ResidentController {
	return &ResidentController{DB: db, Validator: validator.New()}
}

// ========== Create ==========
func (ctl *ResidentController) Create(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	var req dto.CreateResidentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Resident created", m)
}

// ========== List ==========
// GET /residents?condominium_id=...&unit_id=...&q=...
func (ctl *ResidentController) List(c *fiber.Ctx) error {
	pag := helper.ParsePagination(c, "resident_name", "asc")

	db := model.ScopeAlive(ctl.DB.Model(&model.ResidentModel{}))
	if cid := c.Query("condominium_id"); cid != "" {
		db = db.Where("resident_condominium_id = ?", cid)
	}
	if uid := c.Query("unit_id"); uid != "" {
		db = db.Where("resident_unit_id = ?", uid)
	}
	if q := c.Query("q"); q != "" {
		db = db.Where("resident_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ResidentModel
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
func (ctl *ResidentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.ResidentModel
	if err := model.ScopeAlive(ctl.DB).First(&m, "resident_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Resident not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", m)
}

// ========== Patch ==========
func (ctl *ResidentController) Patch(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.ResidentModel
	if err := model.ScopeAlive(ctl.DB).First(&m, "resident_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Resident not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateResidentRequest
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
	return helper.Success(c, "Resident updated", m)
}

// ========== Delete (soft) ==========
func (ctl *ResidentController) Delete(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	tx := ctl.DB.Model(&model.ResidentModel{}).
		Where("resident_id = ? AND resident_deleted_at IS NULL", id).
		Update("resident_deleted_at", gorm.Expr("NOW()"))
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Resident not found")
	}
	return helper.Success(c, "Resident deleted", nil)
}
