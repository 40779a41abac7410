package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "condominiogt_backend/internals/features/condominium/condominiums/dto"
	model "condominiogt_backend/internals/features/condominium/condominiums/model"
	helper "condominiogt_backend/internals/helpers"
	helperAuth "condominiogt_backend/internals/helpers/auth"
)

type CondominiumController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCondominiumController(db *gorm.DB) *CondominiumController {
	return &CondominiumController{DB: db, Validator: validator.New()}
}

// ========== Create ==========
func (ctl *CondominiumController) Create(c *fiber.Ctx) error {
	if !helperAuth.IsAdmin(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	var req dto.CreateCondominiumRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Condominium created", m)
}

// ========== List ==========
func (ctl *CondominiumController) List(c *fiber.Ctx) error {
	pag := helper.ParsePagination(c, "condominium_name", "asc")

	db := model.ScopeAlive(ctl.DB.Model(&model.CondominiumModel{}))
	if q := c.Query("q"); q != "" {
		db = db.Where("condominium_name ILIKE ?", "%"+q+"%")
	}
	if st := c.Query("status"); st != "" {
		db = db.Where("condominium_status = ?", st)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.CondominiumModel
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
func (ctl *CondominiumController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.CondominiumModel
	if err := model.ScopeAlive(ctl.DB).First(&m, "condominium_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Condominium not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", m)
}

// ========== Patch ==========
func (ctl *CondominiumController) Patch(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.CondominiumModel
	if err := model.ScopeAlive(ctl.DB).First(&m, "condominium_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Condominium not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateCondominiumRequest
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
	return helper.Success(c, "Condominium updated", m)
}

// ========== Delete (soft) ==========
func (ctl *CondominiumController) Delete(c *fiber.Ctx) error {
	if !helperAuth.IsAdmin(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	tx := ctl.DB.Model(&model.CondominiumModel{}).
		Where("condominium_id = ? AND condominium_deleted_at IS NULL", id).
		Update("condominium_deleted_at", gorm.Expr("NOW()"))
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Condominium not found")
	}
	return helper.Success(c, "Condominium deleted", nil)
}
