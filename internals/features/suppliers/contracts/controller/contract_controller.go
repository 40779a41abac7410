package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "condominiogt_backend/internals/features/suppliers/contracts/dto"
	model "condominiogt_backend/internals/features/suppliers/contracts/model"
	helper "condominiogt_backend/internals/helpers"
	helperAuth "condominiogt_backend/internals/helpers/auth"
)

type ContractController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewContractController(db *gorm.DB) *ContractController {
	return &ContractController{DB: db, Validator: validator.New()}
}

// ========== Create ==========
func (ctl *ContractController) Create(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	var req dto.CreateContractRequest
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
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Contract created", m)
}

// ========== List ==========
// GET /contracts?condominium_id=...&supplier_id=...&status=...&expiring_within_days=N
func (ctl *ContractController) List(c *fiber.Ctx) error {
	pag := helper.ParsePagination(c, "contract_end_date", "asc")

	db := model.ScopeAlive(ctl.DB.Model(&model.ContractModel{}))
	if cid := c.Query("condominium_id"); cid != "" {
		db = db.Where("contract_condominium_id = ?", cid)
	}
	if sid := c.Query("supplier_id"); sid != "" {
		db = db.Where("contract_supplier_id = ?", sid)
	}
	if st := c.Query("status"); st != "" {
		db = db.Where("contract_status = ?", st)
	}
	if days := c.QueryInt("expiring_within_days"); days > 0 {
		db = db.Where("contract_end_date IS NOT NULL AND contract_end_date <= NOW() + make_interval(days => ?)", days).
			Where("contract_status = ?", model.ContractActive)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ContractModel
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
func (ctl *ContractController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.ContractModel
	if err := model.ScopeAlive(ctl.DB).First(&m, "contract_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Contract not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", m)
}

// ========== Patch ==========
func (ctl *ContractController) Patch(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.ContractModel
	if err := model.ScopeAlive(ctl.DB).First(&m, "contract_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Contract not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateContractRequest
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
	return helper.Success(c, "Contract updated", m)
}

// ========== Delete (soft) ==========
func (ctl *ContractController) Delete(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	tx := ctl.DB.Model(&model.ContractModel{}).
		Where("contract_id = ? AND contract_deleted_at IS NULL", id).
		Update("contract_deleted_at", gorm.Expr("NOW()"))
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Contract not found")
	}
	return helper.Success(c, "Contract deleted", nil)
}
