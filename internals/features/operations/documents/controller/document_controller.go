package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "condominiogt_backend/internals/features/operations/documents/dto"
	model "condominiogt_backend/internals/features/operations/documents/model"
	helper "condominiogt_backend/internals/helpers"
	helperAuth "condominiogt_backend/internals/helpers/auth"
)

type DocumentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{DB: db, Validator: validator.New()}
}

// ========== Create ==========
func (ctl *DocumentController) Create(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	var req dto.CreateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(helperAuth.GetUserIDPtr(c))
	if err := ctl.DB.Create(m).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return helper.Error(c, fiber.StatusConflict, "Storage key already registered")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Document registered", m)
}

// ========== List ==========
func (ctl *DocumentController) List(c *fiber.Ctx) error {
	pag := helper.ParsePagination(c, "document_created_at", "desc")

	db := model.ScopeAlive(ctl.DB.Model(&model.DocumentModel{}))
	if cid := c.Query("condominium_id"); cid != "" {
		db = db.Where("document_condominium_id = ?", cid)
	}
	if cat := c.Query("category"); cat != "" {
		db = db.Where("document_category = ?", cat)
	}
	if q := c.Query("q"); q != "" {
		db = db.Where("document_title ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.DocumentModel
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
func (ctl *DocumentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.DocumentModel
	if err := model.ScopeAlive(ctl.DB).First(&m, "document_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Document not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", m)
}

// ========== Patch ==========
func (ctl *DocumentController) Patch(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.DocumentModel
	if err := model.ScopeAlive(ctl.DB).First(&m, "document_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Document not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateDocumentRequest
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
	return helper.Success(c, "Document updated", m)
}

// ========== Delete (soft) ==========
func (ctl *DocumentController) Delete(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	tx := ctl.DB.Model(&model.DocumentModel{}).
		Where("document_id = ? AND document_deleted_at IS NULL", id).
		Update("document_deleted_at", gorm.Expr("NOW()"))
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Document not found")
	}
	return helper.Success(c, "Document deleted", nil)
}
