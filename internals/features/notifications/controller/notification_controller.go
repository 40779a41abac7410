package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "condominiogt_backend/internals/features/notifications/dto"
	model "condominiogt_backend/internals/features/notifications/model"
	helper "condominiogt_backend/internals/helpers"
	helperAuth "condominiogt_backend/internals/helpers/auth"
)

type NotificationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, Validator: validator.New()}
}

// ========== Create (manual broadcast) ==========
func (ctl *NotificationController) Create(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	var req dto.CreateNotificationRequest
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
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Notification created", m)
}

// ========== List ==========
// GET /notifications?condominium_id=...&unit_id=...&kind=...&unread=true
func (ctl *NotificationController) List(c *fiber.Ctx) error {
	pag := helper.ParsePagination(c, "notification_created_at", "desc")

	db := model.ScopeAlive(ctl.DB.Model(&model.NotificationModel{}))
	if cid := c.Query("condominium_id"); cid != "" {
		db = db.Where("notification_condominium_id = ?", cid)
	}
	if uid := c.Query("unit_id"); uid != "" {
		db = db.Where("notification_unit_id = ?", uid)
	}
	if k := c.Query("kind"); k != "" {
		db = db.Where("notification_kind = ?", k)
	}
	if c.QueryBool("unread") {
		db = model.ScopeUnread(db)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.NotificationModel
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

// ========== Mark read ==========
func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	tx := ctl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_deleted_at IS NULL AND notification_read_at IS NULL", id).
		Update("notification_read_at", time.Now().UTC())
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		var m model.NotificationModel
		if err := model.ScopeAlive(ctl.DB).First(&m, "notification_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusNotFound, "Notification not found")
			}
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		// already read, marking again is a no-op
		return helper.Success(c, "OK", m)
	}
	return helper.Success(c, "Notification marked as read", nil)
}

// ========== Delete (soft) ==========
func (ctl *NotificationController) Delete(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	tx := ctl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_deleted_at IS NULL", id).
		Update("notification_deleted_at", gorm.Expr("NOW()"))
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Notification not found")
	}
	return helper.Success(c, "Notification deleted", nil)
}
