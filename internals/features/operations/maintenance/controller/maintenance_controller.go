package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "condominiogt_backend/internals/features/operations/maintenance/dto"
	model "condominiogt_backend/internals/features/operations/maintenance/model"
	helper "condominiogt_backend/internals/helpers"
	helperAuth "condominiogt_backend/internals/helpers/auth"
)

type MaintenanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMaintenanceController(db *gorm.DB) *MaintenanceController {
	return &MaintenanceController{DB: db, Validator: validator.New()}
}

// ========== Create ==========
func (ctl *MaintenanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(helperAuth.GetUserIDPtr(c))
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Ticket created", m)
}

// ========== List ==========
func (ctl *MaintenanceController) List(c *fiber.Ctx) error {
	pag := helper.ParsePagination(c, "ticket_created_at", "desc")

	db := model.ScopeAlive(ctl.DB.Model(&model.MaintenanceTicketModel{}))
	if cid := c.Query("condominium_id"); cid != "" {
		db = db.Where("ticket_condominium_id = ?", cid)
	}
	if uid := c.Query("unit_id"); uid != "" {
		db = db.Where("ticket_unit_id = ?", uid)
	}
	if st := c.Query("status"); st != "" {
		db = db.Where("ticket_status = ?", st)
	}
	if pr := c.Query("priority"); pr != "" {
		db = db.Where("ticket_priority = ?", pr)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.MaintenanceTicketModel
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
func (ctl *MaintenanceController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.MaintenanceTicketModel
	if err := model.ScopeAlive(ctl.DB).First(&m, "ticket_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Ticket not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", m)
}

// ========== Patch ==========
func (ctl *MaintenanceController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.MaintenanceTicketModel
	if err := model.ScopeAlive(ctl.DB).First(&m, "ticket_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Ticket not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.TicketStatus.IsTerminal() {
		return helper.Error(c, fiber.StatusConflict, "Ticket already closed")
	}

	var req dto.UpdateTicketRequest
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
	return helper.Success(c, "Ticket updated", m)
}

// ========== Transition ==========
// POST /maintenance/:id/status. Conditional update keyed on the status
// observed at read time, losing the race yields 409.
func (ctl *MaintenanceController) Transition(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.TransitionTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	next := model.TicketStatus(req.TicketStatus)

	var m model.MaintenanceTicketModel
	if err := model.ScopeAlive(ctl.DB).First(&m, "ticket_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Ticket not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !m.TicketStatus.CanTransition(next) {
		return helper.Error(c, fiber.StatusConflict, "Invalid ticket transition")
	}

	updates := map[string]interface{}{
		"ticket_status":     next,
		"ticket_updated_at": time.Now().UTC(),
	}
	if next == model.TicketDone {
		updates["ticket_resolved_at"] = time.Now().UTC()
	}

	tx := ctl.DB.Model(&model.MaintenanceTicketModel{}).
		Where("ticket_id = ? AND ticket_status = ? AND ticket_deleted_at IS NULL", id, m.TicketStatus).
		Updates(updates)
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusConflict, "Ticket changed concurrently")
	}

	m.TicketStatus = next
	return helper.Success(c, "Ticket status updated", m)
}

// ========== Delete (soft) ==========
func (ctl *MaintenanceController) Delete(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	tx := ctl.DB.Model(&model.MaintenanceTicketModel{}).
		Where("ticket_id = ? AND ticket_deleted_at IS NULL", id).
		Update("ticket_deleted_at", gorm.Expr("NOW()"))
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Ticket not found")
	}
	return helper.Success(c, "Ticket deleted", nil)
}
