package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "condominiogt_backend/internals/features/payment/payments/dto"
	model "condominiogt_backend/internals/features/payment/payments/model"
	service "condominiogt_backend/internals/features/payment/payments/service"
	helper "condominiogt_backend/internals/helpers"
	helperAuth "condominiogt_backend/internals/helpers/auth"
)

type PaymentController struct {
	DB        *gorm.DB
	Service   *service.PaymentService
	Validator *validator.Validate
}

func NewPaymentController(db *gorm.DB, svc *service.PaymentService) *PaymentController {
	return &PaymentController{
		DB:        db,
		Service:   svc,
		Validator: validator.New(),
	}
}

// httpError translates the service taxonomy into HTTP responses.
func httpError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return helper.Error(c, fiber.StatusNotFound, "Payment not found")
	case errors.Is(err, service.ErrInvalidTransition):
		return helper.Error(c, fiber.StatusConflict, "Transition not allowed from the current status")
	case errors.Is(err, service.ErrConcurrentModification):
		return helper.Error(c, fiber.StatusConflict, "Payment was modified concurrently, re-read and retry")
	}
	if ve, ok := service.AsValidationError(err); ok {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", ve.Fields)
	}
	return helper.Error(c, fiber.StatusInternalServerError, err.Error())
}

// ========== Create ==========
func (ctl *PaymentController) Create(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	in, err := req.ToInput(helperAuth.GetUserIDPtr(c))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	p, err := ctl.Service.Create(in)
	if err != nil {
		return httpError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Payment created", dto.FromModelPayment(p))
}

// ========== List ==========
// GET /payments?condominium_id=...&status=...&kind=...&due_from=...&due_to=...
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	var q dto.ListPaymentQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := ctl.Validator.Struct(&q); err != nil {
		return helper.ValidationError(c, err)
	}

	pag := helper.ParsePagination(c, "payment_due_date", "desc")

	db := model.ScopeAlive(ctl.DB.Model(&model.PaymentModel{}))
	if q.CondominiumID != nil {
		db = db.Where("payment_condominium_id = ?", q.CondominiumID)
	}
	if q.UnitID != nil {
		db = db.Where("payment_unit_id = ?", q.UnitID)
	}
	if q.Status != nil {
		db = db.Where("payment_status = ?", *q.Status)
	}
	if q.Kind != nil {
		db = db.Where("payment_kind = ?", *q.Kind)
	}
	if q.Category != nil && *q.Category != "" {
		db = db.Where("payment_category = ?", *q.Category)
	}
	if from, err := helper.ParseDateYMDPtr(q.DueFrom); err == nil && from != nil {
		db = db.Where("payment_due_date >= ?", *from)
	}
	if to, err := helper.ParseDateYMDPtr(q.DueTo); err == nil && to != nil {
		db = db.Where("payment_due_date <= ?", *to)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PaymentModel
	if err := db.Order(pag.SortBy + " " + pag.SortOrder).
		Limit(pag.Limit()).Offset(pag.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": dto.FromModelPayments(rows),
		"meta":  helper.BuildMeta(pag, total),
	})
}

// ========== Detail ==========
func (ctl *PaymentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	p, err := ctl.Service.GetByID(id)
	if err != nil {
		return httpError(c, err)
	}
	return helper.Success(c, "OK", dto.FromModelPayment(p))
}

// ========== Patch ==========
func (ctl *PaymentController) Patch(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	in, err := req.ToInput(helperAuth.GetUserIDPtr(c))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	p, err := ctl.Service.Edit(id, in, time.Now().UTC())
	if err != nil {
		return httpError(c, err)
	}
	return helper.Success(c, "Payment updated", dto.FromModelPayment(p))
}

// ========== Pay ==========
func (ctl *PaymentController) Pay(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.PayPaymentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		if err := ctl.Validator.Struct(&req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	in, err := req.ToInput(helperAuth.GetUserIDPtr(c))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	p, err := ctl.Service.RegisterPayment(id, in, time.Now().UTC())
	if err != nil {
		return httpError(c, err)
	}
	return helper.Success(c, "Payment registered", dto.FromModelPayment(p))
}

// ========== Cancel ==========
func (ctl *PaymentController) Cancel(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CancelPaymentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
	}

	p, err := ctl.Service.Cancel(id, req.PaymentCancelReason, helperAuth.GetUserIDPtr(c))
	if err != nil {
		return httpError(c, err)
	}
	return helper.Success(c, "Payment canceled", dto.FromModelPayment(p))
}

// ========== MarkOverdue ==========
// POST /payments/:id/mark-overdue?as_of=YYYY-MM-DD (defaults to today)
func (ctl *PaymentController) MarkOverdue(c *fiber.Ctx) error {
	if !helperAuth.IsManager(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	asOf := time.Now().UTC()
	if raw := c.Query("as_of"); raw != "" {
		asOf, err = helper.ParseDateYMD(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "as_of invalid")
		}
	}

	p, err := ctl.Service.MarkOverdue(id, asOf, helperAuth.GetUserIDPtr(c))
	if err != nil {
		return httpError(c, err)
	}
	return helper.Success(c, "Payment marked overdue", dto.FromModelPayment(p))
}

// ========== Checkout (gateway) ==========
func (ctl *PaymentController) Checkout(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CheckoutPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	p, token, redirectURL, err := ctl.Service.CreateCheckout(id, req.PayerName, req.PayerEmail)
	if err != nil {
		return httpError(c, err)
	}

	return helper.Success(c, "Checkout created", fiber.Map{
		"payment":      dto.FromModelPayment(p),
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

// ========== Delete ==========
func (ctl *PaymentController) Delete(c *fiber.Ctx) error {
	if !helperAuth.IsAdmin(c) {
		return helper.Error(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := ctl.Service.Delete(id); err != nil {
		return httpError(c, err)
	}
	return helper.Success(c, "Payment deleted", nil)
}

// ========== Webhook ==========
// POST /api/public/payments/notification — called by the gateway, no auth.
func (ctl *PaymentController) Webhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}

	// unknown order ids surface as 404 so gateway retries of bogus
	// notifications do not read as server faults
	if err := ctl.Service.HandlePaymentStatusWebhook(body); err != nil {
		return httpError(c, err)
	}
	return helper.Success(c, "OK", nil)
}
