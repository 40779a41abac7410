package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "condominiogt_backend/internals/features/finance/reports/dto"
	service "condominiogt_backend/internals/features/finance/reports/service"
	paymentDTO "condominiogt_backend/internals/features/payment/payments/dto"
	paymentModel "condominiogt_backend/internals/features/payment/payments/model"
	contractModel "condominiogt_backend/internals/features/suppliers/contracts/model"
	helper "condominiogt_backend/internals/helpers"
)

type ReportController struct {
	DB        *gorm.DB
	Service   *service.FinanceService
	Validator *validator.Validate
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{
		DB:        db,
		Service:   service.NewFinanceService(db),
		Validator: validator.New(),
	}
}

func (ctl *ReportController) parseQuery(c *fiber.Ctx, out interface{}) error {
	if err := c.QueryParser(out); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(out); err != nil {
		return helper.ValidationError(c, err)
	}
	return nil
}

// ========== Summary ==========
// GET /reports/summary?condominium_id=...&from=...&to=...
func (ctl *ReportController) Summary(c *fiber.Ctx) error {
	var q dto.SummaryQuery
	if err := ctl.parseQuery(c, &q); err != nil {
		return err
	}
	condoID := uuid.MustParse(q.CondominiumID)

	from, err := helper.ParseDateYMDPtr(&q.From)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := helper.ParseDateYMDPtr(&q.To)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid to date")
	}

	out, err := ctl.Service.Summarize(condoID, from, to)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", out)
}

// ========== Delinquency ==========
func (ctl *ReportController) Delinquency(c *fiber.Ctx) error {
	var q dto.DelinquencyQuery
	if err := ctl.parseQuery(c, &q); err != nil {
		return err
	}
	condoID := uuid.MustParse(q.CondominiumID)

	asOf := time.Now().UTC()
	if q.AsOf != "" {
		parsed, err := helper.ParseDateYMD(q.AsOf)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid as_of date")
		}
		asOf = parsed
	}

	out, err := ctl.Service.Delinquency(condoID, asOf)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", out)
}

// ========== Cost per unit ==========
func (ctl *ReportController) CostPerUnit(c *fiber.Ctx) error {
	var q dto.CostPerUnitQuery
	if err := ctl.parseQuery(c, &q); err != nil {
		return err
	}
	condoID := uuid.MustParse(q.CondominiumID)

	from, err := helper.ParseDateYMD(q.From)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := helper.ParseDateYMD(q.To)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid to date")
	}

	out, err := ctl.Service.CostPerUnit(condoID, from, to)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", out)
}

// ========== Trend ==========
func (ctl *ReportController) Trend(c *fiber.Ctx) error {
	var q dto.TrendQuery
	if err := ctl.parseQuery(c, &q); err != nil {
		return err
	}
	condoID := uuid.MustParse(q.CondominiumID)

	months := q.Months
	if months == 0 {
		months = 12
	}

	out, err := ctl.Service.Trend(condoID, months, time.Now().UTC())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", out)
}

// ========== Cash flow ==========
func (ctl *ReportController) CashFlow(c *fiber.Ctx) error {
	var q dto.CashFlowQuery
	if err := ctl.parseQuery(c, &q); err != nil {
		return err
	}
	condoID := uuid.MustParse(q.CondominiumID)

	out, err := ctl.Service.CashFlow(condoID, q.Month, q.Year)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", out)
}

// ========== Forecast ==========
func (ctl *ReportController) Forecast(c *fiber.Ctx) error {
	var q dto.ForecastQuery
	if err := ctl.parseQuery(c, &q); err != nil {
		return err
	}
	condoID := uuid.MustParse(q.CondominiumID)

	months, horizon := q.Months, q.Horizon
	if months == 0 {
		months = 12
	}
	if horizon == 0 {
		horizon = 3
	}

	out, err := ctl.Service.Forecast(condoID, months, horizon, time.Now().UTC())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", out)
}

// ========== Dashboard ==========
// Summary plus top 5 nearest-to-expiry contracts and top 5 most recent
// payments. Selection and formatting only, the arithmetic lives in the
// finance service.
func (ctl *ReportController) Dashboard(c *fiber.Ctx) error {
	var q dto.DashboardQuery
	if err := ctl.parseQuery(c, &q); err != nil {
		return err
	}
	condoID := uuid.MustParse(q.CondominiumID)

	summary, err := ctl.Service.Summarize(condoID, nil, nil)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var contracts []contractModel.ContractModel
	err = contractModel.ScopeAlive(ctl.DB).
		Where("contract_condominium_id = ?", condoID).
		Where("contract_status = ?", contractModel.ContractActive).
		Where("contract_end_date IS NOT NULL").
		Order("contract_end_date ASC").
		Limit(5).
		Find(&contracts).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var payments []paymentModel.PaymentModel
	err = paymentModel.ScopeAlive(ctl.DB).
		Scopes(paymentModel.ScopeByCondominium(condoID)).
		Order("payment_created_at DESC").
		Limit(5).
		Find(&payments).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"summary":            summary,
		"expiring_contracts": contracts,
		"recent_payments":    paymentDTO.FromModelPayments(payments),
	})
}
