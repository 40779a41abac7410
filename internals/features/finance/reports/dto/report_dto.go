package dto

// Query DTOs for the report endpoints. Outputs are the service's own
// report structures, serialized as-is.

type SummaryQuery struct {
	CondominiumID string `query:"condominium_id" validate:"required,uuid"`
	From          string `query:"from"           validate:"omitempty,datetime=2006-01-02"`
	To            string `query:"to"             validate:"omitempty,datetime=2006-01-02"`
}

type DelinquencyQuery struct {
	CondominiumID string `query:"condominium_id" validate:"required,uuid"`
	AsOf          string `query:"as_of"          validate:"omitempty,datetime=2006-01-02"`
}

type CostPerUnitQuery struct {
	CondominiumID string `query:"condominium_id" validate:"required,uuid"`
	From          string `query:"from"           validate:"required,datetime=2006-01-02"`
	To            string `query:"to"             validate:"required,datetime=2006-01-02"`
}

type TrendQuery struct {
	CondominiumID string `query:"condominium_id" validate:"required,uuid"`
	Months        int    `query:"months"         validate:"omitempty,min=1,max=60"`
}

type CashFlowQuery struct {
	CondominiumID string `query:"condominium_id" validate:"required,uuid"`
	Month         int    `query:"month"          validate:"required,min=1,max=12"`
	Year          int    `query:"year"           validate:"required,min=2000,max=2200"`
}

type ForecastQuery struct {
	CondominiumID string `query:"condominium_id" validate:"required,uuid"`
	Months        int    `query:"months"         validate:"omitempty,min=1,max=60"`
	Horizon       int    `query:"horizon"        validate:"omitempty,min=1,max=24"`
}

type DashboardQuery struct {
	CondominiumID string `query:"condominium_id" validate:"required,uuid"`
}
