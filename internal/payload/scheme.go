package payload

import "github.com/ramya-constructions/estate-backend/dao/model"

type (
	CreateSchemeReq struct {
		ProjectID  string           `json:"project_id" binding:"required"`
		SchemeType model.SchemeType `json:"scheme_type" binding:"required"`
		SchemeName string           `json:"scheme_name" binding:"required"`
		AreaSqft   int              `json:"area_sqft" binding:"required"`

		BookingAdvance *float64 `json:"booking_advance"`

		BalancePaymentDays *int `json:"balance_payment_days"`

		TotalInstallments        *int     `json:"total_installments"`
		MonthlyInstallmentAmount *float64 `json:"monthly_installment_amount"`

		RentalStartMonth *int `json:"rental_start_month"`

		StartDate Date  `json:"start_date" binding:"required"`
		EndDate   *Date `json:"end_date"`

		IsActive *bool `json:"is_active"`
	}

	// UpdateSchemeReq is a sparse patch; the scheme type itself is
	// immutable after creation.
	UpdateSchemeReq struct {
		SchemeName *string `json:"scheme_name"`
		AreaSqft   *int    `json:"area_sqft"`

		BookingAdvance *float64 `json:"booking_advance"`

		BalancePaymentDays *int `json:"balance_payment_days"`

		TotalInstallments        *int     `json:"total_installments"`
		MonthlyInstallmentAmount *float64 `json:"monthly_installment_amount"`

		RentalStartMonth *int `json:"rental_start_month"`

		StartDate *Date `json:"start_date"`
		EndDate   *Date `json:"end_date"`

		IsActive *bool `json:"is_active"`
	}

	SchemeListQuery struct {
		PageQuery
		ProjectID  string `form:"project_id"`
		SchemeType string `form:"scheme_type"`
		IsActive   *bool  `form:"is_active"`
	}

	ListSchemeResp struct {
		Message string `json:"message"`
		ListMeta
		TotalSchemes int64                    `json:"total_schemes"`
		Schemes      []model.InvestmentScheme `json:"schemes"`
	}
)
