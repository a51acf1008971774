package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ramya-constructions/estate-backend/pkg/apperror"
)

// InvestmentScheme is a payment plan attached to a project: either a
// single lump sum settled within BalancePaymentDays, or a monthly
// installment plan. The scheme type decides which of the two field sets
// may be non-null; the two are mutually exclusive.
type InvestmentScheme struct {
	ID         string     `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID  string     `gorm:"type:uuid;not null;index" json:"project_id"`
	Project    *Project   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	SchemeType SchemeType `gorm:"type:varchar(50);not null;index" json:"scheme_type"`
	SchemeName string     `gorm:"type:varchar(255);not null" json:"scheme_name"`
	AreaSqft   int        `gorm:"not null;check:chk_schemes_area_sqft,area_sqft > 0" json:"area_sqft"`

	BookingAdvance *float64 `gorm:"type:decimal(15,2);check:chk_schemes_booking_advance,booking_advance >= 0" json:"booking_advance"`

	// Single-payment schemes only.
	BalancePaymentDays *int `gorm:"check:chk_schemes_balance_payment_days,balance_payment_days > 0" json:"balance_payment_days"`

	// Installment schemes only.
	TotalInstallments        *int     `gorm:"check:chk_schemes_total_installments,total_installments > 0" json:"total_installments"`
	MonthlyInstallmentAmount *float64 `gorm:"type:decimal(15,2);check:chk_schemes_monthly_installment_amount,monthly_installment_amount > 0" json:"monthly_installment_amount"`

	// Permitted only while the owning project has rental income; always
	// validated against the live project row, not a cached copy.
	RentalStartMonth *int `gorm:"check:chk_schemes_rental_start_month,rental_start_month > 0" json:"rental_start_month"`

	StartDate time.Time  `gorm:"type:date;not null;index" json:"start_date"`
	EndDate   *time.Time `gorm:"type:date;check:chk_schemes_date_range,end_date IS NULL OR end_date > start_date" json:"end_date"`

	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (InvestmentScheme) TableName() string { return "investment_schemes" }

func (s *InvestmentScheme) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (s *InvestmentScheme) AfterFind(_ *gorm.DB) error {
	if !s.SchemeType.Valid() {
		return apperror.Validation("investment scheme %s has invalid scheme type %q", s.ID, s.SchemeType)
	}
	return nil
}
