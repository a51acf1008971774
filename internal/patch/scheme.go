package patch

import (
	"time"

	"github.com/samber/lo"

	"github.com/ramya-constructions/estate-backend/dao/model"
	"github.com/ramya-constructions/estate-backend/internal/payload"
	"github.com/ramya-constructions/estate-backend/pkg/apperror"
)

// NewScheme validates a create request against the live owning project
// and builds the entity to insert.
func NewScheme(req *payload.CreateSchemeReq, project *model.Project) (*model.InvestmentScheme, error) {
	if !req.SchemeType.Valid() {
		return nil, apperror.Validation("invalid scheme type %q", req.SchemeType)
	}
	if req.AreaSqft <= 0 {
		return nil, apperror.Validation("area square feet must be greater than 0")
	}
	if req.BookingAdvance != nil && *req.BookingAdvance < 0 {
		return nil, apperror.Validation("booking advance cannot be negative")
	}
	if err := checkRentalStartMonth(req.RentalStartMonth, project); err != nil {
		return nil, err
	}

	switch req.SchemeType {
	case model.SchemeSinglePayment:
		if req.TotalInstallments != nil {
			return nil, apperror.Validation("single payment schemes cannot have total_installments")
		}
		if req.MonthlyInstallmentAmount != nil {
			return nil, apperror.Validation("single payment schemes cannot have monthly_installment_amount")
		}
		if req.BalancePaymentDays == nil || *req.BalancePaymentDays <= 0 {
			return nil, apperror.Validation("single payment schemes must have valid balance_payment_days")
		}
	case model.SchemeInstallment:
		if req.TotalInstallments == nil || *req.TotalInstallments <= 0 {
			return nil, apperror.Validation("installment schemes must have valid total_installments")
		}
		if req.MonthlyInstallmentAmount == nil || *req.MonthlyInstallmentAmount <= 0 {
			return nil, apperror.Validation("installment schemes must have valid monthly_installment_amount")
		}
		if req.BalancePaymentDays != nil {
			return nil, apperror.Validation("installment schemes cannot have balance_payment_days")
		}
	}

	var endDate *time.Time
	if req.EndDate != nil {
		endDate = &req.EndDate.Time
	}
	if err := checkDateRange(req.StartDate.Time, endDate); err != nil {
		return nil, err
	}

	return &model.InvestmentScheme{
		ProjectID:                project.ID,
		SchemeType:               req.SchemeType,
		SchemeName:               req.SchemeName,
		AreaSqft:                 req.AreaSqft,
		BookingAdvance:           req.BookingAdvance,
		BalancePaymentDays:       req.BalancePaymentDays,
		TotalInstallments:        req.TotalInstallments,
		MonthlyInstallmentAmount: req.MonthlyInstallmentAmount,
		RentalStartMonth:         req.RentalStartMonth,
		StartDate:                req.StartDate.Time,
		EndDate:                  endDate,
		IsActive:                 lo.FromPtrOr(req.IsActive, true),
	}, nil
}

// Scheme builds the column set for a sparse scheme update. The scheme
// type is immutable, so exclusivity is checked against the stored type;
// rental_start_month is checked against the live project row fetched in
// the caller's transaction, because the project may have changed since
// the scheme was created.
func Scheme(cur *model.InvestmentScheme, project *model.Project, req *payload.UpdateSchemeReq) (Patch, error) {
	p := New()

	if req.SchemeName != nil {
		p.Set("scheme_name", *req.SchemeName)
	}
	if req.AreaSqft != nil {
		if *req.AreaSqft <= 0 {
			return p, apperror.Validation("area square feet must be greater than 0")
		}
		p.Set("area_sqft", *req.AreaSqft)
	}
	if req.BookingAdvance != nil {
		if *req.BookingAdvance < 0 {
			return p, apperror.Validation("booking advance cannot be negative")
		}
		p.Set("booking_advance", *req.BookingAdvance)
	}

	if req.BalancePaymentDays != nil {
		if cur.SchemeType == model.SchemeInstallment {
			return p, apperror.Validation("installment schemes cannot have balance_payment_days")
		}
		if *req.BalancePaymentDays <= 0 {
			return p, apperror.Validation("balance payment days must be greater than 0")
		}
		p.Set("balance_payment_days", *req.BalancePaymentDays)
	}
	if req.TotalInstallments != nil {
		if cur.SchemeType == model.SchemeSinglePayment {
			return p, apperror.Validation("single payment schemes cannot have total_installments")
		}
		if *req.TotalInstallments <= 0 {
			return p, apperror.Validation("total installments must be greater than 0")
		}
		p.Set("total_installments", *req.TotalInstallments)
	}
	if req.MonthlyInstallmentAmount != nil {
		if cur.SchemeType == model.SchemeSinglePayment {
			return p, apperror.Validation("single payment schemes cannot have monthly_installment_amount")
		}
		if *req.MonthlyInstallmentAmount <= 0 {
			return p, apperror.Validation("monthly installment amount must be greater than 0")
		}
		p.Set("monthly_installment_amount", *req.MonthlyInstallmentAmount)
	}

	if req.RentalStartMonth != nil {
		if err := checkRentalStartMonth(req.RentalStartMonth, project); err != nil {
			return p, err
		}
		p.Set("rental_start_month", *req.RentalStartMonth)
	}

	if req.StartDate != nil || req.EndDate != nil {
		start := cur.StartDate
		if req.StartDate != nil {
			start = req.StartDate.Time
		}
		end := cur.EndDate
		if req.EndDate != nil {
			end = &req.EndDate.Time
		}
		if err := checkDateRange(start, end); err != nil {
			return p, err
		}
		if req.StartDate != nil {
			p.Set("start_date", req.StartDate.Time)
		}
		if req.EndDate != nil {
			p.Set("end_date", req.EndDate.Time)
		}
	}

	if req.IsActive != nil {
		p.Set("is_active", *req.IsActive)
	}

	return p, nil
}

func checkRentalStartMonth(month *int, project *model.Project) error {
	if month == nil {
		return nil
	}
	if *month <= 0 {
		return apperror.Validation("rental start month must be greater than 0")
	}
	if !project.HasRentalIncome {
		return apperror.Validation("rental start month can only be set for projects with rental income")
	}
	return nil
}

func checkDateRange(start time.Time, end *time.Time) error {
	if end != nil && !end.After(start) {
		return apperror.Validation("end date must be after start date")
	}
	return nil
}
