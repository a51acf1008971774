package patch

import (
	"github.com/samber/lo"

	"github.com/ramya-constructions/estate-backend/dao/model"
	"github.com/ramya-constructions/estate-backend/internal/payload"
	"github.com/ramya-constructions/estate-backend/pkg/apperror"
)

// NewProject validates a create request and builds the entity to insert.
func NewProject(req *payload.CreateProjectReq) (*model.Project, error) {
	status := req.Status
	if status == "" {
		status = model.StatusAvailable
	}
	if !status.Valid() {
		return nil, apperror.Validation("invalid status %q", req.Status)
	}
	if !req.PropertyType.Valid() {
		return nil, apperror.Validation("invalid property type %q", req.PropertyType)
	}
	if req.BasePrice <= 0 {
		return nil, apperror.Validation("base price must be greater than 0")
	}
	if err := checkUnits(req.TotalUnits, req.AvailableUnits, req.SoldUnits, req.ReservedUnits); err != nil {
		return nil, err
	}
	if err := checkRentalIncome(req.PropertyType, req.HasRentalIncome); err != nil {
		return nil, err
	}

	return &model.Project{
		Title:                req.Title,
		Location:             req.Location,
		Description:          req.Description,
		LongDescription:      req.LongDescription,
		WebsiteURL:           req.WebsiteURL,
		Status:               status,
		BasePrice:            req.BasePrice,
		PropertyType:         req.PropertyType,
		HasRentalIncome:      req.HasRentalIncome,
		PricingDetails:       req.PricingDetails,
		QuickInfo:            req.QuickInfo,
		GalleryImages:        req.GalleryImages,
		KeyHighlights:        req.KeyHighlights,
		Features:             req.Features,
		InvestmentHighlights: req.InvestmentHighlights,
		Amenities:            req.Amenities,
		TotalUnits:           req.TotalUnits,
		AvailableUnits:       req.AvailableUnits,
		SoldUnits:            req.SoldUnits,
		ReservedUnits:        req.ReservedUnits,
		ReraNumber:           req.ReraNumber,
		BuildingPermission:   req.BuildingPermission,
		IsActive:             true,
	}, nil
}

// Project builds the column set for a sparse project update against the
// current persisted row. Invariants spanning several fields are evaluated
// over the effective values, so updating a single unit count is checked
// against the untouched counts of the stored row.
//
//nolint:gocyclo // one branch per optional field, flat by construction
func Project(cur *model.Project, req *payload.UpdateProjectReq) (Patch, error) {
	p := New()

	if req.Title != nil {
		p.Set("title", *req.Title)
	}
	if req.Location != nil {
		p.Set("location", *req.Location)
	}
	if req.Description != nil {
		p.Set("description", *req.Description)
	}
	if req.LongDescription != nil {
		p.Set("long_description", *req.LongDescription)
	}
	if req.WebsiteURL != nil {
		p.Set("website_url", *req.WebsiteURL)
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return p, apperror.Validation("invalid status %q", *req.Status)
		}
		p.Set("status", *req.Status)
	}
	if req.BasePrice != nil {
		if *req.BasePrice <= 0 {
			return p, apperror.Validation("base price must be greater than 0")
		}
		p.Set("base_price", *req.BasePrice)
	}
	if req.PropertyType != nil {
		if !req.PropertyType.Valid() {
			return p, apperror.Validation("invalid property type %q", *req.PropertyType)
		}
		p.Set("property_type", *req.PropertyType)
	}
	if req.HasRentalIncome != nil {
		p.Set("has_rental_income", *req.HasRentalIncome)
	}

	if req.PropertyType != nil || req.HasRentalIncome != nil {
		propertyType := lo.FromPtrOr(req.PropertyType, cur.PropertyType)
		hasRental := lo.FromPtrOr(req.HasRentalIncome, cur.HasRentalIncome)
		if err := checkRentalIncome(propertyType, hasRental); err != nil {
			return p, err
		}
	}

	if req.PricingDetails != nil {
		p.Set("pricing_details", *req.PricingDetails)
	}
	if req.QuickInfo != nil {
		p.Set("quick_info", *req.QuickInfo)
	}
	if req.GalleryImages != nil {
		p.Set("gallery_images", *req.GalleryImages)
	}
	if req.KeyHighlights != nil {
		p.Set("key_highlights", *req.KeyHighlights)
	}
	if req.Features != nil {
		p.Set("features", *req.Features)
	}
	if req.InvestmentHighlights != nil {
		p.Set("investment_highlights", *req.InvestmentHighlights)
	}
	if req.Amenities != nil {
		p.Set("amenities", *req.Amenities)
	}

	if req.ReraNumber != nil {
		p.Set("rera_number", *req.ReraNumber)
	}
	if req.BuildingPermission != nil {
		p.Set("building_permission", *req.BuildingPermission)
	}

	if req.TotalUnits != nil || req.AvailableUnits != nil || req.SoldUnits != nil || req.ReservedUnits != nil {
		total := lo.FromPtrOr(req.TotalUnits, cur.TotalUnits)
		available := lo.FromPtrOr(req.AvailableUnits, cur.AvailableUnits)
		sold := lo.FromPtrOr(req.SoldUnits, cur.SoldUnits)
		reserved := lo.FromPtrOr(req.ReservedUnits, cur.ReservedUnits)
		if err := checkUnits(total, available, sold, reserved); err != nil {
			return p, err
		}
		if req.TotalUnits != nil {
			p.Set("total_units", *req.TotalUnits)
		}
		if req.AvailableUnits != nil {
			p.Set("available_units", *req.AvailableUnits)
		}
		if req.SoldUnits != nil {
			p.Set("sold_units", *req.SoldUnits)
		}
		if req.ReservedUnits != nil {
			p.Set("reserved_units", *req.ReservedUnits)
		}
	}

	if req.IsActive != nil {
		p.Set("is_active", *req.IsActive)
	}

	return p, nil
}

func checkUnits(total, available, sold, reserved int) error {
	if total <= 0 {
		return apperror.Validation("total units must be greater than 0")
	}
	if available < 0 {
		return apperror.Validation("available units cannot be negative")
	}
	if sold < 0 {
		return apperror.Validation("sold units cannot be negative")
	}
	if reserved < 0 {
		return apperror.Validation("reserved units cannot be negative")
	}
	if total != available+sold+reserved {
		return apperror.Validation("total units must equal sum of available, sold, and reserved units")
	}
	return nil
}

func checkRentalIncome(propertyType model.PropertyType, hasRentalIncome bool) error {
	if hasRentalIncome && !propertyType.AllowsRentalIncome() {
		return apperror.Validation("plot and land properties cannot have rental income")
	}
	return nil
}
