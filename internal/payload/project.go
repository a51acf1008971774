package payload

import (
	"gorm.io/datatypes"

	"github.com/ramya-constructions/estate-backend/dao/model"
)

type (
	CreateProjectReq struct {
		Title           string              `json:"title" binding:"required"`
		Location        string              `json:"location" binding:"required"`
		Description     *string             `json:"description"`
		LongDescription *string             `json:"long_description"`
		WebsiteURL      *string             `json:"website_url"`
		Status          model.ProjectStatus `json:"status"`
		BasePrice       float64             `json:"base_price" binding:"required"`
		PropertyType    model.PropertyType  `json:"property_type" binding:"required"`
		HasRentalIncome bool                `json:"has_rental_income"`

		PricingDetails       datatypes.JSON `json:"pricing_details"`
		QuickInfo            datatypes.JSON `json:"quick_info"`
		GalleryImages        datatypes.JSON `json:"gallery_images"`
		KeyHighlights        datatypes.JSON `json:"key_highlights"`
		Features             datatypes.JSON `json:"features"`
		InvestmentHighlights datatypes.JSON `json:"investment_highlights"`
		Amenities            datatypes.JSON `json:"amenities"`

		TotalUnits     int `json:"total_units" binding:"required"`
		AvailableUnits int `json:"available_units"`
		SoldUnits      int `json:"sold_units"`
		ReservedUnits  int `json:"reserved_units"`

		ReraNumber         *string `json:"rera_number"`
		BuildingPermission *string `json:"building_permission"`
	}

	// UpdateProjectReq is a sparse patch. Every field is tri-state: a nil
	// pointer means the field was omitted and must not be overwritten.
	UpdateProjectReq struct {
		Title           *string              `json:"title"`
		Location        *string              `json:"location"`
		Description     *string              `json:"description"`
		LongDescription *string              `json:"long_description"`
		WebsiteURL      *string              `json:"website_url"`
		Status          *model.ProjectStatus `json:"status"`
		BasePrice       *float64             `json:"base_price"`
		PropertyType    *model.PropertyType  `json:"property_type"`
		HasRentalIncome *bool                `json:"has_rental_income"`

		PricingDetails       *datatypes.JSON `json:"pricing_details"`
		QuickInfo            *datatypes.JSON `json:"quick_info"`
		GalleryImages        *datatypes.JSON `json:"gallery_images"`
		KeyHighlights        *datatypes.JSON `json:"key_highlights"`
		Features             *datatypes.JSON `json:"features"`
		InvestmentHighlights *datatypes.JSON `json:"investment_highlights"`
		Amenities            *datatypes.JSON `json:"amenities"`

		TotalUnits     *int `json:"total_units"`
		AvailableUnits *int `json:"available_units"`
		SoldUnits      *int `json:"sold_units"`
		ReservedUnits  *int `json:"reserved_units"`

		ReraNumber         *string `json:"rera_number"`
		BuildingPermission *string `json:"building_permission"`

		IsActive *bool `json:"is_active"`
	}

	ProjectListQuery struct {
		PageQuery
		PropertyType string   `form:"property_type"`
		StatusFilter string   `form:"status_filter"`
		MinPrice     *float64 `form:"min_price"`
		MaxPrice     *float64 `form:"max_price"`
	}

	ListProjectResp struct {
		Message string `json:"message"`
		ListMeta
		TotalProjects int64           `json:"total_projects"`
		Projects      []model.Project `json:"projects"`
	}

	ProjectOption struct {
		ID           string             `json:"id"`
		Title        string             `json:"title"`
		PropertyType model.PropertyType `json:"property_type"`
	}
)
