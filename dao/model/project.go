package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ramya-constructions/estate-backend/pkg/apperror"
)

// Project is a real-estate development listing with unit inventory and
// pricing. Rows are soft-deleted via IsActive; public reads only ever see
// active rows.
type Project struct {
	ID              string        `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string        `gorm:"type:varchar(255);not null" json:"title"`
	Location        string        `gorm:"type:varchar(255);not null" json:"location"`
	Description     *string       `gorm:"type:text" json:"description"`
	LongDescription *string       `gorm:"type:text" json:"long_description"`
	WebsiteURL      *string       `gorm:"type:text" json:"website_url"`
	Status          ProjectStatus `gorm:"type:varchar(50);not null;default:'available';index" json:"status"`
	BasePrice       float64       `gorm:"type:decimal(15,2);not null;index;check:chk_projects_base_price,base_price > 0" json:"base_price"`
	PropertyType    PropertyType  `gorm:"type:varchar(50);not null;index" json:"property_type"`
	HasRentalIncome bool          `gorm:"not null;default:false" json:"has_rental_income"`

	// Free-form attribute documents, each independently nullable.
	PricingDetails       datatypes.JSON `json:"pricing_details"`
	QuickInfo            datatypes.JSON `json:"quick_info"`
	GalleryImages        datatypes.JSON `json:"gallery_images"`
	KeyHighlights        datatypes.JSON `json:"key_highlights"`
	Features             datatypes.JSON `json:"features"`
	InvestmentHighlights datatypes.JSON `json:"investment_highlights"`
	Amenities            datatypes.JSON `json:"amenities"`

	// Unit inventory. TotalUnits must equal the sum of the three
	// sub-counts on every write; the patch builder enforces it.
	TotalUnits     int `gorm:"not null;check:chk_projects_total_units,total_units > 0" json:"total_units"`
	AvailableUnits int `gorm:"not null;default:0;check:chk_projects_available_units,available_units >= 0" json:"available_units"`
	SoldUnits      int `gorm:"not null;default:0;check:chk_projects_sold_units,sold_units >= 0" json:"sold_units"`
	ReservedUnits  int `gorm:"not null;default:0;check:chk_projects_reserved_units,reserved_units >= 0" json:"reserved_units"`

	ReraNumber         *string `gorm:"type:varchar(100)" json:"rera_number"`
	BuildingPermission *string `gorm:"type:varchar(100)" json:"building_permission"`

	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// AfterFind guards against persisted values outside the closed enum
// domains. The DDL constraints make this unreachable in practice.
func (p *Project) AfterFind(_ *gorm.DB) error {
	if !p.Status.Valid() {
		return apperror.Validation("project %s has invalid status %q", p.ID, p.Status)
	}
	if !p.PropertyType.Valid() {
		return apperror.Validation("project %s has invalid property type %q", p.ID, p.PropertyType)
	}
	return nil
}
