// Package listing builds the filtered, paginated queries behind the
// public read endpoints: optional predicates over a base condition set,
// a total count under the same predicates, and a page slice in a stable
// order.
package listing

import (
	"math"
	"strings"

	"gorm.io/gorm"

	"github.com/ramya-constructions/estate-backend/dao/model"
	"github.com/ramya-constructions/estate-backend/internal/payload"
	"github.com/ramya-constructions/estate-backend/pkg/apperror"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	// MinSearchLen is the minimum trimmed length of a free-text search
	// term.
	MinSearchLen = 2
)

// Pagination is a normalized 1-based page request.
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination applies defaults and the documented cap, rejecting
// non-positive values that were explicitly supplied.
func NewPagination(page, limit int) (Pagination, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if page < 0 {
		return Pagination{}, apperror.Validation("page must be positive")
	}
	if limit < 0 {
		return Pagination{}, apperror.Validation("limit must be positive")
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Pagination{Page: page, Limit: limit}, nil
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Window is a raw limit/offset slice used by the public convenience
// reads that skip page metadata.
type Window struct {
	Limit  int
	Offset int
}

func NewWindow(limit, offset int) (Window, error) {
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 0 {
		return Window{}, apperror.Validation("limit must be positive")
	}
	if offset < 0 {
		return Window{}, apperror.Validation("offset cannot be negative")
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Window{Limit: limit, Offset: offset}, nil
}

// Meta derives the navigation block for a total row count under the
// active filters.
func (p Pagination) Meta(total int64) payload.ListMeta {
	totalPages := int(math.Ceil(float64(total) / float64(p.Limit)))
	return payload.ListMeta{
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
		IsPrevious: p.Page > 1,
		IsNext:     p.Page < totalPages,
	}
}

// ProjectFilter is the optional predicate set over active projects.
type ProjectFilter struct {
	PropertyType string
	Status       string
	MinPrice     *float64
	MaxPrice     *float64
	Search       string
}

func (f ProjectFilter) Validate() error {
	if f.PropertyType != "" && !model.PropertyType(f.PropertyType).Valid() {
		return apperror.Validation("invalid property type %q", f.PropertyType)
	}
	if f.Status != "" && !model.ProjectStatus(f.Status).Valid() {
		return apperror.Validation("invalid status %q", f.Status)
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return apperror.Validation("minimum price cannot be greater than maximum price")
	}
	if f.Search != "" && len(strings.TrimSpace(f.Search)) < MinSearchLen {
		return apperror.Validation("search term must be at least 2 characters long")
	}
	return nil
}

// scope applies the filter. Listings are always restricted to active
// rows; soft-deleted projects are invisible to every read path.
func (f ProjectFilter) scope(db *gorm.DB) *gorm.DB {
	tx := db.Model(&model.Project{}).Where("is_active = ?", true)
	if f.PropertyType != "" {
		tx = tx.Where("property_type = ?", f.PropertyType)
	}
	if f.Status != "" {
		tx = tx.Where("status = ?", f.Status)
	}
	if f.MinPrice != nil {
		tx = tx.Where("base_price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		tx = tx.Where("base_price <= ?", *f.MaxPrice)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(strings.TrimSpace(f.Search)) + "%"
		tx = tx.Where(
			"LOWER(title) LIKE ? OR LOWER(location) LIKE ? OR LOWER(description) LIKE ? OR LOWER(long_description) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	return tx
}

// FindProjects returns the page slice in creation-time-descending order
// together with the total count under the filter.
func FindProjects(db *gorm.DB, f ProjectFilter, p Pagination) ([]model.Project, int64, error) {
	if err := f.Validate(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := f.scope(db).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	projects := []model.Project{}
	err := f.scope(db).
		Order("created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// SliceProjects returns an uncounted window over the filtered rows,
// newest first.
func SliceProjects(db *gorm.DB, f ProjectFilter, w Window) ([]model.Project, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	projects := []model.Project{}
	err := f.scope(db).
		Order("created_at DESC").
		Limit(w.Limit).
		Offset(w.Offset).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// SchemeFilter is the optional predicate set over investment schemes.
// A nil IsActive defaults to active-only; an explicit value overrides
// the default, which is the one place inactive rows are reachable.
type SchemeFilter struct {
	ProjectID  string
	SchemeType string
	IsActive   *bool
}

func (f SchemeFilter) Validate() error {
	if f.SchemeType != "" && !model.SchemeType(f.SchemeType).Valid() {
		return apperror.Validation("invalid scheme type %q", f.SchemeType)
	}
	return nil
}

func (f SchemeFilter) scope(db *gorm.DB) *gorm.DB {
	tx := db.Model(&model.InvestmentScheme{})
	if f.ProjectID != "" {
		tx = tx.Where("project_id = ?", f.ProjectID)
	}
	if f.SchemeType != "" {
		tx = tx.Where("scheme_type = ?", f.SchemeType)
	}
	if f.IsActive != nil {
		tx = tx.Where("is_active = ?", *f.IsActive)
	} else {
		tx = tx.Where("is_active = ?", true)
	}
	return tx
}

// FindSchemes returns the page slice and total count. Project-scoped
// listings use a deterministic scheme_type/area ordering so plans group
// naturally; the general listing stays creation-time descending.
func FindSchemes(db *gorm.DB, f SchemeFilter, p Pagination) ([]model.InvestmentScheme, int64, error) {
	if err := f.Validate(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := f.scope(db).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if f.ProjectID != "" {
		order = "scheme_type, area_sqft"
	}

	schemes := []model.InvestmentScheme{}
	err := f.scope(db).
		Order(order).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&schemes).Error
	if err != nil {
		return nil, 0, err
	}
	return schemes, total, nil
}
