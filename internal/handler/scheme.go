package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ramya-constructions/estate-backend/dao/model"
	"github.com/ramya-constructions/estate-backend/internal/listing"
	"github.com/ramya-constructions/estate-backend/internal/patch"
	"github.com/ramya-constructions/estate-backend/internal/payload"
	"github.com/ramya-constructions/estate-backend/internal/resputil"
	"github.com/ramya-constructions/estate-backend/pkg/apperror"
	"github.com/ramya-constructions/estate-backend/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewSchemeMgr)
}

type SchemeMgr struct {
	name string
	db   *gorm.DB
}

func NewSchemeMgr(conf *RegisterConfig) Manager {
	return &SchemeMgr{name: "investment-schemes", db: conf.DB}
}

func (mgr *SchemeMgr) GetName() string { return mgr.name }

func (mgr *SchemeMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("", mgr.ListSchemes)
	g.GET("/project/:project_id", mgr.ListProjectSchemes)
	g.GET("/:id", mgr.GetScheme)
}

func (mgr *SchemeMgr) RegisterProtected(g *gin.RouterGroup) {
	g.POST("", mgr.CreateScheme)
	g.PUT("/:id", mgr.UpdateScheme)
}

// CreateScheme godoc
// @Summary Create an investment scheme
// @Description The owning project must exist and be active; the payment
// @Description fields must match the scheme type exactly
// @Tags InvestmentScheme
// @Accept json
// @Produce json
// @Security Bearer
// @Param data body payload.CreateSchemeReq true "scheme fields"
// @Success 200 {object} resputil.Response[model.InvestmentScheme]
// @Failure 400 {object} any "invariant violation"
// @Failure 404 {object} any "unknown or inactive project"
// @Router /investment-schemes [post]
func (mgr *SchemeMgr) CreateScheme(c *gin.Context) {
	var req payload.CreateSchemeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error())
		return
	}

	var scheme *model.InvestmentScheme
	err := mgr.db.WithContext(c).Transaction(func(tx *gorm.DB) error {
		project, err := findLiveProject(tx, req.ProjectID, "Project not found or inactive")
		if err != nil {
			return err
		}
		scheme, err = patch.NewScheme(&req, project)
		if err != nil {
			return err
		}
		if err := tx.Create(scheme).Error; err != nil {
			return apperror.Internal("create scheme", err)
		}
		return nil
	})
	if err != nil {
		resputil.Error(c, err)
		return
	}

	logutils.Log.WithFields(logutils.Fields{
		"id":      scheme.ID,
		"project": scheme.ProjectID,
		"type":    scheme.SchemeType,
	}).Info("scheme created")
	resputil.Success(c, "Investment scheme created successfully", scheme)
}

// UpdateScheme godoc
// @Summary Update an investment scheme
// @Description Sparse update; the scheme type is immutable and the
// @Description rental gate is re-checked against the live owning project
// @Tags InvestmentScheme
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "scheme id"
// @Param data body payload.UpdateSchemeReq true "fields to change"
// @Success 200 {object} resputil.Response[model.InvestmentScheme]
// @Failure 400 {object} any "invariant violation"
// @Failure 404 {object} any "unknown scheme or inactive project"
// @Router /investment-schemes/{id} [put]
func (mgr *SchemeMgr) UpdateScheme(c *gin.Context) {
	id := c.Param("id")
	var req payload.UpdateSchemeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error())
		return
	}

	var scheme model.InvestmentScheme
	err := mgr.db.WithContext(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&scheme, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Investment scheme not found")
			}
			return apperror.Internal("load scheme", err)
		}

		project, err := findLiveProject(tx, scheme.ProjectID, "Associated project not found or inactive")
		if err != nil {
			return err
		}

		p, err := patch.Scheme(&scheme, project, &req)
		if err != nil {
			return err
		}
		if p.Empty() {
			return nil
		}
		if err := tx.Model(&scheme).Updates(p.Columns()).Error; err != nil {
			return apperror.Internal("update scheme", err)
		}
		return tx.First(&scheme, "id = ?", id).Error
	})
	if err != nil {
		resputil.Error(c, err)
		return
	}

	resputil.Success(c, "Investment scheme updated successfully", scheme)
}

// ListSchemes godoc
// @Summary List investment schemes
// @Description Active-only unless an explicit is_active filter is given
// @Tags InvestmentScheme
// @Produce json
// @Param page query int false "1-based page" default(1)
// @Param limit query int false "page size, capped at 100" default(20)
// @Param project_id query string false "owning project filter"
// @Param scheme_type query string false "scheme type filter"
// @Param is_active query bool false "explicit active filter"
// @Success 200 {object} payload.ListSchemeResp
// @Router /investment-schemes [get]
func (mgr *SchemeMgr) ListSchemes(c *gin.Context) {
	var q payload.SchemeListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error())
		return
	}
	page, err := listing.NewPagination(q.Page, q.Limit)
	if err != nil {
		resputil.Error(c, err)
		return
	}

	filter := listing.SchemeFilter{
		ProjectID:  q.ProjectID,
		SchemeType: q.SchemeType,
		IsActive:   q.IsActive,
	}
	schemes, total, err := listing.FindSchemes(mgr.db.WithContext(c), filter, page)
	if err != nil {
		resputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, payload.ListSchemeResp{
		Message:      "Investment schemes retrieved successfully",
		ListMeta:     page.Meta(total),
		TotalSchemes: total,
		Schemes:      schemes,
	})
}

// ListProjectSchemes godoc
// @Summary Investment schemes of one project
// @Description Grouped by scheme type then area; the owning project must
// @Description be active
// @Tags InvestmentScheme
// @Produce json
// @Param project_id path string true "project id"
// @Param page query int false "1-based page" default(1)
// @Param limit query int false "page size, capped at 100" default(20)
// @Param scheme_type query string false "scheme type filter"
// @Param is_active query bool false "explicit active filter"
// @Success 200 {object} payload.ListSchemeResp
// @Failure 404 {object} any "unknown or inactive project"
// @Router /investment-schemes/project/{project_id} [get]
func (mgr *SchemeMgr) ListProjectSchemes(c *gin.Context) {
	projectID := c.Param("project_id")
	var q payload.SchemeListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error())
		return
	}
	page, err := listing.NewPagination(q.Page, q.Limit)
	if err != nil {
		resputil.Error(c, err)
		return
	}

	if _, err := findLiveProject(mgr.db.WithContext(c), projectID, "Project not found or inactive"); err != nil {
		resputil.Error(c, err)
		return
	}

	filter := listing.SchemeFilter{
		ProjectID:  projectID,
		SchemeType: q.SchemeType,
		IsActive:   q.IsActive,
	}
	schemes, total, err := listing.FindSchemes(mgr.db.WithContext(c), filter, page)
	if err != nil {
		resputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, payload.ListSchemeResp{
		Message:      "Project investment schemes retrieved successfully",
		ListMeta:     page.Meta(total),
		TotalSchemes: total,
		Schemes:      schemes,
	})
}

// GetScheme godoc
// @Summary Fetch one active investment scheme
// @Tags InvestmentScheme
// @Produce json
// @Param id path string true "scheme id"
// @Success 200 {object} resputil.Response[model.InvestmentScheme]
// @Failure 404 {object} any "unknown or inactive scheme"
// @Router /investment-schemes/{id} [get]
func (mgr *SchemeMgr) GetScheme(c *gin.Context) {
	var scheme model.InvestmentScheme
	err := mgr.db.WithContext(c).
		Where("is_active = ?", true).
		First(&scheme, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.Error(c, apperror.NotFound("Investment scheme not found"))
			return
		}
		resputil.Error(c, apperror.Internal("load scheme", err))
		return
	}
	resputil.Success(c, "Investment scheme retrieved successfully", scheme)
}

// findLiveProject loads an active project row inside the caller's
// transaction; every scheme mutation re-reads the project so the rental
// gate sees current state.
func findLiveProject(tx *gorm.DB, id, missing string) (*model.Project, error) {
	var project model.Project
	err := tx.Where("is_active = ?", true).First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(missing)
		}
		return nil, apperror.Internal("load project", err)
	}
	return &project, nil
}
