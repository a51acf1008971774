package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
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
	Registers = append(Registers, NewProjectMgr)
}

type ProjectMgr struct {
	name string
	db   *gorm.DB
}

func NewProjectMgr(conf *RegisterConfig) Manager {
	return &ProjectMgr{name: "projects", db: conf.DB}
}

func (mgr *ProjectMgr) GetName() string { return mgr.name }

func (mgr *ProjectMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("", mgr.ListProjects)
	g.GET("/options", mgr.ListOptions)
	g.GET("/status/available", mgr.ListAvailable)
	g.GET("/property-type/:type", mgr.ListByPropertyType)
	g.GET("/search/:term", mgr.SearchProjects)
	g.GET("/:id", mgr.GetProject)
}

func (mgr *ProjectMgr) RegisterProtected(g *gin.RouterGroup) {
	g.POST("", mgr.CreateProject)
	g.PUT("/:id", mgr.UpdateProject)
}

// CreateProject godoc
// @Summary Create a project
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param data body payload.CreateProjectReq true "project fields"
// @Success 200 {object} resputil.Response[model.Project]
// @Failure 400 {object} any "invariant violation"
// @Router /projects [post]
func (mgr *ProjectMgr) CreateProject(c *gin.Context) {
	var req payload.CreateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error())
		return
	}

	project, err := patch.NewProject(&req)
	if err != nil {
		resputil.Error(c, err)
		return
	}
	if err := mgr.db.WithContext(c).Create(project).Error; err != nil {
		resputil.Error(c, apperror.Internal("create project", err))
		return
	}

	logutils.Log.WithFields(logutils.Fields{"id": project.ID, "title": project.Title}).Info("project created")
	resputil.Success(c, "Project created successfully", project)
}

// UpdateProject godoc
// @Summary Update a project
// @Description Sparse update; only supplied fields change, and the
// @Description cross-field invariants are checked against the effective
// @Description values (request override else stored row).
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "project id"
// @Param data body payload.UpdateProjectReq true "fields to change"
// @Success 200 {object} resputil.Response[model.Project]
// @Failure 400 {object} any "invariant violation"
// @Failure 404 {object} any "unknown project"
// @Router /projects/{id} [put]
func (mgr *ProjectMgr) UpdateProject(c *gin.Context) {
	id := c.Param("id")
	var req payload.UpdateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error())
		return
	}

	var project model.Project
	err := mgr.db.WithContext(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Project not found")
			}
			return apperror.Internal("load project", err)
		}

		p, err := patch.Project(&project, &req)
		if err != nil {
			return err
		}
		if p.Empty() {
			return nil
		}
		if err := tx.Model(&project).Updates(p.Columns()).Error; err != nil {
			return apperror.Internal("update project", err)
		}
		return tx.First(&project, "id = ?", id).Error
	})
	if err != nil {
		resputil.Error(c, err)
		return
	}

	resputil.Success(c, "Project updated successfully", project)
}

// ListProjects godoc
// @Summary List active projects
// @Description Filter by property type, status and price range with
// @Description page/limit pagination
// @Tags Project
// @Produce json
// @Param page query int false "1-based page" default(1)
// @Param limit query int false "page size, capped at 100" default(20)
// @Param property_type query string false "property type filter"
// @Param status_filter query string false "status filter"
// @Param min_price query number false "inclusive lower price bound"
// @Param max_price query number false "inclusive upper price bound"
// @Success 200 {object} payload.ListProjectResp
// @Failure 400 {object} any "bad filter"
// @Router /projects [get]
func (mgr *ProjectMgr) ListProjects(c *gin.Context) {
	var q payload.ProjectListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error())
		return
	}
	page, err := listing.NewPagination(q.Page, q.Limit)
	if err != nil {
		resputil.Error(c, err)
		return
	}

	filter := listing.ProjectFilter{
		PropertyType: q.PropertyType,
		Status:       q.StatusFilter,
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
	}
	projects, total, err := listing.FindProjects(mgr.db.WithContext(c), filter, page)
	if err != nil {
		resputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, payload.ListProjectResp{
		Message:       "Projects retrieved successfully",
		ListMeta:      page.Meta(total),
		TotalProjects: total,
		Projects:      projects,
	})
}

// ListOptions godoc
// @Summary Lightweight project options
// @Description id/title/property_type triples of every active project,
// @Description sorted by title, for populating selection widgets
// @Tags Project
// @Produce json
// @Success 200 {object} resputil.Response[[]payload.ProjectOption]
// @Router /projects/options [get]
func (mgr *ProjectMgr) ListOptions(c *gin.Context) {
	projects := []model.Project{}
	err := mgr.db.WithContext(c).
		Where("is_active = ?", true).
		Order("title ASC").
		Find(&projects).Error
	if err != nil {
		resputil.Error(c, apperror.Internal("list project options", err))
		return
	}

	options := lo.Map(projects, func(p model.Project, _ int) payload.ProjectOption {
		return payload.ProjectOption{ID: p.ID, Title: p.Title, PropertyType: p.PropertyType}
	})
	resputil.Success(c, "Project options retrieved successfully", options)
}

// GetProject godoc
// @Summary Fetch one active project
// @Tags Project
// @Produce json
// @Param id path string true "project id"
// @Success 200 {object} resputil.Response[model.Project]
// @Failure 404 {object} any "unknown or inactive project"
// @Router /projects/{id} [get]
func (mgr *ProjectMgr) GetProject(c *gin.Context) {
	var project model.Project
	err := mgr.db.WithContext(c).
		Where("is_active = ?", true).
		First(&project, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.Error(c, apperror.NotFound("Project not found or inactive"))
			return
		}
		resputil.Error(c, apperror.Internal("load project", err))
		return
	}
	resputil.Success(c, "Project retrieved successfully", project)
}

// ListByPropertyType godoc
// @Summary Active projects of one property type
// @Tags Project
// @Produce json
// @Param type path string true "property type"
// @Param limit query int false "window size" default(20)
// @Param offset query int false "window offset" default(0)
// @Success 200 {object} resputil.Response[[]model.Project]
// @Failure 400 {object} any "unknown property type"
// @Router /projects/property-type/{type} [get]
func (mgr *ProjectMgr) ListByPropertyType(c *gin.Context) {
	propertyType := c.Param("type")
	if !model.PropertyType(propertyType).Valid() {
		resputil.HTTPError(c, http.StatusBadRequest, fmt.Sprintf(
			"Invalid property type. Must be one of: %s", joinPropertyTypes()))
		return
	}

	projects, err := mgr.sliceProjects(c, listing.ProjectFilter{PropertyType: propertyType})
	if err != nil {
		resputil.Error(c, err)
		return
	}
	resputil.Success(c, fmt.Sprintf("%s projects retrieved successfully", propertyType), projects)
}

// ListAvailable godoc
// @Summary Active projects currently open for sale
// @Tags Project
// @Produce json
// @Param limit query int false "window size" default(20)
// @Param offset query int false "window offset" default(0)
// @Success 200 {object} resputil.Response[[]model.Project]
// @Router /projects/status/available [get]
func (mgr *ProjectMgr) ListAvailable(c *gin.Context) {
	projects, err := mgr.sliceProjects(c, listing.ProjectFilter{Status: string(model.StatusAvailable)})
	if err != nil {
		resputil.Error(c, err)
		return
	}
	resputil.Success(c, "Available projects retrieved successfully", projects)
}

// SearchProjects godoc
// @Summary Free-text search over active projects
// @Description Case-insensitive substring match over title, location
// @Description and both description columns; the term must be at least
// @Description 2 characters after trimming
// @Tags Project
// @Produce json
// @Param term path string true "search term"
// @Param limit query int false "window size" default(20)
// @Param offset query int false "window offset" default(0)
// @Success 200 {object} resputil.Response[[]model.Project]
// @Failure 400 {object} any "term too short"
// @Router /projects/search/{term} [get]
func (mgr *ProjectMgr) SearchProjects(c *gin.Context) {
	term := c.Param("term")
	projects, err := mgr.sliceProjects(c, listing.ProjectFilter{Search: term})
	if err != nil {
		resputil.Error(c, err)
		return
	}
	resputil.Success(c, fmt.Sprintf("Search results for '%s'", strings.TrimSpace(term)), projects)
}

func (mgr *ProjectMgr) sliceProjects(c *gin.Context, filter listing.ProjectFilter) ([]model.Project, error) {
	var q payload.OffsetQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	window, err := listing.NewWindow(q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	return listing.SliceProjects(mgr.db.WithContext(c), filter, window)
}

func joinPropertyTypes() string {
	return strings.Join(lo.Map(model.PropertyTypes, func(p model.PropertyType, _ int) string {
		return string(p)
	}), ", ")
}
