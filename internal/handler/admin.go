package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ramya-constructions/estate-backend/dao/model"
	"github.com/ramya-constructions/estate-backend/internal/listing"
	"github.com/ramya-constructions/estate-backend/internal/middleware"
	"github.com/ramya-constructions/estate-backend/internal/patch"
	"github.com/ramya-constructions/estate-backend/internal/payload"
	"github.com/ramya-constructions/estate-backend/internal/resputil"
	"github.com/ramya-constructions/estate-backend/internal/util"
	"github.com/ramya-constructions/estate-backend/pkg/apperror"
	"github.com/ramya-constructions/estate-backend/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewAdminMgr)
}

type AdminMgr struct {
	name     string
	db       *gorm.DB
	tokenMgr *util.TokenManager
}

func NewAdminMgr(conf *RegisterConfig) Manager {
	return &AdminMgr{
		name:     "admin",
		db:       conf.DB,
		tokenMgr: conf.TokenMgr,
	}
}

func (mgr *AdminMgr) GetName() string { return mgr.name }

func (mgr *AdminMgr) RegisterPublic(g *gin.RouterGroup) {
	g.POST("/login", mgr.Login)
	// Admin creation is public only while no admin exists; the handler
	// enforces a token once the table is populated.
	g.POST("", mgr.CreateAdmin)
}

func (mgr *AdminMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.ListAdmins)
	g.GET("/profile/me", mgr.GetMyProfile)
	g.GET("/:id", mgr.GetAdmin)
	g.PUT("/:id", mgr.UpdateAdmin)
	g.DELETE("/:id", mgr.DeleteAdmin)
}

// Login godoc
// @Summary Admin login
// @Description Verify credentials and issue a 7-day bearer token
// @Tags Admin
// @Accept json
// @Produce json
// @Param data body payload.LoginReq true "credentials"
// @Success 200 {object} resputil.Response[payload.LoginData] "token and admin identity"
// @Failure 401 {object} any "invalid credentials"
// @Router /admin/login [post]
func (mgr *AdminMgr) Login(c *gin.Context) {
	var req payload.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error())
		return
	}

	var admin model.Admin
	err := mgr.db.WithContext(c).Where("email = ?", req.Email).First(&admin).Error
	if err != nil || !util.CheckPassword(req.Password, admin.Password) {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.Error(c, apperror.Internal("login lookup", err))
			return
		}
		resputil.HTTPError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := mgr.tokenMgr.CreateToken(admin.ID)
	if err != nil {
		resputil.Error(c, apperror.Internal("issue token", err))
		return
	}

	logutils.Log.WithFields(logutils.Fields{"email": admin.Email}).Info("admin login")
	resputil.Success(c, "Login successful", payload.LoginData{
		Token: token,
		Admin: payload.AdminInfo{ID: admin.ID, Name: admin.Name, Email: admin.Email},
	})
}

// CreateAdmin godoc
// @Summary Create an admin
// @Description Public for the very first admin; afterwards requires a valid bearer token
// @Tags Admin
// @Accept json
// @Produce json
// @Param data body payload.CreateAdminReq true "admin fields"
// @Success 200 {object} resputil.Response[model.Admin]
// @Failure 400 {object} any "duplicate email or weak password"
// @Failure 401 {object} any "admins exist and no valid token supplied"
// @Router /admin [post]
func (mgr *AdminMgr) CreateAdmin(c *gin.Context) {
	var count int64
	if err := mgr.db.WithContext(c).Model(&model.Admin{}).Count(&count).Error; err != nil {
		resputil.Error(c, apperror.Internal("count admins", err))
		return
	}
	if count > 0 {
		token, ok := middleware.BearerToken(c)
		if !ok {
			resputil.HTTPError(c, http.StatusUnauthorized, "Authentication required - admins already exist")
			return
		}
		if _, err := mgr.tokenMgr.CheckToken(token); err != nil {
			resputil.Error(c, err)
			return
		}
	}

	var req payload.CreateAdminReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error())
		return
	}

	var existing int64
	if err := mgr.db.WithContext(c).Model(&model.Admin{}).Where("email = ?", req.Email).Count(&existing).Error; err != nil {
		resputil.Error(c, apperror.Internal("check email", err))
		return
	}
	if existing > 0 {
		resputil.Error(c, apperror.Conflict("Email already exists"))
		return
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		resputil.Error(c, apperror.Internal("hash password", err))
		return
	}
	admin := model.Admin{Name: req.Name, Email: req.Email, Password: hash}
	if err := mgr.db.WithContext(c).Create(&admin).Error; err != nil {
		resputil.Error(c, apperror.Internal("create admin", err))
		return
	}

	logutils.Log.WithFields(logutils.Fields{"email": admin.Email}).Info("admin created")
	resputil.Success(c, "Admin created successfully", admin)
}

// ListAdmins godoc
// @Summary List admins
// @Tags Admin
// @Produce json
// @Security Bearer
// @Success 200 {object} resputil.Response[payload.AdminListData]
// @Router /admin [get]
func (mgr *AdminMgr) ListAdmins(c *gin.Context) {
	var q payload.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error())
		return
	}
	if q.Limit == 0 {
		q.Limit = 9
	}
	page, err := listing.NewPagination(q.Page, q.Limit)
	if err != nil {
		resputil.Error(c, err)
		return
	}

	var total int64
	if err := mgr.db.WithContext(c).Model(&model.Admin{}).Count(&total).Error; err != nil {
		resputil.Error(c, apperror.Internal("count admins", err))
		return
	}

	admins := []model.Admin{}
	err = mgr.db.WithContext(c).
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&admins).Error
	if err != nil {
		resputil.Error(c, apperror.Internal("list admins", err))
		return
	}

	meta := page.Meta(total)
	resputil.Success(c, "Admins retrieved successfully", payload.AdminListData{
		Admins: admins,
		Total:  total,
		Page:   meta.Page,
		Pages:  meta.TotalPages,
	})
}

// GetMyProfile godoc
// @Summary Current admin's profile
// @Tags Admin
// @Produce json
// @Security Bearer
// @Success 200 {object} resputil.Response[model.Admin]
// @Failure 404 {object} any "token's admin no longer exists"
// @Router /admin/profile/me [get]
func (mgr *AdminMgr) GetMyProfile(c *gin.Context) {
	admin, err := mgr.findAdmin(c, util.GetAdminID(c), "Admin profile not found")
	if err != nil {
		resputil.Error(c, err)
		return
	}
	resputil.Success(c, "Profile retrieved successfully", admin)
}

func (mgr *AdminMgr) GetAdmin(c *gin.Context) {
	admin, err := mgr.findAdmin(c, c.Param("id"), "Admin not found")
	if err != nil {
		resputil.Error(c, err)
		return
	}
	resputil.Success(c, "Admin retrieved successfully", admin)
}

// UpdateAdmin godoc
// @Summary Update an admin
// @Description Sparse update of name, email and/or password
// @Tags Admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "admin id"
// @Param data body payload.UpdateAdminReq true "fields to change"
// @Success 200 {object} resputil.Response[model.Admin]
// @Failure 400 {object} any "duplicate email or weak password"
// @Router /admin/{id} [put]
func (mgr *AdminMgr) UpdateAdmin(c *gin.Context) {
	id := c.Param("id")
	var req payload.UpdateAdminReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error())
		return
	}

	var admin model.Admin
	err := mgr.db.WithContext(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&admin, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Admin not found")
			}
			return apperror.Internal("load admin", err)
		}

		if req.Email != nil {
			var dup int64
			if err := tx.Model(&model.Admin{}).
				Where("email = ? AND id != ?", *req.Email, id).
				Count(&dup).Error; err != nil {
				return apperror.Internal("check email", err)
			}
			if dup > 0 {
				return apperror.Conflict("Email already exists")
			}
		}

		p, err := patch.Admin(&req)
		if err != nil {
			return err
		}
		if p.Empty() {
			return nil
		}
		if err := tx.Model(&admin).Updates(p.Columns()).Error; err != nil {
			return apperror.Internal("update admin", err)
		}
		return tx.First(&admin, "id = ?", id).Error
	})
	if err != nil {
		resputil.Error(c, err)
		return
	}

	resputil.Success(c, "Admin updated successfully", admin)
}

// DeleteAdmin godoc
// @Summary Delete an admin
// @Description An admin may not delete their own account
// @Tags Admin
// @Produce json
// @Security Bearer
// @Param id path string true "admin id"
// @Success 200 {object} resputil.Response[any]
// @Failure 400 {object} any "self deletion"
// @Router /admin/{id} [delete]
func (mgr *AdminMgr) DeleteAdmin(c *gin.Context) {
	id := c.Param("id")
	if id == util.GetAdminID(c) {
		resputil.HTTPError(c, http.StatusBadRequest, "Cannot delete your own account")
		return
	}

	res := mgr.db.WithContext(c).Delete(&model.Admin{}, "id = ?", id)
	if res.Error != nil {
		resputil.Error(c, apperror.Internal("delete admin", res.Error))
		return
	}
	if res.RowsAffected == 0 {
		resputil.Error(c, apperror.NotFound("Admin not found"))
		return
	}

	logutils.Log.WithFields(logutils.Fields{"id": id}).Info("admin deleted")
	resputil.Message(c, "Admin deleted successfully")
}

func (mgr *AdminMgr) findAdmin(c *gin.Context, id, missing string) (*model.Admin, error) {
	var admin model.Admin
	if err := mgr.db.WithContext(c).First(&admin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(missing)
		}
		return nil, apperror.Internal("load admin", err)
	}
	return &admin, nil
}
