package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ramya-constructions/estate-backend/dao"
	"github.com/ramya-constructions/estate-backend/dao/model"
	"github.com/ramya-constructions/estate-backend/internal/handler"
	"github.com/ramya-constructions/estate-backend/internal/util"
	"github.com/ramya-constructions/estate-backend/pkg/config"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type testBackend struct {
	router   *gin.Engine
	db       *gorm.DB
	tokenMgr *util.TokenManager
}

func newTestBackend(t *testing.T) *testBackend {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dao.Migrate(db))

	cfg := &config.Config{}
	cfg.Auth.TokenSecret = "test-secret"
	cfg.Auth.TokenExpiryDays = 7
	tokenMgr := util.NewTokenManager(cfg)

	backend := Register(&handler.RegisterConfig{DB: db, TokenMgr: tokenMgr})
	return &testBackend{router: backend.R, db: db, tokenMgr: tokenMgr}
}

func (b *testBackend) perform(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// seedAdmin inserts an admin directly and returns a token for it.
func (b *testBackend) seedAdmin(t *testing.T, email string) (model.Admin, string) {
	t.Helper()
	hash, err := util.HashPassword("secret123")
	require.NoError(t, err)
	admin := model.Admin{Name: "Seed Admin", Email: email, Password: hash}
	require.NoError(t, b.db.Create(&admin).Error)
	token, err := b.tokenMgr.CreateToken(admin.ID)
	require.NoError(t, err)
	return admin, token
}

func (b *testBackend) seedProject(t *testing.T, mutate func(*model.Project)) model.Project {
	t.Helper()
	p := model.Project{
		Title:          "Skyline Towers",
		Location:       "Hyderabad",
		Status:         model.StatusAvailable,
		BasePrice:      4500000,
		PropertyType:   model.PropertyResidential,
		TotalUnits:     100,
		AvailableUnits: 100,
		IsActive:       true,
	}
	if mutate != nil {
		mutate(&p)
	}
	require.NoError(t, b.db.Create(&p).Error)
	return p
}

func TestWelcomeAndHealth(t *testing.T) {
	b := newTestBackend(t)

	w := b.perform(t, http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ramya Constructions")

	w = b.perform(t, http.MethodGet, "/healthz", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminBootstrapAndAuth(t *testing.T) {
	b := newTestBackend(t)

	// First admin needs no token.
	w := b.perform(t, http.MethodPost, "/admin", gin.H{
		"name": "Root", "email": "root@example.com", "password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Admin created successfully", body["message"])

	// Once an admin exists, anonymous creation is rejected.
	w = b.perform(t, http.MethodPost, "/admin", gin.H{
		"name": "Intruder", "email": "intruder@example.com", "password": "secret123",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Login yields a token that unlocks creation again.
	w = b.perform(t, http.MethodPost, "/admin/login", gin.H{
		"email": "root@example.com", "password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	token := data["token"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, "root@example.com", data["admin"].(map[string]any)["email"])

	w = b.perform(t, http.MethodPost, "/admin", gin.H{
		"name": "Second", "email": "second@example.com", "password": "secret123",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Duplicate email is a 400.
	w = b.perform(t, http.MethodPost, "/admin", gin.H{
		"name": "Clone", "email": "second@example.com", "password": "secret123",
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already exists", decode(t, w)["detail"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	b := newTestBackend(t)
	b.seedAdmin(t, "root@example.com")

	w := b.perform(t, http.MethodPost, "/admin/login", gin.H{
		"email": "root@example.com", "password": "wrong-pass",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decode(t, w)["detail"])

	w = b.perform(t, http.MethodPost, "/admin/login", gin.H{
		"email": "nobody@example.com", "password": "secret123",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminManagement(t *testing.T) {
	b := newTestBackend(t)
	self, token := b.seedAdmin(t, "root@example.com")
	other, _ := b.seedAdmin(t, "other@example.com")

	t.Run("list requires token", func(t *testing.T) {
		w := b.perform(t, http.MethodGet, "/admin", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		w = b.perform(t, http.MethodGet, "/admin", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]any)
		assert.EqualValues(t, 2, data["total"])
	})

	t.Run("profile of the token holder", func(t *testing.T) {
		w := b.perform(t, http.MethodGet, "/admin/profile/me", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]any)
		assert.Equal(t, self.ID, data["id"])
		assert.NotContains(t, data, "password")
	})

	t.Run("sparse update", func(t *testing.T) {
		w := b.perform(t, http.MethodPut, "/admin/"+other.ID, gin.H{"name": "Renamed"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := decode(t, w)["data"].(map[string]any)
		assert.Equal(t, "Renamed", data["name"])
		assert.Equal(t, other.Email, data["email"])

		w = b.perform(t, http.MethodPut, "/admin/"+other.ID, gin.H{"password": "short"}, token)
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = b.perform(t, http.MethodPut, "/admin/"+other.ID, gin.H{"email": "root@example.com"}, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email already exists", decode(t, w)["detail"])
	})

	t.Run("self delete refused, others deletable", func(t *testing.T) {
		w := b.perform(t, http.MethodDelete, "/admin/"+self.ID, nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Cannot delete your own account", decode(t, w)["detail"])

		w = b.perform(t, http.MethodDelete, "/admin/"+other.ID, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = b.perform(t, http.MethodDelete, "/admin/"+other.ID, nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProjectLifecycle(t *testing.T) {
	b := newTestBackend(t)
	_, token := b.seedAdmin(t, "root@example.com")

	createBody := gin.H{
		"title":           "Skyline Towers",
		"location":        "Hyderabad",
		"base_price":      4500000,
		"property_type":   "residential",
		"total_units":     100,
		"available_units": 80,
		"sold_units":      15,
		"reserved_units":  5,
		"amenities":       gin.H{"pool": true, "gym": true},
	}

	t.Run("create requires token", func(t *testing.T) {
		w := b.perform(t, http.MethodPost, "/projects", createBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	w := b.perform(t, http.MethodPost, "/projects", createBody, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode(t, w)["data"].(map[string]any)
	projectID := created["id"].(string)
	require.NotEmpty(t, projectID)
	assert.Equal(t, "available", created["status"])

	t.Run("json attributes survive the round trip", func(t *testing.T) {
		w := b.perform(t, http.MethodGet, "/projects/"+projectID, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]any)
		amenities := data["amenities"].(map[string]any)
		assert.Equal(t, true, amenities["pool"])
	})

	t.Run("invariant violation leaves the row untouched", func(t *testing.T) {
		w := b.perform(t, http.MethodPut, "/projects/"+projectID, gin.H{"sold_units": 99}, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t,
			"total units must equal sum of available, sold, and reserved units",
			decode(t, w)["detail"])

		var row model.Project
		require.NoError(t, b.db.First(&row, "id = ?", projectID).Error)
		assert.Equal(t, 15, row.SoldUnits)
	})

	t.Run("coherent sparse update", func(t *testing.T) {
		w := b.perform(t, http.MethodPut, "/projects/"+projectID, gin.H{
			"available_units": 79,
			"sold_units":      16,
			"status":          "sold_out",
		}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := decode(t, w)["data"].(map[string]any)
		assert.EqualValues(t, 79, data["available_units"])
		assert.Equal(t, "sold_out", data["status"])
		// Untouched field keeps its value.
		assert.Equal(t, "Skyline Towers", data["title"])
	})

	t.Run("empty body is a no-op that does not bump updated_at", func(t *testing.T) {
		var before model.Project
		require.NoError(t, b.db.First(&before, "id = ?", projectID).Error)

		w := b.perform(t, http.MethodPut, "/projects/"+projectID, gin.H{}, token)
		require.Equal(t, http.StatusOK, w.Code)

		var after model.Project
		require.NoError(t, b.db.First(&after, "id = ?", projectID).Error)
		assert.True(t, after.UpdatedAt.Equal(before.UpdatedAt))
	})

	t.Run("unknown project is a 404", func(t *testing.T) {
		w := b.perform(t, http.MethodPut, "/projects/no-such-id", gin.H{"title": "x"}, token)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Project not found", decode(t, w)["detail"])
	})

	t.Run("soft delete hides the project from public reads", func(t *testing.T) {
		w := b.perform(t, http.MethodPut, "/projects/"+projectID, gin.H{"is_active": false}, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = b.perform(t, http.MethodGet, "/projects/"+projectID, nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Project not found or inactive", decode(t, w)["detail"])
	})
}

func TestProjectPublicReads(t *testing.T) {
	b := newTestBackend(t)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	b.seedProject(t, func(p *model.Project) {
		p.Title = "Green Meadows"
		p.PropertyType = model.PropertyPlot
		p.BasePrice = 1500000
		p.CreatedAt = base
	})
	b.seedProject(t, func(p *model.Project) {
		p.Title = "Business Bay"
		p.PropertyType = model.PropertyCommercial
		p.Status = model.StatusComingSoon
		p.BasePrice = 9000000
		p.CreatedAt = base.Add(time.Hour)
	})
	b.seedProject(t, func(p *model.Project) {
		p.Title = "Gone"
		p.IsActive = false
		p.CreatedAt = base.Add(2 * time.Hour)
	})

	t.Run("paginated listing envelope", func(t *testing.T) {
		w := b.perform(t, http.MethodGet, "/projects?page=1&limit=1", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Projects retrieved successfully", body["message"])
		assert.EqualValues(t, 2, body["total_projects"])
		assert.EqualValues(t, 2, body["total_pages"])
		assert.Equal(t, false, body["is_previous"])
		assert.Equal(t, true, body["is_next"])
		assert.Len(t, body["projects"], 1)
	})

	t.Run("price range conflict is a 400", func(t *testing.T) {
		w := b.perform(t, http.MethodGet, "/projects?min_price=100&max_price=50", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("options are title-sorted and skinny", func(t *testing.T) {
		w := b.perform(t, http.MethodGet, "/projects/options", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].([]any)
		require.Len(t, data, 2)
		first := data[0].(map[string]any)
		assert.Equal(t, "Business Bay", first["title"])
		assert.NotContains(t, first, "base_price")
	})

	t.Run("by property type validates the path segment", func(t *testing.T) {
		w := b.perform(t, http.MethodGet, "/projects/property-type/plot", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode(t, w)["data"], 1)

		w = b.perform(t, http.MethodGet, "/projects/property-type/castle", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w)["detail"], "Invalid property type. Must be one of:")
	})

	t.Run("available shortcut filters on status", func(t *testing.T) {
		w := b.perform(t, http.MethodGet, "/projects/status/available", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].([]any)
		require.Len(t, data, 1)
		assert.Equal(t, "Green Meadows", data[0].(map[string]any)["title"])
	})

	t.Run("search enforces the minimum term length", func(t *testing.T) {
		w := b.perform(t, http.MethodGet, "/projects/search/a", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = b.perform(t, http.MethodGet, "/projects/search/meadows", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode(t, w)["data"], 1)

		// Inactive rows never surface, even on an exact match.
		w = b.perform(t, http.MethodGet, "/projects/search/gone", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decode(t, w)["data"])
	})
}

func TestSchemeLifecycle(t *testing.T) {
	b := newTestBackend(t)
	_, token := b.seedAdmin(t, "root@example.com")
	project := b.seedProject(t, func(p *model.Project) { p.HasRentalIncome = true })
	inactive := b.seedProject(t, func(p *model.Project) {
		p.Title = "Gone"
		p.IsActive = false
	})

	singlePayment := gin.H{
		"project_id":           project.ID,
		"scheme_type":          "single_payment",
		"scheme_name":          "Lump Sum 1200",
		"area_sqft":            1200,
		"balance_payment_days": 90,
		"rental_start_month":   24,
		"start_date":           "2026-01-01",
	}

	t.Run("create requires a live project", func(t *testing.T) {
		body := gin.H{}
		for k, v := range singlePayment {
			body[k] = v
		}
		body["project_id"] = inactive.ID
		w := b.perform(t, http.MethodPost, "/investment-schemes", body, token)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Project not found or inactive", decode(t, w)["detail"])
	})

	t.Run("payment fields must match the scheme type", func(t *testing.T) {
		body := gin.H{}
		for k, v := range singlePayment {
			body[k] = v
		}
		body["total_installments"] = 12
		w := b.perform(t, http.MethodPost, "/investment-schemes", body, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "single payment schemes cannot have total_installments", decode(t, w)["detail"])
	})

	w := b.perform(t, http.MethodPost, "/investment-schemes", singlePayment, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode(t, w)["data"].(map[string]any)
	schemeID := created["id"].(string)
	require.NotEmpty(t, schemeID)
	assert.Equal(t, "2026-01-01", created["start_date"].(string)[:10])

	t.Run("scheme type stays immutable through updates", func(t *testing.T) {
		w := b.perform(t, http.MethodPut, "/investment-schemes/"+schemeID, gin.H{
			"monthly_installment_amount": 45000,
		}, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "single payment schemes cannot have monthly_installment_amount", decode(t, w)["detail"])
	})

	t.Run("sparse update", func(t *testing.T) {
		w := b.perform(t, http.MethodPut, "/investment-schemes/"+schemeID, gin.H{
			"scheme_name": "Lump Sum 1250",
			"area_sqft":   1250,
		}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := decode(t, w)["data"].(map[string]any)
		assert.Equal(t, "Lump Sum 1250", data["scheme_name"])
		assert.EqualValues(t, 1250, data["area_sqft"])
		assert.EqualValues(t, 90, data["balance_payment_days"])
	})

	t.Run("rental gate follows the live project", func(t *testing.T) {
		// Turn off rental income on the project, then the scheme's rental
		// month can no longer be changed.
		w := b.perform(t, http.MethodPut, fmt.Sprintf("/projects/%s", project.ID), gin.H{
			"has_rental_income": false,
		}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = b.perform(t, http.MethodPut, "/investment-schemes/"+schemeID, gin.H{
			"rental_start_month": 12,
		}, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t,
			"rental start month can only be set for projects with rental income",
			decode(t, w)["detail"])
	})

	t.Run("updating a scheme of an inactive project is a 404", func(t *testing.T) {
		w := b.perform(t, http.MethodPut, fmt.Sprintf("/projects/%s", project.ID), gin.H{
			"is_active": false,
		}, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = b.perform(t, http.MethodPut, "/investment-schemes/"+schemeID, gin.H{
			"scheme_name": "Renamed",
		}, token)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Associated project not found or inactive", decode(t, w)["detail"])
	})

	t.Run("unknown scheme is a 404", func(t *testing.T) {
		w := b.perform(t, http.MethodPut, "/investment-schemes/no-such-id", gin.H{
			"scheme_name": "x",
		}, token)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Investment scheme not found", decode(t, w)["detail"])
	})
}

func TestSchemePublicReads(t *testing.T) {
	b := newTestBackend(t)
	project := b.seedProject(t, nil)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	active := model.InvestmentScheme{
		ProjectID:          project.ID,
		SchemeType:         model.SchemeSinglePayment,
		SchemeName:         "Lump Sum 1200",
		AreaSqft:           1200,
		BalancePaymentDays: lo.ToPtr(90),
		StartDate:          start,
		IsActive:           true,
	}
	require.NoError(t, b.db.Create(&active).Error)
	retired := model.InvestmentScheme{
		ProjectID:                project.ID,
		SchemeType:               model.SchemeInstallment,
		SchemeName:               "Retired Monthly",
		AreaSqft:                 900,
		TotalInstallments:        lo.ToPtr(36),
		MonthlyInstallmentAmount: lo.ToPtr(45000.0),
		StartDate:                start,
		IsActive:                 false,
	}
	require.NoError(t, b.db.Create(&retired).Error)

	t.Run("general listing defaults to active-only", func(t *testing.T) {
		w := b.perform(t, http.MethodGet, "/investment-schemes", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.EqualValues(t, 1, body["total_schemes"])

		w = b.perform(t, http.MethodGet, "/investment-schemes?is_active=false", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 1, decode(t, w)["total_schemes"])
	})

	t.Run("project-scoped listing checks the project", func(t *testing.T) {
		w := b.perform(t, http.MethodGet, "/investment-schemes/project/"+project.ID, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.EqualValues(t, 1, body["total_schemes"])

		w = b.perform(t, http.MethodGet, "/investment-schemes/project/no-such-id", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("single scheme read is active-only", func(t *testing.T) {
		w := b.perform(t, http.MethodGet, "/investment-schemes/"+active.ID, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = b.perform(t, http.MethodGet, "/investment-schemes/"+retired.ID, nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Investment scheme not found", decode(t, w)["detail"])
	})
}
