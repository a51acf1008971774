package payload

import "github.com/ramya-constructions/estate-backend/dao/model"

type (
	LoginReq struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	AdminInfo struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginData struct {
		Token string    `json:"token"`
		Admin AdminInfo `json:"admin"`
	}

	CreateAdminReq struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	// UpdateAdminReq is a sparse patch: nil means "leave unchanged".
	UpdateAdminReq struct {
		Name     *string `json:"name"`
		Email    *string `json:"email" binding:"omitempty,email"`
		Password *string `json:"password" binding:"omitempty,min=6"`
	}

	AdminListData struct {
		Admins []model.Admin `json:"admins"`
		Total  int64         `json:"total"`
		Page   int           `json:"page"`
		Pages  int           `json:"pages"`
	}
)
