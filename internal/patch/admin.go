package patch

import (
	"github.com/ramya-constructions/estate-backend/internal/payload"
	"github.com/ramya-constructions/estate-backend/internal/util"
	"github.com/ramya-constructions/estate-backend/pkg/apperror"
)

// Admin builds the column set for a sparse admin update. Email uniqueness
// is a storage concern checked by the caller before applying the patch.
func Admin(req *payload.UpdateAdminReq) (Patch, error) {
	p := New()

	if req.Name != nil {
		if *req.Name == "" {
			return p, apperror.Validation("name cannot be empty")
		}
		p.Set("name", *req.Name)
	}
	if req.Email != nil {
		p.Set("email", *req.Email)
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return p, apperror.Validation("password must be at least 6 characters long")
		}
		hash, err := util.HashPassword(*req.Password)
		if err != nil {
			return p, apperror.Internal("hash password", err)
		}
		p.Set("password", hash)
	}

	return p, nil
}
