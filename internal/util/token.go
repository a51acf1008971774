package util

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/ramya-constructions/estate-backend/pkg/apperror"
	"github.com/ramya-constructions/estate-backend/pkg/config"
)

type JWTClaims struct {
	AdminID string `json:"admin_id"`
	jwt.RegisteredClaims
}

// TokenManager issues and checks HS256 bearer tokens for admins. A token
// only proves that an admin id was authenticated when it was signed;
// whether that admin still exists is deliberately not re-checked here.
type TokenManager struct {
	secretKey  string
	expiryDays int
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		secretKey:  cfg.Auth.TokenSecret,
		expiryDays: cfg.Auth.TokenExpiryDays,
	}
}

func (tm *TokenManager) CreateToken(adminID string) (string, error) {
	claims := &JWTClaims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour * time.Duration(tm.expiryDays))),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(tm.secretKey))
}

// CheckToken returns the embedded admin id, or an unauthenticated error
// for malformed, mis-signed or expired tokens.
func (tm *TokenManager) CheckToken(requestToken string) (string, error) {
	claims := JWTClaims{}
	_, err := jwt.ParseWithClaims(requestToken, &claims, func(_ *jwt.Token) (any, error) {
		return []byte(tm.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", apperror.Unauthenticated("Invalid or expired token")
	}
	if claims.AdminID == "" {
		return "", apperror.Unauthenticated("Invalid token: admin access required")
	}
	return claims.AdminID, nil
}
