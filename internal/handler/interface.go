package handler

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ramya-constructions/estate-backend/internal/util"
)

type Manager interface {
	GetName() string
	RegisterPublic(group *gin.RouterGroup)
	RegisterProtected(group *gin.RouterGroup)
}

// RegisterConfig carries the shared resources every manager is built
// from: the pooled database handle and the token manager. Both are
// constructed once at startup and read-only afterwards.
type RegisterConfig struct {
	DB       *gorm.DB
	TokenMgr *util.TokenManager
}

type NewManagerFunc func(conf *RegisterConfig) Manager

// Registers collects the manager constructors contributed by the
// handler files' init functions.
var Registers []NewManagerFunc
