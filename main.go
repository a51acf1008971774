package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ramya-constructions/estate-backend/dao"
	"github.com/ramya-constructions/estate-backend/dao/query"
	"github.com/ramya-constructions/estate-backend/internal"
	"github.com/ramya-constructions/estate-backend/internal/handler"
	"github.com/ramya-constructions/estate-backend/internal/util"
	"github.com/ramya-constructions/estate-backend/pkg/config"
	"github.com/ramya-constructions/estate-backend/pkg/logutils"
)

const shutdownGrace = 10 * time.Second

// @title Ramya Constructions API
// @version 1.0.0
// @description Backend for real estate project listings, investment schemes and admin management.
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Call /admin/login, then supply 'Bearer ${TOKEN}' to access protected endpoints.
func main() {
	// set global timezone
	time.Local = time.UTC

	// variable changes in local development
	if gin.Mode() == gin.DebugMode {
		if err := godotenv.Load(".debug.env"); err != nil {
			logutils.Log.Info("no .debug.env file, continuing with process env")
		}
	}

	cfg := config.GetConfig()

	db, err := query.Open(cfg)
	if err != nil {
		logutils.Log.WithError(err).Fatal("database connection failed")
	}
	defer func() {
		if err := query.Close(db); err != nil {
			logutils.Log.WithError(err).Error("closing database")
		}
	}()

	if err := dao.Migrate(db); err != nil {
		logutils.Log.WithError(err).Fatal("schema migration failed")
	}

	backend := internal.Register(&handler.RegisterConfig{
		DB:       db,
		TokenMgr: util.NewTokenManager(cfg),
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           backend.R,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logutils.Log.Infof("listening on %s", cfg.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logutils.Log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	stop()
	logutils.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logutils.Log.WithError(err).Error("forced shutdown")
	}
}
