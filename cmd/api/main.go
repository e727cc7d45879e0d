package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skipit-studio/skipit-api/internal/cache"
	"github.com/skipit-studio/skipit-api/internal/config"
	dbpkg "github.com/skipit-studio/skipit-api/internal/db"
	"github.com/skipit-studio/skipit-api/internal/logger"
	"github.com/skipit-studio/skipit-api/internal/middleware"
	"github.com/skipit-studio/skipit-api/internal/routes"
)

func main() {

	cfg := config.Load()

	logger.Init(cfg.IsProduction())
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)
	statusCache := cache.NewRedisStatusCache(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, statusCache, cfg)

	logger.L().Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.L().Fatal("failed to start server", zap.Error(err))
	}
}
