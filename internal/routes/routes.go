package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skipit-studio/skipit-api/internal/audit"
	"github.com/skipit-studio/skipit-api/internal/cache"
	"github.com/skipit-studio/skipit-api/internal/config"
	"github.com/skipit-studio/skipit-api/internal/handlers"
	infraRepo "github.com/skipit-studio/skipit-api/internal/infra/repository"
	"github.com/skipit-studio/skipit-api/internal/middleware"
	ucSchedule "github.com/skipit-studio/skipit-api/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	statusCache cache.StatusCache,
	cfg *config.Config,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — SCHEDULE
	// ======================================================
	getScheduleUC := ucSchedule.NewGetSchedule(scheduleRepo)

	getStatusUC := ucSchedule.NewGetStatus(
		scheduleRepo,
		statusCache,
		cfg.Timezone,
	)

	saveScheduleUC := ucSchedule.NewSaveSchedule(
		scheduleRepo,
		statusCache,
		auditDispatcher,
	)

	toggleOverrideUC := ucSchedule.NewToggleOverride(
		scheduleRepo,
		statusCache,
		auditDispatcher,
	)

	updateDayUC := ucSchedule.NewUpdateDay(
		scheduleRepo,
		statusCache,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	scheduleHandler := handlers.NewScheduleHandler(
		getScheduleUC,
		saveScheduleUC,
		toggleOverrideUC,
		updateDayUC,
	)

	publicHandler := handlers.NewPublicHandler(getStatusUC, getScheduleUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC — landing page
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:barberId/status", publicHandler.Status)
			publicAPI.GET("/:barberId/schedule", publicHandler.Schedule)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// ADMIN — schedule editor
			// ------------------------------
			admin := secured.Group("/me")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/schedule", scheduleHandler.Get)
				admin.PUT("/schedule", scheduleHandler.Save)
				admin.PATCH("/schedule/override", scheduleHandler.SetOverride)
				admin.PATCH("/schedule/days/:day", scheduleHandler.UpdateDay)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
