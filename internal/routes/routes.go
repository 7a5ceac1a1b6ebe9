package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sitekit-labs/sitekit-api/internal/audit"
	"github.com/sitekit-labs/sitekit-api/internal/cache"
	"github.com/sitekit-labs/sitekit-api/internal/config"
	"github.com/sitekit-labs/sitekit-api/internal/handlers"
	infraRepo "github.com/sitekit-labs/sitekit-api/internal/infra/repository"
	"github.com/sitekit-labs/sitekit-api/internal/middleware"
	"github.com/sitekit-labs/sitekit-api/internal/models"
	"github.com/sitekit-labs/sitekit-api/internal/notify"
	"github.com/sitekit-labs/sitekit-api/internal/session"
	"github.com/sitekit-labs/sitekit-api/internal/timezone"
	ucReservation "github.com/sitekit-labs/sitekit-api/internal/usecase/reservation"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.SiteTimezone)

	settingsCache := cache.NewSettingsCache(rdb, cfg.SettingsCacheTTL, logger)
	reservationRepo := infraRepo.NewReservationGormRepository(db, settingsCache)

	sessions := session.NewStore(rdb, cfg.SessionTTL)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	var sender notify.Sender = notify.NewStubSender(logger)
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}); sg != nil {
		sender = sg
	}
	notifier := notify.NewService(sender, cfg.BusinessEmail, logger)

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	getSettingsUC := ucReservation.NewGetSettings(reservationRepo)
	updateSettingsUC := ucReservation.NewUpdateSettings(reservationRepo, auditDispatcher)

	availableSlotsUC := ucReservation.NewGetAvailableSlots(reservationRepo)

	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
		notifier,
		loc,
	)

	updateReservationUC := ucReservation.NewUpdateReservation(
		reservationRepo,
		auditDispatcher,
		notifier,
		loc,
	)

	deleteReservationUC := ucReservation.NewDeleteReservation(
		reservationRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, sessions)

	publicHandler := handlers.NewPublicHandler(
		getSettingsUC,
		availableSlotsUC,
		createReservationUC,
		loc,
		logger,
	)

	reservationHandler := handlers.NewReservationHandler(
		reservationRepo,
		updateReservationUC,
		deleteReservationUC,
		logger,
	)

	settingsHandler := handlers.NewSettingsHandler(updateSettingsUC, logger)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/reservation-settings", publicHandler.GetSettings)
		api.GET("/reservations/available-slots/:date", publicHandler.AvailableSlots)
		api.POST("/reservations",
			middleware.OptionalAuth(cfg, sessions),
			publicHandler.CreateReservation,
		)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// STAFF / ADMIN
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, sessions))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			staff := secured.Group("/")
			staff.Use(middleware.RequireRoles(
				models.RoleStaff,
				models.RoleAdmin,
				models.RoleSuperuser,
			))
			{
				staff.GET("/reservations", reservationHandler.List)
				staff.PUT("/reservations/:id", reservationHandler.Update)

				staff.PUT("/reservation-settings", settingsHandler.Update)

				staff.GET("/audit-logs", auditLogsHandler.List)
			}

			admin := secured.Group("/")
			admin.Use(middleware.RequireRoles(
				models.RoleAdmin,
				models.RoleSuperuser,
			))
			{
				admin.DELETE("/reservations/:id", reservationHandler.Delete)
			}
		}
	}
}
