package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hotel-services/internal/audit"
	"github.com/BruksfildServices01/hotel-services/internal/auth"
	"github.com/BruksfildServices01/hotel-services/internal/config"
	"github.com/BruksfildServices01/hotel-services/internal/handlers"
	infraRepo "github.com/BruksfildServices01/hotel-services/internal/infra/repository"
	"github.com/BruksfildServices01/hotel-services/internal/media"
	"github.com/BruksfildServices01/hotel-services/internal/middleware"
	ucAccount "github.com/BruksfildServices01/hotel-services/internal/usecase/account"
	ucBooking "github.com/BruksfildServices01/hotel-services/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/hotel-services/internal/usecase/catalog"
	ucProvider "github.com/BruksfildServices01/hotel-services/internal/usecase/provider"
)

// Deps are the process-wide singletons the routes are built from.
// Media may be nil when no bucket is configured.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Sessions auth.SessionStore
	Media    media.Store
	Audit    *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(deps.DB)
	providerRepo := infraRepo.NewProviderGormRepository(deps.DB)
	catalogRepo := infraRepo.NewCatalogGormRepository(deps.DB)
	bookingRepo := infraRepo.NewBookingGormRepository(deps.DB)

	sessions := auth.NewManager(cfg, deps.Sessions)
	dispatcher := deps.Audit

	// ======================================================
	// USE CASES
	// ======================================================
	accountHandler := handlers.NewAccountHandler(
		ucAccount.NewRegister(accountRepo, dispatcher, cfg.CheckEmailDomain),
		ucAccount.NewLogin(accountRepo, sessions, dispatcher),
		ucAccount.NewSignOut(sessions, dispatcher),
		ucAccount.NewGetMe(accountRepo),
		ucAccount.NewDeleteAccount(accountRepo, sessions, dispatcher),
	)

	providerHandler := handlers.NewProviderHandler(
		ucProvider.NewCreateProvider(providerRepo, dispatcher),
		ucProvider.NewGetProvider(providerRepo),
		ucProvider.NewUpdateProvider(providerRepo, dispatcher),
	)

	serviceHandler := handlers.NewServiceHandler(
		ucCatalog.NewListServices(catalogRepo),
		ucCatalog.NewGetService(catalogRepo),
		ucCatalog.NewListProviderServices(catalogRepo),
		ucCatalog.NewCreateService(catalogRepo, dispatcher),
		ucCatalog.NewUpdateService(catalogRepo, dispatcher),
		ucCatalog.NewDeleteService(catalogRepo, dispatcher),
		ucCatalog.NewUploadServiceImage(catalogRepo, deps.Media, cfg.ImageMaxWidth, dispatcher),
	)

	bookingHandler := handlers.NewBookingHandler(
		ucBooking.NewCreateBooking(bookingRepo, dispatcher, cfg.Timezone, cfg.DefaultBookingTime),
		ucBooking.NewGetBooking(bookingRepo),
		ucBooking.NewListGuestBookings(bookingRepo),
		ucBooking.NewListProviderBookings(bookingRepo),
		ucBooking.NewConfirmBooking(bookingRepo, dispatcher),
		ucBooking.NewCancelBooking(bookingRepo, dispatcher),
		ucBooking.NewCompleteBooking(bookingRepo, dispatcher),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		public := api.Group("/")
		public.Use(middleware.OptionalAuth(sessions))
		{
			public.POST("/accounts", accountHandler.Register)
			public.POST("/sessions", accountHandler.Login)

			public.GET("/services", serviceHandler.List)
			public.GET("/services/:id", serviceHandler.Get)
		}

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(sessions))
		{
			secured.DELETE("/sessions", accountHandler.Logout)

			secured.GET("/me", accountHandler.GetMe)
			secured.DELETE("/me", accountHandler.DeleteMe)

			secured.GET("/me/provider", providerHandler.GetMine)
			secured.POST("/me/provider", providerHandler.Create)
			secured.PATCH("/me/provider", providerHandler.UpdateMine)

			secured.GET("/me/services", serviceHandler.ListMine)
			secured.GET("/me/bookings", bookingHandler.ListMine)
			secured.GET("/me/provider/bookings", bookingHandler.ListForProvider)
			secured.GET("/me/audit-logs", auditLogsHandler.List)

			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)
			secured.PUT("/services/:id/image", serviceHandler.UploadImage)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/bookings/:id/complete", bookingHandler.Complete)
		}
	}
}
