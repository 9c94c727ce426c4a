package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/academy-scheduler/internal/audit"
	"github.com/BruksfildServices01/academy-scheduler/internal/config"
	"github.com/BruksfildServices01/academy-scheduler/internal/handlers"
	"github.com/BruksfildServices01/academy-scheduler/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/academy-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/academy-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/academy-scheduler/internal/middleware"
	"github.com/BruksfildServices01/academy-scheduler/internal/models"
	"github.com/BruksfildServices01/academy-scheduler/internal/resource"
	ucStudio "github.com/BruksfildServices01/academy-scheduler/internal/usecase/studio"
	ucBooking "github.com/BruksfildServices01/academy-scheduler/internal/usecase/studiobooking"
)

// Deps are the process-wide singletons the routes are built from.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Log     *zap.Logger
	Cache   cache.SnapshotCache
	Objects storage.ObjectStore
	Audit   *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	tz := cfg.Timezone

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewStudioBookingGormRepository(d.DB)
	studioStore := infraRepo.NewResourceGormRepository[models.Studio](d.DB, resource.Studios.SearchColumns, resource.Studios.Order)

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo, d.Cache, d.Log, tz)
	createBookingUC := ucBooking.NewCreateStudioBooking(bookingRepo, d.Cache, d.Audit, d.Log, tz)
	cancelBookingUC := ucBooking.NewCancelStudioBooking(bookingRepo, d.Cache, d.Audit, d.Log, tz)
	confirmBookingUC := ucBooking.NewConfirmStudioBooking(bookingRepo, d.Audit, tz)
	listBookingsUC := ucBooking.NewListStudioBookings(bookingRepo, d.Cache, d.Log, tz)
	listMyBookingsUC := ucBooking.NewListMyBookings(bookingRepo)
	uploadPhotoUC := ucStudio.NewUploadStudioPhoto(studioStore, d.Objects, d.Audit, d.Log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, cfg, d.Audit, d.Log)
	meHandler := handlers.NewMeHandler(d.DB)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, tz)

	studioHandler := handlers.NewStudioHandler(bookingRepo, getAvailabilityUC, uploadPhotoUC, d.Log)
	bookingHandler := handlers.NewBookingHandler(
		listBookingsUC,
		listMyBookingsUC,
		createBookingUC,
		cancelBookingUC,
		confirmBookingUC,
		d.Log,
	)

	studios := resource.NewController(resource.Studios, studioStore, d.Audit, d.Log)
	classes := resourceController(d, resource.Classes)
	teachers := resourceController(d, resource.Teachers)
	batches := resourceController(d, resource.Batches)
	singers := resourceController(d, resource.Singers)
	admissions := resourceController(d, resource.Admissions)

	auth := middleware.AuthMiddleware(cfg)
	admin := middleware.RequireRole(models.RoleAdmin)

	// ======================================================
	// SYSTEM
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/studios", studioHandler.List)
		api.GET("/studios/:id", studioHandler.Get)
		api.GET("/studios/:id/availability", studioHandler.Availability)
		api.GET("/bookings", bookingHandler.List)

		publicRead(api, "/classes", classes)
		publicRead(api, "/teachers", teachers)
		publicRead(api, "/batches", batches)
		publicRead(api, "/singers", singers)

		// ------------------------------
		// SIGNED IN
		// ------------------------------
		secured := api.Group("/")
		secured.Use(auth)
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/bookings", bookingHandler.Mine)

			secured.POST("/bookings", bookingHandler.Create)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			secured.POST("/admissions", admissions.Create)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		adminAPI := api.Group("/")
		adminAPI.Use(auth, admin)
		{
			adminAPI.POST("/studios", studios.Create)
			adminAPI.PATCH("/studios/:id", studios.Update)
			adminAPI.POST("/studios/:id/photo", studioHandler.UploadPhoto)

			adminAPI.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)

			adminWrite(adminAPI, "/classes", classes)
			adminWrite(adminAPI, "/teachers", teachers)
			adminWrite(adminAPI, "/batches", batches)
			adminWrite(adminAPI, "/singers", singers)

			adminAPI.GET("/admissions", admissions.List)
			adminAPI.GET("/admissions/:id", admissions.Get)
			adminAPI.PATCH("/admissions/:id", admissions.Update)
			adminAPI.DELETE("/admissions/:id", admissions.Delete)

			adminAPI.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

type crud interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func resourceController[T any](d Deps, schema resource.Schema[T]) *resource.Controller[T] {
	store := infraRepo.NewResourceGormRepository[T](d.DB, schema.SearchColumns, schema.Order)
	return resource.NewController(schema, store, d.Audit, d.Log)
}

func publicRead(g *gin.RouterGroup, path string, h crud) {
	g.GET(path, h.List)
	g.GET(path+"/:id", h.Get)
}

func adminWrite(g *gin.RouterGroup, path string, h crud) {
	g.POST(path, h.Create)
	g.PATCH(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}
