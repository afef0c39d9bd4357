package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yeremiapane/reservation-app/controllers"
	"github.com/yeremiapane/reservation-app/metrics"
	"github.com/yeremiapane/reservation-app/middlewares"
	"github.com/yeremiapane/reservation-app/services"
	"github.com/yeremiapane/reservation-app/store"
)

func SetupRouter(st *store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Metrics registry + collector
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// Services
	authSvc := services.NewAuthService(st)
	availabilitySvc := services.NewAvailabilityService(st)
	reservationSvc := services.NewReservationService(st)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	availabilityCtrl := controllers.NewAvailabilityController(availabilitySvc, collector)
	reservationCtrl := controllers.NewReservationController(reservationSvc, collector)
	adminCtrl := controllers.NewAdminController(reservationSvc)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	r.GET("/tables", reservationCtrl.GetAllTables)
	r.GET("/availability", availabilityCtrl.GetAvailability)

	// Rate limiter untuk login/signup
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/signup", authCtrl.Signup)
		public.POST("/login", authCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/logout", authCtrl.Logout)
		auth.GET("/profile", authCtrl.GetProfile)

		auth.GET("/reservations", reservationCtrl.GetMyReservations)
		auth.POST("/reservations", reservationCtrl.CreateReservation)
		auth.DELETE("/reservations/:reservation_id", reservationCtrl.CancelReservation)
	}

	// -- ADMIN --
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.GET("/reservations", adminCtrl.GetAllReservations)
		admin.GET("/events/ws", controllers.EventsHandler)
	}

	return r
}
