package routes

import (
	"net/http"
	"time"

	"github.com/dawar-shafaque/restaurant-application/handlers"
	"github.com/dawar-shafaque/restaurant-application/middleware"
	"github.com/dawar-shafaque/restaurant-application/models"
	"github.com/dawar-shafaque/restaurant-application/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.Auth.SignupHandler)
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/logout", hb.Auth.LogoutHandler)
	}
}

// RegisterCatalogRoutes registers the public browse endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/locations", hb.Catalog.LocationsHandler)
		api.GET("/locations/select-options", hb.Catalog.LocationOptionsHandler)
		api.GET("/locations/:id/speciality-dishes", hb.Catalog.SpecialityDishesHandler)
		api.GET("/locations/:id/feedbacks", hb.Catalog.ReviewsHandler)
		api.GET("/dishes", hb.Catalog.DishesHandler)
		api.GET("/dishes/popular", hb.Catalog.PopularDishesHandler)
		api.GET("/dishes/:id", hb.Catalog.DishHandler)
	}
}

// RegisterBookingRoutes registers table search (public) and reservation
// creation (authenticated).
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/tables", hb.Booking.FindTablesHandler)
		api.DELETE("/tables", hb.Booking.ResetTablesHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth())
		protected.POST("", hb.Booking.CreateReservationHandler)
	}
}

// RegisterReservationRoutes registers the customer reservation endpoints.
// Waiters have their own dashboard; this surface is for everyone else.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	api.Use(middleware.RequireRoles(models.RoleCustomer, models.RoleAdmin))
	{
		api.GET("", hb.Reservation.ListHandler)
		api.PATCH("/:id", hb.Reservation.EditHandler)
		api.DELETE("/:id", hb.Reservation.CancelHandler)
		api.GET("/:id/feedback", hb.Reservation.GetFeedbackHandler)
		api.POST("/:id/feedback", hb.Reservation.SubmitFeedbackHandler)
	}
}

// RegisterProfileRoutes registers the account endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.RequireAuth())
	{
		api.GET("/profile", hb.Profile.GetProfileHandler)
		api.PUT("/profile", hb.Profile.UpdateProfileHandler)
		api.PUT("/password", hb.Auth.ChangePasswordHandler)
	}
}

// RegisterWaiterRoutes registers the staff dashboard, restricted to waiters.
func RegisterWaiterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/waiter")
	api.Use(middleware.RequireRoles(models.RoleWaiter))
	{
		api.GET("/reservations", hb.Waiter.SearchHandler)
		api.PATCH("/reservations/:id", hb.Waiter.PostponeHandler)
		api.DELETE("/reservations/:id", hb.Waiter.CancelHandler)
		api.POST("/bookings", hb.Waiter.CreateBookingHandler)
		api.GET("/customers", hb.Waiter.SearchCustomersHandler)
	}
}

// RegisterNavigationRoute serves the role-derived navigation.
func RegisterNavigationRoute(r *gin.Engine) {
	r.GET("/api/navigation", func(c *gin.Context) {
		var sess *session.Session
		if s, ok := middleware.SessionFrom(c); ok {
			sess = &s
		}
		c.JSON(http.StatusOK, gin.H{"links": VisibleRoutes(sess)})
	})
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Green & Tasty client is up"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, manager *session.Manager, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", middleware.SessionHeader},
		ExposeHeaders: []string{"Content-Length", middleware.SessionHeader},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(middleware.ResolveSession(manager))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterWaiterRoutes(r, hb)
	RegisterNavigationRoute(r)
	RegisterHealthRoute(r)
}
