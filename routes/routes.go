package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hotllink-backend/controllers"
	"hotllink-backend/middleware"
)

func frontendOrigin() string {
	origin := strings.TrimSpace(os.Getenv("FRONTEND_URL"))
	if origin == "" {
		return "http://localhost:5173"
	}
	return origin
}

// SetupRouter wires the controllers into the public API surface.
func SetupRouter(
	ac *controllers.AuthController,
	hc *controllers.HotelController,
	bc *controllers.BookingController,
	cc *controllers.ConciergeController,
	jwtSecret string,
	log *logrus.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin()},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "HotlLink API is running"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.GetHotels)
			hotels.GET("/:id", hc.GetHotelByID)
		}

		bookings := api.Group("/bookings")
		bookings.Use(middleware.RequireAuth(jwtSecret))
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("", bc.GetUserBookings)
		}

		api.GET("/cars", cc.GetCars)
		api.GET("/translators", cc.GetTranslators)
		api.GET("/city-guide", cc.GetCityGuide)
		api.POST("/trip-planner", cc.TripPlanner)
		api.POST("/contact", cc.Contact)
	}

	return r
}
