package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ikkim/cinestream-backend/config"
	"github.com/ikkim/cinestream-backend/internal/app/controller"
	"github.com/ikkim/cinestream-backend/internal/middleware"
)

type Router struct {
	movieController     *controller.MovieController
	reviewController    *controller.ReviewController
	analyticsController *controller.AnalyticsController
	config              *config.Config
}

func NewRouter(
	movieController *controller.MovieController,
	reviewController *controller.ReviewController,
	analyticsController *controller.AnalyticsController,
	cfg *config.Config,
) *Router {
	return &Router{
		movieController:     movieController,
		reviewController:    reviewController,
		analyticsController: analyticsController,
		config:              cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "CineStream API is running",
		})
	})

	api := router.Group("/api")
	{
		movies := api.Group("/movies")
		{
			movies.GET("", r.movieController.GetAllMovies)
			movies.POST("", r.movieController.CreateMovie)
			movies.GET("/high-rating", r.movieController.GetTopRatedMovies)
			movies.GET("/director/:director", r.movieController.GetMoviesByDirector)
			movies.GET("/genre/:genre", r.movieController.GetMoviesByGenre)
			movies.GET("/duration/:duration", r.movieController.GetMoviesByDuration)
			movies.GET("/:id", r.movieController.GetMovieByID)
			movies.PUT("/:id", r.movieController.UpdateMovie)
			movies.DELETE("/:id", r.movieController.DeleteMovie)

			movies.POST("/:id/reviews", r.reviewController.SubmitReview)

			movies.GET("/:id/analytics", r.analyticsController.GetAnalytics)
			movies.GET("/:id/report", r.analyticsController.GetReport)
			movies.GET("/:id/report/export", r.analyticsController.ExportReport)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
