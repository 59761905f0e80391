package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorhub/internal/app/controllers"
	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/app/models/dto"
	"github.com/yigit/mentorhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	mentorshipController *controllers.MentorshipController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)
		authenticated.PATCH("/users/name", authController.UpdateName)

		// Profile routes
		profile := authenticated.Group("/profile")
		{
			profile.POST("", profileController.CreateProfile)
			profile.GET("", profileController.GetOwnProfile)
			profile.PATCH("", profileController.UpdateProfile)
			profile.GET("/:id", profileController.GetProfile)
		}

		// Mentor discovery
		authenticated.GET("/mentors", profileController.SearchMentors)

		// Mentorship routes
		mentorship := authenticated.Group("/mentorship")
		{
			requests := mentorship.Group("/requests")
			{
				requests.GET("", mentorshipController.ListRequests)

				// Only mentees open and withdraw requests
				requestsMenteeProtected := requests.Group("")
				requestsMenteeProtected.Use(authMiddleware.RoleRequired(string(models.RoleMentee)))
				{
					requestsMenteeProtected.POST("", mentorshipController.CreateRequest)
					requestsMenteeProtected.DELETE("/:id", mentorshipController.DeleteRequest)
				}

				// Only the addressed mentor decides a request
				requestsMentorProtected := requests.Group("")
				requestsMentorProtected.Use(authMiddleware.RoleRequired(string(models.RoleMentor)))
				{
					requestsMentorProtected.PATCH("/:id", mentorshipController.UpdateRequestStatus)
				}
			}

			sessions := mentorship.Group("/sessions")
			{
				sessions.POST("", mentorshipController.CreateSession)
				sessions.GET("", mentorshipController.ListSessions)
				sessions.PATCH("/:id", mentorshipController.UpdateSessionStatus)
			}

			mentorship.POST("/ratings", mentorshipController.CreateRating)
			mentorship.GET("/slots", mentorshipController.ListSlots)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	// Swagger routes are set up in bootstrap.go already
}
