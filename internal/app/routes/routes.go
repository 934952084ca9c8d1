package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/konaseema/zpportal/internal/app/controllers"
	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/middleware"
)

// Controllers bundles the handlers mounted under /api.
type Controllers struct {
	Auth        *controllers.AuthController
	School      *controllers.SchoolController
	Alumni      *controllers.AlumniController
	Donation    *controllers.DonationController
	Event       *controllers.EventController
	Content     *controllers.ContentController
	SchoolNeed  *controllers.SchoolNeedController
	Admin       *controllers.AdminController
	Placeholder *controllers.PlaceholderController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// --- Public routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
	}

	api.GET("/schools", c.School.ListSchools)
	api.GET("/schools/:id", c.School.GetSchool)
	api.GET("/mandals", c.School.ListMandals)
	api.GET("/alumni", c.Alumni.ListAlumni)
	api.GET("/events", c.Event.ListEvents)
	api.GET("/donations", c.Donation.ListDonations)
	api.POST("/donations", c.Donation.CreateDonation)
	api.GET("/forums/posts", c.Content.ListForumPosts)
	api.GET("/bulletins", c.Content.ListBulletins)
	api.GET("/news", c.Content.ListNews)
	api.GET("/galleries", c.Content.ListGalleries)
	api.GET("/school-needs", c.SchoolNeed.ListSchoolNeeds)

	api.GET("/chat/conversations", c.Placeholder.ComingSoon)
	api.GET("/mentors", c.Placeholder.ComingSoon)
	api.GET("/notifications", c.Placeholder.ComingSoon)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", c.Auth.Me)
		authenticated.POST("/alumni", c.Alumni.CreateAlumniProfile)
		authenticated.POST("/events", c.Event.CreateEvent)
		authenticated.POST("/events/:id/rsvp", c.Event.RSVP)
		authenticated.POST("/forums/posts", c.Content.CreateForumPost)
	}

	// --- Staff routes (admin and MEO) ---
	staff := authenticated.Group("")
	staff.Use(authMiddleware.RolesRequired(models.RoleAdmin, models.RoleMEO))
	{
		staff.POST("/schools", c.School.CreateSchool)
		staff.PUT("/schools/:id", c.School.UpdateSchool)
		staff.POST("/bulletins", c.Content.CreateBulletin)
		staff.POST("/news", c.Content.CreateNews)
		staff.POST("/galleries", c.Content.CreateGallery)
		staff.POST("/school-needs", c.SchoolNeed.CreateSchoolNeed)

		admin := staff.Group("/admin")
		admin.GET("/stats", c.Admin.Stats)
		admin.GET("/users", c.Admin.ListUsers)
		admin.PUT("/users/:id/approve", c.Admin.ApproveUser)
	}
}
