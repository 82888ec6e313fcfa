package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nenexus/nexus-backend/internal/middleware"
	"github.com/nenexus/nexus-backend/internal/models"
)

type RouterDependencies struct {
	AuthHandler        *AuthHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	CandidateHandler   *CandidateHandler
	AuthMiddleware     *middleware.AuthMiddleware
	CORSOrigin         string
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
}

// NewRouter wires the whole HTTP surface. Role requirements are declared
// per route here rather than checked inline in handlers; ownership checks
// stay in the services because they need the loaded record.
func NewRouter(deps RouterDependencies) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{deps.CORSOrigin}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	api.GET("/health", HealthCheck)

	auth := api.Group("/auth")
	{
		auth.POST("/register", deps.AuthHandler.Register)
		auth.POST("/login", deps.AuthHandler.Login)
		auth.GET("/me", deps.AuthMiddleware.Authenticate(), deps.AuthHandler.Me)
	}

	recruiterOrAdmin := middleware.RequireRole(models.RoleRecruiter, models.RoleAdmin)
	candidateOnly := middleware.RequireRole(models.RoleCandidate)

	jobs := api.Group("/jobs", deps.AuthMiddleware.Authenticate())
	{
		jobs.GET("", deps.JobHandler.List)
		jobs.GET("/stats", deps.JobHandler.Stats)
		jobs.GET("/:id", deps.JobHandler.Get)
		jobs.POST("", recruiterOrAdmin, deps.JobHandler.Create)
		jobs.PUT("/:id", recruiterOrAdmin, deps.JobHandler.Update)
		jobs.DELETE("/:id", recruiterOrAdmin, deps.JobHandler.Delete)
	}

	applications := api.Group("/applications", deps.AuthMiddleware.Authenticate())
	{
		applications.POST("/apply/:jobId", candidateOnly, deps.ApplicationHandler.Apply)
		applications.GET("/my-applications", candidateOnly, deps.ApplicationHandler.MyApplications)
		applications.GET("/job/:jobId", recruiterOrAdmin, deps.ApplicationHandler.ListByJob)
		applications.PUT("/:id/status", recruiterOrAdmin, deps.ApplicationHandler.UpdateStatus)
		applications.PATCH("/:id", recruiterOrAdmin, deps.ApplicationHandler.Patch)
		applications.POST("/bulk", recruiterOrAdmin, deps.ApplicationHandler.Bulk)
		applications.DELETE("/:id", candidateOnly, deps.ApplicationHandler.Withdraw)
	}

	candidates := api.Group("/candidates", deps.AuthMiddleware.Authenticate(), recruiterOrAdmin)
	{
		candidates.GET("", deps.CandidateHandler.List)
		candidates.GET("/stats/overview", deps.CandidateHandler.Stats)
		candidates.GET("/:id", deps.CandidateHandler.Get)
		candidates.PUT("/:id/stage", deps.CandidateHandler.SetStage)
		candidates.PUT("/:id/star", deps.CandidateHandler.SetStarred)
		candidates.PUT("/:id/status", deps.CandidateHandler.SetStatus)
		candidates.POST("/:id/notes", deps.CandidateHandler.AddNote)
	}

	return r
}
