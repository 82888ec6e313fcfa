package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nenexus/nexus-backend/internal/dtos"
	"github.com/nenexus/nexus-backend/internal/middleware"
	"github.com/nenexus/nexus-backend/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: apps}
}

// Apply is the POST /api/applications/apply/:jobId endpoint.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var req dtos.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	app, err := h.ApplicationService.Apply(user, c.Param("jobId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// MyApplications is the GET /api/applications/my-applications endpoint.
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	apps, err := h.ApplicationService.ListByCandidate(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListByJob is the GET /api/applications/job/:jobId endpoint.
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var q dtos.ApplicationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	resp, err := h.ApplicationService.ListByJob(user, c.Param("jobId"), &q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus is the PUT /api/applications/:id/status endpoint.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	app, err := h.ApplicationService.UpdateStatus(user, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Patch is the PATCH /api/applications/:id endpoint for evaluation fields.
func (h *ApplicationHandler) Patch(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var req dtos.ApplicationPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	app, err := h.ApplicationService.Update(user, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Bulk is the POST /api/applications/bulk endpoint. Partial failure is
// reported per id, never as an all-or-nothing error.
func (h *ApplicationHandler) Bulk(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var req dtos.BulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	results := h.ApplicationService.Bulk(user, &req)
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// Withdraw is the DELETE /api/applications/:id endpoint.
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	if err := h.ApplicationService.Withdraw(user, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application withdrawn successfully"})
}
