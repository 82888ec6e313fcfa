package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nenexus/nexus-backend/internal/dtos"
	"github.com/nenexus/nexus-backend/internal/middleware"
	"github.com/nenexus/nexus-backend/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{JobService: jobs}
}

// Create is the POST /api/jobs endpoint.
func (h *JobHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	job, err := h.JobService.Create(user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// List is the GET /api/jobs endpoint.
func (h *JobHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var q dtos.JobListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	resp, err := h.JobService.List(user, &q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get is the GET /api/jobs/:id endpoint. Every successful fetch bumps the
// view counter by one; the read itself carries no side effects.
func (h *JobHandler) Get(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	job, err := h.JobService.Get(user, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.JobService.RecordView(job.ID); err != nil {
		logrus.WithError(err).WithField("job_id", job.ID).Warn("failed to record job view")
	} else {
		job.Views++
	}
	c.JSON(http.StatusOK, job)
}

// Update is the PUT /api/jobs/:id endpoint.
func (h *JobHandler) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	job, err := h.JobService.Update(user, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete is the DELETE /api/jobs/:id endpoint.
func (h *JobHandler) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	if err := h.JobService.Delete(user, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// Stats is the GET /api/jobs/stats endpoint.
func (h *JobHandler) Stats(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	stats, err := h.JobService.Stats(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
