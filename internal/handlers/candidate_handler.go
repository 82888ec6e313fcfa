package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nenexus/nexus-backend/internal/dtos"
	"github.com/nenexus/nexus-backend/internal/middleware"
	"github.com/nenexus/nexus-backend/internal/models"
	"github.com/nenexus/nexus-backend/internal/services"
)

type CandidateHandler struct {
	CandidateService *services.CandidateService
}

func NewCandidateHandler(candidates *services.CandidateService) *CandidateHandler {
	return &CandidateHandler{CandidateService: candidates}
}

// List is the GET /api/candidates endpoint.
func (h *CandidateHandler) List(c *gin.Context) {
	var q dtos.CandidateListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	resp, err := h.CandidateService.List(&q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get is the GET /api/candidates/:id endpoint.
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, apps, err := h.CandidateService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidate": candidate, "applications": apps})
}

// SetStage is the PUT /api/candidates/:id/stage endpoint.
func (h *CandidateHandler) SetStage(c *gin.Context) {
	var req dtos.StageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.CandidateService.SetStage(c.Param("id"), models.Stage(req.Stage)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Candidate stage updated successfully"})
}

// SetStarred is the PUT /api/candidates/:id/star endpoint.
func (h *CandidateHandler) SetStarred(c *gin.Context) {
	var req dtos.StarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.CandidateService.SetStarred(c.Param("id"), *req.Starred); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Candidate starred status updated successfully"})
}

// SetStatus is the PUT /api/candidates/:id/status endpoint.
func (h *CandidateHandler) SetStatus(c *gin.Context) {
	var req dtos.CandidateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.CandidateService.SetStatus(c.Param("id"), models.UserStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Candidate status updated successfully"})
}

// AddNote is the POST /api/candidates/:id/notes endpoint.
func (h *CandidateHandler) AddNote(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var req dtos.CandidateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	notes, err := h.CandidateService.AddNote(user, c.Param("id"), req.Note)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note added successfully", "notes": notes})
}

// Stats is the GET /api/candidates/stats/overview endpoint.
func (h *CandidateHandler) Stats(c *gin.Context) {
	stats, err := h.CandidateService.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
