package dtos

import "github.com/nenexus/nexus-backend/internal/models"

type CandidateListQuery struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

type CandidateListResponse struct {
	Candidates  []models.User `json:"candidates"`
	Total       int64         `json:"total"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
}

type StageUpdateRequest struct {
	Stage string `json:"stage" binding:"required,oneof=applied screening technical cultural offer hired rejected"`
}

type CandidateNoteRequest struct {
	Note string `json:"note" binding:"required"`
}

type StarRequest struct {
	Starred *bool `json:"starred" binding:"required"`
}

type CandidateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive suspended"`
}

type StageCount struct {
	Stage models.Stage `json:"stage"`
	Count int64        `json:"count"`
}

type CandidateStats struct {
	StageStats      []StageCount `json:"stageStats"`
	TotalCandidates int64        `json:"totalCandidates"`
}
