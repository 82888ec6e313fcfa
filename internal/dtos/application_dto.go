package dtos

import (
	"time"

	"github.com/nenexus/nexus-backend/internal/models"
)

type MoneyInput struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

type ApplyRequest struct {
	CoverLetter    string                 `json:"cover_letter" binding:"omitempty,max=5000"`
	Resume         string                 `json:"resume" binding:"omitempty,url"`
	Answers        map[string]interface{} `json:"answers"`
	CurrentSalary  *MoneyInput            `json:"current_salary"`
	ExpectedSalary *MoneyInput            `json:"expected_salary"`
	NoticePeriod   string                 `json:"notice_period"`
	Availability   *time.Time             `json:"availability"`
	Source         string                 `json:"source"`
}

type StatusUpdateRequest struct {
	Status   string `json:"status" binding:"required"`
	Feedback string `json:"feedback"`
}

type InterviewInput struct {
	Date     time.Time `json:"date" binding:"required"`
	Type     string    `json:"type" binding:"required"`
	Location string    `json:"location"`
	Notes    string    `json:"notes"`
}

type FeedbackInput struct {
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// ApplicationPatchRequest carries the recruiter-owned evaluation fields;
// every member is optional.
type ApplicationPatchRequest struct {
	Stage     *string         `json:"stage" binding:"omitempty,oneof=applied screening technical cultural offer hired rejected"`
	Rating    *int            `json:"rating" binding:"omitempty,min=0,max=5"`
	Note      *string         `json:"note"`
	Interview *InterviewInput `json:"interview"`
	Feedback  *FeedbackInput  `json:"feedback"`
}

type BulkActionRequest struct {
	Action string   `json:"action" binding:"required,oneof=shortlist reject"`
	IDs    []string `json:"ids" binding:"required,min=1"`
}

type BulkActionResult struct {
	ID    string `json:"id"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type ApplicationListQuery struct {
	Status string `form:"status"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

type ApplicationListResponse struct {
	Applications []models.Application `json:"applications"`
	Total        int64                `json:"total"`
	TotalPages   int                  `json:"totalPages"`
	CurrentPage  int                  `json:"currentPage"`
}
