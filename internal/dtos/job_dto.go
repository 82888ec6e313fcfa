package dtos

import (
	"time"

	"github.com/nenexus/nexus-backend/internal/models"
)

type SalaryInput struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
	IsPublic bool   `json:"is_public"`
}

type JobCreateRequest struct {
	Title            string      `json:"title" binding:"required,min=2,max=200"`
	Company          string      `json:"company" binding:"required"`
	Location         string      `json:"location" binding:"required"`
	Type             string      `json:"type" binding:"omitempty,oneof=full-time part-time contract internship remote"`
	Experience       string      `json:"experience" binding:"omitempty,oneof=entry mid senior executive"`
	Description      string      `json:"description" binding:"required,min=10,max=10000"`
	Requirements     string      `json:"requirements" binding:"required"`
	Responsibilities string      `json:"responsibilities"`
	Salary           SalaryInput `json:"salary"`
	Benefits         []string    `json:"benefits"`
	Skills           []string    `json:"skills"`
	Status           string      `json:"status" binding:"omitempty,oneof=draft published closed archived"`
	ClosingDate      *time.Time  `json:"closing_date"`
	Department       string      `json:"department"`
	WorkplaceType    string      `json:"workplace_type" binding:"omitempty,oneof=on-site hybrid remote"`
}

// JobUpdateRequest uses pointers so absent fields are left untouched.
type JobUpdateRequest struct {
	Title            *string      `json:"title" binding:"omitempty,min=2,max=200"`
	Company          *string      `json:"company"`
	Location         *string      `json:"location"`
	Type             *string      `json:"type" binding:"omitempty,oneof=full-time part-time contract internship remote"`
	Experience       *string      `json:"experience" binding:"omitempty,oneof=entry mid senior executive"`
	Description      *string      `json:"description" binding:"omitempty,min=10,max=10000"`
	Requirements     *string      `json:"requirements"`
	Responsibilities *string      `json:"responsibilities"`
	Salary           *SalaryInput `json:"salary"`
	Benefits         *[]string    `json:"benefits"`
	Skills           *[]string    `json:"skills"`
	Status           *string      `json:"status" binding:"omitempty,oneof=draft published closed archived"`
	ClosingDate      *time.Time   `json:"closing_date"`
	Department       *string      `json:"department"`
	WorkplaceType    *string      `json:"workplace_type" binding:"omitempty,oneof=on-site hybrid remote"`
}

type JobListQuery struct {
	Status     string `form:"status" binding:"omitempty,oneof=draft published closed archived"`
	Type       string `form:"type" binding:"omitempty,oneof=full-time part-time contract internship remote"`
	Experience string `form:"experience" binding:"omitempty,oneof=entry mid senior executive"`
	Search     string `form:"search"`
	Page       int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type JobListResponse struct {
	Jobs        []models.Job `json:"jobs"`
	Total       int64        `json:"total"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
}

type JobStatusCount struct {
	Status models.JobStatus `json:"status"`
	Count  int64            `json:"count"`
}
