package services

import (
	"errors"
	"slices"
	"time"

	"gorm.io/gorm"

	"github.com/nenexus/nexus-backend/internal/common"
	"github.com/nenexus/nexus-backend/internal/config"
	"github.com/nenexus/nexus-backend/internal/dtos"
	"github.com/nenexus/nexus-backend/internal/models"
)

type JobService struct {
	DB  *gorm.DB
	App config.AppConfig
}

func NewJobService(db *gorm.DB, app config.AppConfig) *JobService {
	if app.JobsPerPage < 1 {
		app.JobsPerPage = 10
	}
	if app.DefaultCurrency == "" {
		app.DefaultCurrency = "USD"
	}
	return &JobService{DB: db, App: app}
}

func (s *JobService) normalizeSalary(sal *models.Salary) error {
	if sal.Currency == "" {
		sal.Currency = s.App.DefaultCurrency
	}
	if len(s.App.AllowedCurrencies) > 0 && !slices.Contains(s.App.AllowedCurrencies, sal.Currency) {
		return common.NewValidationError("invalid job", map[string]string{
			"salary.currency": "currency is not supported",
		})
	}
	return nil
}

func (s *JobService) Create(recruiterID string, req *dtos.JobCreateRequest) (*models.Job, error) {
	if req.ClosingDate != nil && req.ClosingDate.Before(time.Now()) {
		return nil, common.NewValidationError("invalid job", map[string]string{
			"closing_date": "closing date cannot be in the past",
		})
	}

	job := models.Job{
		Title:            req.Title,
		Company:          req.Company,
		Location:         req.Location,
		Type:             models.JobFullTime,
		Experience:       models.ExperienceMid,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Salary: models.Salary{
			Min:      req.Salary.Min,
			Max:      req.Salary.Max,
			Currency: req.Salary.Currency,
			IsPublic: req.Salary.IsPublic,
		},
		Benefits:      req.Benefits,
		Skills:        req.Skills,
		Status:        models.JobDraft,
		ClosingDate:   req.ClosingDate,
		Department:    req.Department,
		WorkplaceType: models.WorkplaceOnSite,
		RecruiterID:   recruiterID,
	}
	if req.Type != "" {
		job.Type = models.JobType(req.Type)
	}
	if req.Experience != "" {
		job.Experience = models.ExperienceLevel(req.Experience)
	}
	if req.Status != "" {
		job.Status = models.JobStatus(req.Status)
	}
	if req.WorkplaceType != "" {
		job.WorkplaceType = models.WorkplaceType(req.WorkplaceType)
	}
	if err := s.normalizeSalary(&job.Salary); err != nil {
		return nil, err
	}
	if job.Benefits == nil {
		job.Benefits = models.StringList{}
	}
	if job.Skills == nil {
		job.Skills = models.StringList{}
	}

	if err := s.DB.Create(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// List applies role-scoped visibility: candidates only see published jobs,
// non-admin recruiters only their own.
func (s *JobService) List(caller *models.User, q *dtos.JobListQuery) (*dtos.JobListResponse, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = s.App.JobsPerPage
	}

	query := s.DB.Model(&models.Job{})
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Type != "" {
		query = query.Where("type = ?", q.Type)
	}
	if q.Experience != "" {
		query = query.Where("experience = ?", q.Experience)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where(
			"title LIKE ? COLLATE NOCASE OR company LIKE ? COLLATE NOCASE OR location LIKE ? COLLATE NOCASE",
			pattern, pattern, pattern,
		)
	}
	switch caller.Role {
	case models.RoleCandidate:
		query = query.Where("status = ?", models.JobPublished)
	case models.RoleRecruiter:
		query = query.Where("recruiter_id = ?", caller.ID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var jobs []models.Job
	err := query.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &dtos.JobListResponse{
		Jobs:        jobs,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

// Get is side-effect free; view recording is a separate write.
func (s *JobService) Get(caller *models.User, id string) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "job not found", nil)
		}
		return nil, err
	}
	if caller.Role == models.RoleRecruiter && job.RecruiterID != caller.ID {
		return nil, common.NewError(common.CodeForbidden, "access denied", nil)
	}
	if caller.Role == models.RoleCandidate && job.Status != models.JobPublished {
		return nil, common.NewError(common.CodeForbidden, "access denied", nil)
	}
	return &job, nil
}

// RecordView bumps the view counter with a single atomic UPDATE.
func (s *JobService) RecordView(id string) error {
	return s.DB.Model(&models.Job{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (s *JobService) Update(caller *models.User, id string, req *dtos.JobUpdateRequest) (*models.Job, error) {
	job, err := s.ownedJob(caller, id)
	if err != nil {
		return nil, err
	}
	if req.ClosingDate != nil && req.ClosingDate.Before(time.Now()) {
		return nil, common.NewValidationError("invalid job", map[string]string{
			"closing_date": "closing date cannot be in the past",
		})
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Type != nil {
		job.Type = models.JobType(*req.Type)
	}
	if req.Experience != nil {
		job.Experience = models.ExperienceLevel(*req.Experience)
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Responsibilities != nil {
		job.Responsibilities = *req.Responsibilities
	}
	if req.Salary != nil {
		job.Salary = models.Salary{
			Min:      req.Salary.Min,
			Max:      req.Salary.Max,
			Currency: req.Salary.Currency,
			IsPublic: req.Salary.IsPublic,
		}
		if err := s.normalizeSalary(&job.Salary); err != nil {
			return nil, err
		}
	}
	if req.Benefits != nil {
		job.Benefits = *req.Benefits
	}
	if req.Skills != nil {
		job.Skills = *req.Skills
	}
	if req.Status != nil {
		job.Status = models.JobStatus(*req.Status)
	}
	if req.ClosingDate != nil {
		job.ClosingDate = req.ClosingDate
	}
	if req.Department != nil {
		job.Department = *req.Department
	}
	if req.WorkplaceType != nil {
		job.WorkplaceType = models.WorkplaceType(*req.WorkplaceType)
	}

	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Delete is soft; the row keeps its deleted_at timestamp.
func (s *JobService) Delete(caller *models.User, id string) error {
	job, err := s.ownedJob(caller, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(job).Error
}

// Stats returns job counts grouped by status, scoped to the recruiter's
// own jobs unless the caller is an admin.
func (s *JobService) Stats(caller *models.User) ([]dtos.JobStatusCount, error) {
	query := s.DB.Model(&models.Job{})
	if caller.Role == models.RoleRecruiter {
		query = query.Where("recruiter_id = ?", caller.ID)
	}
	var stats []dtos.JobStatusCount
	err := query.Select("status, COUNT(id) AS count").
		Group("status").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *JobService) ownedJob(caller *models.User, id string) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "job not found", nil)
		}
		return nil, err
	}
	if caller.Role != models.RoleAdmin && job.RecruiterID != caller.ID {
		return nil, common.NewError(common.CodeForbidden, "access denied", nil)
	}
	return &job, nil
}
