package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/nenexus/nexus-backend/internal/common"
	"github.com/nenexus/nexus-backend/internal/dtos"
	"github.com/nenexus/nexus-backend/internal/models"
)

type ApplicationService struct {
	DB     *gorm.DB
	Mailer Mailer
}

func NewApplicationService(db *gorm.DB, mailer Mailer) *ApplicationService {
	return &ApplicationService{DB: db, Mailer: mailer}
}

// Apply creates the application, the duplicate check and the job counter
// increment all inside one transaction, so two near-simultaneous applies
// for the same (job, candidate) cannot both pass the existence check.
func (s *ApplicationService) Apply(candidate *models.User, jobID string, req *dtos.ApplyRequest) (*models.Application, error) {
	var created models.Application
	var job models.Job

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&job, "id = ?", jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.NewError(common.CodeNotFound, "job not found", nil)
			}
			return err
		}
		if job.Status != models.JobPublished {
			return common.NewValidationError("job is not accepting applications", map[string]string{
				"job": "job is not published",
			})
		}

		var existing models.Application
		err := tx.Where("job_id = ? AND candidate_id = ? AND status <> ?",
			jobID, candidate.ID, models.StatusWithdrawn).First(&existing).Error
		if err == nil {
			return common.NewError(common.CodeConflict, "you have already applied for this job", nil)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		created = models.Application{
			JobID:        jobID,
			CandidateID:  candidate.ID,
			Status:       models.StatusPending,
			Stage:        models.StageApplied,
			CoverLetter:  req.CoverLetter,
			Resume:       req.Resume,
			Answers:      req.Answers,
			NoticePeriod: req.NoticePeriod,
			Availability: req.Availability,
			Source:       req.Source,
		}
		if req.CurrentSalary != nil {
			created.CurrentSalary = models.Money{Amount: req.CurrentSalary.Amount, Currency: req.CurrentSalary.Currency}
		}
		if req.ExpectedSalary != nil {
			created.ExpectedSalary = models.Money{Amount: req.ExpectedSalary.Amount, Currency: req.ExpectedSalary.Currency}
		}
		if created.Answers == nil {
			created.Answers = models.JSONMap{}
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		return tx.Model(&models.Job{}).
			Where("id = ?", jobID).
			UpdateColumn("application_count", gorm.Expr("application_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	// Fire-and-forget; a notification failure never rolls back the apply.
	s.Mailer.SendApplicationReceived(candidate.Email, job.Title, job.Company)

	return &created, nil
}

func (s *ApplicationService) ListByCandidate(candidateID string) ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.Where("candidate_id = ?", candidateID).
		Preload("Job").
		Preload("Job.Recruiter").
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *ApplicationService) ListByJob(caller *models.User, jobID string, q *dtos.ApplicationListQuery) (*dtos.ApplicationListResponse, error) {
	var job models.Job
	if err := s.DB.First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "job not found", nil)
		}
		return nil, err
	}
	if caller.Role != models.RoleAdmin && job.RecruiterID != caller.ID {
		return nil, common.NewError(common.CodeForbidden, "not authorized to view these applications", nil)
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	query := s.DB.Model(&models.Application{}).Where("job_id = ?", jobID)
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var apps []models.Application
	err := query.Preload("Candidate").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &dtos.ApplicationListResponse{
		Applications: apps,
		Total:        total,
		TotalPages:   totalPages,
		CurrentPage:  page,
	}, nil
}

// UpdateStatus moves an application along the whitelisted edge set. Final
// statuses are immutable and withdrawn is never reachable from here.
func (s *ApplicationService) UpdateStatus(caller *models.User, id string, req *dtos.StatusUpdateRequest) (*models.Application, error) {
	app, err := s.ownedApplication(caller, id)
	if err != nil {
		return nil, err
	}

	next := models.ApplicationStatus(req.Status)
	if !models.KnownStatus(next) || next == models.StatusWithdrawn {
		return nil, common.NewValidationError("invalid status", map[string]string{
			"status": "unknown or disallowed application status",
		})
	}
	if models.FinalStatus(app.Status) {
		return nil, common.NewValidationError("application status is final", map[string]string{
			"status": "application is already " + string(app.Status),
		})
	}
	if !models.CanTransition(app.Status, next) {
		return nil, common.NewValidationError("invalid status transition", map[string]string{
			"status": string(app.Status) + " cannot move to " + string(next),
		})
	}

	app.Status = next
	if req.Feedback != "" {
		app.Notes = append(app.Notes, models.Note{
			Content:   req.Feedback,
			CreatedBy: caller.ID,
			CreatedAt: time.Now(),
		})
	}
	if err := s.DB.Omit("Job", "Candidate").Save(app).Error; err != nil {
		return nil, err
	}

	if app.Candidate != nil && app.Job != nil {
		s.Mailer.SendStatusChanged(app.Candidate.Email, app.Job.Title, string(next))
	}
	return app, nil
}

// Update patches the recruiter-owned evaluation fields.
func (s *ApplicationService) Update(caller *models.User, id string, req *dtos.ApplicationPatchRequest) (*models.Application, error) {
	app, err := s.ownedApplication(caller, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if req.Stage != nil {
		app.Stage = models.Stage(*req.Stage)
	}
	if req.Rating != nil {
		app.Rating = req.Rating
	}
	if req.Note != nil && *req.Note != "" {
		app.Notes = append(app.Notes, models.Note{
			Content:   *req.Note,
			CreatedBy: caller.ID,
			CreatedAt: now,
		})
	}
	if req.Interview != nil {
		app.Interviews = append(app.Interviews, models.Interview{
			Date:      req.Interview.Date,
			Type:      req.Interview.Type,
			Status:    "scheduled",
			Location:  req.Interview.Location,
			Notes:     req.Interview.Notes,
			CreatedAt: now,
		})
	}
	if req.Feedback != nil {
		app.Feedback = append(app.Feedback, models.Feedback{
			Content:   req.Feedback.Content,
			Rating:    req.Feedback.Rating,
			CreatedBy: caller.ID,
			CreatedAt: now,
		})
	}

	if err := s.DB.Omit("Job", "Candidate").Save(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// Withdraw is candidate-only and allowed solely from the initial status.
// The row is marked withdrawn and soft-deleted, so it stops blocking a
// future re-apply.
func (s *ApplicationService) Withdraw(caller *models.User, id string) error {
	var app models.Application
	if err := s.DB.First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewError(common.CodeNotFound, "application not found", nil)
		}
		return err
	}
	if app.CandidateID != caller.ID {
		return common.NewError(common.CodeForbidden, "not authorized to withdraw this application", nil)
	}
	if app.Status != models.StatusPending {
		return common.NewError(common.CodeConflict, "only pending applications can be withdrawn", nil)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&app).UpdateColumn("status", models.StatusWithdrawn).Error
		if err != nil {
			return err
		}
		return tx.Delete(&app).Error
	})
}

// Bulk applies one transition to each id independently and reports per-id
// outcomes; a failure on one id does not stop the rest.
func (s *ApplicationService) Bulk(caller *models.User, req *dtos.BulkActionRequest) []dtos.BulkActionResult {
	var status string
	switch req.Action {
	case "shortlist":
		status = string(models.StatusShortlisted)
	case "reject":
		status = string(models.StatusRejected)
	}

	results := make([]dtos.BulkActionResult, 0, len(req.IDs))
	for _, id := range req.IDs {
		_, err := s.UpdateStatus(caller, id, &dtos.StatusUpdateRequest{Status: status})
		if err != nil {
			results = append(results, dtos.BulkActionResult{ID: id, OK: false, Error: err.Error()})
			continue
		}
		results = append(results, dtos.BulkActionResult{ID: id, OK: true})
	}
	return results
}

func (s *ApplicationService) ownedApplication(caller *models.User, id string) (*models.Application, error) {
	var app models.Application
	err := s.DB.Preload("Job").Preload("Candidate").First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "application not found", nil)
		}
		return nil, err
	}
	if app.Job == nil {
		return nil, common.NewError(common.CodeInternal, "application has no job", nil)
	}
	if caller.Role != models.RoleAdmin && app.Job.RecruiterID != caller.ID {
		return nil, common.NewError(common.CodeForbidden, "not authorized to update this application", nil)
	}
	return &app, nil
}
