package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/nenexus/nexus-backend/internal/common"
	"github.com/nenexus/nexus-backend/internal/dtos"
	"github.com/nenexus/nexus-backend/internal/models"
)

type CandidateService struct {
	DB *gorm.DB
}

func NewCandidateService(db *gorm.DB) *CandidateService {
	return &CandidateService{DB: db}
}

func (s *CandidateService) List(q *dtos.CandidateListQuery) (*dtos.CandidateListResponse, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	query := s.DB.Model(&models.User{}).Where("role = ?", models.RoleCandidate)
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where(
			"name LIKE ? COLLATE NOCASE OR email LIKE ? COLLATE NOCASE OR location LIKE ? COLLATE NOCASE",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var candidates []models.User
	err := query.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		candidates[i] = candidates[i].Sanitized()
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &dtos.CandidateListResponse{
		Candidates:  candidates,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

func (s *CandidateService) Get(id string) (*models.User, []models.Application, error) {
	var candidate models.User
	err := s.DB.Where("id = ? AND role = ?", id, models.RoleCandidate).First(&candidate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
		}
		return nil, nil, err
	}
	candidate = candidate.Sanitized()

	var apps []models.Application
	err = s.DB.Where("candidate_id = ?", id).
		Preload("Job").
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, nil, err
	}
	return &candidate, apps, nil
}

// SetStage updates the kanban stage on the candidate's most recent
// application. The stage axis never affects status-driven rules.
func (s *CandidateService) SetStage(candidateID string, stage models.Stage) error {
	var latest models.Application
	err := s.DB.Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		First(&latest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewError(common.CodeNotFound, "no application found for this candidate", nil)
		}
		return err
	}
	return s.DB.Model(&latest).Update("stage", stage).Error
}

func (s *CandidateService) AddNote(caller *models.User, candidateID, note string) (models.NoteList, error) {
	candidate, err := s.candidateByID(candidateID)
	if err != nil {
		return nil, err
	}

	candidate.Notes = append(candidate.Notes, models.Note{
		Content:   note,
		CreatedBy: caller.ID,
		CreatedAt: time.Now(),
	})
	if err := s.DB.Model(candidate).Update("notes", candidate.Notes).Error; err != nil {
		return nil, err
	}
	return candidate.Notes, nil
}

// SetStarred toggles the recruiter-facing star marker on a candidate.
func (s *CandidateService) SetStarred(candidateID string, starred bool) error {
	candidate, err := s.candidateByID(candidateID)
	if err != nil {
		return err
	}
	return s.DB.Model(candidate).Update("starred", starred).Error
}

// SetStatus moves a candidate between active, inactive, and suspended.
func (s *CandidateService) SetStatus(candidateID string, status models.UserStatus) error {
	switch status {
	case models.UserActive, models.UserInactive, models.UserSuspended:
	default:
		return common.NewValidationError("invalid status", map[string]string{
			"status": "status must be active, inactive, or suspended",
		})
	}
	candidate, err := s.candidateByID(candidateID)
	if err != nil {
		return err
	}
	return s.DB.Model(candidate).Update("status", status).Error
}

func (s *CandidateService) candidateByID(id string) (*models.User, error) {
	var candidate models.User
	err := s.DB.Where("id = ? AND role = ?", id, models.RoleCandidate).First(&candidate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
		}
		return nil, err
	}
	return &candidate, nil
}

func (s *CandidateService) Stats() (*dtos.CandidateStats, error) {
	var stageStats []dtos.StageCount
	err := s.DB.Model(&models.Application{}).
		Select("stage, COUNT(id) AS count").
		Group("stage").
		Scan(&stageStats).Error
	if err != nil {
		return nil, err
	}

	var total int64
	err = s.DB.Model(&models.User{}).
		Where("role = ?", models.RoleCandidate).
		Count(&total).Error
	if err != nil {
		return nil, err
	}

	return &dtos.CandidateStats{StageStats: stageStats, TotalCandidates: total}, nil
}
