package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nenexus/nexus-backend/internal/common"
)

type ApplicationStatus string

const (
	StatusPending            ApplicationStatus = "pending"
	StatusReviewed           ApplicationStatus = "reviewed"
	StatusShortlisted        ApplicationStatus = "shortlisted"
	StatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	StatusInterviewed        ApplicationStatus = "interviewed"
	StatusOffered            ApplicationStatus = "offered"
	StatusAccepted           ApplicationStatus = "accepted"
	StatusRejected           ApplicationStatus = "rejected"
	StatusWithdrawn          ApplicationStatus = "withdrawn"
)

// statusTransitions is the whitelisted edge set; anything absent is an
// illegal jump. Withdrawn is reachable only through Withdraw, not through
// a recruiter status update.
var statusTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending:            {StatusReviewed, StatusShortlisted, StatusRejected},
	StatusReviewed:           {StatusShortlisted, StatusRejected},
	StatusShortlisted:        {StatusInterviewScheduled, StatusRejected},
	StatusInterviewScheduled: {StatusInterviewed, StatusRejected},
	StatusInterviewed:        {StatusOffered, StatusRejected},
	StatusOffered:            {StatusAccepted, StatusRejected},
}

func KnownStatus(s ApplicationStatus) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusInterviewScheduled,
		StatusInterviewed, StatusOffered, StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

func FinalStatus(s ApplicationStatus) bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusWithdrawn
}

func CanTransition(from, to ApplicationStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Stage string

const (
	StageApplied   Stage = "applied"
	StageScreening Stage = "screening"
	StageTechnical Stage = "technical"
	StageCultural  Stage = "cultural"
	StageOffer     Stage = "offer"
	StageHired     Stage = "hired"
	StageRejected  Stage = "rejected"
)

func KnownStage(s Stage) bool {
	switch s {
	case StageApplied, StageScreening, StageTechnical, StageCultural,
		StageOffer, StageHired, StageRejected:
		return true
	}
	return false
}

type Application struct {
	ID        string         `gorm:"type:char(36);primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	JobID       string `gorm:"type:char(36);not null;index" json:"job_id"`
	Job         *Job   `gorm:"foreignKey:JobID" json:"job,omitempty"`
	CandidateID string `gorm:"type:char(36);not null;index" json:"candidate_id"`
	Candidate   *User  `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`

	Status ApplicationStatus `gorm:"type:varchar(30);default:'pending';index" json:"status"`
	Stage  Stage             `gorm:"type:varchar(20);default:'applied';index" json:"stage"`

	CoverLetter    string     `gorm:"type:text" json:"cover_letter,omitempty"`
	Resume         string     `json:"resume,omitempty"`
	Answers        JSONMap    `gorm:"type:text" json:"answers"`
	CurrentSalary  Money      `gorm:"type:text" json:"current_salary"`
	ExpectedSalary Money      `gorm:"type:text" json:"expected_salary"`
	NoticePeriod   string     `json:"notice_period,omitempty"`
	Availability   *time.Time `json:"availability,omitempty"`
	Source         string     `json:"source,omitempty"`

	Rating     *int          `json:"rating,omitempty"`
	Notes      NoteList      `gorm:"type:text" json:"notes"`
	Interviews InterviewList `gorm:"type:text" json:"interviews"`
	Feedback   FeedbackList  `gorm:"type:text" json:"feedback"`
	Metadata   JSONMap       `gorm:"type:text" json:"metadata"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (a *Application) BeforeSave(tx *gorm.DB) error {
	fields := map[string]string{}
	if len(a.CoverLetter) > 5000 {
		fields["cover_letter"] = "cover letter must be at most 5000 characters"
	}
	if a.Rating != nil && (*a.Rating < 0 || *a.Rating > 5) {
		fields["rating"] = "rating must be between 0 and 5"
	}
	if a.Status != "" && !KnownStatus(a.Status) {
		fields["status"] = "unknown application status"
	}
	if a.Stage != "" && !KnownStage(a.Stage) {
		fields["stage"] = "unknown application stage"
	}
	for _, note := range a.Notes {
		if note.Content == "" || note.CreatedBy == "" || note.CreatedAt.IsZero() {
			fields["notes"] = "each note must have content, created_by, and created_at"
			break
		}
	}
	for _, iv := range a.Interviews {
		if iv.Date.IsZero() || iv.Type == "" || iv.Status == "" {
			fields["interviews"] = "each interview must have date, type, and status"
			break
		}
	}
	for _, fb := range a.Feedback {
		if fb.Content == "" || fb.Rating == 0 || fb.CreatedBy == "" {
			fields["feedback"] = "each feedback entry must have content, rating, and created_by"
			break
		}
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid application", fields)
	}
	return nil
}
