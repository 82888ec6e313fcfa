package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nenexus/nexus-backend/internal/common"
)

type JobStatus string

const (
	JobDraft     JobStatus = "draft"
	JobPublished JobStatus = "published"
	JobClosed    JobStatus = "closed"
	JobArchived  JobStatus = "archived"
)

type JobType string

const (
	JobFullTime   JobType = "full-time"
	JobPartTime   JobType = "part-time"
	JobContract   JobType = "contract"
	JobInternship JobType = "internship"
	JobRemote     JobType = "remote"
)

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

type WorkplaceType string

const (
	WorkplaceOnSite WorkplaceType = "on-site"
	WorkplaceHybrid WorkplaceType = "hybrid"
	WorkplaceRemote WorkplaceType = "remote"
)

type Job struct {
	ID        string         `gorm:"type:char(36);primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title            string          `gorm:"not null" json:"title"`
	Company          string          `gorm:"not null" json:"company"`
	Location         string          `gorm:"not null" json:"location"`
	Type             JobType         `gorm:"type:varchar(20);not null;default:'full-time';index" json:"type"`
	Experience       ExperienceLevel `gorm:"type:varchar(20);default:'mid';index" json:"experience"`
	Description      string          `gorm:"type:text;not null" json:"description"`
	Requirements     string          `gorm:"type:text;not null" json:"requirements"`
	Responsibilities string          `gorm:"type:text" json:"responsibilities"`

	Salary   Salary     `gorm:"type:text" json:"salary"`
	Benefits StringList `gorm:"type:text" json:"benefits"`
	Skills   StringList `gorm:"type:text" json:"skills"`

	Status           JobStatus `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	ApplicationCount int       `gorm:"column:application_count;default:0" json:"application_count"`
	Views            int       `gorm:"default:0" json:"views"`

	ClosingDate   *time.Time    `json:"closing_date,omitempty"`
	Department    string        `json:"department,omitempty"`
	WorkplaceType WorkplaceType `gorm:"type:varchar(20);default:'on-site'" json:"workplace_type"`
	Metadata      JSONMap       `gorm:"type:text" json:"metadata"`

	RecruiterID string `gorm:"type:char(36);not null;index" json:"recruiter_id"`
	Recruiter   *User  `gorm:"foreignKey:RecruiterID" json:"recruiter,omitempty"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

func (j *Job) BeforeSave(tx *gorm.DB) error {
	fields := map[string]string{}
	if n := len(j.Title); n < 2 || n > 200 {
		fields["title"] = "title must be between 2 and 200 characters"
	}
	if j.Company == "" {
		fields["company"] = "company is required"
	}
	if j.Location == "" {
		fields["location"] = "location is required"
	}
	if n := len(j.Description); n < 10 || n > 10000 {
		fields["description"] = "description must be between 10 and 10000 characters"
	}
	if j.Requirements == "" {
		fields["requirements"] = "requirements are required"
	}
	if j.Salary.Min < 0 || j.Salary.Max < 0 {
		fields["salary"] = "salary cannot be negative"
	} else if j.Salary.Max < j.Salary.Min {
		fields["salary"] = "maximum salary cannot be less than minimum salary"
	}
	switch j.Type {
	case JobFullTime, JobPartTime, JobContract, JobInternship, JobRemote:
	default:
		fields["type"] = "invalid job type"
	}
	switch j.Experience {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive, "":
	default:
		fields["experience"] = "invalid experience level"
	}
	switch j.Status {
	case JobDraft, JobPublished, JobClosed, JobArchived, "":
	default:
		fields["status"] = "invalid job status"
	}
	switch j.WorkplaceType {
	case WorkplaceOnSite, WorkplaceHybrid, WorkplaceRemote, "":
	default:
		fields["workplace_type"] = "invalid workplace type"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid job", fields)
	}
	return nil
}

// IsActive reports whether candidates may currently apply.
func (j *Job) IsActive() bool {
	return j.Status == JobPublished &&
		(j.ClosingDate == nil || j.ClosingDate.After(time.Now()))
}
