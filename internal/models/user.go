package models

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nenexus/nexus-backend/internal/common"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleRecruiter Role = "recruiter"
	RoleCandidate Role = "candidate"
)

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type User struct {
	ID        string         `gorm:"type:char(36);primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string     `gorm:"not null" json:"name"`
	Email    string     `gorm:"uniqueIndex;not null" json:"email"`
	Password string     `gorm:"not null" json:"-"`
	Role     Role       `gorm:"type:varchar(20);not null;default:'candidate'" json:"role"`
	Status   UserStatus `gorm:"type:varchar(20);default:'active'" json:"status"`

	Starred  bool   `gorm:"default:false" json:"starred"`
	Avatar   string `json:"avatar,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Title    string `json:"title,omitempty"`
	Company  string `json:"company,omitempty"`
	Resume   string `json:"resume,omitempty"`

	Skills      StringList `gorm:"type:text" json:"skills"`
	Experience  RecordList `gorm:"type:text" json:"experience"`
	Education   RecordList `gorm:"type:text" json:"education"`
	Notes       NoteList   `gorm:"type:text" json:"notes"`
	Preferences JSONMap    `gorm:"type:text" json:"preferences"`

	LastLogin *time.Time `json:"last_login,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	fields := map[string]string{}
	if n := len(u.Name); n < 2 || n > 100 {
		fields["name"] = "name must be between 2 and 100 characters"
	}
	if !emailPattern.MatchString(u.Email) {
		fields["email"] = "email must be a valid address"
	}
	switch u.Role {
	case RoleAdmin, RoleRecruiter, RoleCandidate:
	default:
		fields["role"] = "role must be admin, recruiter, or candidate"
	}
	switch u.Status {
	case UserActive, UserInactive, UserSuspended, "":
	default:
		fields["status"] = "status must be active, inactive, or suspended"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid user", fields)
	}
	return nil
}

// Sanitized strips fields that must never leave the server. The password
// column already carries json:"-" but callers that marshal maps or logs go
// through this instead.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
