package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nenexus/nexus-backend/internal/database"
	"github.com/nenexus/nexus-backend/internal/dtos"
	"github.com/nenexus/nexus-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	return db
}

// recordingMailer captures sends so tests can assert notifications without
// touching SMTP.
type recordingMailer struct {
	mu       sync.Mutex
	received []string
	changed  []string
	welcomed []string
}

func (m *recordingMailer) SendApplicationReceived(to, jobTitle, company string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.received = append(m.received, to)
}

func (m *recordingMailer) SendStatusChanged(to, jobTitle, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changed = append(m.changed, to)
}

func (m *recordingMailer) SendWelcome(to, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.welcomed = append(m.welcomed, to)
}

func createUser(t *testing.T, db *gorm.DB, role models.Role, email string) *models.User {
	t.Helper()
	user := models.User{
		Name:     "Test " + string(role),
		Email:    email,
		Password: "hashed-password",
		Role:     role,
		Status:   models.UserActive,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createJob(t *testing.T, db *gorm.DB, recruiterID string, status models.JobStatus) *models.Job {
	t.Helper()
	job := models.Job{
		Title:        "Backend Engineer",
		Company:      "NE Nexus",
		Location:     "Boston, MA",
		Type:         models.JobFullTime,
		Experience:   models.ExperienceMid,
		Description:  "Build and maintain the recruitment platform backend.",
		Requirements: "Go, SQL",
		Salary:       models.Salary{Min: 50000, Max: 70000, Currency: "USD"},
		Status:       status,
		RecruiterID:  recruiterID,
	}
	require.NoError(t, db.Create(&job).Error)
	return &job
}

func applyToJob(t *testing.T, svc *ApplicationService, candidate *models.User, jobID string) *models.Application {
	t.Helper()
	app, err := svc.Apply(candidate, jobID, &dtos.ApplyRequest{
		CoverLetter: "I would love to join.",
	})
	require.NoError(t, err)
	return app
}
