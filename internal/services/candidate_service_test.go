package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nenexus/nexus-backend/internal/common"
	"github.com/nenexus/nexus-backend/internal/dtos"
	"github.com/nenexus/nexus-backend/internal/models"
)

func TestCandidateListFiltersByRoleAndSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewCandidateService(db)
	createUser(t, db, models.RoleRecruiter, "rec@example.com")
	createUser(t, db, models.RoleCandidate, "alice@example.com")
	createUser(t, db, models.RoleCandidate, "bob@example.com")

	resp, err := svc.List(&dtos.CandidateListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, resp.Total)
	for _, c := range resp.Candidates {
		assert.Equal(t, models.RoleCandidate, c.Role)
		assert.Empty(t, c.Password)
	}

	resp, err = svc.List(&dtos.CandidateListQuery{Search: "alice", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.Total)
}

func TestCandidateGetWithApplications(t *testing.T) {
	db := newTestDB(t)
	svc := NewCandidateService(db)
	appSvc := NewApplicationService(db, &recordingMailer{})
	recruiter := createUser(t, db, models.RoleRecruiter, "rec@example.com")
	candidate := createUser(t, db, models.RoleCandidate, "cand@example.com")
	job := createJob(t, db, recruiter.ID, models.JobPublished)
	applyToJob(t, appSvc, candidate, job.ID)

	got, apps, err := svc.Get(candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, candidate.ID, got.ID)
	require.Len(t, apps, 1)
	require.NotNil(t, apps[0].Job)
	assert.Equal(t, job.ID, apps[0].Job.ID)

	_, _, err = svc.Get(recruiter.ID)
	assert.True(t, common.Is(err, common.CodeNotFound))
}

func TestCandidateSetStage(t *testing.T) {
	db := newTestDB(t)
	svc := NewCandidateService(db)
	appSvc := NewApplicationService(db, &recordingMailer{})
	recruiter := createUser(t, db, models.RoleRecruiter, "rec@example.com")
	candidate := createUser(t, db, models.RoleCandidate, "cand@example.com")
	job := createJob(t, db, recruiter.ID, models.JobPublished)
	app := applyToJob(t, appSvc, candidate, job.ID)

	require.NoError(t, svc.SetStage(candidate.ID, models.StageScreening))

	var reloaded models.Application
	require.NoError(t, db.First(&reloaded, "id = ?", app.ID).Error)
	assert.Equal(t, models.StageScreening, reloaded.Stage)
	// the status axis is untouched
	assert.Equal(t, models.StatusPending, reloaded.Status)

	loner := createUser(t, db, models.RoleCandidate, "loner@example.com")
	err := svc.SetStage(loner.ID, models.StageScreening)
	assert.True(t, common.Is(err, common.CodeNotFound))
}

func TestCandidateSetStarred(t *testing.T) {
	db := newTestDB(t)
	svc := NewCandidateService(db)
	candidate := createUser(t, db, models.RoleCandidate, "cand@example.com")
	recruiter := createUser(t, db, models.RoleRecruiter, "rec@example.com")

	require.NoError(t, svc.SetStarred(candidate.ID, true))
	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", candidate.ID).Error)
	assert.True(t, reloaded.Starred)

	require.NoError(t, svc.SetStarred(candidate.ID, false))
	require.NoError(t, db.First(&reloaded, "id = ?", candidate.ID).Error)
	assert.False(t, reloaded.Starred)

	err := svc.SetStarred(recruiter.ID, true)
	assert.True(t, common.Is(err, common.CodeNotFound))
}

func TestCandidateSetStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewCandidateService(db)
	candidate := createUser(t, db, models.RoleCandidate, "cand@example.com")

	require.NoError(t, svc.SetStatus(candidate.ID, models.UserSuspended))
	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", candidate.ID).Error)
	assert.Equal(t, models.UserSuspended, reloaded.Status)

	err := svc.SetStatus(candidate.ID, models.UserStatus("banned"))
	assert.True(t, common.Is(err, common.CodeValidation))

	err = svc.SetStatus("missing-id", models.UserInactive)
	assert.True(t, common.Is(err, common.CodeNotFound))
}

func TestCandidateNotesAndStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewCandidateService(db)
	appSvc := NewApplicationService(db, &recordingMailer{})
	recruiter := createUser(t, db, models.RoleRecruiter, "rec@example.com")
	candidate := createUser(t, db, models.RoleCandidate, "cand@example.com")
	job := createJob(t, db, recruiter.ID, models.JobPublished)
	applyToJob(t, appSvc, candidate, job.ID)

	notes, err := svc.AddNote(recruiter, candidate.ID, "Great portfolio")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, recruiter.ID, notes[0].CreatedBy)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalCandidates)
	require.Len(t, stats.StageStats, 1)
	assert.Equal(t, models.StageApplied, stats.StageStats[0].Stage)
	assert.EqualValues(t, 1, stats.StageStats[0].Count)
}
