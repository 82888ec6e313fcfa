package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nenexus/nexus-backend/internal/common"
	"github.com/nenexus/nexus-backend/internal/config"
	"github.com/nenexus/nexus-backend/internal/dtos"
	"github.com/nenexus/nexus-backend/internal/models"
)

func TestApplyCreatesPendingAndIncrementsCount(t *testing.T) {
	db := newTestDB(t)
	mailer := &recordingMailer{}
	svc := NewApplicationService(db, mailer)
	recruiter := createUser(t, db, models.RoleRecruiter, "rec@example.com")
	candidate := createUser(t, db, models.RoleCandidate, "cand@example.com")
	job := createJob(t, db, recruiter.ID, models.JobPublished)

	app := applyToJob(t, svc, candidate, job.ID)
	assert.Equal(t, models.StatusPending, app.Status)
	assert.Equal(t, models.StageApplied, app.Stage)

	var reloaded models.Job
	require.NoError(t, db.First(&reloaded, "id = ?", job.ID).Error)
	assert.Equal(t, 1, reloaded.ApplicationCount)
	assert.Equal(t, []string{"cand@example.com"}, mailer.received)
}

func TestApplyRejectsUnpublishedJob(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, &recordingMailer{})
	recruiter := createUser(t, db, models.RoleRecruiter, "rec@example.com")
	candidate := createUser(t, db, models.RoleCandidate, "cand@example.com")

	for _, status := range []models.JobStatus{models.JobDraft, models.JobClosed, models.JobArchived} {
		job := createJob(t, db, recruiter.ID, status)
		_, err := svc.Apply(candidate, job.ID, &dtos.ApplyRequest{})
		assert.True(t, common.Is(err, common.CodeValidation), "status %s should reject applications", status)
	}

	_, err := svc.Apply(candidate, "missing-id", &dtos.ApplyRequest{})
	assert.True(t, common.Is(err, common.CodeNotFound))
}

func TestApplyDuplicateConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, &recordingMailer{})
	recruiter := createUser(t, db, models.RoleRecruiter, "rec@example.com")
	candidate := createUser(t, db, models.RoleCandidate, "cand@example.com")
	job := createJob(t, db, recruiter.ID, models.JobPublished)

	applyToJob(t, svc, candidate, job.ID)

	_, err := svc.Apply(candidate, job.ID, &dtos.ApplyRequest{})
	assert.True(t, common.Is(err, common.CodeConflict))

	// counter untouched by the rejected attempt
	var reloaded models.Job
	require.NoError(t, db.First(&reloaded, "id = ?", job.ID).Error)
	assert.Equal(t, 1, reloaded.ApplicationCount)
}

func TestReapplyAllowedAfterWithdraw(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, &recordingMailer{})
	recruiter := createUser(t, db, models.RoleRecruiter, "rec@example.com")
	candidate := createUser(t, db, models.RoleCandidate, "cand@example.com")
	job := createJob(t, db, recruiter.ID, models.JobPublished)

	app := applyToJob(t, svc, candidate, job.ID)
	require.NoError(t, svc.Withdraw(candidate, app.ID))

	_, err := svc.Apply(candidate, job.ID, &dtos.ApplyRequest{})
	require.NoError(t, err)
}

func TestWithdrawRules(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, &recordingMailer{})
	recruiter := createUser(t, db, models.RoleRecruiter, "rec@example.com")
	candidate := createUser(t, db, models.RoleCandidate, "cand@example.com")
	stranger := createUser(t, db, models.RoleCandidate, "other@example.com")
	job := createJob(t, db, recruiter.ID, models.JobPublished)

	app := applyToJob(t, svc, candidate, job.ID)

	err := svc.Withdraw(stranger, app.ID)
	assert.True(t, common.Is(err, common.CodeForbidden))

	_, err = svc.UpdateStatus(recruiter, app.ID, &dtos.StatusUpdateRequest{Status: string(models.StatusShortlisted)})
	require.NoError(t, err)

	// only pending applications can be withdrawn
	err = svc.Withdraw(candidate, app.ID)
	assert.True(t, common.Is(err, common.CodeConflict))
}

func TestWithdrawSoftDeletes(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, &recordingMailer{})
	recruiter := createUser(t, db, models.RoleRecruiter, "rec@example.com")
	candidate := createUser(t, db, models.RoleCandidate, "cand@example.com")
	job := createJob(t, db, recruiter.ID, models.JobPublished)

	app := applyToJob(t, svc, candidate, job.ID)
	require.NoError(t, svc.Withdraw(candidate, app.ID))

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.Zero(t, count)

	var withdrawn models.Application
	require.NoError(t, db.Unscoped().First(&withdrawn, "id = ?", app.ID).Error)
	assert.Equal(t, models.StatusWithdrawn, withdrawn.Status)
}

func TestUpdateStatusTransitionTable(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, &recordingMailer{})
	recruiter := createUser(t, db, models.RoleRecruiter, "rec@example.com")
	candidate := createUser(t, db, models.RoleCandidate, "cand@example.com")
	job := createJob(t, db, recruiter.ID, models.JobPublished)
	app := applyToJob(t, svc, candidate, job.ID)

	// pending cannot jump straight to interviewed
	_, err := svc.UpdateStatus(recruiter, app.ID, &dtos.StatusUpdateRequest{Status: string(models.StatusInterviewed)})
	assert.True(t, common.Is(err, common.CodeValidation))

	// withdrawn is never reachable through a recruiter update
	_, err = svc.UpdateStatus(recruiter, app.ID, &dtos.StatusUpdateRequest{Status: string(models.StatusWithdrawn)})
	assert.True(t, common.Is(err, common.CodeValidation))

	// walk the happy path to acceptance
	path := []models.ApplicationStatus{
		models.StatusReviewed,
		models.StatusShortlisted,
		models.StatusInterviewScheduled,
		models.StatusInterviewed,
		models.StatusOffered,
		models.StatusAccepted,
	}
	for _, next := range path {
		updated, err := svc.UpdateStatus(recruiter, app.ID, &dtos.StatusUpdateRequest{Status: string(next)})
		require.NoError(t, err, "transition to %s", next)
		assert.Equal(t, next, updated.Status)
	}

	// accepted is final
	_, err = svc.UpdateStatus(recruiter, app.ID, &dtos.StatusUpdateRequest{Status: string(models.StatusRejected)})
	assert.True(t, common.Is(err, common.CodeValidation))
}

func TestUpdateStatusAuthorization(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, &recordingMailer{})
	owner := createUser(t, db, models.RoleRecruiter, "owner@example.com")
	other := createUser(t, db, models.RoleRecruiter, "other@example.com")
	admin := createUser(t, db, models.RoleAdmin, "admin@example.com")
	candidate := createUser(t, db, models.RoleCandidate, "cand@example.com")
	job := createJob(t, db, owner.ID, models.JobPublished)
	app := applyToJob(t, svc, candidate, job.ID)

	_, err := svc.UpdateStatus(other, app.ID, &dtos.StatusUpdateRequest{Status: string(models.StatusReviewed)})
	assert.True(t, common.Is(err, common.CodeForbidden))

	_, err = svc.UpdateStatus(admin, app.ID, &dtos.StatusUpdateRequest{Status: string(models.StatusReviewed)})
	require.NoError(t, err)
}

func TestPatchEvaluationFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, &recordingMailer{})
	recruiter := createUser(t, db, models.RoleRecruiter, "rec@example.com")
	candidate := createUser(t, db, models.RoleCandidate, "cand@example.com")
	job := createJob(t, db, recruiter.ID, models.JobPublished)
	app := applyToJob(t, svc, candidate, job.ID)

	stage := string(models.StageTechnical)
	rating := 4
	note := "Strong SQL answers"
	updated, err := svc.Update(recruiter, app.ID, &dtos.ApplicationPatchRequest{
		Stage:  &stage,
		Rating: &rating,
		Note:   &note,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StageTechnical, updated.Stage)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 4, *updated.Rating)
	require.Len(t, updated.Notes, 1)
	assert.Equal(t, recruiter.ID, updated.Notes[0].CreatedBy)

	// stage never feeds back into status
	assert.Equal(t, models.StatusPending, updated.Status)

	when := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	updated, err = svc.Update(recruiter, app.ID, &dtos.ApplicationPatchRequest{
		Interview: &dtos.InterviewInput{Date: when, Type: "technical", Location: "remote"},
		Feedback:  &dtos.FeedbackInput{Content: "Solid system design round", Rating: 5},
	})
	require.NoError(t, err)

	require.Len(t, updated.Interviews, 1)
	assert.Equal(t, when, updated.Interviews[0].Date.UTC())
	assert.Equal(t, "technical", updated.Interviews[0].Type)
	assert.Equal(t, "scheduled", updated.Interviews[0].Status)
	assert.False(t, updated.Interviews[0].CreatedAt.IsZero())

	require.Len(t, updated.Feedback, 1)
	assert.Equal(t, "Solid system design round", updated.Feedback[0].Content)
	assert.Equal(t, 5, updated.Feedback[0].Rating)
	assert.Equal(t, recruiter.ID, updated.Feedback[0].CreatedBy)
	assert.False(t, updated.Feedback[0].CreatedAt.IsZero())

	// earlier patch fields survive the second patch
	assert.Equal(t, models.StageTechnical, updated.Stage)
	require.Len(t, updated.Notes, 1)
}

func TestBulkReportsPerItemResults(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, &recordingMailer{})
	recruiter := createUser(t, db, models.RoleRecruiter, "rec@example.com")
	job := createJob(t, db, recruiter.ID, models.JobPublished)

	c1 := createUser(t, db, models.RoleCandidate, "c1@example.com")
	c2 := createUser(t, db, models.RoleCandidate, "c2@example.com")
	a1 := applyToJob(t, svc, c1, job.ID)
	a2 := applyToJob(t, svc, c2, job.ID)

	// push a2 to a final status so the bulk shortlist fails for it
	_, err := svc.UpdateStatus(recruiter, a2.ID, &dtos.StatusUpdateRequest{Status: string(models.StatusRejected)})
	require.NoError(t, err)

	results := svc.Bulk(recruiter, &dtos.BulkActionRequest{
		Action: "shortlist",
		IDs:    []string{a1.ID, a2.ID, "missing-id"},
	})
	require.Len(t, results, 3)
	assert.True(t, results[0].OK)
	assert.False(t, results[1].OK)
	assert.False(t, results[2].OK)

	// the successful item really moved
	var reloaded models.Application
	require.NoError(t, db.First(&reloaded, "id = ?", a1.ID).Error)
	assert.Equal(t, models.StatusShortlisted, reloaded.Status)
}

func TestListByJobPaginationAndOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, &recordingMailer{})
	owner := createUser(t, db, models.RoleRecruiter, "owner@example.com")
	other := createUser(t, db, models.RoleRecruiter, "other@example.com")
	job := createJob(t, db, owner.ID, models.JobPublished)

	for _, email := range []string{"c1@example.com", "c2@example.com", "c3@example.com"} {
		c := createUser(t, db, models.RoleCandidate, email)
		applyToJob(t, svc, c, job.ID)
	}

	_, err := svc.ListByJob(other, job.ID, &dtos.ApplicationListQuery{Page: 1, Limit: 2})
	assert.True(t, common.Is(err, common.CodeForbidden))

	resp, err := svc.ListByJob(owner, job.ID, &dtos.ApplicationListQuery{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, resp.Total)
	assert.Len(t, resp.Applications, 2)
	assert.Equal(t, 2, resp.TotalPages)
}

// Full lifecycle from the product scenario: draft job published, candidate
// applies once, duplicate rejected, recruiter rejects, withdraw refused.
func TestApplicationLifecycleScenario(t *testing.T) {
	db := newTestDB(t)
	jobSvc := NewJobService(db, config.AppConfig{})
	appSvc := NewApplicationService(db, &recordingMailer{})
	recruiter := createUser(t, db, models.RoleRecruiter, "rec@example.com")
	candidate := createUser(t, db, models.RoleCandidate, "cand@example.com")

	job, err := jobSvc.Create(recruiter.ID, &dtos.JobCreateRequest{
		Title:        "Backend Engineer",
		Company:      "NE Nexus",
		Location:     "Boston, MA",
		Description:  "Build and maintain the recruitment platform backend.",
		Requirements: "Go, SQL",
		Salary:       dtos.SalaryInput{Min: 50000, Max: 70000, Currency: "USD"},
	})
	require.NoError(t, err)
	require.Equal(t, models.JobDraft, job.Status)

	published := string(models.JobPublished)
	job, err = jobSvc.Update(recruiter, job.ID, &dtos.JobUpdateRequest{Status: &published})
	require.NoError(t, err)

	app := applyToJob(t, appSvc, candidate, job.ID)
	require.Equal(t, models.StatusPending, app.Status)

	var reloaded models.Job
	require.NoError(t, db.First(&reloaded, "id = ?", job.ID).Error)
	require.Equal(t, 1, reloaded.ApplicationCount)

	_, err = appSvc.Apply(candidate, job.ID, &dtos.ApplyRequest{})
	require.True(t, common.Is(err, common.CodeConflict))
	require.NoError(t, db.First(&reloaded, "id = ?", job.ID).Error)
	require.Equal(t, 1, reloaded.ApplicationCount)

	_, err = appSvc.UpdateStatus(recruiter, app.ID, &dtos.StatusUpdateRequest{Status: string(models.StatusRejected)})
	require.NoError(t, err)

	err = appSvc.Withdraw(candidate, app.ID)
	assert.True(t, common.Is(err, common.CodeConflict))
}
