package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nenexus/nexus-backend/internal/common"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    ApplicationStatus
		to      ApplicationStatus
		allowed bool
	}{
		{StatusPending, StatusReviewed, true},
		{StatusPending, StatusShortlisted, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusInterviewed, false},
		{StatusPending, StatusAccepted, false},
		{StatusReviewed, StatusShortlisted, true},
		{StatusReviewed, StatusInterviewScheduled, false},
		{StatusShortlisted, StatusInterviewScheduled, true},
		{StatusInterviewScheduled, StatusInterviewed, true},
		{StatusInterviewed, StatusOffered, true},
		{StatusOffered, StatusAccepted, true},
		{StatusOffered, StatusRejected, true},
		{StatusRejected, StatusInterviewed, false},
		{StatusRejected, StatusPending, false},
		{StatusAccepted, StatusRejected, false},
		{StatusWithdrawn, StatusPending, false},
		{StatusPending, StatusWithdrawn, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestFinalStatus(t *testing.T) {
	assert.True(t, FinalStatus(StatusAccepted))
	assert.True(t, FinalStatus(StatusRejected))
	assert.True(t, FinalStatus(StatusWithdrawn))
	assert.False(t, FinalStatus(StatusPending))
	assert.False(t, FinalStatus(StatusOffered))
}

func TestApplicationValidation(t *testing.T) {
	badRating := 6
	tests := []struct {
		name  string
		app   Application
		field string
	}{
		{
			name:  "rating out of range",
			app:   Application{Rating: &badRating},
			field: "rating",
		},
		{
			name:  "unknown status",
			app:   Application{Status: "bogus"},
			field: "status",
		},
		{
			name:  "unknown stage",
			app:   Application{Stage: "bogus"},
			field: "stage",
		},
		{
			name:  "note missing author",
			app:   Application{Notes: NoteList{{Content: "looks good", CreatedAt: time.Now()}}},
			field: "notes",
		},
		{
			name:  "interview missing type",
			app:   Application{Interviews: InterviewList{{Date: time.Now(), Status: "scheduled"}}},
			field: "interviews",
		},
		{
			name:  "feedback missing rating",
			app:   Application{Feedback: FeedbackList{{Content: "solid", CreatedBy: "u1"}}},
			field: "feedback",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.app.BeforeSave(nil)
			assert.True(t, common.Is(err, common.CodeValidation))
			var e *common.Error
			assert.ErrorAs(t, err, &e)
			assert.Contains(t, e.Fields, tt.field)
		})
	}
}

func TestApplicationValidationAcceptsWellFormed(t *testing.T) {
	rating := 3
	app := Application{
		Status: StatusPending,
		Stage:  StageApplied,
		Rating: &rating,
		Notes: NoteList{
			{Content: "good fit", CreatedBy: "u1", CreatedAt: time.Now()},
		},
		Interviews: InterviewList{
			{Date: time.Now(), Type: "technical", Status: "scheduled"},
		},
		Feedback: FeedbackList{
			{Content: "strong", Rating: 4, CreatedBy: "u1"},
		},
	}
	assert.NoError(t, app.BeforeSave(nil))
}
