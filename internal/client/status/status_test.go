package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdesk/jobdesk/internal/client/models"
)

func TestToggleJob(t *testing.T) {
	next, err := ToggleJob(models.JobStatusActive)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, next)

	next, err = ToggleJob(models.JobStatusClosed)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusActive, next)

	next, err = ToggleJob(models.JobStatusDraft)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusActive, next, "toggling a draft publishes it")

	_, err = ToggleJob(models.JobStatus("archived"))
	assert.Error(t, err)
}

func TestCanTransitionJob_NeverProducesDraft(t *testing.T) {
	assert.False(t, CanTransitionJob(models.JobStatusActive, models.JobStatusDraft))
	assert.False(t, CanTransitionJob(models.JobStatusClosed, models.JobStatusDraft))
	assert.True(t, CanTransitionJob(models.JobStatusActive, models.JobStatusClosed))
	assert.True(t, CanTransitionJob(models.JobStatusClosed, models.JobStatusActive))
}

func TestCanTransitionApplication(t *testing.T) {
	assert.True(t, CanTransitionApplication(models.ApplicationPending, models.ApplicationAccepted))
	assert.True(t, CanTransitionApplication(models.ApplicationPending, models.ApplicationRejected))

	// accepted and rejected are terminal
	assert.False(t, CanTransitionApplication(models.ApplicationAccepted, models.ApplicationRejected))
	assert.False(t, CanTransitionApplication(models.ApplicationRejected, models.ApplicationAccepted))
	assert.False(t, CanTransitionApplication(models.ApplicationAccepted, models.ApplicationPending))
	assert.False(t, CanTransitionApplication(models.ApplicationPending, models.ApplicationPending))
}

func TestParseApplicationDecision(t *testing.T) {
	for _, in := range []string{"accept", "accepted"} {
		got, err := ParseApplicationDecision(in)
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationAccepted, got)
	}
	for _, in := range []string{"reject", "rejected"} {
		got, err := ParseApplicationDecision(in)
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationRejected, got)
	}
	_, err := ParseApplicationDecision("maybe")
	assert.Error(t, err)
}
