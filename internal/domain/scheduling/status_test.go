package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-pos/internal/models"
)

func TestStatusTransitions(t *testing.T) {
	assert.NoError(t, CanConfirm(StatusRequested))
	assert.Error(t, CanConfirm(StatusConfirmed))
	assert.Error(t, CanConfirm(StatusCanceled))

	assert.NoError(t, CanComplete(StatusConfirmed))
	assert.Error(t, CanComplete(StatusRequested))
	assert.Error(t, CanComplete(StatusCompleted))

	assert.NoError(t, CanCancel(StatusRequested))
	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.Error(t, CanCancel(StatusCompleted))
	assert.Error(t, CanCancel(StatusCanceled))
}

func TestActiveStatusesKeepCompletedBusy(t *testing.T) {
	active := ActiveStatuses()

	assert.Contains(t, active, "requested")
	assert.Contains(t, active, "confirmed")
	assert.Contains(t, active, "completed")
	assert.NotContains(t, active, "canceled")
}

func TestDomainActions(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(InitialStatus())}

	require.NoError(t, Confirm(ap, now))
	assert.Equal(t, "confirmed", ap.Status)
	require.NotNil(t, ap.ConfirmedAt)

	require.NoError(t, Complete(ap, now))
	assert.Equal(t, "completed", ap.Status)
	require.NotNil(t, ap.CompletedAt)

	// Terminal: não cancela nem reconclui.
	assert.Error(t, Cancel(ap, now))
	assert.Error(t, Complete(ap, now))
}

func TestCancelFreesSlot(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusRequested)}
	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, "canceled", ap.Status)
	require.NotNil(t, ap.CanceledAt)
}
