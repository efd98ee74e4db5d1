package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkOrderStatusValid(t *testing.T) {
	assert.True(t, WorkOrderStatusPending.Valid())
	assert.True(t, WorkOrderStatusInProgress.Valid())
	assert.True(t, WorkOrderStatusCompleted.Valid())
	assert.True(t, WorkOrderStatusCancelled.Valid())
	assert.False(t, WorkOrderStatus("on_hold").Valid())
}

func TestWorkOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    WorkOrderStatus
		to      WorkOrderStatus
		allowed bool
	}{
		{WorkOrderStatusPending, WorkOrderStatusInProgress, true},
		{WorkOrderStatusPending, WorkOrderStatusCancelled, true},
		{WorkOrderStatusPending, WorkOrderStatusCompleted, false},
		{WorkOrderStatusInProgress, WorkOrderStatusCompleted, true},
		{WorkOrderStatusInProgress, WorkOrderStatusCancelled, true},
		{WorkOrderStatusInProgress, WorkOrderStatusPending, false},
		{WorkOrderStatusCompleted, WorkOrderStatusInProgress, false},
		{WorkOrderStatusCompleted, WorkOrderStatusPending, false},
		{WorkOrderStatusCancelled, WorkOrderStatusInProgress, false},
		// same-status writes are no-ops
		{WorkOrderStatusPending, WorkOrderStatusPending, true},
		{WorkOrderStatusCompleted, WorkOrderStatusCompleted, true},
	}

	for _, c := range cases {
		assert.Equalf(t, c.allowed, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestWorkOrderStatusActiveAndClosed(t *testing.T) {
	assert.True(t, WorkOrderStatusPending.IsActive())
	assert.True(t, WorkOrderStatusInProgress.IsActive())
	assert.False(t, WorkOrderStatusCompleted.IsActive())
	assert.False(t, WorkOrderStatusCancelled.IsActive())

	assert.False(t, WorkOrderStatusPending.IsClosed())
	assert.False(t, WorkOrderStatusInProgress.IsClosed())
	assert.True(t, WorkOrderStatusCompleted.IsClosed())
	assert.True(t, WorkOrderStatusCancelled.IsClosed())
}
