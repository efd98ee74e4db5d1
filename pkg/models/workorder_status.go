package models

type WorkOrderStatus string

const (
	WorkOrderStatusPending    WorkOrderStatus = "pending"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusCompleted  WorkOrderStatus = "completed"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
)

func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderStatusPending, WorkOrderStatusInProgress,
		WorkOrderStatusCompleted, WorkOrderStatusCancelled:
		return true
	}
	return false
}

// IsActive reports whether a work order in this status still keeps its
// vehicle under maintenance.
func (s WorkOrderStatus) IsActive() bool {
	return s == WorkOrderStatusPending || s == WorkOrderStatusInProgress
}

// IsClosed reports whether the order no longer accepts part attachments.
func (s WorkOrderStatus) IsClosed() bool {
	return s == WorkOrderStatusCompleted || s == WorkOrderStatusCancelled
}

// CanTransitionTo guards the lifecycle: pending -> in_progress -> completed,
// with cancellation allowed while the order is still active. Writing the
// current status back is a no-op and always allowed.
func (s WorkOrderStatus) CanTransitionTo(next WorkOrderStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case WorkOrderStatusPending:
		return next == WorkOrderStatusInProgress || next == WorkOrderStatusCancelled
	case WorkOrderStatusInProgress:
		return next == WorkOrderStatusCompleted || next == WorkOrderStatusCancelled
	default:
		return false
	}
}
