package entity

// WorkerStatus represents the approval state of a worker application.
// Rejection and deletion are not statuses: they remove the record entirely.
type WorkerStatus string

const (
	// WorkerStatusPending indicates an application awaiting admin review.
	WorkerStatusPending WorkerStatus = "pending"
	// WorkerStatusApproved indicates an application accepted by an admin.
	WorkerStatusApproved WorkerStatus = "approved"
)

// String returns the string representation of the WorkerStatus.
func (s WorkerStatus) String() string {
	return string(s)
}

// IsValid checks if the WorkerStatus is a valid value.
func (s WorkerStatus) IsValid() bool {
	switch s {
	case WorkerStatusPending, WorkerStatusApproved:
		return true
	default:
		return false
	}
}

// OrderStatus represents where an order sits in its lifecycle.
// The lifecycle is strictly forward-only: pending -> processing -> delivered.
type OrderStatus string

const (
	// OrderStatusPending indicates a newly received order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusProcessing indicates an order a worker has started on.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusDelivered indicates a completed order.
	OrderStatusDelivered OrderStatus = "delivered"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// rank orders statuses along the lifecycle for transition checks.
func (s OrderStatus) rank() int {
	switch s {
	case OrderStatusPending:
		return 0
	case OrderStatusProcessing:
		return 1
	case OrderStatusDelivered:
		return 2
	default:
		return -1
	}
}

// CanTransitionTo reports whether moving from s to next keeps the lifecycle
// forward-only. Skipping processing and delivering straight from pending is
// allowed; moving backwards or repeating a status is not.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return next.rank() > s.rank()
}
