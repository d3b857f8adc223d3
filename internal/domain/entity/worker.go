package entity

import (
	"fmt"
	"time"
)

// Worker is a person with a role application, keyed by the same platform user
// id as User. At most one Worker exists per id; rejection or deletion removes
// the record entirely rather than marking it.
type Worker struct {
	ID            string       `json:"id"`            // Platform user id, shared with the User entity.
	ApplicationID string       `json:"applicationId"` // Globally unique application id, derived from creation time and user id.
	FirstName     string       `json:"firstName"`
	LastName      string       `json:"lastName"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	Role          Role         `json:"role"`
	State         string       `json:"state,omitempty"` // Operating region. Required for riders, empty otherwise.
	Status        WorkerStatus `json:"status"`
	AppliedAt     time.Time    `json:"appliedAt"`
	ApprovedAt    *time.Time   `json:"approvedAt"` // Set when an admin approves the application.
	ApprovedBy    string       `json:"approvedBy,omitempty"`
	MonthlyStats  MonthlyStats `json:"monthlyStats"`
}

// MonthlyStats tracks a worker's order throughput counters.
type MonthlyStats struct {
	OrdersDelivered int `json:"ordersDelivered"`
	OrdersProcessed int `json:"ordersProcessed"`
}

// NewApplicationID derives the application id from the application time and
// the applicant's user id, e.g. "app_1700000000000_12345".
func NewApplicationID(appliedAt time.Time, userID string) string {
	return fmt.Sprintf("app_%d_%s", appliedAt.UnixMilli(), userID)
}

// AdminGrant authorizes a user id to act with administrative privilege.
// The set of grants plus the configured super admin forms the authorization
// set; the super admin itself is never stored as a grant.
type AdminGrant struct {
	UserID  string    `json:"userId"`
	AddedBy string    `json:"addedBy"`
	AddedAt time.Time `json:"addedAt"`
	Role    string    `json:"role"`
}
