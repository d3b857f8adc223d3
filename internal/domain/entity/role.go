// Package entity contains the core business objects of the project.
package entity

// Role represents the kind of work a worker performs.
type Role string

const (
	// RoleCustomerService indicates a customer service worker.
	RoleCustomerService Role = "customer_service"
	// RoleRider indicates a delivery rider. Riders must declare a region.
	RoleRider Role = "rider"
	// RoleAdmin indicates an administrative worker.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomerService, RoleRider, RoleAdmin:
		return true
	default:
		return false
	}
}
