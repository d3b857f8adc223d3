package entity

import "time"

// User is a person known to the system, keyed by their platform user id.
// A User exists for anyone who has touched the system; it is never deleted.
type User struct {
	ID        string    `json:"id"`        // Platform user id, the identity key across all entities.
	FirstName string    `json:"firstName"` // The user's given name.
	LastName  string    `json:"lastName"`  // The user's family name.
	Email     string    `json:"email"`     // Contact email.
	Phone     string    `json:"phone"`     // Contact phone number.
	CreatedAt time.Time `json:"createdAt"` // Timestamp of the first time this user was seen.
}

// Merge applies the non-empty fields of update onto u, preserving anything
// the update does not carry. The creation timestamp is never overwritten.
func (u *User) Merge(update *User) {
	if update.FirstName != "" {
		u.FirstName = update.FirstName
	}
	if update.LastName != "" {
		u.LastName = update.LastName
	}
	if update.Email != "" {
		u.Email = update.Email
	}
	if update.Phone != "" {
		u.Phone = update.Phone
	}
}
