package domain

import "time"

// Author is the owning side of the author/book relation: deleting an author
// removes every book that references it.
type Author struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Biography string    `json:"biography,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
