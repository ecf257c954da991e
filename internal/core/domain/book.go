package domain

import "time"

// Book references exactly one Author. AuthorName is denormalised for read
// responses and resolved from the author at write time.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ISBN        string    `json:"isbn,omitempty"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	AuthorID    string    `json:"author_id"`
	AuthorName  string    `json:"author_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
