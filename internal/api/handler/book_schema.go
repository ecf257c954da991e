package handler

import "time"

type bookRequest struct {
	Title       string  `json:"title"       validate:"required"`
	ISBN        string  `json:"isbn"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Description string  `json:"description"`
	AuthorID    string  `json:"author_id"   validate:"required"`
}

type bookResponse struct {
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
