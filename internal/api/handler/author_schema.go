package handler

import "time"

type authorRequest struct {
	Name      string `json:"name"      validate:"required"`
	Biography string `json:"biography"`
}

type authorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Biography string    `json:"biography,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
