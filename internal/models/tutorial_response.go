package models

import "time"

// TutorialResponse is the serialized form of a tutorial returned by the API.
// The id is the hex form of the Mongo ObjectID; timestamps marshal as
// RFC 3339 strings.
type TutorialResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MessageResponse is the body shape shared by every status/error response
type MessageResponse struct {
	Message string `json:"message"`
}
