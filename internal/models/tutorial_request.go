package models

// CreateTutorialRequest represents the request body for creating a tutorial
type CreateTutorialRequest struct {
	Title       string `json:"title" binding:"required"` // Gin validation: must be present and non-empty
	Description string `json:"description"`
	Published   *bool  `json:"published"` // Pointer distinguishes an explicit false from an omitted field
}

// UpdateTutorialRequest represents the request body for a partial or full
// update. Every field is optional; only the supplied ones overwrite the
// stored record.
type UpdateTutorialRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Published   *bool   `json:"published"`
}
