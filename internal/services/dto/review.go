package dto

// CreateReviewRequest adds a review to an investigation. Rating bounds are
// inclusive on both ends.
type CreateReviewRequest struct {
	InvestigationID string `json:"investigation_id" validate:"required"`
	ExplorerName    string `json:"explorer_name" validate:"required,max=100"`
	Rating          int    `json:"rating" validate:"required,min=1,max=5"`
	Comment         string `json:"comment" validate:"required,max=1000"`
}
