package dto

// CreateCategoryRequest creates a gallery category.
type CreateCategoryRequest struct {
	Title    string   `json:"title" validate:"required,max=200"`
	ImageURL string   `json:"image_url" validate:"omitempty,url"`
	Tags     []string `json:"tags" validate:"omitempty,max=20,dive,max=50"`
}
