package dto

// UpdateProfileRequest mutates the caller's own profile. The target
// identity always comes from the verified token, never from the body.
type UpdateProfileRequest struct {
	FullName    string `json:"full_name" validate:"omitempty,min=2,max=100"`
	SchoolGrade string `json:"school_grade" validate:"omitempty,is-school-grade"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Photo       string `json:"photo" validate:"omitempty,url"`
}
