package models

type User struct {
	BaseModel
	FullName     string   `gorm:"not null" json:"full_name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'researcher'" json:"role"`
	SchoolGrade  string   `gorm:"index;not null" json:"school_grade"`
	Description  string   `json:"description"`
	Photo        string   `gorm:"default:'https://via.placeholder.com/150x150?text=Sin+Foto'" json:"photo"`
	IsActive     bool     `gorm:"default:true" json:"is_active"`
}
