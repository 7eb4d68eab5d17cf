package models

import (
	"gorm.io/datatypes"
)

// Category is an image-gallery browsing entry, independent of the
// investigation records.
type Category struct {
	BaseModel
	Title    string                      `gorm:"not null" json:"title"`
	ImageURL string                      `json:"image_url"`
	Tags     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
}
