package models

type Review struct {
	BaseModel
	InvestigationID string `gorm:"type:uuid;not null;index" json:"investigation_id"`
	ExplorerName    string `gorm:"not null" json:"explorer_name"`
	Rating          int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment         string `gorm:"not null" json:"comment"`

	Investigation *Investigation `gorm:"foreignKey:InvestigationID" json:"-"`
}
