package model

type Team struct {
	Model
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	LogoURL     string `gorm:"type:varchar(255)" json:"logo_url"`

	Members []TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}
