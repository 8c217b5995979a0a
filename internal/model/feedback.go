package model

type Feedback struct {
	Model
	ProjectID uint   `gorm:"not null;index" json:"project_id"`
	Content   string `gorm:"type:text;not null" json:"content"`
	Author    string `gorm:"type:varchar(100);not null" json:"author"` // 自由文本，不关联用户表
}
