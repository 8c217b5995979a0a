package model

// TeamMember 用户与团队的关联记录
// 原型数据没有唯一约束，重复加入会产生新行，保持该行为
type TeamMember struct {
	Model
	TeamID uint `gorm:"not null;index" json:"team_id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}
