package model

import "time"

// Vote 投票记录
// user_id 单列唯一索引：每个用户全局只能投一票（不是每个项目一票）
// 唯一性由存储层保证，并发重复插入会触发唯一键冲突
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uniq_vote_user" json:"user_id"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
