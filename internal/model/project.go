package model

import "gorm.io/datatypes"

// Project 展示项目，采用扩展元数据版式（tags/difficulty/素材引用）
type Project struct {
	Model
	TeamID uint `gorm:"not null;index" json:"team_id"`

	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Summary     string `gorm:"type:text" json:"summary"`
	Description string `gorm:"type:text" json:"description"`
	Building    string `gorm:"type:varchar(100)" json:"building"`
	Members     string `gorm:"type:varchar(255)" json:"members"` // 成员名单，逗号分隔的自由文本

	RepoURL     string `gorm:"type:varchar(255)" json:"repo_url"`
	Branch      string `gorm:"type:varchar(100)" json:"branch"`
	LiveDemoURL string `gorm:"type:varchar(255)" json:"live_demo_url"`
	VideoURL    string `gorm:"type:varchar(255)" json:"video_url"`

	Tags       string `gorm:"type:varchar(255)" json:"tags"` // 逗号分隔
	Difficulty string `gorm:"type:varchar(20);default:Beginner" json:"difficulty"`

	OneWord   string `gorm:"type:varchar(100)" json:"one_word"`
	Bug       string `gorm:"type:text" json:"bug"`
	NextSkill string `gorm:"type:varchar(255)" json:"next_skill"`

	NewVersionDesc string `gorm:"type:text" json:"new_version_desc"`

	ThumbnailURL string         `gorm:"type:varchar(255)" json:"thumbnail_url"`
	AssetURLs    datatypes.JSON `json:"asset_urls"` // 素材引用有序列表
	CIBadgeURL   string         `gorm:"type:varchar(255)" json:"ci_badge_url"`

	Votes int `gorm:"default:0;not null" json:"votes"`

	Feedbacks []Feedback `gorm:"foreignKey:ProjectID" json:"feedbacks,omitempty"`
}
