package model

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	Model
	Name           string `gorm:"type:varchar(100);not null" json:"name"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string `gorm:"type:varchar(255);not null" json:"-"` // bcrypt 哈希，不外泄
	Role           string `gorm:"type:varchar(20);default:student;not null" json:"role"`
	ProfilePicture string `gorm:"type:varchar(255)" json:"profile_picture"`
}

// RoleLevel 角色权限等级，用于路由鉴权比较
func RoleLevel(role string) int {
	switch role {
	case RoleAdmin:
		return 1
	default:
		return 0
	}
}
