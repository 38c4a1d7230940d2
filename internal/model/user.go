package model

import "time"

// Role 注册后不可变，没有改角色的接口
type Role string

const (
	RoleUser  Role = "USER"
	RoleHost  Role = "HOST"
	RoleAdmin Role = "ADMIN"
)

// CanCreateEvents 只有主办方和管理员可以建活动
func (r Role) CanCreateEvents() bool {
	return r == RoleHost || r == RoleAdmin
}

// CanSeeAllRSVPs 普通用户只能看自己的RSVP
func (r Role) CanSeeAllRSVPs() bool {
	return r == RoleHost || r == RoleAdmin
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleHost, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"size:64"`
	Email     string `gorm:"uniqueIndex;size:128;not null"`
	Password  string `gorm:"size:255;not null"`
	Role      Role   `gorm:"size:8;not null;default:'USER'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
