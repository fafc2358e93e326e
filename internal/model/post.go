package model

import (
	"time"
)

type Post struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
	UserID    uint64    `gorm:"not null;index:idx_posts_user_id"`

	// 关联关系，仅在显式 Preload 时填充
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Post) TableName() string {
	return "posts"
}
