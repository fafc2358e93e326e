package model

import "Blogly/internal/pkg/consts"

type User struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
	ImageURL  string `gorm:"type:varchar(255);not null;default:'https://via.placeholder.com/150'"`
}

func (User) TableName() string {
	return "users"
}

// FullName 展示用姓名
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// ApplyDefaults 未填写头像时使用占位图
func (u *User) ApplyDefaults() {
	if u.ImageURL == "" {
		u.ImageURL = consts.DefaultImageURL
	}
}
