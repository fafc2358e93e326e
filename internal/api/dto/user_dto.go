package dto

import "Blogly/internal/model"

// UserFormDTO 新建/编辑用户表单
type UserFormDTO struct {
	FirstName string `form:"first_name" binding:"required" validate:"required"`
	LastName  string `form:"last_name" binding:"required" validate:"required"`
	ImageURL  string `form:"image_url"`
}

// UserDetailDTO 用户详情及其帖子
type UserDetailDTO struct {
	User  *model.User
	Posts []*model.Post
}
