package dto

import "Blogly/internal/model"

// PostFormDTO 新建/编辑帖子表单，Tags 为勾选的标签 id
type PostFormDTO struct {
	Title   string   `form:"title" binding:"required" validate:"required"`
	Content string   `form:"content" binding:"required" validate:"required"`
	Tags    []uint64 `form:"tags"`
}

// PostDetailDTO 帖子详情，Post.User 已加载
type PostDetailDTO struct {
	Post *model.Post
	Tags []*model.Tag
}

// HasTag 模板中用于回显勾选状态
func (d *PostDetailDTO) HasTag(tagID uint64) bool {
	for _, tag := range d.Tags {
		if tag.ID == tagID {
			return true
		}
	}
	return false
}
