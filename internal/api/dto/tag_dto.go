package dto

import "Blogly/internal/model"

// TagFormDTO 新建/编辑标签表单，Posts 为勾选的帖子 id
type TagFormDTO struct {
	Name  string   `form:"name" binding:"required" validate:"required"`
	Posts []uint64 `form:"posts"`
}

// TagDetailDTO 标签详情及关联帖子
type TagDetailDTO struct {
	Tag   *model.Tag
	Posts []*model.Post
}

// HasPost 模板中用于回显勾选状态
func (d *TagDetailDTO) HasPost(postID uint64) bool {
	for _, post := range d.Posts {
		if post.ID == postID {
			return true
		}
	}
	return false
}
