package handler

import (
	"Blogly/internal/api/dto"
	"Blogly/internal/pkg/response"
	"Blogly/internal/service"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagSvc  service.TagService
	postSvc service.PostService
}

func NewTagHandler(tagSvc service.TagService, postSvc service.PostService) *TagHandler {
	return &TagHandler{
		tagSvc:  tagSvc,
		postSvc: postSvc,
	}
}

func (s *TagHandler) ListTags(c *gin.Context) {
	tags, err := s.tagSvc.ListTags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Page(c, "tags_list.html", gin.H{
		"Title": "Tags",
		"Tags":  tags,
	})
}

func (s *TagHandler) NewTagForm(c *gin.Context) {
	posts, err := s.postSvc.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Page(c, "new_tag.html", gin.H{
		"Title": "Create a tag",
		"Posts": posts,
	})
}

// CreateTag 所选帖子在原有标签之外追加新标签
func (s *TagHandler) CreateTag(c *gin.Context) {
	var req dto.TagFormDTO
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if _, err := s.tagSvc.CreateTag(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Redirect(c, "/tags")
}

func (s *TagHandler) GetTag(c *gin.Context) {
	tagID, ok := pathID(c, "tag_id")
	if !ok {
		return
	}

	detail, err := s.tagSvc.GetTag(c.Request.Context(), tagID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Page(c, "tag_detail.html", gin.H{
		"Title":  detail.Tag.Name,
		"Detail": detail,
	})
}

func (s *TagHandler) EditTagForm(c *gin.Context) {
	tagID, ok := pathID(c, "tag_id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	detail, err := s.tagSvc.GetTag(ctx, tagID)
	if err != nil {
		response.Error(c, err)
		return
	}
	posts, err := s.postSvc.ListPosts(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Page(c, "edit_tag.html", gin.H{
		"Title":  "Edit a tag",
		"Detail": detail,
		"Posts":  posts,
	})
}

// UpdateTag 关联帖子整体替换为所选帖子
func (s *TagHandler) UpdateTag(c *gin.Context) {
	tagID, ok := pathID(c, "tag_id")
	if !ok {
		return
	}

	var req dto.TagFormDTO
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if _, err := s.tagSvc.UpdateTag(c.Request.Context(), tagID, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Redirect(c, "/tags")
}

func (s *TagHandler) DeleteTag(c *gin.Context) {
	tagID, ok := pathID(c, "tag_id")
	if !ok {
		return
	}

	if err := s.tagSvc.DeleteTag(c.Request.Context(), tagID); err != nil {
		response.Error(c, err)
		return
	}

	response.Redirect(c, "/tags")
}
