package handler

import (
	"Blogly/internal/api/dto"
	"Blogly/internal/pkg/response"
	"Blogly/internal/service"
	"fmt"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
	userSvc service.UserService
	tagSvc  service.TagService
}

func NewPostHandler(postSvc service.PostService, userSvc service.UserService, tagSvc service.TagService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
		userSvc: userSvc,
		tagSvc:  tagSvc,
	}
}

// Home 首页展示全部帖子
func (s *PostHandler) Home(c *gin.Context) {
	posts, err := s.postSvc.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Page(c, "homepage.html", gin.H{
		"Title": "Recent Posts",
		"Posts": posts,
	})
}

func (s *PostHandler) NewPostForm(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	user, err := s.userSvc.GetUser(ctx, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	tags, err := s.tagSvc.ListTags(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Page(c, "new_post.html", gin.H{
		"Title": "Add Post",
		"User":  user,
		"Tags":  tags,
	})
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req dto.PostFormDTO
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if _, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Redirect(c, fmt.Sprintf("/users/%d", userID))
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	detail, err := s.postSvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Page(c, "post_detail.html", gin.H{
		"Title":  detail.Post.Title,
		"Detail": detail,
	})
}

func (s *PostHandler) EditPostForm(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	detail, err := s.postSvc.GetPost(ctx, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	tags, err := s.tagSvc.ListTags(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Page(c, "edit_post.html", gin.H{
		"Title":  "Edit Post",
		"Detail": detail,
		"Tags":   tags,
	})
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	var req dto.PostFormDTO
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if _, err := s.postSvc.UpdatePost(c.Request.Context(), postID, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Redirect(c, fmt.Sprintf("/posts/%d", postID))
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	if _, err := s.postSvc.DeletePost(c.Request.Context(), postID); err != nil {
		response.Error(c, err)
		return
	}

	response.Redirect(c, "/")
}
