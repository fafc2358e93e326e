package handler

import (
	"Blogly/internal/api/dto"
	"Blogly/internal/pkg/response"
	"Blogly/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) ListUsers(c *gin.Context) {
	users, err := s.userSvc.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Page(c, "users_list.html", gin.H{
		"Title": "Users",
		"Users": users,
	})
}

func (s *UserHandler) NewUserForm(c *gin.Context) {
	response.Page(c, "new_user.html", gin.H{"Title": "Create a user"})
}

func (s *UserHandler) CreateUser(c *gin.Context) {
	var req dto.UserFormDTO
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if _, err := s.userSvc.CreateUser(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Redirect(c, "/users")
}

func (s *UserHandler) GetUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	detail, err := s.userSvc.GetUserDetail(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Page(c, "user_detail.html", gin.H{
		"Title":  detail.User.FullName(),
		"Detail": detail,
	})
}

func (s *UserHandler) EditUserForm(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	user, err := s.userSvc.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Page(c, "edit_user.html", gin.H{
		"Title": "Edit a user",
		"User":  user,
	})
}

func (s *UserHandler) UpdateUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req dto.UserFormDTO
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if _, err := s.userSvc.UpdateUser(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Redirect(c, "/users")
}

func (s *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	if err := s.userSvc.DeleteUser(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Redirect(c, "/users")
}
