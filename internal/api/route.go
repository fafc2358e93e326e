package api

import (
	"Blogly/internal/api/middleware"
	"Blogly/internal/pkg/logger"
	"Blogly/internal/pkg/response"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, tmpl *template.Template) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})
	r.HandleMethodNotAllowed = true
	r.SetHTMLTemplate(tmpl)

	// TraceId & Logger & Recovery
	r.Use(middleware.TraceMiddleware())
	r.Use(logger.AccessLog())
	r.Use(gin.CustomRecovery(response.Recovery))
	r.Use(middleware.AuditMiddleware())

	r.NoRoute(response.NotFound)
	r.NoMethod(func(c *gin.Context) {
		response.Fail(c, http.StatusMethodNotAllowed, "")
	})

	r.GET("/", group.PostHandler.Home)

	userGroup := r.Group("/users")
	{
		userGroup.GET("", group.UserHandler.ListUsers)
		userGroup.GET("/new", group.UserHandler.NewUserForm)
		userGroup.POST("/new", group.UserHandler.CreateUser)
		userGroup.GET("/:user_id", group.UserHandler.GetUser)
		userGroup.GET("/:user_id/edit", group.UserHandler.EditUserForm)
		userGroup.POST("/:user_id/edit", group.UserHandler.UpdateUser)
		userGroup.POST("/:user_id/delete", group.UserHandler.DeleteUser)

		userGroup.GET("/:user_id/posts/new", group.PostHandler.NewPostForm)
		userGroup.POST("/:user_id/posts/new", group.PostHandler.CreatePost)
	}

	postGroup := r.Group("/posts")
	{
		postGroup.GET("/:post_id", group.PostHandler.GetPost)
		postGroup.GET("/:post_id/edit", group.PostHandler.EditPostForm)
		postGroup.POST("/:post_id/edit", group.PostHandler.UpdatePost)
		postGroup.POST("/:post_id/delete", group.PostHandler.DeletePost)
	}

	tagGroup := r.Group("/tags")
	{
		tagGroup.GET("", group.TagHandler.ListTags)
		tagGroup.GET("/new", group.TagHandler.NewTagForm)
		tagGroup.POST("/new", group.TagHandler.CreateTag)
		tagGroup.GET("/:tag_id", group.TagHandler.GetTag)
		tagGroup.GET("/:tag_id/edit", group.TagHandler.EditTagForm)
		tagGroup.POST("/:tag_id/edit", group.TagHandler.UpdateTag)
		tagGroup.POST("/:tag_id/delete", group.TagHandler.DeleteTag)
	}

	return r
}
