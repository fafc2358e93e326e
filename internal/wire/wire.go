package wire

import (
	"Blogly/internal/api"
	"Blogly/internal/api/handler"
	"Blogly/internal/api/view"
	"Blogly/internal/repository"
	"Blogly/internal/service"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepository(db)
	tagRepo := repository.NewTagRepository(db)

	userService := service.NewUserService(userRepo, postRepo)
	postService := service.NewPostService(userRepo, postRepo, tagRepo)
	tagService := service.NewTagService(tagRepo, postRepo)

	handlers := &api.HandlersGroup{
		UserHandler: handler.NewUserHandler(userService),
		PostHandler: handler.NewPostHandler(postService, userService, tagService),
		TagHandler:  handler.NewTagHandler(tagService, postService),
	}

	tmpl, err := view.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := api.SetupRouter(handlers, tmpl)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
