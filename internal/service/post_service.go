package service

import (
	"Blogly/internal/api/dto"
	"Blogly/internal/model"
	"Blogly/internal/pkg/util"
	"Blogly/internal/repository"
	"context"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

type PostService interface {
	ListPosts(ctx context.Context) ([]*model.Post, error)
	GetPost(ctx context.Context, id uint64) (*dto.PostDetailDTO, error)
	CreatePost(ctx context.Context, userID uint64, form *dto.PostFormDTO) (*model.Post, error)
	UpdatePost(ctx context.Context, id uint64, form *dto.PostFormDTO) (*model.Post, error)
	DeletePost(ctx context.Context, id uint64) (*model.Post, error)
}

type PostServiceImpl struct {
	userRepo repository.UserRepo
	postRepo repository.PostRepo
	tagRepo  repository.TagRepo
}

func NewPostService(userRepo repository.UserRepo, postRepo repository.PostRepo, tagRepo repository.TagRepo) PostService {
	return &PostServiceImpl{
		userRepo: userRepo,
		postRepo: postRepo,
		tagRepo:  tagRepo,
	}
}

func (s *PostServiceImpl) ListPosts(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.postRepo.GetAllPosts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list posts")
	}
	return posts, nil
}

func (s *PostServiceImpl) getPost(ctx context.Context, id uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get post %d", id)
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *PostServiceImpl) GetPost(ctx context.Context, id uint64) (*dto.PostDetailDTO, error) {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}
	tags, err := s.tagRepo.GetTagsByPostId(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get tags of post %d", id)
	}
	return &dto.PostDetailDTO{Post: post, Tags: tags}, nil
}

// CreatePost 作者必须存在，勾选的标签即帖子的全部标签
func (s *PostServiceImpl) CreatePost(ctx context.Context, userID uint64, form *dto.PostFormDTO) (*model.Post, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, errors.Wrapf(err, "get user %d", userID)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err = util.ValidateDTO(form); err != nil {
		return nil, invalidParam(err)
	}

	post := &model.Post{}
	if err = copier.Copy(post, form); err != nil {
		return nil, errors.Wrap(err, "copy post form")
	}
	post.UserID = user.ID

	if err = s.postRepo.CreatePost(ctx, post, form.Tags); err != nil {
		return nil, errors.Wrap(err, "create post")
	}
	return post, nil
}

// UpdatePost 标签集合整体替换为表单提交的集合
func (s *PostServiceImpl) UpdatePost(ctx context.Context, id uint64, form *dto.PostFormDTO) (*model.Post, error) {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = util.ValidateDTO(form); err != nil {
		return nil, invalidParam(err)
	}

	post.Title = form.Title
	post.Content = form.Content
	if err = s.postRepo.UpdatePost(ctx, post, form.Tags); err != nil {
		return nil, errors.Wrapf(err, "update post %d", id)
	}
	return post, nil
}

// DeletePost 返回被删除的帖子，调用方据此决定跳转
func (s *PostServiceImpl) DeletePost(ctx context.Context, id uint64) (*model.Post, error) {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}
	affected, err := s.postRepo.DeletePost(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "delete post %d", id)
	}
	if affected == 0 {
		return nil, ErrPostNotFound
	}
	return post, nil
}
