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

type UserService interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	GetUser(ctx context.Context, id uint64) (*model.User, error)
	GetUserDetail(ctx context.Context, id uint64) (*dto.UserDetailDTO, error)
	CreateUser(ctx context.Context, form *dto.UserFormDTO) (*model.User, error)
	UpdateUser(ctx context.Context, id uint64, form *dto.UserFormDTO) (*model.User, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	postRepo repository.PostRepo
}

func NewUserService(userRepo repository.UserRepo, postRepo repository.PostRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return users, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id uint64) (*model.User, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get user %d", id)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserServiceImpl) GetUserDetail(ctx context.Context, id uint64) (*dto.UserDetailDTO, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.GetPostsByUserId(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get posts of user %d", id)
	}
	return &dto.UserDetailDTO{User: user, Posts: posts}, nil
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, form *dto.UserFormDTO) (*model.User, error) {
	if err := util.ValidateDTO(form); err != nil {
		return nil, invalidParam(err)
	}

	user := &model.User{}
	if err := copier.Copy(user, form); err != nil {
		return nil, errors.Wrap(err, "copy user form")
	}
	user.ApplyDefaults()

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, id uint64, form *dto.UserFormDTO) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = util.ValidateDTO(form); err != nil {
		return nil, invalidParam(err)
	}
	if err = copier.Copy(user, form); err != nil {
		return nil, errors.Wrap(err, "copy user form")
	}
	user.ApplyDefaults()

	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, errors.Wrapf(err, "update user %d", id)
	}
	return user, nil
}

// DeleteUser 帖子随用户一并删除
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id uint64) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	affected, err := s.userRepo.DeleteUser(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "delete user %d", id)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
