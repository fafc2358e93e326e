package service

import (
	"Blogly/internal/api/dto"
	"Blogly/internal/model"
	"Blogly/internal/pkg/util"
	"Blogly/internal/repository"
	"context"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type TagService interface {
	ListTags(ctx context.Context) ([]*model.Tag, error)
	GetTag(ctx context.Context, id uint64) (*dto.TagDetailDTO, error)
	CreateTag(ctx context.Context, form *dto.TagFormDTO) (*model.Tag, error)
	UpdateTag(ctx context.Context, id uint64, form *dto.TagFormDTO) (*model.Tag, error)
	DeleteTag(ctx context.Context, id uint64) error
}

type TagServiceImpl struct {
	tagRepo  repository.TagRepo
	postRepo repository.PostRepo
}

func NewTagService(tagRepo repository.TagRepo, postRepo repository.PostRepo) TagService {
	return &TagServiceImpl{
		tagRepo:  tagRepo,
		postRepo: postRepo,
	}
}

func (s *TagServiceImpl) ListTags(ctx context.Context) ([]*model.Tag, error) {
	tags, err := s.tagRepo.GetAllTags(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list tags")
	}
	return tags, nil
}

func (s *TagServiceImpl) getTag(ctx context.Context, id uint64) (*model.Tag, error) {
	tag, err := s.tagRepo.GetTag(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get tag %d", id)
	}
	if tag == nil {
		return nil, ErrTagNotFound
	}
	return tag, nil
}

func (s *TagServiceImpl) GetTag(ctx context.Context, id uint64) (*dto.TagDetailDTO, error) {
	tag, err := s.getTag(ctx, id)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.GetPostsByTagId(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get posts of tag %d", id)
	}
	return &dto.TagDetailDTO{Tag: tag, Posts: posts}, nil
}

// checkNameFree 名称被 selfID 以外的标签占用时返回 ErrTagExist
func (s *TagServiceImpl) checkNameFree(ctx context.Context, name string, selfID uint64) error {
	existing, err := s.tagRepo.GetTagByName(ctx, name)
	if err != nil {
		return errors.Wrapf(err, "get tag by name %q", name)
	}
	if existing != nil && existing.ID != selfID {
		return ErrTagExist
	}
	return nil
}

// CreateTag 新标签追加到所选帖子上，帖子原有标签保留
func (s *TagServiceImpl) CreateTag(ctx context.Context, form *dto.TagFormDTO) (*model.Tag, error) {
	if err := util.ValidateDTO(form); err != nil {
		return nil, invalidParam(err)
	}
	if err := s.checkNameFree(ctx, form.Name, 0); err != nil {
		return nil, err
	}

	tag := &model.Tag{}
	if err := copier.Copy(tag, form); err != nil {
		return nil, errors.Wrap(err, "copy tag form")
	}

	if err := s.tagRepo.CreateTag(ctx, tag, form.Posts); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTagExist
		}
		return nil, errors.Wrap(err, "create tag")
	}
	return tag, nil
}

// UpdateTag 关联帖子整体替换为表单提交的集合
func (s *TagServiceImpl) UpdateTag(ctx context.Context, id uint64, form *dto.TagFormDTO) (*model.Tag, error) {
	tag, err := s.getTag(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = util.ValidateDTO(form); err != nil {
		return nil, invalidParam(err)
	}
	if err = s.checkNameFree(ctx, form.Name, id); err != nil {
		return nil, err
	}

	tag.Name = form.Name
	if err = s.tagRepo.UpdateTag(ctx, tag, form.Posts); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTagExist
		}
		return nil, errors.Wrapf(err, "update tag %d", id)
	}
	return tag, nil
}

func (s *TagServiceImpl) DeleteTag(ctx context.Context, id uint64) error {
	if _, err := s.getTag(ctx, id); err != nil {
		return err
	}
	affected, err := s.tagRepo.DeleteTag(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "delete tag %d", id)
	}
	if affected == 0 {
		return ErrTagNotFound
	}
	return nil
}
