package repository

import (
	"Blogly/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type TagRepo interface {
	GetAllTags(ctx context.Context) ([]*model.Tag, error)
	GetTag(ctx context.Context, id uint64) (*model.Tag, error)
	GetTagByName(ctx context.Context, name string) (*model.Tag, error)
	GetTagsByPostId(ctx context.Context, postID uint64) ([]*model.Tag, error)
	CreateTag(ctx context.Context, tag *model.Tag, postIDs []uint64) error
	UpdateTag(ctx context.Context, tag *model.Tag, postIDs []uint64) error
	DeleteTag(ctx context.Context, id uint64) (int64, error)
}

type tagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepo {
	return &tagRepoImpl{
		db: db,
	}
}

func (s *tagRepoImpl) GetAllTags(ctx context.Context) ([]*model.Tag, error) {
	tags := make([]*model.Tag, 0)
	if err := s.db.WithContext(ctx).Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *tagRepoImpl) GetTag(ctx context.Context, id uint64) (*model.Tag, error) {
	var tag model.Tag
	err := s.db.WithContext(ctx).First(&tag, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (s *tagRepoImpl) GetTagByName(ctx context.Context, name string) (*model.Tag, error) {
	var tag model.Tag
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (s *tagRepoImpl) GetTagsByPostId(ctx context.Context, postID uint64) ([]*model.Tag, error) {
	tags := make([]*model.Tag, 0)
	err := s.db.WithContext(ctx).
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", postID).
		Order("tags.name").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag 新建标签并追加到 postIDs 中已存在的帖子上
func (s *tagRepoImpl) CreateTag(ctx context.Context, tag *model.Tag, postIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tag).Error; err != nil {
			return err
		}
		return appendTagToPosts(tx, tag.ID, postIDs)
	})
}

// UpdateTag 覆盖名称，并用 postIDs 整体替换关联帖子
func (s *tagRepoImpl) UpdateTag(ctx context.Context, tag *model.Tag, postIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Tag{}).Where("id = ?", tag.ID).Update("name", tag.Name).Error
		if err != nil {
			return err
		}
		return replacePostsOfTag(tx, tag.ID, postIDs)
	})
}

func (s *tagRepoImpl) DeleteTag(ctx context.Context, id uint64) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&model.PostTag{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Tag{}, id)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}
