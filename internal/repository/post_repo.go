package repository

import (
	"Blogly/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepo interface {
	GetAllPosts(ctx context.Context) ([]*model.Post, error)
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostsByUserId(ctx context.Context, userID uint64) ([]*model.Post, error)
	GetPostsByTagId(ctx context.Context, tagID uint64) ([]*model.Post, error)
	CreatePost(ctx context.Context, post *model.Post, tagIDs []uint64) error
	UpdatePost(ctx context.Context, post *model.Post, tagIDs []uint64) error
	DeletePost(ctx context.Context, id uint64) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s PostRepoImpl) GetAllPosts(ctx context.Context) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := s.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Preload("User").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s PostRepoImpl) GetPostsByUserId(ctx context.Context, userID uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s PostRepoImpl) GetPostsByTagId(ctx context.Context, tagID uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := s.db.WithContext(ctx).
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id = ?", tagID).
		Order("posts.created_at DESC, posts.id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, tagIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}
		return replaceTagsOfPost(tx, post.ID, tagIDs)
	})
}

// UpdatePost 覆盖标题与正文，并整体替换标签集合；created_at 与 user_id 不变
func (s PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post, tagIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Post{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
			"title":   post.Title,
			"content": post.Content,
		}).Error
		if err != nil {
			return err
		}
		return replaceTagsOfPost(tx, post.ID, tagIDs)
	})
}

func (s PostRepoImpl) DeletePost(ctx context.Context, id uint64) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.PostTag{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}
