package repository

import (
	"Blogly/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// existingIDs 过滤出 m 对应表中真实存在的 id，不存在的 id 直接忽略
func existingIDs(tx *gorm.DB, m any, ids []uint64) ([]uint64, error) {
	existing := make([]uint64, 0, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}
	err := tx.Model(m).Where("id IN ?", ids).Order("id").Pluck("id", &existing).Error
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func insertPostTags(tx *gorm.DB, rows []*model.PostTag) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error
}

// replaceTagsOfPost 用 tagIDs 整体替换帖子的标签集合
func replaceTagsOfPost(tx *gorm.DB, postID uint64, tagIDs []uint64) error {
	if err := tx.Where("post_id = ?", postID).Delete(&model.PostTag{}).Error; err != nil {
		return err
	}
	ids, err := existingIDs(tx, &model.Tag{}, tagIDs)
	if err != nil {
		return err
	}
	rows := make([]*model.PostTag, 0, len(ids))
	for _, tagID := range ids {
		rows = append(rows, &model.PostTag{PostID: postID, TagID: tagID})
	}
	return insertPostTags(tx, rows)
}

// replacePostsOfTag 用 postIDs 整体替换标签关联的帖子集合
func replacePostsOfTag(tx *gorm.DB, tagID uint64, postIDs []uint64) error {
	if err := tx.Where("tag_id = ?", tagID).Delete(&model.PostTag{}).Error; err != nil {
		return err
	}
	return appendTagToPosts(tx, tagID, postIDs)
}

// appendTagToPosts 把标签追加到每个帖子上，不影响帖子已有的其他标签
func appendTagToPosts(tx *gorm.DB, tagID uint64, postIDs []uint64) error {
	ids, err := existingIDs(tx, &model.Post{}, postIDs)
	if err != nil {
		return err
	}
	rows := make([]*model.PostTag, 0, len(ids))
	for _, postID := range ids {
		rows = append(rows, &model.PostTag{PostID: postID, TagID: tagID})
	}
	return insertPostTags(tx, rows)
}
