package dao

import (
	"Verity/models"
	"context"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// FindFeed 按创建时间倒序拉取帖子
func (d *PostDAO) FindFeed(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// UpdateByAuthor 仅作者可改，返回是否命中
func (d *PostDAO) UpdateByAuthor(ctx context.Context, postID, authorID int64, data map[string]any) (int64, error) {
	tx := d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ? AND author_id = ?", postID, authorID).
		Updates(data)
	return tx.RowsAffected, tx.Error
}

// DeleteByAuthor 同事务内先删投票再删帖子
// 投票上有外键级联，这里显式删除兼容未启外键的库
func (d *PostDAO) DeleteByAuthor(ctx context.Context, postID, authorID int64) (int64, error) {
	var affected int64
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND author_id = ?", postID, authorID).Delete(&models.Post{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", postID).Delete(&models.Analysis{}).Error
	})
	return affected, err
}
