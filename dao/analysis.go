package dao

import (
	"Verity/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type AnalysisDAO struct {
	Repo[models.Analysis]
}

func NewAnalysisDAO(db *gorm.DB) *AnalysisDAO {
	return &AnalysisDAO{Repo: NewRepo[models.Analysis](db)}
}

// GetLatestByPost 某帖子最近一次分析，不存在返回 nil
func (d *AnalysisDAO) GetLatestByPost(ctx context.Context, postID int64) (*models.Analysis, error) {
	var item models.Analysis
	err := d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
