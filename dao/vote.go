package dao

import (
	"Verity/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type VoteDAO struct {
	Repo[models.Vote]
}

func NewVoteDAO(db *gorm.DB) *VoteDAO {
	return &VoteDAO{Repo: NewRepo[models.Vote](db)}
}

// FindByPost 某帖子的全部投票
func (d *VoteDAO) FindByPost(ctx context.Context, postID int64) ([]*models.Vote, error) {
	return d.FindAllByWhere(ctx, "post_id = ?", postID)
}

// GetByPostVoter 查询某用户对某帖子的投票，不存在返回 nil
func (d *VoteDAO) GetByPostVoter(ctx context.Context, postID, voterID int64) (*models.Vote, error) {
	var item models.Vote
	err := d.Db.WithContext(ctx).
		Where("post_id = ? AND voter_id = ?", postID, voterID).
		Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// CountByPost 分类型计数
func (d *VoteDAO) CountByPost(ctx context.Context, postID int64) (trueCount, fakeCount int64, err error) {
	type row struct {
		VoteType string
		Cnt      int64
	}
	var rows []row
	err = d.Db.WithContext(ctx).
		Model(&models.Vote{}).
		Select("vote_type, COUNT(*) AS cnt").
		Where("post_id = ?", postID).
		Group("vote_type").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, err
	}
	for _, r := range rows {
		switch r.VoteType {
		case models.VoteTrue:
			trueCount = r.Cnt
		case models.VoteFake:
			fakeCount = r.Cnt
		}
	}
	return trueCount, fakeCount, nil
}

// CountByPosts 批量计数，返回 post_id -> (true, fake)
func (d *VoteDAO) CountByPosts(ctx context.Context, postIDs []int64) (map[int64][2]int64, error) {
	result := make(map[int64][2]int64, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}
	type row struct {
		PostID   int64
		VoteType string
		Cnt      int64
	}
	var rows []row
	err := d.Db.WithContext(ctx).
		Model(&models.Vote{}).
		Select("post_id, vote_type, COUNT(*) AS cnt").
		Where("post_id IN ?", postIDs).
		Group("post_id, vote_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts := result[r.PostID]
		switch r.VoteType {
		case models.VoteTrue:
			counts[0] = r.Cnt
		case models.VoteFake:
			counts[1] = r.Cnt
		}
		result[r.PostID] = counts
	}
	return result, nil
}
