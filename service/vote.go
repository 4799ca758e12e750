package service

import (
	"Verity/dao"
	"Verity/models"
	"Verity/pkg/response"
	"Verity/pkg/snowflake"
	"Verity/socket"
	"Verity/types"
	"context"
	"errors"
)

// ErrDuplicateVote 一人一票，重复写入在调用侧按"已投过"静默处理
var ErrDuplicateVote = errors.New("duplicate vote")

var _ IVoteService = (*VoteService)(nil)

type IVoteService interface {
	Cast(ctx context.Context, postID, voterID int64, voteType string) (*types.CastVoteResponse, error)
	Tally(ctx context.Context, postID, viewerID int64, pending string) (*types.VoteTally, error)
}

type VoteService struct {
	VoteDAO   *dao.VoteDAO
	PostDAO   *dao.PostDAO
	Publisher *socket.Publisher
}

// Cast 投票，只增不改
// 唯一键冲突映射为 ErrDuplicateVote 后吞掉，响应带上已有票
func (s *VoteService) Cast(ctx context.Context, postID, voterID int64, voteType string) (*types.CastVoteResponse, error) {
	if !models.IsValidVoteType(voteType) {
		return nil, response.NewError(400, "vote_type must be true or fake")
	}

	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.ErrNotFound
	}

	vote := &models.Vote{
		ID:       snowflake.GenID(),
		PostID:   postID,
		VoterID:  voterID,
		VoteType: voteType,
	}
	err = s.VoteDAO.Create(ctx, vote)
	if dao.IsDupKeyErr(err) {
		err = ErrDuplicateVote
	}
	if err != nil {
		if !errors.Is(err, ErrDuplicateVote) {
			return nil, err
		}
		// 已投过：回查既有票，不报错
		existing, qerr := s.VoteDAO.GetByPostVoter(ctx, postID, voterID)
		if qerr != nil {
			return nil, qerr
		}
		resp := &types.CastVoteResponse{PostID: postID, Duplicate: true}
		if existing != nil {
			resp.VoteType = existing.VoteType
		}
		return resp, nil
	}

	s.Publisher.PublishVoteEvent(ctx, postID, types.EventCreated, vote)
	return &types.CastVoteResponse{PostID: postID, VoteType: voteType}, nil
}

// Tally 票面，viewerID 为 0 表示匿名访客
// pending 是调用方还在途的乐观票，用 Reconcile 确保本人至多计一次
func (s *VoteService) Tally(ctx context.Context, postID, viewerID int64, pending string) (*types.VoteTally, error) {
	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.ErrNotFound
	}

	votes, err := s.VoteDAO.FindByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	tally := Reconcile(votes, viewerID, pending)
	tally.PostID = postID
	return tally, nil
}

// Reconcile 计票：先数除本人外的确认票，再按"生效票"给本人计一票
// 生效票取已确认票，没有确认票才取在途乐观票
// 这样确认事件与乐观标记同时存在时本人不会被数两次
func Reconcile(votes []*models.Vote, viewerID int64, pending string) *types.VoteTally {
	tally := &types.VoteTally{}

	effective := ""
	for _, v := range votes {
		if viewerID != 0 && v.VoterID == viewerID {
			effective = v.VoteType
			tally.UserVote = v.VoteType
			continue
		}
		switch v.VoteType {
		case models.VoteTrue:
			tally.TrueCount++
		case models.VoteFake:
			tally.FakeCount++
		}
	}

	if effective == "" && models.IsValidVoteType(pending) {
		effective = pending
	}
	switch effective {
	case models.VoteTrue:
		tally.TrueCount++
	case models.VoteFake:
		tally.FakeCount++
	}
	return tally
}
