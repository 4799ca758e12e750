package service

import (
	"Verity/dao"
	"Verity/dao/cache"
	"Verity/models"
	"Verity/pkg/response"
	"Verity/pkg/snowflake"
	"Verity/pkg/utils"
	"Verity/socket"
	"Verity/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	Feed(ctx context.Context, limit, offset int) ([]*types.PostItem, error)
	GetByID(ctx context.Context, postID int64) (*types.PostItem, error)
	GetByCode(ctx context.Context, code string) (*types.PostItem, error)
	Create(ctx context.Context, authorID int64, req *types.CreatePostRequest) (*types.PostItem, error)
	Update(ctx context.Context, postID, authorID int64, req *types.UpdatePostRequest) (*types.PostItem, error)
	Delete(ctx context.Context, postID, authorID int64) error
}

type PostService struct {
	PostDAO       *dao.PostDAO
	VoteDAO       *dao.VoteDAO
	UsersRepo     *dao.Users
	AnalysisCache *cache.AnalysisStorage
	Publisher     *socket.Publisher
}

// Feed 按时间倒序拉流，带作者名与票面
func (s *PostService) Feed(ctx context.Context, limit, offset int) ([]*types.PostItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	posts, err := s.PostDAO.FindFeed(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	postIDs := make([]int64, 0, len(posts))
	authorIDs := make([]int64, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
		authorIDs = append(authorIDs, p.AuthorID)
	}
	authors, err := s.UsersRepo.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	counts, err := s.VoteDAO.CountByPosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*types.PostItem, 0, len(posts))
	for _, p := range posts {
		item := toPostItem(p)
		if author, ok := authors[p.AuthorID]; ok {
			item.AuthorName = author.Name
		}
		c := counts[p.ID]
		item.TrueCount, item.FakeCount = c[0], c[1]
		items = append(items, item)
	}
	return items, nil
}

func (s *PostService) GetByID(ctx context.Context, postID int64) (*types.PostItem, error) {
	post, err := s.PostDAO.FindByID(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, post)
}

func (s *PostService) GetByCode(ctx context.Context, code string) (*types.PostItem, error) {
	postID, err := utils.DecodeShareCode(code)
	if err != nil {
		return nil, response.ErrNotFound
	}
	return s.GetByID(ctx, postID)
}

func (s *PostService) Create(ctx context.Context, authorID int64, req *types.CreatePostRequest) (*types.PostItem, error) {
	if len(req.Content) == 0 || len(req.Content) > models.PostContentMaxLen {
		return nil, response.NewError(400, "content length out of range")
	}

	post := &models.Post{
		ID:       snowflake.GenID(),
		AuthorID: authorID,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}
	if err := s.PostDAO.Create(ctx, post); err != nil {
		return nil, err
	}

	item, err := s.decorate(ctx, post)
	if err != nil {
		return nil, err
	}
	s.Publisher.PublishPostEvent(ctx, types.EventCreated, item)
	return item, nil
}

func (s *PostService) Update(ctx context.Context, postID, authorID int64, req *types.UpdatePostRequest) (*types.PostItem, error) {
	if len(req.Content) == 0 || len(req.Content) > models.PostContentMaxLen {
		return nil, response.NewError(400, "content length out of range")
	}

	affected, err := s.PostDAO.UpdateByAuthor(ctx, postID, authorID, map[string]any{
		"content":   req.Content,
		"image_url": req.ImageURL,
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// 帖子不存在或非作者本人
		exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
		if err != nil {
			return nil, err
		}
		if !exist {
			return nil, response.ErrNotFound
		}
		return nil, response.ErrForbidden
	}

	item, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	s.Publisher.PublishPostEvent(ctx, types.EventUpdated, item)
	return item, nil
}

func (s *PostService) Delete(ctx context.Context, postID, authorID int64) error {
	affected, err := s.PostDAO.DeleteByAuthor(ctx, postID, authorID)
	if err != nil {
		return err
	}
	if affected == 0 {
		exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
		if err != nil {
			return err
		}
		if !exist {
			return response.ErrNotFound
		}
		return response.ErrForbidden
	}

	// 旧分析结论一并清理
	_ = s.AnalysisCache.Del(ctx, postID)

	s.Publisher.PublishPostEvent(ctx, types.EventDeleted, map[string]int64{"id": postID})
	return nil
}

func (s *PostService) decorate(ctx context.Context, post *models.Post) (*types.PostItem, error) {
	item := toPostItem(post)
	author, err := s.UsersRepo.FindByID(ctx, post.AuthorID)
	if err == nil {
		item.AuthorName = author.Name
	}
	trueCount, fakeCount, err := s.VoteDAO.CountByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	item.TrueCount, item.FakeCount = trueCount, fakeCount
	return item, nil
}

func toPostItem(p *models.Post) *types.PostItem {
	return &types.PostItem{
		ID:        p.ID,
		Code:      utils.ShareCode(p.ID),
		AuthorID:  p.AuthorID,
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
