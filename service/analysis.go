package service

import (
	"Verity/dao"
	"Verity/dao/cache"
	"Verity/models"
	"Verity/pkg/llm"
	"Verity/pkg/log"
	"Verity/pkg/response"
	"Verity/pkg/snowflake"
	"Verity/types"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IAnalysisService = (*AnalysisService)(nil)

type IAnalysisService interface {
	Analyze(ctx context.Context, postID int64) (*types.AnalysisResult, error)
}

type AnalysisService struct {
	PostDAO       *dao.PostDAO
	AnalysisDAO   *dao.AnalysisDAO
	AnalysisCache *cache.AnalysisStorage
	Providers     *llm.Providers
	Search        ISearchService
}

// Analyze 双模型核查
// 缓存命中直接返回，不重复计费
func (s *AnalysisService) Analyze(ctx context.Context, postID int64) (*types.AnalysisResult, error) {
	if cached, err := s.AnalysisCache.Get(ctx, postID); err == nil {
		cached.Cached = true
		return cached, nil
	}

	post, err := s.PostDAO.FindByID(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	webContext := s.Search.Context(ctx, post.Content)
	prompt := llm.BuildPrompt(post.Content, webContext)

	// 两个模型并发跑，各自容错，聚合从不失败
	var (
		primaryResult   types.ModelResult
		secondaryResult types.ModelResult
		wg              conc.WaitGroup
	)
	wg.Go(func() {
		primaryResult = s.Providers.Primary.Analyze(ctx, prompt, post.ImageURL)
	})
	wg.Go(func() {
		secondaryResult = s.Providers.Secondary.Analyze(ctx, prompt, post.ImageURL)
	})
	wg.Wait()

	result := Aggregate(
		s.Providers.Primary.Name(), primaryResult,
		s.Providers.Secondary.Name(), secondaryResult,
	)
	result.PostID = postID

	if err := s.persist(ctx, result); err != nil {
		log.L.Warn("persist analysis failed", zap.Int64("post_id", postID), zap.Error(err))
	}
	if err := s.AnalysisCache.Set(ctx, postID, result); err != nil {
		log.L.Warn("cache analysis failed", zap.Int64("post_id", postID), zap.Error(err))
	}
	return result, nil
}

func (s *AnalysisService) persist(ctx context.Context, result *types.AnalysisResult) error {
	reasoning, err := json.Marshal(result.Reasoning)
	if err != nil {
		return err
	}
	sources, err := json.Marshal(result.Sources)
	if err != nil {
		return err
	}
	return s.AnalysisDAO.Create(ctx, &models.Analysis{
		ID:        snowflake.GenID(),
		PostID:    result.PostID,
		Verdict:   result.Verdict,
		TrueRate:  result.TrueRate,
		Reasoning: reasoning,
		Sources:   sources,
	})
}

// Aggregate 合并双模型结论
// true_rate 取均值四舍五入；结论只看均值: >70 True, <30 False, 其余 Mixed
// 推理按 primary 在前拼接并带模型名前缀，来源去重
func Aggregate(primaryName string, primary types.ModelResult, secondaryName string, secondary types.ModelResult) *types.AnalysisResult {
	rate := int(math.Round(float64(primary.TrueRate+secondary.TrueRate) / 2))

	verdict := types.VerdictMixed
	if rate > 70 {
		verdict = types.VerdictTrue
	} else if rate < 30 {
		verdict = types.VerdictFalse
	}

	reasoning := make([]string, 0, len(primary.Reasoning)+len(secondary.Reasoning))
	for _, line := range primary.Reasoning {
		reasoning = append(reasoning, fmt.Sprintf("[%s] %s", primaryName, line))
	}
	for _, line := range secondary.Reasoning {
		reasoning = append(reasoning, fmt.Sprintf("[%s] %s", secondaryName, line))
	}

	seen := make(map[string]struct{})
	sources := make([]string, 0, len(primary.Sources)+len(secondary.Sources))
	for _, src := range append(primary.Sources, secondary.Sources...) {
		if src == "" {
			continue
		}
		if _, ok := seen[src]; ok {
			continue
		}
		seen[src] = struct{}{}
		sources = append(sources, src)
	}

	return &types.AnalysisResult{
		Verdict:   verdict,
		TrueRate:  rate,
		Reasoning: reasoning,
		Sources:   sources,
	}
}
