package cache

import (
	"Verity/config"
	"Verity/types"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const analysisCacheKey = "verity:analysis"

// AnalysisStorage 分析结果缓存，命中则不再请求模型
type AnalysisStorage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewAnalysisStorage(rds *redis.Client, conf *config.Config) *AnalysisStorage {
	ttl := time.Hour
	if conf.LLM != nil && conf.LLM.CacheTTLSeconds > 0 {
		ttl = time.Duration(conf.LLM.CacheTTLSeconds) * time.Second
	}
	return &AnalysisStorage{redis: rds, ttl: ttl}
}

func (s *AnalysisStorage) key(postID int64) string {
	return fmt.Sprintf("%s:%d", analysisCacheKey, postID)
}

func (s *AnalysisStorage) Set(ctx context.Context, postID int64, result *types.AnalysisResult) error {
	text, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, s.key(postID), text, s.ttl).Err()
}

func (s *AnalysisStorage) Get(ctx context.Context, postID int64) (*types.AnalysisResult, error) {
	val, err := s.redis.Get(ctx, s.key(postID)).Result()
	if err != nil {
		return nil, err
	}
	result := &types.AnalysisResult{}
	if err := json.Unmarshal([]byte(val), result); err != nil {
		return nil, err
	}
	return result, nil
}

// Del 帖子删除后清掉旧结论
func (s *AnalysisStorage) Del(ctx context.Context, postID int64) error {
	return s.redis.Del(ctx, s.key(postID)).Err()
}
