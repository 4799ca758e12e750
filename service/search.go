package service

import (
	"Verity/config"
	"Verity/pkg/log"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// FallbackContext 检索失败时填入 prompt 的兜底文案
const FallbackContext = "No additional web context available."

const defaultSearchEndpoint = "https://api.duckduckgo.com/"

var _ ISearchService = (*SearchService)(nil)

type ISearchService interface {
	// Context 给 prompt 补充的网络语境，任何失败都返回兜底串，从不报错
	Context(ctx context.Context, claim string) string
}

type SearchService struct {
	endpoint string
	client   *http.Client
}

func NewSearchService(cfg *config.Config) *SearchService {
	endpoint := defaultSearchEndpoint
	timeout := 10 * time.Second
	if cfg.Search != nil {
		if cfg.Search.Endpoint != "" {
			endpoint = cfg.Search.Endpoint
		}
		if cfg.Search.TimeoutSeconds > 0 {
			timeout = time.Duration(cfg.Search.TimeoutSeconds) * time.Second
		}
	}
	return &SearchService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// SearchQuery 取主张前五个词加 "fact check"
func SearchQuery(claim string) string {
	words := strings.Fields(claim)
	if len(words) > 5 {
		words = words[:5]
	}
	return strings.Join(append(words, "fact", "check"), " ")
}

func (s *SearchService) Context(ctx context.Context, claim string) string {
	query := url.Values{}
	query.Set("q", SearchQuery(claim))
	query.Set("format", "json")
	query.Set("no_html", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return FallbackContext
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.L.Warn("web context lookup failed", zap.Error(err))
		return FallbackContext
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FallbackContext
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || !gjson.ValidBytes(body) {
		return FallbackContext
	}

	return ExtractContext(body)
}

// ExtractContext 从 duckduckgo 应答里挑一段可用文本
func ExtractContext(body []byte) string {
	if abstract := gjson.GetBytes(body, "AbstractText").String(); abstract != "" {
		return abstract
	}
	if answer := gjson.GetBytes(body, "Answer").String(); answer != "" {
		return answer
	}

	var lines []string
	gjson.GetBytes(body, "RelatedTopics.#.Text").ForEach(func(_, value gjson.Result) bool {
		if text := value.String(); text != "" {
			lines = append(lines, text)
		}
		return len(lines) < 3
	})
	if len(lines) > 0 {
		return strings.Join(lines, " ")
	}
	return FallbackContext
}
