package llm

import (
	"Verity/config"
	"Verity/pkg/log"
	"Verity/types"
	"context"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Provider 单个大模型接入点，openai 兼容协议
// 未配置凭证时所有调用直接返回占位结果
type Provider struct {
	name       string
	model      string
	timeout    time.Duration
	client     openai.Client
	configured bool
}

func NewProvider(cfg *config.LLMProvider, timeout time.Duration) *Provider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	p := &Provider{timeout: timeout}
	if cfg != nil {
		p.name = cfg.Name
	}
	if p.name == "" {
		p.name = "model"
	}
	if !cfg.Configured() {
		return p
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	p.client = openai.NewClient(opts...)
	p.model = cfg.Model
	p.configured = true
	return p
}

func (p *Provider) Name() string { return p.name }

// Analyze 单模型核查，任何失败都降级为占位结果，不向上抛错
func (p *Provider) Analyze(ctx context.Context, prompt string, imageURL string) types.ModelResult {
	if !p.configured {
		return Placeholder(p.name + " is not configured")
	}

	contentParts := []openai.ChatCompletionContentPartUnionParam{
		{
			OfText: &openai.ChatCompletionContentPartTextParam{
				Text: prompt,
			},
		},
	}
	if imageURL != "" {
		contentParts = append(contentParts, openai.ChatCompletionContentPartUnionParam{
			OfImageURL: &openai.ChatCompletionContentPartImageParam{
				ImageURL: openai.ChatCompletionContentPartImageImageURLParam{
					URL: imageURL,
				},
			},
		})
	}
	userMessage := openai.ChatCompletionUserMessageParam{
		Content: openai.ChatCompletionUserMessageParamContentUnion{
			OfArrayOfContentParts: contentParts,
		},
	}
	params := openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{OfUser: &userMessage},
		},
	}

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	startTime := time.Now()
	completion, err := p.client.Chat.Completions.New(callCtx, params)
	if err != nil {
		log.L.Error("llm call failed", zap.String("provider", p.name), zap.Error(err))
		return Placeholder(p.name + " request failed")
	}
	if len(completion.Choices) == 0 {
		return Placeholder(p.name + " returned no choices")
	}

	content := completion.Choices[0].Message.Content
	result, err := ParseResult(content)
	if err != nil {
		log.L.Error("llm reply not parseable",
			zap.String("provider", p.name),
			zap.String("reply", content),
			zap.Error(err),
		)
		return Placeholder(p.name + " returned invalid json")
	}
	log.L.Info("llm verdict",
		zap.String("provider", p.name),
		zap.String("verdict", result.Verdict),
		zap.Int("true_rate", result.TrueRate),
		zap.Duration("gen time", time.Since(startTime)),
	)
	return result
}
