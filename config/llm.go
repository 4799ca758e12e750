package config

// LLMProvider 单个大模型接入点，兼容 openai 协议
type LLMProvider struct {
	Name    string `json:"name" yaml:"name"`
	APIKey  string `json:"api_key" yaml:"api_key"`
	BaseURL string `json:"base_url" yaml:"base_url"`
	Model   string `json:"model" yaml:"model"`
}

// Configured 缺少凭证时该 provider 走占位结果，不报错
func (p *LLMProvider) Configured() bool {
	return p != nil && p.APIKey != "" && p.Model != ""
}

type LLMConfig struct {
	Primary   *LLMProvider `json:"primary" yaml:"primary"`
	Secondary *LLMProvider `json:"secondary" yaml:"secondary"`
	// TimeoutSeconds 单次模型调用超时，0 取默认值
	TimeoutSeconds int `json:"timeout_seconds" yaml:"timeout_seconds"`
	// CacheTTLSeconds 分析结果缓存时间，0 取默认值
	CacheTTLSeconds int `json:"cache_ttl_seconds" yaml:"cache_ttl_seconds"`
}

func ProvideLLMConfig(cfg *Config) *LLMConfig {
	if cfg.LLM == nil {
		return &LLMConfig{}
	}
	return cfg.LLM
}

type SearchConfig struct {
	Endpoint       string `json:"endpoint" yaml:"endpoint"`
	TimeoutSeconds int    `json:"timeout_seconds" yaml:"timeout_seconds"`
}
