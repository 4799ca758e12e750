package llm

import (
	"Verity/config"
	"time"
)

// Providers 双模型组合，主备各一
type Providers struct {
	Primary   *Provider
	Secondary *Provider
}

func NewProviders(cfg *config.LLMConfig) *Providers {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	primary := cfg.Primary
	if primary == nil {
		primary = &config.LLMProvider{Name: "primary"}
	}
	secondary := cfg.Secondary
	if secondary == nil {
		secondary = &config.LLMProvider{Name: "secondary"}
	}
	return &Providers{
		Primary:   NewProvider(primary, timeout),
		Secondary: NewProvider(secondary, timeout),
	}
}
