package llm

import (
	"Verity/config"
	"Verity/types"
	"context"
	"strings"
	"testing"
)

func TestParseResult(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		ok      bool
		verdict string
		rate    int
	}{
		{
			name:    "plain json",
			raw:     `{"verdict":"True","true_rate":85,"reasoning":["a"],"sources":["https://x"]}`,
			ok:      true,
			verdict: types.VerdictTrue,
			rate:    85,
		},
		{
			name:    "fenced json",
			raw:     "```json\n{\"verdict\":\"False\",\"true_rate\":12,\"reasoning\":[],\"sources\":[]}\n```",
			ok:      true,
			verdict: types.VerdictFalse,
			rate:    12,
		},
		{
			name:    "chatter around json",
			raw:     "Sure, here is my assessment: {\"verdict\":\"Mixed\",\"true_rate\":55,\"reasoning\":[\"hmm\"],\"sources\":[]} hope that helps",
			ok:      true,
			verdict: types.VerdictMixed,
			rate:    55,
		},
		{
			name:    "rate clamped",
			raw:     `{"verdict":"True","true_rate":140,"reasoning":[],"sources":[]}`,
			ok:      true,
			verdict: types.VerdictTrue,
			rate:    100,
		},
		{name: "garbage", raw: "I cannot answer that", ok: false},
		{name: "bad verdict", raw: `{"verdict":"Maybe","true_rate":50}`, ok: false},
		{name: "broken json", raw: `{"verdict":"True","true_rate":`, ok: false},
	}

	for _, c := range cases {
		result, err := ParseResult(c.raw)
		if c.ok && err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if !c.ok {
			if err == nil {
				t.Fatalf("%s: expected error", c.name)
			}
			continue
		}
		if result.Verdict != c.verdict || result.TrueRate != c.rate {
			t.Fatalf("%s: got %s/%d, want %s/%d", c.name, result.Verdict, result.TrueRate, c.verdict, c.rate)
		}
		if result.Reasoning == nil || result.Sources == nil {
			t.Fatalf("%s: nil slices after parse", c.name)
		}
	}
}

func TestPlaceholder(t *testing.T) {
	p := Placeholder("qwen is not configured")
	if p.Verdict != types.VerdictMixed {
		t.Fatalf("expected Mixed, got %s", p.Verdict)
	}
	if p.TrueRate != 50 {
		t.Fatalf("expected true_rate 50, got %d", p.TrueRate)
	}
	if len(p.Reasoning) != 1 || !strings.Contains(p.Reasoning[0], "qwen") {
		t.Fatalf("unexpected reasoning: %v", p.Reasoning)
	}
	if len(p.Sources) != 0 {
		t.Fatalf("expected no sources, got %v", p.Sources)
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("the moon is made of cheese", "no evidence found")
	for _, want := range []string{
		"the moon is made of cheese",
		"no evidence found",
		"STRICT JSON",
		"true_rate",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

// 未配置凭证的 provider 不发起网络请求，直接回占位
func TestAnalyze_NotConfigured(t *testing.T) {
	p := NewProvider(&config.LLMProvider{Name: "qwen"}, 0)
	result := p.Analyze(context.Background(), "prompt", "")
	if result.Verdict != types.VerdictMixed || result.TrueRate != 50 {
		t.Fatalf("expected neutral placeholder, got %+v", result)
	}
}
