package service

import (
	"Verity/pkg/llm"
	"Verity/types"
	"reflect"
	"testing"
)

func modelResult(verdict string, rate int, reasoning, sources []string) types.ModelResult {
	return types.ModelResult{Verdict: verdict, TrueRate: rate, Reasoning: reasoning, Sources: sources}
}

func TestAggregate_Thresholds(t *testing.T) {
	cases := []struct {
		name        string
		a, b        types.ModelResult
		wantRate    int
		wantVerdict string
	}{
		{
			name:        "two placeholders stay mixed",
			a:           llm.Placeholder("a down"),
			b:           llm.Placeholder("b down"),
			wantRate:    50,
			wantVerdict: types.VerdictMixed,
		},
		{
			name:        "both high is true",
			a:           modelResult(types.VerdictTrue, 90, nil, nil),
			b:           modelResult(types.VerdictTrue, 90, nil, nil),
			wantRate:    90,
			wantVerdict: types.VerdictTrue,
		},
		{
			name:        "average below 30 is false",
			a:           modelResult(types.VerdictFalse, 10, nil, nil),
			b:           modelResult(types.VerdictMixed, 40, nil, nil),
			wantRate:    25,
			wantVerdict: types.VerdictFalse,
		},
		{
			// 阈值只看均值，不看单模型结论
			name:        "disagreeing verdicts, mid average",
			a:           modelResult(types.VerdictTrue, 80, nil, nil),
			b:           modelResult(types.VerdictFalse, 20, nil, nil),
			wantRate:    50,
			wantVerdict: types.VerdictMixed,
		},
		{
			name:        "boundary 70 is mixed",
			a:           modelResult(types.VerdictTrue, 70, nil, nil),
			b:           modelResult(types.VerdictTrue, 70, nil, nil),
			wantRate:    70,
			wantVerdict: types.VerdictMixed,
		},
		{
			name:        "boundary 30 is mixed",
			a:           modelResult(types.VerdictFalse, 30, nil, nil),
			b:           modelResult(types.VerdictFalse, 30, nil, nil),
			wantRate:    30,
			wantVerdict: types.VerdictMixed,
		},
		{
			name:        "odd sum rounds",
			a:           modelResult(types.VerdictTrue, 71, nil, nil),
			b:           modelResult(types.VerdictTrue, 72, nil, nil),
			wantRate:    72,
			wantVerdict: types.VerdictTrue,
		},
	}

	for _, c := range cases {
		got := Aggregate("qwen", c.a, "deepseek", c.b)
		if got.TrueRate != c.wantRate || got.Verdict != c.wantVerdict {
			t.Fatalf("%s: got %d/%s, want %d/%s", c.name, got.TrueRate, got.Verdict, c.wantRate, c.wantVerdict)
		}
	}
}

func TestAggregate_ReasoningOrderAndPrefix(t *testing.T) {
	a := modelResult(types.VerdictTrue, 80, []string{"step a1", "step a2"}, nil)
	b := modelResult(types.VerdictTrue, 80, []string{"step b1"}, nil)

	got := Aggregate("qwen", a, "deepseek", b)
	want := []string{"[qwen] step a1", "[qwen] step a2", "[deepseek] step b1"}
	if !reflect.DeepEqual(got.Reasoning, want) {
		t.Fatalf("reasoning = %v, want %v", got.Reasoning, want)
	}
}

func TestAggregate_SourceDedup(t *testing.T) {
	a := modelResult(types.VerdictTrue, 80, nil, []string{"https://a", "https://b", ""})
	b := modelResult(types.VerdictTrue, 80, nil, []string{"https://b", "https://c"})

	got := Aggregate("qwen", a, "deepseek", b)
	seen := make(map[string]int)
	for _, src := range got.Sources {
		seen[src]++
	}
	if len(got.Sources) != 3 || seen["https://a"] != 1 || seen["https://b"] != 1 || seen["https://c"] != 1 {
		t.Fatalf("sources = %v", got.Sources)
	}
}
