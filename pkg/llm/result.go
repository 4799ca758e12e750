package llm

import (
	"Verity/types"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Placeholder 中性占位结果，provider 不可用或返回不可解析时使用
func Placeholder(reason string) types.ModelResult {
	return types.ModelResult{
		Verdict:   types.VerdictMixed,
		TrueRate:  50,
		Reasoning: []string{fmt.Sprintf("analysis unavailable: %s", reason)},
		Sources:   []string{},
	}
}

// ParseResult 解析模型回复
// 容忍 markdown 代码块包裹和 JSON 前后缀杂质
func ParseResult(raw string) (types.ModelResult, error) {
	var result types.ModelResult

	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return result, errors.New("no json object in reply")
	}

	if err := json.Unmarshal([]byte(text[start:end+1]), &result); err != nil {
		return result, err
	}

	switch result.Verdict {
	case types.VerdictTrue, types.VerdictFalse, types.VerdictMixed:
	default:
		return result, fmt.Errorf("invalid verdict %q", result.Verdict)
	}

	if result.TrueRate < 0 {
		result.TrueRate = 0
	}
	if result.TrueRate > 100 {
		result.TrueRate = 100
	}
	if result.Reasoning == nil {
		result.Reasoning = []string{}
	}
	if result.Sources == nil {
		result.Sources = []string{}
	}
	return result, nil
}
