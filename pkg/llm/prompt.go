package llm

import "fmt"

// 要求模型只回严格 JSON，字段与 types.ModelResult 对齐
const factCheckPromptTemplate = `You are a professional fact-checker. Assess the following claim.

Claim: %s

Web context (may be incomplete or irrelevant):
%s

Methodology:
1. Identify the central factual assertion of the claim.
2. Compare it against the web context and your own knowledge.
3. Weigh supporting and contradicting evidence.
4. Estimate how likely the claim is true as a percentage.

Respond with STRICT JSON only, no markdown, no extra text, exactly this shape:
{"verdict":"True|False|Mixed","true_rate":0-100,"reasoning":["step 1","step 2"],"sources":["https://..."]}`

// BuildPrompt 渲染核查 prompt
func BuildPrompt(claim, webContext string) string {
	return fmt.Sprintf(factCheckPromptTemplate, claim, webContext)
}
