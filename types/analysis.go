package types

const (
	VerdictTrue  = "True"
	VerdictFalse = "False"
	VerdictMixed = "Mixed"
)

// ModelResult 单个模型的判定，严格 JSON 形状
type ModelResult struct {
	Verdict   string   `json:"verdict"`
	TrueRate  int      `json:"true_rate"`
	Reasoning []string `json:"reasoning"`
	Sources   []string `json:"sources"`
}

// AnalysisResult 双模型聚合结论
type AnalysisResult struct {
	PostID    int64    `json:"post_id"`
	Verdict   string   `json:"verdict"`
	TrueRate  int      `json:"true_rate"`
	Reasoning []string `json:"reasoning"`
	Sources   []string `json:"sources"`
	Cached    bool     `json:"cached"`
}
