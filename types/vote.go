package types

type CastVoteRequest struct {
	VoteType string `json:"vote_type" binding:"required,oneof=true fake"`
}

type CastVoteResponse struct {
	PostID    int64  `json:"post_id"`
	VoteType  string `json:"vote_type"`
	Duplicate bool   `json:"duplicate"`
}

// VoteTally 某帖子的票面，user_vote 为空串表示未投
type VoteTally struct {
	PostID    int64  `json:"post_id"`
	TrueCount int    `json:"true_count"`
	FakeCount int    `json:"fake_count"`
	UserVote  string `json:"user_vote"`
}
