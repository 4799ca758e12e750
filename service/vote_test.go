package service

import (
	"Verity/models"
	"Verity/types"
	"testing"
)

func vote(postID, voterID int64, voteType string) *models.Vote {
	return &models.Vote{PostID: postID, VoterID: voterID, VoteType: voteType}
}

func TestReconcile(t *testing.T) {
	cases := []struct {
		name     string
		votes    []*models.Vote
		viewerID int64
		pending  string
		want     types.VoteTally
	}{
		{
			name: "no votes, no viewer",
			want: types.VoteTally{},
		},
		{
			name: "confirmed votes only",
			votes: []*models.Vote{
				vote(1, 10, models.VoteTrue),
				vote(1, 11, models.VoteTrue),
				vote(1, 12, models.VoteFake),
			},
			viewerID: 99,
			want:     types.VoteTally{TrueCount: 2, FakeCount: 1},
		},
		{
			name: "viewer has confirmed vote",
			votes: []*models.Vote{
				vote(1, 10, models.VoteTrue),
				vote(1, 99, models.VoteFake),
			},
			viewerID: 99,
			want:     types.VoteTally{TrueCount: 1, FakeCount: 1, UserVote: models.VoteFake},
		},
		{
			name:     "pending optimistic vote only",
			votes:    []*models.Vote{vote(1, 10, models.VoteFake)},
			viewerID: 99,
			pending:  models.VoteTrue,
			want:     types.VoteTally{TrueCount: 1, FakeCount: 1},
		},
		{
			// 确认票和乐观标记并存时本人只计一次，且以确认票为准
			name: "confirmed wins over pending, counted once",
			votes: []*models.Vote{
				vote(1, 10, models.VoteTrue),
				vote(1, 99, models.VoteTrue),
			},
			viewerID: 99,
			pending:  models.VoteFake,
			want:     types.VoteTally{TrueCount: 2, FakeCount: 0, UserVote: models.VoteTrue},
		},
		{
			name:     "invalid pending ignored",
			votes:    []*models.Vote{vote(1, 10, models.VoteTrue)},
			viewerID: 99,
			pending:  "maybe",
			want:     types.VoteTally{TrueCount: 1},
		},
		{
			name: "anonymous viewer counts everyone",
			votes: []*models.Vote{
				vote(1, 10, models.VoteTrue),
				vote(1, 11, models.VoteFake),
			},
			viewerID: 0,
			want:     types.VoteTally{TrueCount: 1, FakeCount: 1},
		},
	}

	for _, c := range cases {
		got := Reconcile(c.votes, c.viewerID, c.pending)
		if got.TrueCount != c.want.TrueCount || got.FakeCount != c.want.FakeCount || got.UserVote != c.want.UserVote {
			t.Fatalf("%s: got %+v, want %+v", c.name, *got, c.want)
		}
	}
}

// 任意事件序列下票面 = 除本人外确认票 + 本人生效票(至多一次)
func TestReconcile_EventSequence(t *testing.T) {
	var votes []*models.Vote
	viewer := int64(7)

	// 他人投票陆续到达
	votes = append(votes, vote(1, 2, models.VoteTrue))
	votes = append(votes, vote(1, 3, models.VoteFake))
	got := Reconcile(votes, viewer, "")
	if got.TrueCount != 1 || got.FakeCount != 1 {
		t.Fatalf("step1: %+v", *got)
	}

	// 本人提交，乐观标记先行
	got = Reconcile(votes, viewer, models.VoteTrue)
	if got.TrueCount != 2 || got.FakeCount != 1 || got.UserVote != "" {
		t.Fatalf("step2: %+v", *got)
	}

	// 确认事件到达，乐观标记尚未清除
	votes = append(votes, vote(1, viewer, models.VoteTrue))
	got = Reconcile(votes, viewer, models.VoteTrue)
	if got.TrueCount != 2 || got.FakeCount != 1 || got.UserVote != models.VoteTrue {
		t.Fatalf("step3: %+v", *got)
	}

	// 标记清除后结果不变
	got = Reconcile(votes, viewer, "")
	if got.TrueCount != 2 || got.FakeCount != 1 || got.UserVote != models.VoteTrue {
		t.Fatalf("step4: %+v", *got)
	}
}
