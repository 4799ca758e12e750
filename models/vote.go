package models

import "time"

const (
	VoteTrue = "true"
	VoteFake = "fake"
)

func IsValidVoteType(t string) bool {
	return t == VoteTrue || t == VoteFake
}

// Vote 投票记录，只增不改
// 唯一键: post_id + voter_id，保证一人一票
// 删除帖子时级联删除其投票
type Vote struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	PostID    int64     `gorm:"column:post_id;not null;uniqueIndex:uk_post_voter,priority:1" json:"post_id"`
	VoterID   int64     `gorm:"column:voter_id;not null;uniqueIndex:uk_post_voter,priority:2" json:"voter_id"`
	VoteType  string    `gorm:"column:vote_type;type:varchar(8);not null" json:"vote_type"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	Post *Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (v Vote) TableName() string { return "votes" }
