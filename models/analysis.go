package models

import (
	"time"

	"gorm.io/datatypes"
)

// Analysis 双模型聚合后的核查结论，按帖子留存
type Analysis struct {
	ID        int64          `gorm:"column:id;primary_key" json:"id"`
	PostID    int64          `gorm:"column:post_id;not null;index:idx_post" json:"post_id"`
	Verdict   string         `gorm:"column:verdict;type:varchar(8);not null" json:"verdict"`
	TrueRate  int            `gorm:"column:true_rate;not null" json:"true_rate"`
	Reasoning datatypes.JSON `gorm:"column:reasoning;type:json" json:"reasoning"`
	Sources   datatypes.JSON `gorm:"column:sources;type:json" json:"sources"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`

	Post *Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (a Analysis) TableName() string { return "analyses" }
