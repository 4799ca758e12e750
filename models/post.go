package models

import "time"

const PostContentMaxLen = 500

// Post 待核查的主张
// 内容上限 500 字符，数据库层同样约束
type Post struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	AuthorID  int64     `gorm:"column:author_id;not null;index:idx_author" json:"author_id"`
	Content   string    `gorm:"column:content;type:varchar(500);not null" json:"content"`
	ImageURL  string    `gorm:"column:image_url;type:varchar(512);not null;default:''" json:"image_url"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	Author *Users `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}

func (p Post) TableName() string { return "posts" }
