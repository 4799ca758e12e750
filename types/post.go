package types

import "time"

type CreatePostRequest struct {
	Content  string `json:"content" binding:"required,min=1,max=500"`
	ImageURL string `json:"image_url" binding:"omitempty,url,max=512"`
}

type UpdatePostRequest struct {
	Content  string `json:"content" binding:"required,min=1,max=500"`
	ImageURL string `json:"image_url" binding:"omitempty,url,max=512"`
}

type PostItem struct {
	ID         int64     `json:"id"`
	Code       string    `json:"code"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	ImageURL   string    `json:"image_url"`
	TrueCount  int64     `json:"true_count"`
	FakeCount  int64     `json:"fake_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type FeedRequest struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

type FeedResponse struct {
	Items []*PostItem `json:"items"`
}

type UploadResponse struct {
	Key    string `json:"key"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
