package types

type ClaimNameRequest struct {
	Name string `json:"name" binding:"required,min=1,max=32"`
}

type ClaimNameResponse struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}
