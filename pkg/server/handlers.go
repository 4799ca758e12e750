package server

import (
	"Verity/handler"
)

type Handlers struct {
	Auth      *handler.Auth
	Post      *handler.Post
	Vote      *handler.Vote
	Analysis  *handler.Analysis
	WebSocket *handler.WebSocket
}
