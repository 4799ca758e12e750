package handler

import (
	"Verity/pkg/log"
	"Verity/socket"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocket struct {
	Hub *socket.Hub
}

func (h *WebSocket) RegisterRouter(r gin.IRouter) {
	r.GET("/ws", h.Serve)
}

// Serve 升级连接，订阅指令走连接内消息
func (h *WebSocket) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.L.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	client := socket.NewClient(h.Hub, conn, c.Query("name"))
	h.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
