package socket

import (
	"Verity/pkg/log"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Client 单个 websocket 连接
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	cid    string
	name   string
	topics map[string]bool // 仅 hub 循环内读写
}

func NewClient(hub *Hub, conn *websocket.Conn, name string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 64),
		cid:    uuid.NewString(),
		name:   name,
		topics: make(map[string]bool),
	}
}

// clientCommand 客户端上行指令，只有订阅与退订
type clientCommand struct {
	Action string `json:"action"` // subscribe / unsubscribe
	Topic  string `json:"topic"`
}

// ReadPump 读循环：处理订阅指令与心跳，退出时注销连接
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.L.Info("websocket closed", zap.String("cid", c.cid), zap.Error(err))
			}
			break
		}

		var cmd clientCommand
		if err := json.Unmarshal(message, &cmd); err != nil || cmd.Topic == "" {
			continue
		}
		switch cmd.Action {
		case "subscribe":
			c.hub.subscribe <- subscription{client: c, topic: cmd.Topic, join: true}
		case "unsubscribe":
			c.hub.subscribe <- subscription{client: c, topic: cmd.Topic, join: false}
		}
	}
}

// WritePump 写循环：下发事件与 ping
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
