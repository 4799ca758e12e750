package socket

import (
	"Verity/pkg/log"
	"Verity/types"
	"context"
	"encoding/json"

	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"
)

type subscription struct {
	client *Client
	topic  string
	join   bool
}

// Hub 维护本进程内的 websocket 连接，按 topic 扇出变更事件
// topic: "feed" 或 "post:<id>"
type Hub struct {
	topics   map[string]map[*Client]bool
	sessions cmap.ConcurrentMap[string, *Client]

	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan *types.BusMessage
	subscribe  chan subscription
}

func NewHub() *Hub {
	return &Hub{
		topics:     make(map[string]map[*Client]bool),
		sessions:   cmap.New[*Client](),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan *types.BusMessage, 256),
		subscribe:  make(chan subscription),
	}
}

// OnlineCount 当前在线连接数
func (h *Hub) OnlineCount() int {
	return h.sessions.Count()
}

// Run 单 goroutine 事件循环，退出时踢掉所有连接
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			for item := range h.sessions.IterBuffered() {
				close(item.Val.send)
			}
			h.sessions.Clear()
			return ctx.Err()

		case client := <-h.Register:
			h.sessions.Set(client.cid, client)

		case client := <-h.Unregister:
			if _, ok := h.sessions.Get(client.cid); !ok {
				continue
			}
			h.sessions.Remove(client.cid)
			for topic := range client.topics {
				h.leave(client, topic)
			}
			close(client.send)

		case sub := <-h.subscribe:
			if sub.join {
				h.join(sub.client, sub.topic)
			} else {
				h.leave(sub.client, sub.topic)
			}

		case message := <-h.Broadcast:
			h.fanOut(message)
		}
	}
}

func (h *Hub) join(client *Client, topic string) {
	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*Client]bool)
	}
	h.topics[topic][client] = true
	client.topics[topic] = true
}

func (h *Hub) leave(client *Client, topic string) {
	if clients, ok := h.topics[topic]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.topics, topic)
		}
	}
	delete(client.topics, topic)
}

func (h *Hub) fanOut(message *types.BusMessage) {
	clients := h.topics[message.Topic]
	if len(clients) == 0 {
		return
	}
	payload, err := json.Marshal(message.Body)
	if err != nil {
		log.L.Error("marshal change event", zap.Error(err))
		return
	}
	for client := range clients {
		select {
		case client.send <- payload:
		default:
			// 慢客户端直接踢掉，不能阻塞扇出
			h.sessions.Remove(client.cid)
			for topic := range client.topics {
				h.leave(client, topic)
			}
			close(client.send)
		}
	}
}
