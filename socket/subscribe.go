package socket

import (
	"Verity/pkg/log"
	"Verity/types"
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// EventSubscribe 消费 redis 总线，喂给本进程 hub
type EventSubscribe struct {
	Redis *redis.Client
	Hub   *Hub
}

func NewEventSubscribe(rds *redis.Client, hub *Hub) *EventSubscribe {
	return &EventSubscribe{Redis: rds, Hub: hub}
}

func (s *EventSubscribe) Start(ctx context.Context) error {
	pubsub := s.Redis.Subscribe(ctx, BusChannel)
	defer pubsub.Close()

	log.L.Info("event bus subscribed", zap.String("channel", BusChannel))

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var bus types.BusMessage
			if err := json.Unmarshal([]byte(msg.Payload), &bus); err != nil {
				log.L.Error("unmarshal bus message", zap.Error(err))
				continue
			}
			s.Hub.Broadcast <- &bus
		}
	}
}
