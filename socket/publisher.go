package socket

import (
	"Verity/pkg/log"
	"Verity/types"
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BusChannel 变更事件的 redis 频道，多实例部署时每个节点各自扇出
const BusChannel = "verity:events"

// Publisher 把行级变更发到 redis 总线
// 发布失败只记日志，写路径不因推送失败回滚
type Publisher struct {
	Redis *redis.Client
}

func NewPublisher(rds *redis.Client) *Publisher {
	return &Publisher{Redis: rds}
}

func (p *Publisher) publish(ctx context.Context, topic string, event types.ChangeEvent) {
	msg := types.BusMessage{Topic: topic, Body: event}
	payload, err := json.Marshal(msg)
	if err != nil {
		log.L.Error("marshal bus message", zap.Error(err))
		return
	}
	if err := p.Redis.Publish(ctx, BusChannel, payload).Err(); err != nil {
		log.L.Error("publish change event", zap.String("topic", topic), zap.Error(err))
	}
}

// PublishPostEvent 帖子增删改 -> feed 频道
func (p *Publisher) PublishPostEvent(ctx context.Context, event string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.L.Error("marshal post event payload", zap.Error(err))
		return
	}
	p.publish(ctx, types.TopicFeed, types.ChangeEvent{
		Event:   event,
		Table:   types.TableFeed,
		Payload: body,
	})
}

// PublishVoteEvent 投票写入 -> 对应帖子频道
func (p *Publisher) PublishVoteEvent(ctx context.Context, postID int64, event string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.L.Error("marshal vote event payload", zap.Error(err))
		return
	}
	p.publish(ctx, types.TopicPost(postID), types.ChangeEvent{
		Event:   event,
		Table:   types.TableVotes,
		Payload: body,
	})
}
