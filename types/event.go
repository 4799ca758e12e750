package types

import (
	"encoding/json"
	"fmt"
)

const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"

	TableFeed  = "posts"
	TableVotes = "votes"
)

// TopicFeed 全量帖子流
const TopicFeed = "feed"

// TopicPost 单帖投票事件
func TopicPost(postID int64) string {
	return fmt.Sprintf("post:%d", postID)
}

// ChangeEvent 行级变更事件，经 redis 总线进入 websocket 扇出
type ChangeEvent struct {
	Event   string          `json:"event"` // created / updated / deleted
	Table   string          `json:"table"`
	Payload json.RawMessage `json:"payload"`
}

// BusMessage redis 频道上的信封，topic 决定扇出范围
type BusMessage struct {
	Topic string      `json:"topic"`
	Body  ChangeEvent `json:"body"`
}
