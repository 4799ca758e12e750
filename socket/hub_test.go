package socket

import (
	"Verity/types"
	"context"
	"encoding/json"
	"testing"
	"time"
)

func newTestClient(h *Hub, buf int) *Client {
	c := NewClient(h, nil, "tester")
	c.send = make(chan []byte, buf)
	return c
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestHub_TopicFanOut(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)

	feedClient := newTestClient(hub, 8)
	postClient := newTestClient(hub, 8)
	hub.Register <- feedClient
	hub.Register <- postClient
	hub.subscribe <- subscription{client: feedClient, topic: types.TopicFeed, join: true}
	hub.subscribe <- subscription{client: postClient, topic: types.TopicPost(42), join: true}

	hub.Broadcast <- &types.BusMessage{
		Topic: types.TopicFeed,
		Body: types.ChangeEvent{
			Event:   types.EventCreated,
			Table:   types.TableFeed,
			Payload: json.RawMessage(`{"id":1}`),
		},
	}

	select {
	case raw := <-feedClient.send:
		var event types.ChangeEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			t.Fatalf("bad event payload: %v", err)
		}
		if event.Event != types.EventCreated || event.Table != types.TableFeed {
			t.Fatalf("unexpected event: %+v", event)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("feed subscriber got no event")
	}

	select {
	case raw := <-postClient.send:
		t.Fatalf("post subscriber should not receive feed event, got %s", raw)
	default:
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)

	client := newTestClient(hub, 8)
	hub.Register <- client
	hub.subscribe <- subscription{client: client, topic: types.TopicFeed, join: true}
	waitFor(t, func() bool { return hub.OnlineCount() == 1 })

	hub.Unregister <- client
	waitFor(t, func() bool { return hub.OnlineCount() == 0 })

	select {
	case _, ok := <-client.send:
		if ok {
			t.Fatal("expected closed send channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("send channel not closed")
	}
}

// 慢客户端不能阻塞扇出：发不进去就被踢
func TestHub_SlowClientEvicted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)

	slow := newTestClient(hub, 1)
	hub.Register <- slow
	hub.subscribe <- subscription{client: slow, topic: types.TopicFeed, join: true}
	waitFor(t, func() bool { return hub.OnlineCount() == 1 })

	event := types.ChangeEvent{Event: types.EventCreated, Table: types.TableVotes, Payload: json.RawMessage(`{}`)}
	hub.Broadcast <- &types.BusMessage{Topic: types.TopicFeed, Body: event}
	hub.Broadcast <- &types.BusMessage{Topic: types.TopicFeed, Body: event}

	waitFor(t, func() bool { return hub.OnlineCount() == 0 })
}
