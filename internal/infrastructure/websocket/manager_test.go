package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerClient(t *testing.T, m *Manager, userID string) *Client {
	t.Helper()

	client := &Client{
		UserID: userID,
		Send:   make(chan []byte, 1),
	}
	m.Register <- client

	require.Eventually(t, func() bool {
		return m.IsConnected(userID)
	}, time.Second, 5*time.Millisecond)

	return client
}

func TestSendToUserDeliversToRegisteredClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	client := registerClient(t, m, "user-1")

	m.SendToUser("user-1", []byte("hello"))

	select {
	case frame := <-client.Send:
		assert.Equal(t, "hello", string(frame))
	case <-time.After(time.Second):
		t.Fatal("expected frame on client send channel")
	}
}

func TestSendToUserIgnoresUnknownUser(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	// Must not panic or block.
	m.SendToUser("nobody", []byte("hello"))
}

func TestSendToUserDropsWhenBufferFull(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	client := registerClient(t, m, "user-1")

	m.SendToUser("user-1", []byte("first"))
	// Buffer of one is now full; this must not block.
	done := make(chan struct{})
	go func() {
		m.SendToUser("user-1", []byte("second"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("SendToUser blocked on a full client buffer")
	}

	frame := <-client.Send
	assert.Equal(t, "first", string(frame))
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	client := registerClient(t, m, "user-1")

	m.Unregister <- client

	require.Eventually(t, func() bool {
		return !m.IsConnected("user-1")
	}, time.Second, 5*time.Millisecond)

	_, open := <-client.Send
	assert.False(t, open)
}

func TestReconnectReplacesExistingClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	first := registerClient(t, m, "user-1")
	second := registerClient(t, m, "user-1")

	// The first connection's channel is closed on replacement.
	_, open := <-first.Send
	assert.False(t, open)

	m.SendToUser("user-1", []byte("to-second"))
	frame := <-second.Send
	assert.Equal(t, "to-second", string(frame))
}
