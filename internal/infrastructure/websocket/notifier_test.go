package websocket

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinehub/pkg/logger"
)

func TestNotifyOfflineUserIsNoOp(t *testing.T) {
	registry := NewRegistry(logger.NewNop())
	notifier := NewNotifier(registry, logger.NewNop())

	err := notifier.Notify(context.Background(), 42, "hello")
	assert.NoError(t, err)
}

func TestNotifyDeliversPayload(t *testing.T) {
	registry := NewRegistry(logger.NewNop())
	notifier := NewNotifier(registry, logger.NewNop())
	conn := &fakeConn{userID: 1}
	registry.Register(1, conn)

	err := notifier.Notify(context.Background(), 1, "someone followed you")
	require.NoError(t, err)

	sent := conn.sentMessages()
	require.Len(t, sent, 1)
	assert.Equal(t, notificationPayload{Message: "someone followed you"}, sent[0])
}

func TestNotifyDoesNotReachOtherUsers(t *testing.T) {
	registry := NewRegistry(logger.NewNop())
	notifier := NewNotifier(registry, logger.NewNop())
	target := &fakeConn{userID: 1}
	bystander := &fakeConn{userID: 2}
	registry.Register(1, target)
	registry.Register(2, bystander)

	require.NoError(t, notifier.Notify(context.Background(), 1, "hi"))

	assert.Len(t, target.sentMessages(), 1)
	assert.Empty(t, bystander.sentMessages())
}

func TestNotifySendFailureEvictsStaleConnection(t *testing.T) {
	registry := NewRegistry(logger.NewNop())
	notifier := NewNotifier(registry, logger.NewNop())
	conn := &fakeConn{userID: 1, sendErr: assert.AnError}
	registry.Register(1, conn)

	// The write failure must not surface to the caller.
	err := notifier.Notify(context.Background(), 1, "hello")
	require.NoError(t, err)

	_, ok := registry.Lookup(1)
	assert.False(t, ok, "stale connection should have been evicted")
	assert.True(t, conn.closed)

	// The user now counts as offline.
	require.NoError(t, notifier.Notify(context.Background(), 1, "again"))
	assert.Empty(t, conn.sentMessages())
}
