package websocket

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinehub/pkg/logger"
)

type staticVerifier struct {
	userID int64
	err    error
}

func (v staticVerifier) VerifyToken(token string) (int64, error) {
	return v.userID, v.err
}

func newTestServer(t *testing.T, verifier staticVerifier) (*httptest.Server, *Registry) {
	t.Helper()

	registry := NewRegistry(logger.NewNop())
	handler := NewHandler(registry, verifier, logger.NewNop())

	e := echo.New()
	e.GET("/notifications", handler.HandleConnection)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server, registry
}

func wsURL(server *httptest.Server) string {
	return strings.Replace(server.URL, "http", "ws", 1) + "/notifications"
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	header := http.Header{"Authorization": []string{"Bearer test-token"}}
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(server), header)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHandleConnectionRejectsMissingToken(t *testing.T) {
	server, _ := newTestServer(t, staticVerifier{userID: 7})

	resp, err := http.Get(server.URL + "/notifications")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandleConnectionRejectsInvalidToken(t *testing.T) {
	server, registry := newTestServer(t, staticVerifier{err: errors.New("expired")})

	header := http.Header{"Authorization": []string{"Bearer bad-token"}}
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(server), header)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Nil(t, conn)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	_, ok := registry.Lookup(7)
	assert.False(t, ok)
}

func TestConnectedUserReceivesNotification(t *testing.T) {
	server, registry := newTestServer(t, staticVerifier{userID: 7})
	client := dial(t, server)

	require.Eventually(t, func() bool {
		_, ok := registry.Lookup(7)
		return ok
	}, time.Second, 10*time.Millisecond, "connection was never registered")

	notifier := NewNotifier(registry, logger.NewNop())
	require.NoError(t, notifier.Notify(context.Background(), 7, "alice started following you."))

	client.SetReadDeadline(time.Now().Add(time.Second))
	var payload struct {
		Message string `json:"message"`
	}
	require.NoError(t, client.ReadJSON(&payload))
	assert.Equal(t, "alice started following you.", payload.Message)
}

func TestDisconnectRemovesConnection(t *testing.T) {
	server, registry := newTestServer(t, staticVerifier{userID: 7})
	client := dial(t, server)

	require.Eventually(t, func() bool {
		_, ok := registry.Lookup(7)
		return ok
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, client.Close())

	require.Eventually(t, func() bool {
		_, ok := registry.Lookup(7)
		return !ok
	}, time.Second, 10*time.Millisecond, "disconnect did not remove the connection")
}

func TestNewConnectionReplacesPreviousOne(t *testing.T) {
	server, registry := newTestServer(t, staticVerifier{userID: 7})

	first := dial(t, server)
	require.Eventually(t, func() bool {
		_, ok := registry.Lookup(7)
		return ok
	}, time.Second, 10*time.Millisecond)
	firstConn, _ := registry.Lookup(7)

	second := dial(t, server)
	require.Eventually(t, func() bool {
		conn, ok := registry.Lookup(7)
		return ok && conn != firstConn
	}, time.Second, 10*time.Millisecond, "second connection did not replace the first")

	// The replaced connection going away must not unregister the new one.
	require.NoError(t, first.Close())
	time.Sleep(50 * time.Millisecond)

	notifier := NewNotifier(registry, logger.NewNop())
	require.NoError(t, notifier.Notify(context.Background(), 7, "still here"))

	second.SetReadDeadline(time.Now().Add(time.Second))
	var payload struct {
		Message string `json:"message"`
	}
	require.NoError(t, second.ReadJSON(&payload))
	assert.Equal(t, "still here", payload.Message)
}
