package websocket

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"cinehub/internal/domain"
	"cinehub/pkg/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

// Handler serves the notification websocket endpoint. It authenticates the
// bearer token, upgrades the connection, registers it, and keeps a read
// loop alive until the client disconnects.
type Handler struct {
	registry *Registry
	verifier domain.TokenVerifier
	log      logger.Logger
}

func NewHandler(registry *Registry, verifier domain.TokenVerifier, log logger.Logger) *Handler {
	return &Handler{
		registry: registry,
		verifier: verifier,
		log:      log,
	}
}

func (h *Handler) HandleConnection(c echo.Context) error {
	token, ok := bearerToken(c.Request())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	userID, err := h.verifier.VerifyToken(token)
	if err != nil {
		h.log.Info("Rejected websocket connection", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Error("Failed to upgrade connection", "error", err, "user_id", userID)
		return nil
	}

	wsConn := NewConnection(conn, userID)
	h.registry.Register(userID, wsConn)
	h.log.Info("Notification connection opened", "user_id", userID)

	go h.readLoop(wsConn)
	return nil
}

// readLoop blocks until the peer disconnects. Inbound frames are discarded:
// the notification channel is push only.
func (h *Handler) readLoop(conn *Connection) {
	defer func() {
		h.registry.Remove(conn)
		conn.Close()
		h.log.Info("Notification connection closed", "user_id", conn.UserID())
	}()

	for {
		if _, _, err := conn.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
