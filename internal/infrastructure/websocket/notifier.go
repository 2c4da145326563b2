package websocket

import (
	"context"

	"cinehub/internal/domain"
	"cinehub/pkg/logger"
)

// Notifier delivers best-effort notifications through the connection
// registry. An offline user is the common case and a silent no-op; a write
// failure evicts the stale connection instead of surfacing to the caller,
// so the domain write that triggered the notification never fails because
// delivery did.
type Notifier struct {
	registry domain.ConnectionRegistry
	log      logger.Logger
}

func NewNotifier(registry domain.ConnectionRegistry, log logger.Logger) *Notifier {
	return &Notifier{
		registry: registry,
		log:      log,
	}
}

type notificationPayload struct {
	Message string `json:"message"`
}

func (n *Notifier) Notify(ctx context.Context, userID int64, message string) error {
	conn, ok := n.registry.Lookup(userID)
	if !ok {
		return nil
	}

	if err := conn.Send(notificationPayload{Message: message}); err != nil {
		n.log.Warn("Failed to send notification, evicting connection",
			"user_id", userID, "error", err)
		n.registry.Remove(conn)
		conn.Close()
	}
	return nil
}
