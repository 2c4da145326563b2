package websocket

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Connection wraps a gorilla websocket connection for one authenticated user.
// The write mutex serializes sends, since notifications can arrive from
// several request goroutines at once.
type Connection struct {
	conn    *websocket.Conn
	userID  int64
	writeMu sync.Mutex
}

func NewConnection(conn *websocket.Conn, userID int64) *Connection {
	return &Connection{
		conn:   conn,
		userID: userID,
	}
}

func (c *Connection) Send(message interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(message)
}

func (c *Connection) Close() error {
	return c.conn.Close()
}

func (c *Connection) UserID() int64 {
	return c.userID
}
