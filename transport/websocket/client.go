package websocket

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// client is the lobby peer of one websocket connection.
type client struct {
	conn *websocket.Conn

	writable  chan struct{}
	closed    chan struct{}
	closeOnce sync.Once
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn:     conn,
		writable: make(chan struct{}, 1),
		closed:   make(chan struct{}),
	}
}

// RequestWritable - wakes the write pump. Signals coalesce while one is pending.
func (that *client) RequestWritable() {
	select {
	case that.writable <- struct{}{}:
	default:
	}
}

func (that *client) write(messageType int, data []byte, wait time.Duration) error {
	if err := that.conn.SetWriteDeadline(time.Now().Add(wait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := that.conn.WriteMessage(messageType, data); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *client) close() {
	that.closeOnce.Do(func() {
		close(that.closed)
	})
}
