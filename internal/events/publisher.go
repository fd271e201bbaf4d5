// Package events publishes game events to NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

const DefaultSubject = "tictactoe.games"

// Publisher sends every event as JSON on <subject>.<kind>.
type Publisher struct {
	logger  *slog.Logger
	conn    *nats.Conn
	subject string
}

func NewPublisher(logger *slog.Logger, url, subject string) (*Publisher, error) {
	if subject == "" {
		subject = DefaultSubject
	}

	logger = logger.With("component", "events")

	conn, err := nats.Connect(
		url,
		nats.Name("tictactoe-server"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(conn *nats.Conn) {
			logger.Info("nats reconnected", "url", conn.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	return &Publisher{
		logger:  logger,
		conn:    conn,
		subject: subject,
	}, nil
}

// Subject - returns the subject an event kind is published on.
func (that *Publisher) Subject(kind entity.EventKind) string {
	return that.subject + "." + string(kind)
}

func (that *Publisher) Publish(ctx context.Context, event entity.GameEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to publish game event: %w", err)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal game event: %w", err)
	}

	if err = that.conn.Publish(that.Subject(event.Kind), data); err != nil {
		return fmt.Errorf("failed to publish game event: %w", err)
	}

	return nil
}

// Close - flushes pending messages and closes the connection.
func (that *Publisher) Close() {
	if err := that.conn.Drain(); err != nil {
		that.logger.Warn("failed to drain nats connection", "error", err)
	}
}
