package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/testing/suite"
)

func TestPublisher_Publish(t *testing.T) {
	ctx, st := suite.NewNATS(t)

	// Given: a subscriber on every game subject
	conn, err := nats.Connect(st.NATSURL)
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	sub, err := conn.SubscribeSync("test.games.>")
	require.NoError(t, err)
	require.NoError(t, conn.Flush())

	publisher, err := NewPublisher(st.Logger, st.NATSURL, "test.games")
	require.NoError(t, err)
	t.Cleanup(publisher.Close)

	game := entity.NewGame("g1", "p1", "p2", time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC))
	event := entity.NewGameEvent(entity.EventMatched, game, game.StartedAt)

	// When: an event is published
	require.NoError(t, publisher.Publish(ctx, event))

	// Then: it arrives on the subject of its kind
	msg, err := sub.NextMsg(5 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "test.games.matched", msg.Subject)

	var received entity.GameEvent
	require.NoError(t, json.Unmarshal(msg.Data, &received))
	assert.Equal(t, event, received)
}

func TestPublisher_Subject(t *testing.T) {
	publisher := &Publisher{subject: DefaultSubject}

	assert.Equal(t, "tictactoe.games.finished", publisher.Subject(entity.EventFinished))
	assert.Equal(t, "tictactoe.games.abandoned", publisher.Subject(entity.EventAbandoned))
}
