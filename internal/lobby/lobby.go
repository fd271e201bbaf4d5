// Package lobby tracks live connections, pairs them into games and routes their moves.
//
// All state is owned by a single executor goroutine. Transports talk to it only
// through Connect, Receive, Writable and Disconnect, which post events to the
// executor and never touch the state directly.
package lobby

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/internal/mailbox"
	"github.com/rocketscienceinc/tictactoe-server/internal/matchmaking"
)

const DefaultEventBuffer = 1024

// Peer is the transport side of a connection.
type Peer interface {
	// RequestWritable asks the transport for one future Writable call. It must not block.
	RequestWritable()
}

type journal interface {
	Record(event entity.GameEvent)
}

type Options struct {
	MailboxCapacity int
	EventBuffer     int
}

type connection struct {
	player  *entity.Player
	peer    Peer
	mailbox *mailbox.Mailbox
}

type Lobby struct {
	logger  *slog.Logger
	journal journal
	newID   func() string

	mailboxCapacity int

	events    chan event
	done      chan struct{}
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once

	// owned by the executor
	connections map[string]*connection
	games       map[string]*entity.Game
	queue       *matchmaking.Queue
	dropped     int
}

// New - creates a stopped lobby. journal may be nil.
func New(logger *slog.Logger, journal journal, opts Options) *Lobby {
	if opts.MailboxCapacity < 1 {
		opts.MailboxCapacity = mailbox.DefaultCapacity
	}

	if opts.EventBuffer < 1 {
		opts.EventBuffer = DefaultEventBuffer
	}

	return &Lobby{
		logger:  logger.With("component", "lobby"),
		journal: journal,
		newID:   uuid.NewString,

		mailboxCapacity: opts.MailboxCapacity,

		events: make(chan event, opts.EventBuffer),
		done:   make(chan struct{}),

		connections: make(map[string]*connection),
		games:       make(map[string]*entity.Game),
		queue:       matchmaking.NewQueue(),
	}
}

// Start - launches the executor. It runs until Stop is called or ctx is done.
func (that *Lobby) Start(ctx context.Context) {
	that.startOnce.Do(func() {
		that.wg.Add(1)

		go func() {
			defer that.wg.Done()
			that.run(ctx)
		}()
	})
}

// Stop - stops the executor and waits for it to exit. Events still queued are discarded.
func (that *Lobby) Stop() {
	that.stopOnce.Do(func() {
		close(that.done)
	})

	that.wg.Wait()
}

// Connect - registers a new connection and returns its id.
func (that *Lobby) Connect(peer Peer) (string, error) {
	id := that.newID()

	if err := that.post(event{kind: eventConnect, connID: id, peer: peer}); err != nil {
		return "", err
	}

	return id, nil
}

// Receive - hands an inbound frame to the executor.
func (that *Lobby) Receive(connID string, data []byte) {
	_ = that.post(event{kind: eventReceive, connID: connID, data: data})
}

// Disconnect - reports that the transport closed the connection. Safe to call more than once.
func (that *Lobby) Disconnect(connID string) {
	_ = that.post(event{kind: eventClose, connID: connID})
}

// Writable - answers a write-ready signal with the next frame to send, or nil when
// the mailbox is empty. ErrConnectionClosed means the transport should close the connection.
func (that *Lobby) Writable(ctx context.Context, connID string) ([]byte, error) {
	reply := make(chan writeResult, 1)

	if err := that.post(event{kind: eventWritable, connID: connID, writeReply: reply}); err != nil {
		return nil, err
	}

	select {
	case result := <-reply:
		return result.data, result.err
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to wait for frame: %w", ctx.Err())
	case <-that.done:
		return nil, apperror.ErrLobbyStopped
	}
}

// Stats - returns a snapshot of the lobby counters.
func (that *Lobby) Stats(ctx context.Context) (Stats, error) {
	reply := make(chan Stats, 1)

	if err := that.post(event{kind: eventStats, statsReply: reply}); err != nil {
		return Stats{}, err
	}

	select {
	case stats := <-reply:
		return stats, nil
	case <-ctx.Done():
		return Stats{}, fmt.Errorf("failed to wait for stats: %w", ctx.Err())
	case <-that.done:
		return Stats{}, apperror.ErrLobbyStopped
	}
}

func (that *Lobby) post(ev event) error {
	select {
	case <-that.done:
		return apperror.ErrLobbyStopped
	default:
	}

	select {
	case that.events <- ev:
		return nil
	case <-that.done:
		return apperror.ErrLobbyStopped
	}
}

func (that *Lobby) run(ctx context.Context) {
	that.logger.Info("lobby started")

	for {
		select {
		case <-ctx.Done():
			that.stopOnce.Do(func() {
				close(that.done)
			})
			that.logger.Info("lobby stopped", "reason", ctx.Err())
			return
		case <-that.done:
			that.logger.Info("lobby stopped")
			return
		case ev := <-that.events:
			that.dispatch(ev)
		}
	}
}
