package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

const (
	DefaultJournalBuffer = 256

	flushTimeout = 5 * time.Second
)

type gameArchive interface {
	Save(ctx context.Context, record *entity.GameRecord) error
}

type eventPublisher interface {
	Publish(ctx context.Context, event entity.GameEvent) error
}

// Journal takes game events off the lobby executor and hands them to the archive
// and the event feed on its own goroutine.
type Journal struct {
	logger    *slog.Logger
	archive   gameArchive
	publisher eventPublisher

	events    chan entity.GameEvent
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

func NewJournal(logger *slog.Logger, buffer int) *Journal {
	if buffer < 1 {
		buffer = DefaultJournalBuffer
	}

	return &Journal{
		logger: logger.With("component", "journal"),
		events: make(chan entity.GameEvent, buffer),
		done:   make(chan struct{}),
	}
}

// WithArchive - stores finished and abandoned games.
func (that *Journal) WithArchive(archive gameArchive) *Journal {
	that.archive = archive
	return that
}

// WithPublisher - publishes every event.
func (that *Journal) WithPublisher(publisher eventPublisher) *Journal {
	that.publisher = publisher
	return that
}

// Record - queues an event without blocking. Events are dropped when the buffer is full.
func (that *Journal) Record(event entity.GameEvent) {
	log := that.logger.With("method", "Record", "gameID", event.GameID, "kind", event.Kind)

	select {
	case <-that.done:
		log.Debug("journal is closed, event dropped")
		return
	default:
	}

	select {
	case that.events <- event:
	default:
		log.Warn("journal is full, event dropped", "buffer", cap(that.events))
	}
}

// Start - handles events on a new goroutine until ctx is done or Close is called,
// then flushes what is buffered.
func (that *Journal) Start(ctx context.Context) {
	that.wg.Add(1)

	go func() {
		defer that.wg.Done()
		that.run(ctx)
	}()
}

func (that *Journal) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			that.flush(ctx)
			return
		case <-that.done:
			that.flush(ctx)
			return
		case event := <-that.events:
			// select does not prefer ctx.Done, a cancelled ctx must not reach the sinks.
			if ctx.Err() != nil {
				that.flush(ctx, event)
				return
			}

			that.handle(ctx, event)
		}
	}
}

// Close - stops the worker and handles everything still buffered, including
// events recorded after the worker stopped on its context.
func (that *Journal) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})

	that.wg.Wait()
	that.flush(context.Background())
}

// flush - handles pending and then the buffer on a context detached from ctx.
func (that *Journal) flush(ctx context.Context, pending ...entity.GameEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
	defer cancel()

	for _, event := range pending {
		that.handle(ctx, event)
	}

	for {
		select {
		case event := <-that.events:
			that.handle(ctx, event)
		default:
			return
		}
	}
}

func (that *Journal) handle(ctx context.Context, event entity.GameEvent) {
	log := that.logger.With("method", "handle", "gameID", event.GameID, "kind", event.Kind)

	if that.publisher != nil {
		if err := that.publisher.Publish(ctx, event); err != nil {
			log.Error("failed to publish game event", "error", err)
		}
	}

	record, ok := event.Record()
	if !ok || that.archive == nil {
		return
	}

	if err := that.archive.Save(ctx, record); err != nil {
		log.Error("failed to archive game", "error", err)
		return
	}

	log.Debug("game archived", "outcome", record.Outcome)
}
