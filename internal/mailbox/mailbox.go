// Package mailbox holds the outbound messages of one connection until the
// transport is ready to write them.
package mailbox

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
)

const DefaultCapacity = 10

// Mailbox is a bounded FIFO of encoded frames. When it is full new frames are dropped.
// It is owned by the lobby executor; Dropped is not synchronized.
type Mailbox struct {
	messages chan []byte
	dropped  int
}

func New(capacity int) *Mailbox {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	return &Mailbox{
		messages: make(chan []byte, capacity),
	}
}

// Enqueue - appends a frame, or drops it with ErrMailboxFull when the mailbox is at capacity.
func (that *Mailbox) Enqueue(message []byte) error {
	select {
	case that.messages <- message:
		return nil
	default:
		that.dropped++
		return fmt.Errorf("%w: capacity %d", apperror.ErrMailboxFull, cap(that.messages))
	}
}

// DrainOne - removes the oldest frame. ok is false when the mailbox is empty.
func (that *Mailbox) DrainOne() ([]byte, bool) {
	select {
	case message := <-that.messages:
		return message, true
	default:
		return nil, false
	}
}

func (that *Mailbox) Len() int {
	return len(that.messages)
}

func (that *Mailbox) Cap() int {
	return cap(that.messages)
}

func (that *Mailbox) Dropped() int {
	return that.dropped
}
