// Package matchmaking pairs waiting players in arrival order.
package matchmaking

import "github.com/rocketscienceinc/tictactoe-server/internal/entity"

// Queue is a FIFO of players waiting for an opponent. A player is present at most once.
// It is not safe for concurrent use; the lobby executor owns it.
type Queue struct {
	players []*entity.Player
}

func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue - appends the player to the tail. Does nothing if it is already queued.
func (that *Queue) Enqueue(player *entity.Player) {
	if player.Queued {
		return
	}

	player.Queued = true
	that.players = append(that.players, player)
}

// DequeueFront - pops the head of the queue, or returns nil when it is empty.
func (that *Queue) DequeueFront() *entity.Player {
	if len(that.players) == 0 {
		return nil
	}

	player := that.players[0]
	that.players[0] = nil
	that.players = that.players[1:]
	player.Queued = false

	return player
}

// Remove - takes the player out of the queue wherever it is.
func (that *Queue) Remove(player *entity.Player) {
	for i, queued := range that.players {
		if queued == player {
			that.players = append(that.players[:i], that.players[i+1:]...)
			break
		}
	}

	player.Queued = false
}

func (that *Queue) Len() int {
	return len(that.players)
}

// IDs - returns the ids of waiting players, head first.
func (that *Queue) IDs() []string {
	ids := make([]string, 0, len(that.players))
	for _, player := range that.players {
		ids = append(ids, player.ID)
	}

	return ids
}

// TryMatchAll - pairs players from the head while at least two are waiting.
// When one of a pair is no longer live the other goes back to the tail.
// The first player of a pair is handed to match as X.
func (that *Queue) TryMatchAll(match func(playerX, playerO *entity.Player)) int {
	var matched int

	for that.Len() >= 2 {
		p1 := that.DequeueFront()
		p2 := that.DequeueFront()

		if !p1.Live || !p2.Live {
			if p1.Live {
				that.Enqueue(p1)
			}
			if p2.Live {
				that.Enqueue(p2)
			}
			continue
		}

		match(p1, p2)
		matched++
	}

	return matched
}
