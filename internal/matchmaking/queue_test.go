package matchmaking

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	x, o string
}

func collect(pairs *[]pair) func(playerX, playerO *entity.Player) {
	return func(playerX, playerO *entity.Player) {
		*pairs = append(*pairs, pair{x: playerX.ID, o: playerO.ID})
	}
}

func TestQueue_Enqueue(t *testing.T) {
	t.Run("Players are dequeued in arrival order", func(t *testing.T) {
		// Given: three players enqueued in order
		queue := NewQueue()
		a, b, c := entity.NewPlayer("a"), entity.NewPlayer("b"), entity.NewPlayer("c")
		queue.Enqueue(a)
		queue.Enqueue(b)
		queue.Enqueue(c)

		// Then: they leave the queue head first and lose the queued flag
		assert.Equal(t, []string{"a", "b", "c"}, queue.IDs())
		assert.Same(t, a, queue.DequeueFront())
		assert.False(t, a.Queued)
		assert.Same(t, b, queue.DequeueFront())
		assert.Same(t, c, queue.DequeueFront())
		assert.Nil(t, queue.DequeueFront())
	})

	t.Run("Enqueueing a queued player twice keeps one entry", func(t *testing.T) {
		// Given: a queued player
		queue := NewQueue()
		a := entity.NewPlayer("a")
		queue.Enqueue(a)

		// When: it is enqueued again
		queue.Enqueue(a)

		// Then: the queue holds it once
		assert.Equal(t, 1, queue.Len())
		assert.True(t, a.Queued)
	})
}

func TestQueue_Remove(t *testing.T) {
	t.Run("Player is removed from the middle", func(t *testing.T) {
		// Given: three queued players
		queue := NewQueue()
		a, b, c := entity.NewPlayer("a"), entity.NewPlayer("b"), entity.NewPlayer("c")
		queue.Enqueue(a)
		queue.Enqueue(b)
		queue.Enqueue(c)

		// When: the middle one is removed
		queue.Remove(b)

		// Then: order of the others is kept
		assert.Equal(t, []string{"a", "c"}, queue.IDs())
		assert.False(t, b.Queued)
	})

	t.Run("Removing an absent player is harmless", func(t *testing.T) {
		queue := NewQueue()
		queue.Enqueue(entity.NewPlayer("a"))

		queue.Remove(entity.NewPlayer("z"))

		assert.Equal(t, []string{"a"}, queue.IDs())
	})
}

func TestQueue_TryMatchAll(t *testing.T) {
	t.Run("Oldest waiters are paired first", func(t *testing.T) {
		// Given: live players A, B, C in that order
		queue := NewQueue()
		for _, id := range []string{"a", "b", "c"} {
			queue.Enqueue(entity.NewPlayer(id))
		}

		// When: matching
		var pairs []pair
		matched := queue.TryMatchAll(collect(&pairs))

		// Then: A plays X against B and C keeps waiting
		require.Equal(t, 1, matched)
		assert.Equal(t, []pair{{x: "a", o: "b"}}, pairs)
		assert.Equal(t, []string{"c"}, queue.IDs())
	})

	t.Run("Fewer than two players is a no-op", func(t *testing.T) {
		queue := NewQueue()
		var pairs []pair

		assert.Zero(t, queue.TryMatchAll(collect(&pairs)))

		queue.Enqueue(entity.NewPlayer("a"))
		assert.Zero(t, queue.TryMatchAll(collect(&pairs)))
		assert.Empty(t, pairs)
		assert.Equal(t, 1, queue.Len())
	})

	t.Run("Live partner of a stale entry goes to the tail", func(t *testing.T) {
		// Given: A is stale, B, C and D are live
		queue := NewQueue()
		a, b, c, d := entity.NewPlayer("a"), entity.NewPlayer("b"), entity.NewPlayer("c"), entity.NewPlayer("d")
		for _, player := range []*entity.Player{a, b, c, d} {
			queue.Enqueue(player)
		}
		a.Live = false

		// When: matching
		var pairs []pair
		queue.TryMatchAll(collect(&pairs))

		// Then: B is re-enqueued behind D, so C meets D and B keeps waiting
		assert.Equal(t, []pair{{x: "c", o: "d"}}, pairs)
		assert.Equal(t, []string{"b"}, queue.IDs())
		assert.True(t, b.Queued)
		assert.False(t, a.Queued)
	})

	t.Run("A stale player is never matched", func(t *testing.T) {
		// Given: two stale players and one live player
		queue := NewQueue()
		a, b, c := entity.NewPlayer("a"), entity.NewPlayer("b"), entity.NewPlayer("c")
		for _, player := range []*entity.Player{a, b, c} {
			queue.Enqueue(player)
		}
		a.Live = false
		b.Live = false

		// When: matching
		var pairs []pair
		queue.TryMatchAll(collect(&pairs))

		// Then: nobody is matched and only the live player remains queued
		assert.Empty(t, pairs)
		assert.Equal(t, []string{"c"}, queue.IDs())
	})
}
