package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startedAt = time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

func testRecord(id, outcome string) *entity.GameRecord {
	return &entity.GameRecord{
		ID:        id,
		Players:   [2]string{"p1", "p2"},
		Board:     [9]string{"X", "X", "X", "O", "O", " ", " ", " ", " "},
		Winner:    entity.PlayerX,
		Outcome:   outcome,
		Moves:     5,
		StartedAt: startedAt,
		EndedAt:   startedAt.Add(time.Minute),
	}
}

func TestGameRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, time.Hour, 10)

	// Given: a finished game record
	record := testRecord("123", entity.OutcomeXWon)

	// When: Save is called
	err := gameRepo.Save(ctx, record)

	// Then: the record is stored with a ttl
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "game:123").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour, 10)

		// Given: an archived game
		record := testRecord("123", entity.OutcomeXWon)
		require.NoError(t, gameRepo.Save(ctx, record))

		// When: GetByID is called with its id
		retrieved, err := gameRepo.GetByID(ctx, record.ID)

		// Then: the same record comes back
		require.NoError(t, err)
		assert.Equal(t, record, retrieved)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour, 10)

		// When: GetByID is called with an unknown id
		retrieved, err := gameRepo.GetByID(ctx, "9999999")

		// Then: ErrGameNotFound is returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestGameRepository_ListRecent(t *testing.T) {
	t.Run("Newest games come first and the list is trimmed", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour, 3)

		// Given: five archived games with a recent limit of three
		for i := 1; i <= 5; i++ {
			require.NoError(t, gameRepo.Save(ctx, testRecord(fmt.Sprintf("g%d", i), entity.OutcomeDraw)))
		}

		// When: listing up to ten recent games
		records, err := gameRepo.ListRecent(ctx, 10)

		// Then: only the three newest remain, newest first
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "g5", records[0].ID)
		assert.Equal(t, "g4", records[1].ID)
		assert.Equal(t, "g3", records[2].ID)
	})

	t.Run("Expired records are skipped", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour, 10)

		// Given: two archived games, one of which has expired
		require.NoError(t, gameRepo.Save(ctx, testRecord("g1", entity.OutcomeXWon)))
		require.NoError(t, gameRepo.Save(ctx, testRecord("g2", entity.OutcomeOWon)))
		require.NoError(t, st.Storage.Del(ctx, "game:g1").Err())

		// When: listing recent games
		records, err := gameRepo.ListRecent(ctx, 10)

		// Then: only the live record is returned
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "g2", records[0].ID)
	})

	t.Run("Empty archive", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour, 10)

		records, err := gameRepo.ListRecent(ctx, 10)

		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestGameRepository_Totals(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, time.Hour, 10)

	// Given: games with different outcomes
	for i, outcome := range []string{entity.OutcomeXWon, entity.OutcomeXWon, entity.OutcomeDraw, entity.OutcomeAbandoned} {
		require.NoError(t, gameRepo.Save(ctx, testRecord(fmt.Sprintf("g%d", i), outcome)))
	}

	// When: Totals is called
	totals, err := gameRepo.Totals(ctx)

	// Then: every outcome is counted
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		entity.OutcomeXWon:      2,
		entity.OutcomeDraw:      1,
		entity.OutcomeAbandoned: 1,
	}, totals)
}
