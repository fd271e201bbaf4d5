package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/internal/lobby"
	mockedRest "github.com/rocketscienceinc/tictactoe-server/mocks/rest"
)

var errRedisDown = errors.New("redis down")

func newTestRouter(stats statsProvider, archive gameArchive) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(NewPingHandler(), NewHandlers(logger, stats, archive))
}

func get(router http.Handler, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	return recorder
}

func TestPingHandler(t *testing.T) {
	// When: /ping is requested
	recorder := get(newTestRouter(mockedRest.NewMockstatsProvider(t), nil), "/ping")

	// Then: pong is returned
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}

func TestHandlers_Stats(t *testing.T) {
	t.Run("Returns the live lobby counters", func(t *testing.T) {
		// Given: a lobby with two players in one game and one waiting
		stats := mockedRest.NewMockstatsProvider(t)
		stats.EXPECT().
			Stats(mock.Anything).
			Return(lobby.Stats{Connections: 3, Queued: 1, Games: 1}, nil).
			Once()

		// When: /stats is requested
		recorder := get(newTestRouter(stats, nil), "/stats")

		// Then: the counters are returned as JSON
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"connections":3,"queued":1,"games":1,"pending_messages":0,"dropped_messages":0}`, recorder.Body.String())
	})

	t.Run("Stopped lobby answers 503", func(t *testing.T) {
		stats := mockedRest.NewMockstatsProvider(t)
		stats.EXPECT().
			Stats(mock.Anything).
			Return(lobby.Stats{}, apperror.ErrLobbyStopped).
			Once()

		recorder := get(newTestRouter(stats, nil), "/stats")

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})
}

func TestHandlers_Games(t *testing.T) {
	record := &entity.GameRecord{
		ID:        "g1",
		Players:   [2]string{"p1", "p2"},
		Outcome:   entity.OutcomeDraw,
		Winner:    entity.PlayerTie,
		Moves:     9,
		StartedAt: time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC),
		EndedAt:   time.Date(2024, 10, 1, 12, 3, 0, 0, time.UTC),
	}

	t.Run("Game by id", func(t *testing.T) {
		// Given: an archived game
		archive := mockedRest.NewMockgameArchive(t)
		archive.EXPECT().
			GetByID(mock.Anything, "g1").
			Return(record, nil).
			Once()

		// When: it is requested
		recorder := get(newTestRouter(mockedRest.NewMockstatsProvider(t), archive), "/games/g1")

		// Then: the record is returned
		require.Equal(t, http.StatusOK, recorder.Code)

		var body entity.GameRecord
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, *record, body)
	})

	t.Run("Unknown game answers 404", func(t *testing.T) {
		archive := mockedRest.NewMockgameArchive(t)
		archive.EXPECT().
			GetByID(mock.Anything, "nope").
			Return(nil, apperror.ErrGameNotFound).
			Once()

		recorder := get(newTestRouter(mockedRest.NewMockstatsProvider(t), archive), "/games/nope")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Recent games honour the limit", func(t *testing.T) {
		archive := mockedRest.NewMockgameArchive(t)
		archive.EXPECT().
			ListRecent(mock.Anything, 5).
			Return([]*entity.GameRecord{record}, nil).
			Once()

		recorder := get(newTestRouter(mockedRest.NewMockstatsProvider(t), archive), "/games/recent?limit=5")

		require.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Recent games cap large limits", func(t *testing.T) {
		archive := mockedRest.NewMockgameArchive(t)
		archive.EXPECT().
			ListRecent(mock.Anything, maxRecentLimit).
			Return([]*entity.GameRecord{}, nil).
			Once()

		recorder := get(newTestRouter(mockedRest.NewMockstatsProvider(t), archive), "/games/recent?limit=5000")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `[]`, recorder.Body.String())
	})

	t.Run("Invalid limit answers 400", func(t *testing.T) {
		recorder := get(newTestRouter(mockedRest.NewMockstatsProvider(t), mockedRest.NewMockgameArchive(t)), "/games/recent?limit=zero")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Totals", func(t *testing.T) {
		archive := mockedRest.NewMockgameArchive(t)
		archive.EXPECT().
			Totals(mock.Anything).
			Return(map[string]int64{entity.OutcomeXWon: 4}, nil).
			Once()

		recorder := get(newTestRouter(mockedRest.NewMockstatsProvider(t), archive), "/games/totals")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"x_won":4}`, recorder.Body.String())
	})

	t.Run("Storage failure answers 500", func(t *testing.T) {
		archive := mockedRest.NewMockgameArchive(t)
		archive.EXPECT().
			Totals(mock.Anything).
			Return(nil, errRedisDown).
			Once()

		recorder := get(newTestRouter(mockedRest.NewMockstatsProvider(t), archive), "/games/totals")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})

	t.Run("Disabled archive answers 503", func(t *testing.T) {
		router := newTestRouter(mockedRest.NewMockstatsProvider(t), nil)

		for _, target := range []string{"/games/recent", "/games/totals", "/games/g1"} {
			assert.Equal(t, http.StatusServiceUnavailable, get(router, target).Code, target)
		}
	})
}
