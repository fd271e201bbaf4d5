package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/internal/lobby"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

type Handlers interface {
	Stats(w http.ResponseWriter, r *http.Request)
	RecentGames(w http.ResponseWriter, r *http.Request)
	GameTotals(w http.ResponseWriter, r *http.Request)
	GameByID(w http.ResponseWriter, r *http.Request)
}

type statsProvider interface {
	Stats(ctx context.Context) (lobby.Stats, error)
}

type gameArchive interface {
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.GameRecord, error)
	Totals(ctx context.Context) (map[string]int64, error)
}

type handlers struct {
	logger  *slog.Logger
	stats   statsProvider
	archive gameArchive
}

// NewHandlers - archive may be nil, the archive endpoints then answer 503.
func NewHandlers(logger *slog.Logger, stats statsProvider, archive gameArchive) Handlers {
	return &handlers{
		logger:  logger.With("component", "rest"),
		stats:   stats,
		archive: archive,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := that.stats.Stats(r.Context())
	if err != nil {
		that.writeError(w, "Stats", http.StatusServiceUnavailable, err)
		return
	}

	that.writeJSON(w, http.StatusOK, stats)
}

func (that *handlers) RecentGames(w http.ResponseWriter, r *http.Request) {
	if that.archive == nil {
		that.writeError(w, "RecentGames", http.StatusServiceUnavailable, errArchiveDisabled)
		return
	}

	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			that.writeError(w, "RecentGames", http.StatusBadRequest, errInvalidLimit)
			return
		}

		limit = min(parsed, maxRecentLimit)
	}

	records, err := that.archive.ListRecent(r.Context(), limit)
	if err != nil {
		that.writeError(w, "RecentGames", http.StatusInternalServerError, err)
		return
	}

	that.writeJSON(w, http.StatusOK, records)
}

func (that *handlers) GameTotals(w http.ResponseWriter, r *http.Request) {
	if that.archive == nil {
		that.writeError(w, "GameTotals", http.StatusServiceUnavailable, errArchiveDisabled)
		return
	}

	totals, err := that.archive.Totals(r.Context())
	if err != nil {
		that.writeError(w, "GameTotals", http.StatusInternalServerError, err)
		return
	}

	that.writeJSON(w, http.StatusOK, totals)
}

func (that *handlers) GameByID(w http.ResponseWriter, r *http.Request) {
	if that.archive == nil {
		that.writeError(w, "GameByID", http.StatusServiceUnavailable, errArchiveDisabled)
		return
	}

	record, err := that.archive.GetByID(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, apperror.ErrGameNotFound) {
		that.writeError(w, "GameByID", http.StatusNotFound, err)
		return
	}

	if err != nil {
		that.writeError(w, "GameByID", http.StatusInternalServerError, err)
		return
	}

	that.writeJSON(w, http.StatusOK, record)
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *handlers) writeError(w http.ResponseWriter, method string, status int, err error) {
	if status >= http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}
