package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

const (
	recentKey = "games:recent"
	totalsKey = "games:totals"
)

type GameRepository interface {
	Save(ctx context.Context, record *entity.GameRecord) error
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.GameRecord, error)
	Totals(ctx context.Context) (map[string]int64, error)
}

type dbGame struct {
	client      *redis.Client
	ttl         time.Duration
	recentLimit int
}

// NewGameRepository - archive of ended games. Records expire after ttl; the recent list keeps recentLimit ids.
func NewGameRepository(client *redis.Client, ttl time.Duration, recentLimit int) GameRepository {
	return &dbGame{
		client:      client,
		ttl:         ttl,
		recentLimit: recentLimit,
	}
}

func gameKey(id string) string {
	return "game:" + id
}

func (that *dbGame) Save(ctx context.Context, record *entity.GameRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game record: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKey(record.ID), recordJSON, that.ttl)
		pipe.LPush(ctx, recentKey, record.ID)
		if that.recentLimit > 0 {
			pipe.LTrim(ctx, recentKey, 0, int64(that.recentLimit-1))
		}
		pipe.HIncrBy(ctx, totalsKey, record.Outcome, 1)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save game record: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.GameRecord, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game record by id: %w", err)
	}

	var record entity.GameRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game record: %w", err)
	}

	return &record, nil
}

// ListRecent - returns up to limit archived games, newest first. Expired records are skipped.
func (that *dbGame) ListRecent(ctx context.Context, limit int) ([]*entity.GameRecord, error) {
	if limit < 1 {
		return []*entity.GameRecord{}, nil
	}

	ids, err := that.client.LRange(ctx, recentKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent games: %w", err)
	}

	records := make([]*entity.GameRecord, 0, len(ids))
	if len(ids) == 0 {
		return records, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, gameKey(id))
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent games: %w", err)
	}

	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var record entity.GameRecord
		if err = json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game record: %w", err)
		}

		records = append(records, &record)
	}

	return records, nil
}

// Totals - counts archived games per outcome.
func (that *dbGame) Totals(ctx context.Context) (map[string]int64, error) {
	values, err := that.client.HGetAll(ctx, totalsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get game totals: %w", err)
	}

	totals := make(map[string]int64, len(values))
	for outcome, value := range values {
		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s total: %w", outcome, err)
		}

		totals[outcome] = count
	}

	return totals, nil
}
