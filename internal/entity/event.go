package entity

import "time"

type EventKind string

const (
	EventMatched   EventKind = "matched"
	EventFinished  EventKind = "finished"
	EventReset     EventKind = "reset"
	EventAbandoned EventKind = "abandoned"
)

const (
	OutcomeXWon      = "x_won"
	OutcomeOWon      = "o_won"
	OutcomeDraw      = "draw"
	OutcomeAbandoned = "abandoned"
)

// GameEvent is a snapshot of a game taken at one of its transitions.
type GameEvent struct {
	Kind      EventKind `json:"kind"`
	GameID    string    `json:"game_id"`
	Players   [2]string `json:"players"`
	Board     [9]string `json:"board"`
	Winner    string    `json:"winner,omitempty"`
	Moves     int       `json:"moves"`
	LeftBy    string    `json:"left_by,omitempty"`
	StartedAt time.Time `json:"started_at"`
	At        time.Time `json:"at"`
}

func NewGameEvent(kind EventKind, game *Game, at time.Time) GameEvent {
	return GameEvent{
		Kind:      kind,
		GameID:    game.ID,
		Players:   game.Players,
		Board:     game.Board,
		Winner:    game.Winner,
		Moves:     game.Moves,
		StartedAt: game.StartedAt,
		At:        at,
	}
}

// GameRecord is the archived form of a game that ended.
type GameRecord struct {
	ID        string    `json:"id"`
	Players   [2]string `json:"players"`
	Board     [9]string `json:"board"`
	Winner    string    `json:"winner,omitempty"`
	Outcome   string    `json:"outcome"`
	Moves     int       `json:"moves"`
	LeftBy    string    `json:"left_by,omitempty"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// Record - converts a terminal event into an archive record. Matched and reset events are not archived.
func (that GameEvent) Record() (*GameRecord, bool) {
	var outcome string

	switch that.Kind {
	case EventAbandoned:
		outcome = OutcomeAbandoned
	case EventFinished:
		switch that.Winner {
		case PlayerX:
			outcome = OutcomeXWon
		case PlayerO:
			outcome = OutcomeOWon
		default:
			outcome = OutcomeDraw
		}
	default:
		return nil, false
	}

	return &GameRecord{
		ID:        that.GameID,
		Players:   that.Players,
		Board:     that.Board,
		Winner:    that.Winner,
		Outcome:   outcome,
		Moves:     that.Moves,
		LeftBy:    that.LeftBy,
		StartedAt: that.StartedAt,
		EndedAt:   that.At,
	}, true
}
