// Package message encodes the frames sent to players and decodes the frames they send.
package message

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
)

const (
	TypeAssign       = "assign"
	TypeUpdate       = "update"
	TypeResult       = "result"
	TypeReset        = "reset"
	TypeOpponentLeft = "opponent_left"
	TypeMove         = "move"
)

const (
	WaitingText = "Waiting for opponent player ..."
	DrawText    = "Match Draw"
)

var errMissingPosition = errors.New("move without position")

// Outbound is a frame produced by the server.
type Outbound struct {
	Type    string   `json:"type"`
	Symbol  string   `json:"symbol,omitempty"`
	Board   []string `json:"board,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Inbound is a frame sent by a player. Position is set only for moves.
type Inbound struct {
	Type     string `json:"type"`
	Position *int   `json:"position,omitempty"`
}

func Waiting() Outbound {
	return Outbound{Type: TypeAssign, Symbol: WaitingText}
}

// Assign - tells a player which mark it plays with.
func Assign(mark string) Outbound {
	return Outbound{Type: TypeAssign, Symbol: fmt.Sprintf("You are player %s !", mark)}
}

func Update(board [9]string) Outbound {
	return Outbound{Type: TypeUpdate, Board: board[:]}
}

// Result - announces the winning mark, or a draw.
func Result(winner string, draw bool) Outbound {
	if draw {
		return Outbound{Type: TypeResult, Message: DrawText}
	}

	return Outbound{Type: TypeResult, Message: "Winner is " + winner}
}

func Reset() Outbound {
	return Outbound{Type: TypeReset}
}

func OpponentLeft() Outbound {
	return Outbound{Type: TypeOpponentLeft}
}

func Encode(msg Outbound) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s message: %w", msg.Type, err)
	}

	return data, nil
}

// Decode - parses a player frame. Unknown types fail with ErrUnknownMessage.
func Decode(data []byte) (Inbound, error) {
	var msg Inbound
	if err := json.Unmarshal(data, &msg); err != nil {
		return Inbound{}, fmt.Errorf("failed to unmarshal message: %w", err)
	}

	switch msg.Type {
	case TypeMove:
		if msg.Position == nil {
			return Inbound{}, errMissingPosition
		}
	case TypeReset:
	default:
		return Inbound{}, fmt.Errorf("%w: %q", apperror.ErrUnknownMessage, msg.Type)
	}

	return msg, nil
}
