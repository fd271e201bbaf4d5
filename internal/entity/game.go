package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	NoMark    = ""
	EmptyCell = " "
)

// WinCombos - every row, column and diagonal of the 3x3 board.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game is the authoritative state of one match between two connections.
// Players[0] always plays X and Players[1] plays O.
type Game struct {
	ID        string    `json:"id"`
	Board     [9]string `json:"board"`
	Turn      string    `json:"turn"`
	Winner    string    `json:"winner,omitempty"`
	Over      bool      `json:"over"`
	Moves     int       `json:"moves"`
	Players   [2]string `json:"players"`
	StartedAt time.Time `json:"started_at"`
}

func NewGame(id, playerX, playerO string, now time.Time) *Game {
	game := &Game{
		ID:        id,
		Players:   [2]string{playerX, playerO},
		StartedAt: now,
	}
	game.Reset()

	return game
}

// Reset - clears the board and hands the first move back to X.
func (that *Game) Reset() {
	for i := range that.Board {
		that.Board[i] = EmptyCell
	}

	that.Turn = PlayerX
	that.Winner = ""
	that.Over = false
	that.Moves = 0
}

// MakeTurn - validates and applies a move. On a win or a draw the game is over and the turn is kept.
func (that *Game) MakeTurn(mark string, cell int) error {
	if that.Over {
		return apperror.ErrGameFinished
	}

	if mark == NoMark {
		return apperror.ErrNoMark
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = mark
	that.Moves++

	switch result := that.DetermineGameResult(); result {
	case PlayerX, PlayerO, PlayerTie:
		that.Winner = result
		that.Over = true
	default:
		that.Turn = toggleMark(mark)
	}

	return nil
}

// DetermineGameResult - returns the winning mark, PlayerTie for a full board, or "" while the game goes on.
func (that *Game) DetermineGameResult() string {
	for _, combo := range WinCombos {
		a, b, c := that.Board[combo[0]], that.Board[combo[1]], that.Board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	for _, cell := range that.Board {
		if cell == EmptyCell {
			return ""
		}
	}

	return PlayerTie
}

func (that *Game) IsDraw() bool {
	return that.Over && that.Winner == PlayerTie
}

// MarkOf - returns the mark a participant plays with.
func (that *Game) MarkOf(playerID string) string {
	switch playerID {
	case that.Players[0]:
		return PlayerX
	case that.Players[1]:
		return PlayerO
	default:
		return NoMark
	}
}

// Opponent - returns the other participant of the game.
func (that *Game) Opponent(playerID string) (string, bool) {
	switch playerID {
	case that.Players[0]:
		return that.Players[1], true
	case that.Players[1]:
		return that.Players[0], true
	default:
		return "", false
	}
}

func toggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
