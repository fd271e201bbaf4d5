package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrNoMark       = errors.New("player has no mark")
	ErrGameNotFound = errors.New("game not found")

	ErrMailboxFull      = errors.New("mailbox is full")
	ErrLobbyStopped     = errors.New("lobby is stopped")
	ErrConnectionClosed = errors.New("connection is closed")
	ErrUnknownMessage   = errors.New("unknown message type")
)
