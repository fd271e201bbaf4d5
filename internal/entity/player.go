package entity

// Player is the game-facing state of one transport connection.
type Player struct {
	ID     string `json:"id"`
	Mark   string `json:"mark,omitempty"`
	GameID string `json:"game_id,omitempty"`

	// Queued is true while the player waits in the matchmaking queue.
	Queued bool `json:"-"`
	// Live turns false once the transport reports the connection closed.
	Live bool `json:"-"`
}

func NewPlayer(id string) *Player {
	return &Player{
		ID:   id,
		Live: true,
	}
}

func (that *Player) InGame() bool {
	return that.GameID != ""
}

func (that *Player) JoinGame(gameID, mark string) {
	that.GameID = gameID
	that.Mark = mark
}

func (that *Player) LeaveGame() {
	that.GameID = ""
	that.Mark = NoMark
}
