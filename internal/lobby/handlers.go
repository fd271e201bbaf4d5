package lobby

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/internal/mailbox"
	"github.com/rocketscienceinc/tictactoe-server/internal/message"
)

func (that *Lobby) onConnect(connID string, peer Peer) {
	log := that.logger.With("method", "onConnect", "connID", connID)

	if _, ok := that.connections[connID]; ok {
		log.Warn("connection is already registered")
		return
	}

	player := entity.NewPlayer(connID)
	conn := &connection{
		player:  player,
		peer:    peer,
		mailbox: mailbox.New(that.mailboxCapacity),
	}
	that.connections[connID] = conn

	that.send(conn, message.Waiting())
	that.queue.Enqueue(player)
	that.matchWaiting()

	log.Debug("connection registered", "queued", that.queue.Len())
}

// onMessage - applies a player frame. Noise and illegal moves are ignored.
func (that *Lobby) onMessage(connID string, data []byte) {
	log := that.logger.With("method", "onMessage", "connID", connID)

	conn, ok := that.connections[connID]
	if !ok || !conn.player.Live {
		return
	}

	msg, err := message.Decode(data)
	if err != nil {
		log.Debug("message ignored", "error", err)
		return
	}

	if !conn.player.InGame() {
		log.Debug("message ignored: player is not in a game", "type", msg.Type)
		return
	}

	game, ok := that.games[conn.player.GameID]
	if !ok {
		log.Warn("player refers to an unknown game", "gameID", conn.player.GameID)
		return
	}

	switch msg.Type {
	case message.TypeMove:
		that.move(conn, game, *msg.Position)
	case message.TypeReset:
		that.reset(game)
	}
}

func (that *Lobby) onDisconnect(connID string) {
	log := that.logger.With("method", "onDisconnect", "connID", connID)

	conn, ok := that.connections[connID]
	if !ok {
		return
	}

	conn.player.Live = false
	that.queue.Remove(conn.player)
	delete(that.connections, connID)

	if pending := conn.mailbox.Len(); pending > 0 {
		log.Debug("undelivered messages discarded", "pending", pending)
	}

	game, ok := that.games[conn.player.GameID]
	conn.player.LeaveGame()
	if !ok {
		log.Debug("connection removed")
		return
	}

	delete(that.games, game.ID)
	that.record(entity.EventAbandoned, game, connID)

	log = log.With("gameID", game.ID)

	survivorID, _ := game.Opponent(connID)
	survivor, ok := that.connections[survivorID]
	if !ok {
		log.Debug("game closed")
		return
	}

	survivor.player.LeaveGame()
	if !survivor.player.Live {
		return
	}

	that.send(survivor, message.OpponentLeft())
	that.queue.Enqueue(survivor.player)
	that.matchWaiting()

	log.Info("opponent left, survivor requeued", "survivorID", survivorID)
}

// onWritable - hands over the oldest queued frame and asks for another signal when more are waiting.
func (that *Lobby) onWritable(connID string) ([]byte, error) {
	conn, ok := that.connections[connID]
	if !ok {
		return nil, apperror.ErrConnectionClosed
	}

	data, ok := conn.mailbox.DrainOne()
	if !ok {
		return nil, nil
	}

	if conn.mailbox.Len() > 0 {
		conn.peer.RequestWritable()
	}

	return data, nil
}

func (that *Lobby) matchWaiting() {
	matched := that.queue.TryMatchAll(that.startGame)
	if matched == 0 && that.queue.Len() > 0 {
		that.logger.Debug("players waiting for an opponent", "waiting", that.queue.IDs())
	}
}

func (that *Lobby) startGame(playerX, playerO *entity.Player) {
	game := entity.NewGame(that.newID(), playerX.ID, playerO.ID, time.Now())
	that.games[game.ID] = game

	for _, player := range []*entity.Player{playerX, playerO} {
		player.JoinGame(game.ID, game.MarkOf(player.ID))
		that.send(that.connections[player.ID], message.Assign(player.Mark))
	}
	that.broadcast(game, message.Update(game.Board))

	that.record(entity.EventMatched, game, "")

	that.logger.Info("game started", "gameID", game.ID, "playerX", playerX.ID, "playerO", playerO.ID)
}

func (that *Lobby) move(conn *connection, game *entity.Game, cell int) {
	log := that.logger.With("method", "move", "connID", conn.player.ID, "gameID", game.ID)

	if err := game.MakeTurn(conn.player.Mark, cell); err != nil {
		log.Debug("move ignored", "cell", cell, "error", err)
		return
	}

	that.broadcast(game, message.Update(game.Board))

	if game.Over {
		that.broadcast(game, message.Result(game.Winner, game.IsDraw()))
		that.record(entity.EventFinished, game, "")

		log.Info("game finished", "winner", game.Winner, "moves", game.Moves)
	}
}

func (that *Lobby) reset(game *entity.Game) {
	game.Reset()

	that.broadcast(game, message.Update(game.Board))
	that.broadcast(game, message.Reset())
	that.record(entity.EventReset, game, "")
}

func (that *Lobby) broadcast(game *entity.Game, msg message.Outbound) {
	for _, playerID := range game.Players {
		if conn, ok := that.connections[playerID]; ok {
			that.send(conn, msg)
		}
	}
}

// send - queues a frame for the connection. A full mailbox drops it.
func (that *Lobby) send(conn *connection, msg message.Outbound) {
	log := that.logger.With("method", "send", "connID", conn.player.ID)

	data, err := message.Encode(msg)
	if err != nil {
		log.Error("failed to encode message", "error", err)
		return
	}

	if err = conn.mailbox.Enqueue(data); err != nil {
		that.dropped++
		log.Warn("outbound message dropped",
			"type", msg.Type, "capacity", conn.mailbox.Cap(), "dropped", conn.mailbox.Dropped(), "error", err)
		return
	}

	conn.peer.RequestWritable()
}

func (that *Lobby) record(kind entity.EventKind, game *entity.Game, leftBy string) {
	if that.journal == nil {
		return
	}

	gameEvent := entity.NewGameEvent(kind, game, time.Now())
	gameEvent.LeftBy = leftBy

	that.journal.Record(gameEvent)
}
