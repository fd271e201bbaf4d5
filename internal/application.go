package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-server/internal/config"
	"github.com/rocketscienceinc/tictactoe-server/internal/events"
	"github.com/rocketscienceinc/tictactoe-server/internal/lobby"
	"github.com/rocketscienceinc/tictactoe-server/internal/repository"
	"github.com/rocketscienceinc/tictactoe-server/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-server/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-server/transport/rest"
	"github.com/rocketscienceinc/tictactoe-server/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	journal := usecase.NewJournal(logger, conf.Journal.Buffer)

	var gameRepo repository.GameRepository
	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		gameRepo = repository.NewGameRepository(redisStorage.Connection, conf.Redis.RecordTTL, conf.Redis.RecentLimit)
		journal.WithArchive(gameRepo)

		log.Info("Game archive enabled", "addr", conf.Redis.GetRedisAddr())
	}

	if conf.NATS.URL != "" {
		publisher, err := events.NewPublisher(logger, conf.NATS.URL, conf.NATS.Subject)
		if err != nil {
			return fmt.Errorf("could not connect to nats: %w", err)
		}
		defer publisher.Close()

		journal.WithPublisher(publisher)

		log.Info("Game event feed enabled", "url", conf.NATS.URL, "subject", conf.NATS.Subject)
	}

	// the journal outlives ctx: Close runs after the lobby has stopped recording.
	journal.Start(context.WithoutCancel(ctx))
	defer journal.Close()

	gameLobby := lobby.New(logger, journal, lobby.Options{
		MailboxCapacity: conf.Lobby.MailboxCapacity,
		EventBuffer:     conf.Lobby.EventBuffer,
	})
	gameLobby.Start(ctx)
	defer gameLobby.Stop()

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		router := rest.NewRouter(rest.NewPingHandler(), rest.NewHandlers(logger, gameLobby, gameRepo))
		if httpErr := rest.Start(ctx, logger, conf.HTTPPort, router); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameLobby, websocket.Options{
			PingInterval: conf.Websocket.PingInterval,
			PongWait:     conf.Websocket.PongWait,
			WriteWait:    conf.Websocket.WriteWait,
			ReadLimit:    conf.Websocket.ReadLimit,
		})
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err := <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
