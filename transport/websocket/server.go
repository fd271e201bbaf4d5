package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-server/internal/lobby"
)

const shutdownTimeout = 5 * time.Second

type uLobby interface {
	Connect(peer lobby.Peer) (string, error)
	Receive(connID string, data []byte)
	Writable(ctx context.Context, connID string) ([]byte, error)
	Disconnect(connID string)
}

type Options struct {
	PingInterval time.Duration
	PongWait     time.Duration
	WriteWait    time.Duration
	ReadLimit    int64
}

func DefaultOptions() Options {
	return Options{
		PingInterval: 54 * time.Second,
		PongWait:     60 * time.Second,
		WriteWait:    10 * time.Second,
		ReadLimit:    4096,
	}
}

type Server struct {
	logger *slog.Logger
	lobby  uLobby
	opts   Options

	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, lobby uLobby, opts Options) *Server {
	return &Server{
		logger: logger.With("component", "websocket"),
		lobby:  lobby,
		opts:   opts,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
	}
}

// Handler - routes /ws to the websocket endpoint.
func (that *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/ws", that.ServeWS).Methods(http.MethodGet)

	return router
}

// Start - serves websocket connections on port until ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// ServeWS - upgrades the request and pumps frames between the socket and the lobby.
func (that *Server) ServeWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeWS", "remote", req.RemoteAddr)

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Warn("failed to upgrade connection", "error", err)
		return
	}

	client := newClient(conn)

	connID, err := that.lobby.Connect(client)
	if err != nil {
		log.Warn("lobby refused connection", "error", err)
		that.closeWith(conn, websocket.CloseTryAgainLater)
		return
	}

	log = log.With("connID", connID)
	log.Info("websocket connection established")

	go that.writePump(req.Context(), connID, client)
	that.readPump(connID, client)

	client.close()
	that.lobby.Disconnect(connID)

	log.Info("websocket connection closed")
}

// readPump - forwards text frames to the lobby until the socket fails.
func (that *Server) readPump(connID string, client *client) {
	log := that.logger.With("method", "readPump", "connID", connID)

	conn := client.conn
	conn.SetReadLimit(that.opts.ReadLimit)

	if err := conn.SetReadDeadline(time.Now().Add(that.opts.PongWait)); err != nil {
		log.Warn("failed to set read deadline", "error", err)
		return
	}

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(that.opts.PongWait))
	})

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Info("websocket read failed", "error", err)
			}
			return
		}

		if messageType != websocket.TextMessage {
			log.Debug("non-text frame ignored", "type", messageType)
			continue
		}

		that.lobby.Receive(connID, data)
	}
}

// writePump - writes one lobby frame per write-ready signal and keeps the peer alive with pings.
func (that *Server) writePump(ctx context.Context, connID string, client *client) {
	log := that.logger.With("method", "writePump", "connID", connID)

	ticker := time.NewTicker(that.opts.PingInterval)
	defer func() {
		ticker.Stop()
		_ = client.conn.Close()
	}()

	for {
		select {
		case <-client.closed:
			return

		case <-ctx.Done():
			that.closeWith(client.conn, websocket.CloseGoingAway)
			return

		case <-client.writable:
			data, err := that.lobby.Writable(ctx, connID)
			if err != nil {
				log.Debug("no frame to write", "error", err)
				return
			}

			if data == nil {
				continue
			}

			if err = client.write(websocket.TextMessage, data, that.opts.WriteWait); err != nil {
				log.Info("websocket write failed", "error", err)
				that.lobby.Disconnect(connID)
				return
			}

		case <-ticker.C:
			if err := client.write(websocket.PingMessage, nil, that.opts.WriteWait); err != nil {
				log.Info("websocket ping failed", "error", err)
				that.lobby.Disconnect(connID)
				return
			}
		}
	}
}

func (that *Server) closeWith(conn *websocket.Conn, code int) {
	deadline := time.Now().Add(time.Second)
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, ""), deadline)
	_ = conn.Close()
}
