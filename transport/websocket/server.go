package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/realtime"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/validator"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 1 << 10
	outboxSize     = 8

	shutdownTimeout = 5 * time.Second
)

var (
	tracer = otel.Tracer("websocket")

	errBadMessage    = errors.New("malformed message")
	errUnknownAction = errors.New("unknown action")
)

type roomService interface {
	GetRoom(ctx context.Context, code string) (*entity.Room, error)
	JoinRoom(ctx context.Context, code, userID string) (*entity.Room, error)
	SubmitMove(ctx context.Context, code, userID string, cell int) (*entity.Room, error)
	ResetRoom(ctx context.Context, code, userID string) (*entity.Room, error)
}

type tokenParser interface {
	ParseToken(token string) (string, error)
}

type roomFeed interface {
	Subscribe(code string) *realtime.Subscription
}

type handlerFunc func(ctx context.Context, conn *connection, msg *Message) (*entity.Room, error)

type Server struct {
	logger   *slog.Logger
	rooms    roomService
	tokens   tokenParser
	feed     roomFeed
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, rooms roomService, tokens tokenParser, feed roomFeed) *Server {
	server := &Server{
		logger: logger,
		rooms:  rooms,
		tokens: tokens,
		feed:   feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[ActionJoin] = server.handleJoin
	server.handlers[ActionMove] = server.handleMove
	server.handlers[ActionReset] = server.handleReset

	return server
}

func (that *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/ws/rooms/{code}", that.handleRoom)

	return r
}

// Start - starts WebSocket server. Open connections are closed when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	log := that.logger.With("method", "Start", "port", port)

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting WebSocket server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	log.Info("WebSocket server stopped")

	return nil
}

// handleRoom authenticates, subscribes to the room and upgrades. The first snapshot goes through
// the subscription too, so it can never overtake a newer published one.
func (that *Server) handleRoom(w http.ResponseWriter, r *http.Request) {
	code := entity.NormalizeRoomCode(chi.URLParam(r, "code"))
	log := that.logger.With("method", "handleRoom", "room_code", code)

	ctx, span := tracer.Start(r.Context(), "websocket.handleRoom", trace.WithAttributes(attribute.String("room.code", code)))

	userID, err := that.tokens.ParseToken(r.URL.Query().Get("token"))
	if err != nil {
		span.End()
		log.Debug("rejected token", "error", err)
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	log = log.With("user_id", userID)
	span.SetAttributes(attribute.String("user.id", userID))

	sub := that.feed.Subscribe(code)

	room, err := that.rooms.GetRoom(ctx, code)
	if err != nil {
		sub.Close()
		span.RecordError(err)
		span.End()

		if errors.Is(err, apperror.ErrRoomNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		log.Error("failed to load room", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	sub.Offer(room)

	ws, err := that.upgrader.Upgrade(w, r, nil)
	span.End()
	if err != nil {
		sub.Close()
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := &connection{
		logger: log,
		ws:     ws,
		userID: userID,
		code:   code,
		sub:    sub,
		outbox: make(chan Message, outboxSize),
	}

	log.Info("WebSocket connection established")

	that.serve(r.Context(), conn)

	log.Info("WebSocket connection closed")
}

// serve runs the writer in the background and reads until the client goes away or ctx is done.
func (that *Server) serve(ctx context.Context, conn *connection) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	conn.cancel = cancel

	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.writePump(ctx)
	}()

	defer func() {
		cancel()
		conn.sub.Close()
		<-done
		_ = conn.ws.Close()
	}()

	if err := that.handleMessages(ctx, conn); err != nil {
		conn.logger.Debug("stopped reading", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *connection) error {
	conn.ws.SetReadLimit(maxMessageSize)
	_ = conn.ws.SetReadDeadline(time.Now().Add(pongWait))
	conn.ws.SetPongHandler(func(string) error {
		return conn.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ws.ReadMessage()
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			conn.sendError(ctx, "", fmt.Errorf("%w: %w", errBadMessage, err))
			continue
		}

		if err = validator.Struct(&message); err != nil {
			conn.sendError(ctx, message.Action, fmt.Errorf("%w: %w", errBadMessage, err))
			continue
		}

		that.dispatch(ctx, conn, &message)
	}
}

func (that *Server) dispatch(ctx context.Context, conn *connection, msg *Message) {
	log := conn.logger.With("action", msg.Action)

	handler, ok := that.handlers[msg.Action]
	if !ok {
		conn.sendError(ctx, msg.Action, errUnknownAction)
		return
	}

	room, err := handler(ctx, conn, msg)
	if err != nil {
		log.Debug("action failed", "error", err)
		conn.sendError(ctx, msg.Action, err)
		return
	}

	// the hub delivers the same version later and the subscription drops it
	conn.sub.Offer(room)
}
