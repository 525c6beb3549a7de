package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/config"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/realtime"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/repository"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/service"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-rooms/transport/rest"
	"github.com/rocketscienceinc/tictactoe-rooms/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Init(ctx, conf.Telemetry.OTLPEndpoint, conf.Telemetry.ServiceName)
	if err != nil {
		return fmt.Errorf("could not init telemetry: %w", err)
	}

	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			log.Error("could not flush telemetry", "error", err)
		}
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err := sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	roomRepo := repository.NewRoomRepository(redisStorage.Connection)
	sessionRepo := repository.NewSessionRepository(redisStorage.Connection, conf.Bot.SessionTTL)
	recordRepo := repository.NewRecordRepository(sqliteStorage.Connection)

	recorder := service.NewRecorder(logger, recordRepo)
	roomService := service.NewRoomService(logger, roomRepo, recorder, service.RoomOptions{
		TTL:          conf.Room.TTL,
		CodeAttempts: conf.Room.CodeAttempts,
	})
	soloService := service.NewSoloService(logger, sessionRepo, recorder, conf.Bot.MoveDelay)
	authService := service.NewAuthService(conf.JWTSecretKey)

	hub := realtime.NewHub(logger, redisStorage.Connection, roomRepo)

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return hub.Run(ctx)
	})

	group.Go(func() error {
		router := rest.NewRouter(logger, authService, roomService, soloService)
		if err := rest.Start(ctx, logger, conf.HTTPPort, router); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		wsServer := websocket.New(logger, roomService, authService, hub)
		if err := wsServer.Start(ctx, conf.SocketPort); err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}
		return nil
	})

	err = group.Wait()
	log.Info("Application stopped")

	return err
}
