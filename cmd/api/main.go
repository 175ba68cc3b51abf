package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/flowers-service/cmd/api/cache"
	"github.com/flowers-service/cmd/api/database"
	"github.com/flowers-service/cmd/api/flower"
	flowerhttp "github.com/flowers-service/cmd/api/http"
	"github.com/flowers-service/cmd/api/inmemory"
	"github.com/flowers-service/cmd/api/notifications"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	_ "github.com/lib/pq"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := run()
	if err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	repo, closeRepo, err := setupRepository()
	if err != nil {
		return err
	}
	defer closeRepo()

	//wrap the repository with a redis cache when one is configured:
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr != "" {
		rdb, err := cache.Connect(context.Background(), redisAddr)
		if err != nil {
			// The service keeps working without the cache.
			slog.Warn("redis unavailable, running without cache", "error", err)
		} else {
			defer rdb.Close()
			repo = cache.NewStore(repo, rdb)
			slog.Info("redis cache enabled", "addr", redisAddr)
		}
	}

	//notifications setup:
	notificationsBaseURL := os.Getenv("NOTIFICATIONS_URL")
	enableNotifications := os.Getenv("NOTIFICATIONS_ENABLED") == "true" && notificationsBaseURL != ""
	notificationsTimeout := 5 * time.Second
	if timeoutStr := os.Getenv("NOTIFICATIONS_TIMEOUT"); timeoutStr != "" {
		notificationsTimeout, err = time.ParseDuration(timeoutStr)
		if err != nil {
			return fmt.Errorf("getting notifications timeout from env: %w", err)
		}
	}
	ntfy := notifications.NewNtfy(enableNotifications, notificationsBaseURL, nil)

	flowerService := flower.NewService(repo, ntfy, notificationsTimeout)
	flowerHandler := flowerhttp.NewFlowerHandler(flowerService)

	//create and init http server:
	if reqTimeoutStr := os.Getenv("HTTP_REQUEST_TIMEOUT"); reqTimeoutStr != "" { //This ENV must be written with a unit suffix, like seconds
		flowerhttp.RequestTimeout, err = time.ParseDuration(reqTimeoutStr)
		if err != nil {
			return fmt.Errorf("getting request timeout from env: %w", err)
		}
	}

	config, err := serverConfigFromEnv()
	if err != nil {
		return err
	}
	server := flowerhttp.NewServer(config, flowerHandler)

	go func() {
		slog.Info("http server listening", "addr", server.Addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("unexpected http server error", "error", err)
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	ctx, shutdownRelease := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownRelease()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP shutdown error: %w", err)
	}
	slog.Info("graceful shutdown complete")
	return nil
}

/* Picks the storage backend: postgres when DATABASE_URL is set,
a seeded in-memory store otherwise. */
func setupRepository() (flower.Repository, func(), error) {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		slog.Info("DATABASE_URL not set, using seeded in-memory store")
		memStore, err := inmemory.NewInMemoryStore()
		if err != nil {
			return nil, nil, fmt.Errorf("creating in-memory store: %w", err)
		}
		if err := memStore.Seed(); err != nil {
			return nil, nil, fmt.Errorf("seeding in-memory store: %w", err)
		}
		return memStore, func() {}, nil
	}

	//connect to db:
	dbObject, err := database.ConnectDb(connStr)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting with db: %w", err)
	}

	//apply migrations:
	store := database.NewStore(dbObject)
	path := os.Getenv("DATABASE_MIGRATIONS_PATH")
	if path == "" {
		path = "./migrations"
	}
	err = database.MigrationUp(store, path)
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		dbObject.Close()
		return nil, nil, fmt.Errorf("migrating: %w", err)
	}

	return store, func() { dbObject.Close() }, nil
}

func serverConfigFromEnv() (flowerhttp.ServerConfig, error) {
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = "0.0.0.0"
	}

	port := 3000
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		var err error
		port, err = strconv.Atoi(portStr)
		if err != nil {
			return flowerhttp.ServerConfig{}, fmt.Errorf("getting server port from env: %w", err)
		}
	}

	return flowerhttp.ServerConfig{Host: host, Port: port}, nil
}
