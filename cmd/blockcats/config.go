package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/block-cats/internal/errors"
	"github.com/KirkDiggler/block-cats/internal/orchestrators/progress"
	"github.com/KirkDiggler/block-cats/internal/pkg/clock"
	"github.com/KirkDiggler/block-cats/internal/redis"
	progressrepo "github.com/KirkDiggler/block-cats/internal/repositories/progress"
)

var (
	redisAddr  string
	sqlitePath string
	useMemory  bool
	playerID   string
	logLevel   string
)

// envConfig supplies flag defaults from the environment
type envConfig struct {
	RedisAddr  string `env:"BLOCKCATS_REDIS"     envDefault:"localhost:6379"`
	SQLitePath string `env:"BLOCKCATS_SQLITE"`
	Memory     bool   `env:"BLOCKCATS_MEMORY"`
	PlayerID   string `env:"BLOCKCATS_PLAYER"    envDefault:"local"`
	LogLevel   string `env:"BLOCKCATS_LOG_LEVEL" envDefault:"warn"`
}

func loadEnvConfig() envConfig {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return envConfig{
			RedisAddr: "localhost:6379",
			PlayerID:  "local",
			LogLevel:  "warn",
		}
	}
	return cfg
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(logLevel))); err != nil {
		return errors.InvalidArgumentf("invalid log level %q", logLevel)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

// memoryRepo lives for the whole process so that commands run in one
// process share it
var memoryRepo *progressrepo.InMemoryRepository

// backend is the progress service and whatever must be closed after it
type backend struct {
	progress progress.Service
	close    func() error
}

func openBackend(ctx context.Context) (*backend, error) {
	if strings.TrimSpace(playerID) == "" {
		return nil, errors.InvalidArgument("--player cannot be empty")
	}

	repo, closeRepo, err := openRepository(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := progress.NewOrchestrator(&progress.Config{
		Repository: repo,
		Clock:      clock.New(),
		EventBus:   newEventBus(),
	})
	if err != nil {
		_ = closeRepo()
		return nil, err
	}

	return &backend{progress: svc, close: closeRepo}, nil
}

// newEventBus logs every progress event at info level
func newEventBus() events.EventBus {
	bus := events.NewBus()
	for _, eventType := range []string{
		progress.EventQuestClaimed,
		progress.EventIconUnlocked,
		progress.EventCosmeticQuestCompleted,
		progress.EventSetUnlocked,
	} {
		bus.SubscribeFunc(eventType, 0, logEvent)
	}
	return bus
}

func logEvent(_ context.Context, event events.Event) error {
	attrs := []any{"event", event.Type()}
	if src := event.Source(); src != nil {
		attrs = append(attrs, "player_id", src.GetID())
	}
	for _, key := range []string{progress.KeyQuestKind, progress.KeyCoins, progress.KeyUnlockID} {
		if v, ok := event.Context().Get(key); ok {
			attrs = append(attrs, key, v)
		}
	}
	slog.Info("Progress event", attrs...)
	return nil
}

func openRepository(ctx context.Context) (progressrepo.Repository, func() error, error) {
	switch {
	case useMemory:
		if memoryRepo == nil {
			memoryRepo = progressrepo.NewInMemory()
		}
		slog.Debug("Using in-memory progress storage")
		return memoryRepo, func() error { return nil }, nil

	case sqlitePath != "":
		repo, err := progressrepo.OpenSQLite(ctx, &progressrepo.SQLiteConfig{Path: sqlitePath})
		if err != nil {
			return nil, nil, err
		}
		slog.Debug("Using SQLite progress storage", "path", sqlitePath)
		return repo, repo.Close, nil

	default:
		client, err := redis.NewClient(redisAddr, nil)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to connect to redis at %s", redisAddr)
		}
		repo, err := progressrepo.NewRedisRepository(&progressrepo.Config{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		slog.Debug("Using Redis progress storage", "endpoint", redisAddr)
		return repo, client.Close, nil
	}
}

// withBackend runs fn against an open backend bound to the command context
func withBackend(cmd *cobra.Command, fn func(ctx context.Context, b *backend) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	b, err := openBackend(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := b.close(); err != nil {
			slog.Warn("Failed to close storage", "error", err)
		}
	}()

	return fn(ctx, b)
}
