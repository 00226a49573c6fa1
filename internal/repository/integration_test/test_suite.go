//go:build integration

package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"pathport/internal/pkg/config"
	"pathport/internal/pkg/postgres"
	"pathport/pkg/logger/zap_adapter"
	"pathport/pkg/querier"
	"pathport/pkg/tx"
)

const (
	postgresImage = "postgres:16-alpine"
	redisImage    = "redis:7-alpine"

	dbName     = "pathport"
	dbUser     = "pathport"
	dbPassword = "pathport"
)

var (
	querierInstance   *querier.Querier
	txManagerInstance *tx.Manager
	querierOnce       sync.Once

	redisInstance *redis.Client
	redisOnce     sync.Once
)

// GetQuerier поднимает один postgres контейнер на пакет и накатывает миграции.
// Контейнер убирает ryuk после завершения процесса.
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		container, err := tcpostgres.Run(ctx, postgresImage,
			tcpostgres.WithDatabase(dbName),
			tcpostgres.WithUsername(dbUser),
			tcpostgres.WithPassword(dbPassword),
			tcpostgres.BasicWaitStrategies(),
		)
		if err != nil {
			log.Fatalf("failed to start postgres container: %v", err)
		}

		host, err := container.Host(ctx)
		if err != nil {
			log.Fatalf("failed to get postgres host: %v", err)
		}
		port, err := container.MappedPort(ctx, "5432/tcp")
		if err != nil {
			log.Fatalf("failed to get postgres port: %v", err)
		}

		cfg := &config.Database{
			Host:     host,
			Port:     port.Port(),
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  "disable",
		}

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}

		if err := postgres.Migrate(ctx, zapLogger, connPool); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
		txManagerInstance = tx.New(connPool)
	})

	return querierInstance
}

// GetTxManager работает поверх того же пула, что и GetQuerier
func GetTxManager() *tx.Manager {
	GetQuerier()
	return txManagerInstance
}

func GetRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	redisOnce.Do(func() {
		ctx := context.Background()

		container, err := tcredis.Run(ctx, redisImage)
		if err != nil {
			log.Fatalf("failed to start redis container: %v", err)
		}

		addr, err := container.ConnectionString(ctx)
		if err != nil {
			log.Fatalf("failed to get redis connection string: %v", err)
		}

		opts, err := redis.ParseURL(addr)
		if err != nil {
			log.Fatalf("failed to parse redis URL: %v", err)
		}

		redisInstance = redis.NewClient(opts)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, redisInstance.FlushAll(ctx).Err())

	return redisInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE activity_log, routes, parcels, users RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
