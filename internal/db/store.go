package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"fitstart/internal/config"
	"fitstart/internal/repository"
)

// Backend agrupa el KVStore elegido y los clientes que hay que cerrar.
type Backend struct {
	KV    repository.KVStore
	Redis *redis.Client
	close []func()
}

func (b *Backend) Close() {
	for i := len(b.close) - 1; i >= 0; i-- {
		b.close[i]()
	}
}

// OpenBackend abre el almacenamiento segun STORE_BACKEND y aplica migraciones.
// Si REDIS_ADDR esta definido el cliente redis queda disponible aunque el
// backend sea otro (lo usa el rate limiter).
func OpenBackend(ctx context.Context, cfg *config.Config) (*Backend, error) {
	b := &Backend{}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := client.Ping(ctxPing).Err()
		cancel()
		if err != nil {
			_ = client.Close()
			if cfg.StoreBackend == config.StoreRedis {
				return nil, fmt.Errorf("redis ping: %w", err)
			}
		} else {
			b.Redis = client
			b.close = append(b.close, func() { _ = client.Close() })
		}
	}

	switch cfg.StoreBackend {
	case config.StoreMemory:
		b.KV = repository.NewMemoryKVStore()
	case config.StoreRedis:
		if b.Redis == nil {
			return nil, fmt.Errorf("REDIS_ADDR is required for the redis store")
		}
		b.KV = repository.NewRedisKVStore(b.Redis)
	case config.StorePostgres:
		pool, err := NewPool(ctx, cfg)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("postgres connect: %w", err)
		}
		b.close = append(b.close, pool.Close)
		if err := Ping(ctx, pool); err != nil {
			b.Close()
			return nil, fmt.Errorf("postgres ping: %w", err)
		}
		sqlDB := stdlib.OpenDBFromPool(pool)
		err = RunMigrations(ctx, sqlDB, "postgres")
		_ = sqlDB.Close()
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("postgres migrations: %w", err)
		}
		b.KV = repository.NewPgKVStore(pool)
	case config.StoreSQLite:
		sqlDB, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("sqlite open: %w", err)
		}
		b.close = append(b.close, func() { _ = sqlDB.Close() })
		if err := RunMigrations(ctx, sqlDB, "sqlite3"); err != nil {
			b.Close()
			return nil, fmt.Errorf("sqlite migrations: %w", err)
		}
		b.KV = repository.NewSQLKVStore(sqlDB)
	default:
		b.Close()
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
	return b, nil
}
