package database

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/convexgen/convexgen/utils"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool     *pgxpool.Pool
	poolOnce sync.Once
	poolErr  error
)

// GetPool returns a singleton connection pool, used only by the introspect
// command. DATABASE_URL comes from the environment or a .env file.
func GetPool() (*pgxpool.Pool, error) {
	poolOnce.Do(func() {
		utils.LoadEnv()
		connStr := os.Getenv("DATABASE_URL")
		if connStr == "" {
			poolErr = fmt.Errorf("DATABASE_URL not set in environment")
			return
		}

		ctx := context.Background()
		pool, poolErr = pgxpool.New(ctx, connStr)
		if poolErr != nil {
			poolErr = fmt.Errorf("unable to create connection pool: %w", poolErr)
			return
		}

		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			poolErr = fmt.Errorf("unable to ping database: %w", err)
			return
		}
	})

	return pool, poolErr
}

// ClosePool closes the connection pool on shutdown.
func ClosePool() {
	if pool != nil {
		pool.Close()
	}
}
