package db

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Nhongkham198/SGdelivery/internal/logger"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.L().Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.L().Fatal("invalid DATABASE_URL", zap.Error(err))
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		logger.L().Fatal("postgres pool init failed", zap.Error(err))
	}

	if err := pool.Ping(context.Background()); err != nil {
		logger.L().Fatal("postgres connection failed", zap.Error(err))
	}

	if err := initSchema(pool); err != nil {
		logger.L().Fatal("schema init failed", zap.Error(err))
	}

	logger.L().Info("connected to postgres")
	return pool
}

// initSchema creates or updates the database schema.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	ownersSQL := `
		CREATE TABLE IF NOT EXISTS owners (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'OWNER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, ownersSQL); err != nil {
		return err
	}

	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			customer_name VARCHAR(255) NOT NULL,
			phone VARCHAR(50) NOT NULL,
			address TEXT NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			lines JSONB NOT NULL,
			total NUMERIC(10,2) NOT NULL,
			slip_url VARCHAR(500) NOT NULL DEFAULT '',
			status VARCHAR(50) NOT NULL DEFAULT 'NEW',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	indexSQL := `
		CREATE INDEX IF NOT EXISTS idx_orders_created_at
		ON orders (created_at DESC)
	`
	if _, err := pool.Exec(ctx, indexSQL); err != nil {
		return err
	}

	return nil
}
