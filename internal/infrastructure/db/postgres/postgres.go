package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings required to open the PostgreSQL pool.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Timeout         time.Duration
}

// Connect opens a gorm handle over PostgreSQL, sizes the connection pool and
// verifies connectivity with a ping. A default timeout is applied when none is
// provided.
func Connect(ctx context.Context, cfg Config) (*gorm.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// Ping reports whether the database answers. Used by the readiness check.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Constraint names are referenced by violations.go; keep both in sync.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      TEXT        NOT NULL,
		admin         BOOLEAN     NOT NULL DEFAULT FALSE,
		password_hash TEXT        NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT users_username_key   UNIQUE (username),
		CONSTRAINT users_username_check CHECK (btrim(username) <> '')
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id             BIGSERIAL PRIMARY KEY,
		name           TEXT             NOT NULL,
		description    TEXT             NOT NULL,
		category       TEXT             NOT NULL,
		original_price DOUBLE PRECISION NOT NULL,
		picture_url    TEXT,
		end_date       TIMESTAMPTZ      NOT NULL,
		seller_id      BIGINT           NOT NULL,
		CONSTRAINT products_name_check           CHECK (btrim(name) <> ''),
		CONSTRAINT products_description_check    CHECK (btrim(description) <> ''),
		CONSTRAINT products_category_check       CHECK (btrim(category) <> ''),
		CONSTRAINT products_original_price_check CHECK (original_price >= 0),
		CONSTRAINT products_seller_id_fkey FOREIGN KEY (seller_id) REFERENCES users (id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS products_seller_id_idx ON products (seller_id)`,
	`CREATE TABLE IF NOT EXISTS bids (
		id         BIGSERIAL PRIMARY KEY,
		price      DOUBLE PRECISION NOT NULL,
		date       TIMESTAMPTZ      NOT NULL DEFAULT NOW(),
		product_id BIGINT           NOT NULL,
		bidder_id  BIGINT           NOT NULL,
		CONSTRAINT bids_price_check        CHECK (price > 0),
		CONSTRAINT bids_product_id_fkey FOREIGN KEY (product_id) REFERENCES products (id) ON DELETE CASCADE,
		CONSTRAINT bids_bidder_id_fkey  FOREIGN KEY (bidder_id)  REFERENCES users (id)    ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS bids_product_id_idx ON bids (product_id)`,
	`CREATE INDEX IF NOT EXISTS bids_bidder_id_idx ON bids (bidder_id)`,
}

// Migrate creates the marketplace tables if they don't exist. The DDL is
// explicit rather than derived from the models so constraint names are stable.
func Migrate(ctx context.Context, db *gorm.DB) error {
	for _, stmt := range schema {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("postgres migrate: %w", err)
		}
	}
	return nil
}
