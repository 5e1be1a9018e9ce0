package connectors

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"

	"ahoy_market/pkg/logx"
)

const defaultConnectTimeout = 10 * time.Second

type Postgres struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration

	value *sqlx.DB
	err   error
	init  sync.Once
}

// Client connects on first use. A failed connect is remembered and returned
// on every later call.
func (p *Postgres) Client(ctx context.Context) (*sqlx.DB, error) {
	p.init.Do(func() {
		timeout := p.ConnectTimeout
		if timeout <= 0 {
			timeout = defaultConnectTimeout
		}

		connectCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		db, err := sqlx.ConnectContext(connectCtx, "pgx", p.DSN)
		if err != nil {
			p.err = fmt.Errorf("postgres connect: %w", err)
			return
		}

		db.SetMaxOpenConns(p.MaxOpenConns)
		db.SetMaxIdleConns(p.MaxIdleConns)
		db.SetConnMaxLifetime(p.ConnMaxLifetime)

		p.value = db

		logger(ctx).Info("postgres connected", slog.String("database", p.database()))
	})

	return p.value, p.err
}

func (p *Postgres) Close(ctx context.Context) {
	if p.value == nil {
		return
	}

	if err := p.value.Close(); err != nil {
		logger(ctx).Error("postgresClient.Close", logx.Error(err))
	}

	logger(ctx).Info("postgres disconnected", slog.String("database", p.database()))
}

// database returns the database name without exposing credentials.
func (p *Postgres) database() string {
	u, err := url.Parse(p.DSN)
	if err != nil {
		return ""
	}

	return u.Path
}
