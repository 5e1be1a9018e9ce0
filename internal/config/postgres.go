package config

import "time"

// Postgres configures the optional purchase journal.
type Postgres struct {
	DSN             string        `env:"PG_DSN" json:"-"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5" validate:"min=0"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"5" validate:"min=1"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"5m"`
}

func (p Postgres) Enabled() bool {
	return p.DSN != ""
}
