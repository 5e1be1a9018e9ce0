package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"ahoy_market/internal/domain"
	"ahoy_market/pkg/errcodes"
)

type Config struct {
	App      App
	Market   Market
	Scan     Scan
	Buy      Buy
	Files    Files
	Postgres Postgres
	Bot      Bot
	Servers  Servers
}

type App struct {
	Name     string `env:"APP_NAME" envDefault:"ahoy-market"`
	Version  string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

type Bot struct {
	Token  string `env:"BOT_TOKEN" json:"-"`
	ChatID int64  `env:"BOT_CHAT_ID" validate:"required_with=Token"`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}

type Servers struct {
	ProbeListenAddress   string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsListenAddress string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	StatusListenAddress  string        `env:"STATUS_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	return Parse(env.Options{})
}

// Parse reads the configuration from the environment described by opts and
// validates it.
func Parse(opts env.Options) (Config, error) {
	var config Config

	if err := env.ParseWithOptions(&config, opts); err != nil {
		return Config{}, domain.WrapError(err, errcodes.ConfigError, "env.Parse")
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return Config{}, domain.WrapError(err, errcodes.ConfigError, "invalid configuration")
	}

	if _, err := config.Scan.Filter(); err != nil {
		return Config{}, domain.WrapError(err, errcodes.ConfigError, "invalid scan filter")
	}

	return config, nil
}

func (a App) SlogLevel() slog.Level {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.ToUpper(a.LogLevel))); err != nil {
		return slog.LevelInfo
	}

	return level
}

func correctNewlines(s string) string {
	return strings.NewReplacer(`"`, "", `\n`, "\n").Replace(s)
}

func (c Config) String() string {
	return fmt.Sprintf(
		"market=%s scan=%s/%d fan-out=%d policy=%s journal=%t notifier=%t",
		c.Market.BaseURL, c.Scan.Mode, c.Scan.PageSize, c.Scan.FanOut, c.Buy.Policy,
		c.Postgres.Enabled(), c.Bot.Enabled(),
	)
}
