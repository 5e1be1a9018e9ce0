package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ahoy_market/internal/config"
	"ahoy_market/internal/domain"
	"ahoy_market/internal/domain/value"
	"ahoy_market/pkg/errcodes"
)

func requiredEnv() map[string]string {
	return map[string]string{
		"MARKET_AUTHORIZATION_TOKEN": "token",
		"MARKET_CLIENT_APP_ID":       "app",
	}
}

func TestParseDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Parse(env.Options{Environment: requiredEnv()})
	rq.NoError(err)

	rq.Equal("https://game.metalist.io/api", cfg.Market.BaseURL)
	rq.Equal(uint64(4), cfg.Market.MaxRetries)
	rq.Equal(time.Second, cfg.Market.RetryInterval)
	rq.Equal(uint32(20), cfg.Scan.PageSize)
	rq.Equal(3, cfg.Scan.FanOut)
	rq.Equal(config.ScanModeContinuous, cfg.Scan.Mode)
	rq.Equal(config.BuyPolicyReference, cfg.Buy.Policy)
	rq.Equal(uint32(3), cfg.Buy.MaxLevel)
	rq.True(decimal.RequireFromString("0.5").Equal(cfg.Buy.TopRatio))
	rq.True(decimal.RequireFromString("1.1").Equal(cfg.Buy.GoldRatio))
	rq.Equal(10, cfg.Buy.GoldMinRegularListings)
	rq.Equal("data/catalog.json", cfg.Files.CatalogPath)
	rq.False(cfg.Postgres.Enabled())
	rq.False(cfg.Bot.Enabled())
	rq.Equal(slog.LevelInfo, cfg.App.SlogLevel())

	filter, err := cfg.Scan.Filter()
	rq.NoError(err)
	rq.Empty(filter.Factions)
	rq.Nil(filter.Colors())
}

func TestParseOverrides(t *testing.T) {
	rq := require.New(t)

	environment := requiredEnv()
	environment["SCAN_FACTIONS"] = "Zombie,mech"
	environment["SCAN_RARITIES"] = "Epic"
	environment["SCAN_FOILS"] = "Gold"
	environment["SCAN_MODE"] = "once"
	environment["BUY_POLICY"] = "all"
	environment["BUY_TOP_RATIO"] = "0.65"
	environment["LOG_LEVEL"] = "debug"
	environment["MARKET_PUBLIC_KEY"] = `-----BEGIN PUBLIC KEY-----\nabc\n-----END PUBLIC KEY-----`
	environment["PG_DSN"] = "postgres://localhost/ahoy"
	environment["BOT_TOKEN"] = "bot"
	environment["BOT_CHAT_ID"] = "42"

	cfg, err := config.Parse(env.Options{Environment: environment})
	rq.NoError(err)

	filter, err := cfg.Scan.Filter()
	rq.NoError(err)
	rq.Equal(value.NewSet(value.CategoryZombie, value.CategoryMech), filter.Factions)
	rq.Equal(value.NewSet(value.ColorPurpleGold), filter.Colors())

	rq.Equal(config.ScanModeOnce, cfg.Scan.Mode)
	rq.True(decimal.RequireFromString("0.65").Equal(cfg.Buy.TopRatio))
	rq.Equal(slog.LevelDebug, cfg.App.SlogLevel())
	rq.Equal("-----BEGIN PUBLIC KEY-----\nabc\n-----END PUBLIC KEY-----", cfg.Market.PublicKeyPEM())
	rq.True(cfg.Postgres.Enabled())
	rq.True(cfg.Bot.Enabled())
	rq.Equal(int64(42), cfg.Bot.ChatID)
}

func TestParseErrors(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		key     string
		value   string
		without string
	}{
		{name: "Missing token", without: "MARKET_AUTHORIZATION_TOKEN"},
		{name: "Unknown faction", key: "SCAN_FACTIONS", value: "Pirate"},
		{name: "Unknown policy", key: "BUY_POLICY", value: "yolo"},
		{name: "Zero fan out", key: "SCAN_FAN_OUT", value: "0"},
		{name: "Unknown mode", key: "SCAN_MODE", value: "forever"},
		{name: "Invalid ratio", key: "BUY_TOP_RATIO", value: "half"},
		{name: "Bot without chat", key: "BOT_TOKEN", value: "bot"},
		{name: "Invalid base URL", key: "MARKET_BASE_URL", value: "not a url"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			environment := requiredEnv()
			if tc.key != "" {
				environment[tc.key] = tc.value
			}

			delete(environment, tc.without)

			_, err := config.Parse(env.Options{Environment: environment})
			rq.Error(err)
			rq.True(domain.HasCode(err, errcodes.ConfigError))
		})
	}
}
