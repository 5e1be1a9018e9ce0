package config

import "time"

type Market struct {
	BaseURL            string        `env:"MARKET_BASE_URL" envDefault:"https://game.metalist.io/api" validate:"required,url"`
	AuthorizationToken string        `env:"MARKET_AUTHORIZATION_TOKEN,required" json:"-"`
	ClientAppID        string        `env:"MARKET_CLIENT_APP_ID,required"`
	Cookie             string        `env:"MARKET_COOKIE" json:"-"`
	UserAgent          string        `env:"MARKET_USER_AGENT" envDefault:"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"`
	PublicKeyPath      string        `env:"MARKET_PUBLIC_KEY_PATH" envDefault:"key.pem"`
	PublicKey          string        `env:"MARKET_PUBLIC_KEY" json:"-"`
	MaxRetries         uint64        `env:"MARKET_MAX_RETRIES" envDefault:"4"`
	RetryInterval      time.Duration `env:"MARKET_RETRY_INTERVAL" envDefault:"1s"`
	RequestTimeout     time.Duration `env:"MARKET_REQUEST_TIMEOUT" envDefault:"15s" validate:"gt=0"`
	LogFieldMaxLen     int           `env:"MARKET_LOG_FIELD_MAX_LEN" envDefault:"2048" validate:"min=0"`
	BalanceCacheTTL    time.Duration `env:"MARKET_BALANCE_CACHE_TTL" envDefault:"30s"`
}

// PublicKeyPEM returns the inline key with escaped newlines restored, if set.
func (m Market) PublicKeyPEM() string {
	return correctNewlines(m.PublicKey)
}
