package market

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"

	"ahoy_market/internal/config"
	"ahoy_market/internal/domain"
	"ahoy_market/pkg/errcodes"
	"ahoy_market/pkg/httpx"
	"ahoy_market/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	codeSuccess        = "000000"
	codeSessionExpired = "100000"

	pathQuerySecondary = "/marketQuery/queryMarketSecondary"
	pathQueryHome      = "/marketQuery/queryMarketHome"
	pathBuy            = "/marketOperate/buyNFTAsset"
	pathQueryBalance   = "/marketQuery/queryUserBalance"
	pathQueryDealTrend = "/marketQuery/queryAnalyzeDealTrend"
)

type encrypter interface {
	Encrypt(payload []byte) (encKey, encContent string, err error)
}

// Client talks to the vendor market API. Every call is a JSON POST that is
// retried on transport failures and unwrapped from the {code,msg,data}
// envelope.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	encrypter     encrypter
	maxRetries    uint64
	retryInterval time.Duration
	balanceCache  *cache.Cache
	now           func() time.Time
}

type ClientOption func(*Client)

// WithHTTPClient replaces the default client and its transport chain.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithNow(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

func NewClient(cfg config.Market, encrypter encrypter, opts ...ClientOption) *Client {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")
	headers.Set("Authorization-Token", cfg.AuthorizationToken)
	headers.Set("Client-App-Id", cfg.ClientAppID)

	if cfg.Cookie != "" {
		headers.Set("Cookie", cfg.Cookie)
	}

	if cfg.UserAgent != "" {
		headers.Set("User-Agent", cfg.UserAgent)
	}

	transport := httpx.NewLoggingRoundTripper(
		http.DefaultTransport,
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(cfg.LogFieldMaxLen),
		httpx.WithLevel(slog.LevelDebug),
	)

	c := &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: httpx.NewStaticHeadersRoundTripper(transport, headers),
		},
		encrypter:     encrypter,
		maxRetries:    cfg.MaxRetries,
		retryInterval: cfg.RetryInterval,
		balanceCache:  cache.New(cfg.BalanceCacheTTL, 2*cfg.BalanceCacheTTL),
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type envelope struct {
	Code string              `json:"code"`
	Msg  string              `json:"msg"`
	Data jsoniter.RawMessage `json:"data"`
}

// post sends payload to path and decodes the envelope data into dest.
func (c *Client) post(ctx context.Context, path string, payload, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "json.Marshal")
	}

	var env envelope

	attempt := func() error {
		raw, err := c.do(ctx, path, body)
		if err != nil {
			return err
		}

		if err := json.Unmarshal(raw, &env); err != nil {
			return backoff.Permanent(domain.WrapError(err, errcodes.TransportError, "decode envelope"))
		}

		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryInterval), c.maxRetries),
		ctx,
	)

	notify := func(err error, wait time.Duration) {
		logger(ctx).Warn(
			"market request failed, retrying",
			slog.String(logx.FieldURL, path),
			slog.Duration("wait", wait),
			logx.Error(err),
		)
	}

	if err := backoff.RetryNotify(attempt, policy, notify); err != nil {
		if domain.IsAppError(err) {
			return err
		}

		return domain.WrapError(err, errcodes.TransportError, path)
	}

	if env.Code != codeSuccess {
		apiErr := domain.NewError(errcodes.APILogicError, fmt.Sprintf("%s: code %s: %s", path, env.Code, env.Msg))
		if env.Code == codeSessionExpired {
			return domain.WrapError(apiErr, errcodes.SessionExpired, "market session expired")
		}

		return apiErr
	}

	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return domain.NewError(errcodes.APILogicError, fmt.Sprintf("%s: response has no data", path))
	}

	if err := json.Unmarshal(env.Data, dest); err != nil {
		return domain.WrapError(err, errcodes.APILogicError, fmt.Sprintf("%s: decode data", path))
	}

	return nil
}

var errHTMLBody = errors.New("html body instead of json")

// do runs one HTTP exchange. Errors it returns are retryable.
func (c *Client) do(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(domain.WrapError(err, errcodes.InternalServerError, "http.NewRequestWithContext"))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.TransportError, "httpClient.Do")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.TransportError, "io.ReadAll")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewError(errcodes.TransportError, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("<html")) {
		return nil, domain.WrapError(errHTMLBody, errcodes.TransportError, "unexpected body")
	}

	return raw, nil
}
