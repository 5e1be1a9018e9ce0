package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"ahoy_market/internal/domain"
	"ahoy_market/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("connection reset")
	inner := domain.WrapError(cause, errcodes.TransportError, "queryMarketHome")
	outer := domain.WrapError(fmt.Errorf("fetch listings: %w", inner), errcodes.ConfigError, "startup")

	rq.Equal("queryMarketHome: connection reset", inner.Error())
	rq.ErrorIs(outer, cause)
	rq.True(domain.IsAppError(outer))

	code, ok := domain.GetCode(outer)
	rq.True(ok)
	rq.Equal(errcodes.ConfigError, code)

	rq.True(domain.HasCode(outer, errcodes.TransportError))
	rq.True(domain.HasCode(outer, errcodes.ConfigError))
	rq.False(domain.HasCode(outer, errcodes.SessionExpired))
	rq.False(domain.HasCode(cause, errcodes.TransportError))

	_, ok = domain.GetCode(cause)
	rq.False(ok)

	rq.Equal("not found", domain.NewError(errcodes.NotFound, "not found").Error())
}
