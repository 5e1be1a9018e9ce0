package market

import (
	"context"

	"github.com/patrickmn/go-cache"

	"ahoy_market/internal/domain/entity"
)

const balanceCacheKey = "wallet"

func (c *Client) QueryUserBalance(ctx context.Context) ([]entity.Balance, error) {
	var response []balanceItem
	if err := c.post(ctx, pathQueryBalance, balanceRequest{CoinID: coinIDUSDT, PaymentType: paymentTypeWallet}, &response); err != nil {
		return nil, err
	}

	balances := make([]entity.Balance, 0, len(response))
	for _, item := range response {
		balances = append(balances, item.toEntity())
	}

	return balances, nil
}

// CachedBalance serves the wallet balance from memory while it is fresh.
func (c *Client) CachedBalance(ctx context.Context) ([]entity.Balance, error) {
	if cached, ok := c.balanceCache.Get(balanceCacheKey); ok {
		if balances, ok := cached.([]entity.Balance); ok {
			return balances, nil
		}
	}

	balances, err := c.QueryUserBalance(ctx)
	if err != nil {
		return nil, err
	}

	c.balanceCache.Set(balanceCacheKey, balances, cache.DefaultExpiration)

	return balances, nil
}

// InvalidateBalance drops the cached balance, e.g. after a purchase.
func (c *Client) InvalidateBalance() {
	c.balanceCache.Delete(balanceCacheKey)
}
