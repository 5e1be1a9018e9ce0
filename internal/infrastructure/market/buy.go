package market

import (
	"context"

	"github.com/google/uuid"

	"ahoy_market/internal/domain"
	"ahoy_market/pkg/errcodes"
)

// Buy purchases one unit of the offer identified by handle and returns the
// vendor confirmation. Buys are not idempotent: each call carries a fresh
// nonce.
func (c *Client) Buy(ctx context.Context, handle string) (string, error) {
	payload, err := json.Marshal(buyPayload{
		Nonce:                uuid.NewString(),
		Amount:               1,
		Password:             "",
		PaymentType:          paymentTypeWallet,
		ReqTimestamp:         c.now().UnixMilli(),
		SaleAggregatorNumber: handle,
	})
	if err != nil {
		return "", domain.WrapError(err, errcodes.InternalServerError, "json.Marshal")
	}

	encKey, encContent, err := c.encrypter.Encrypt(payload)
	if err != nil {
		return "", err
	}

	var confirmation string
	if err := c.post(ctx, pathBuy, encryptedRequest{EncContent: encContent, EncKey: encKey}, &confirmation); err != nil {
		return "", err
	}

	return confirmation, nil
}
