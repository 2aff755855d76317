package client

import (
	"context"
	"net/http"

	"github.com/roushou/polyte/clob/types"
)

// CreateAPIKey mints new L2 API credentials with an L1-signed request. The
// nonce lets one wallet hold several credential sets.
func (c *Client) CreateAPIKey(ctx context.Context, nonce int64) (*types.ApiKeyCreds, error) {
	var raw types.ApiKeyRaw
	err := c.do(ctx, requestSpec{
		method:   http.MethodPost,
		endpoint: EndpointCreateAPIKey,
		auth:     authL1,
		nonce:    nonce,
	}, &raw)
	if err != nil {
		return nil, err
	}
	return raw.Creds(), nil
}

// DeriveAPIKey recovers previously minted credentials for a nonce.
func (c *Client) DeriveAPIKey(ctx context.Context, nonce int64) (*types.ApiKeyCreds, error) {
	var raw types.ApiKeyRaw
	err := c.do(ctx, requestSpec{
		method:   http.MethodGet,
		endpoint: EndpointDeriveAPIKey,
		auth:     authL1,
		nonce:    nonce,
	}, &raw)
	if err != nil {
		return nil, err
	}
	return raw.Creds(), nil
}

// CreateOrDeriveAPIKey derives existing credentials and falls back to minting
// a fresh set. The result is attached to the client's account.
func (c *Client) CreateOrDeriveAPIKey(ctx context.Context, nonce int64) (*types.ApiKeyCreds, error) {
	creds, err := c.DeriveAPIKey(ctx, nonce)
	if err != nil {
		c.log.WithError(err).Debug("derive failed, creating fresh API key")
		creds, err = c.CreateAPIKey(ctx, nonce)
		if err != nil {
			return nil, err
		}
	}
	if c.account != nil {
		c.account.SetCredentials(creds)
	}
	return creds, nil
}

// ListAPIKeys lists the API keys minted for the wallet.
func (c *Client) ListAPIKeys(ctx context.Context) ([]string, error) {
	var resp struct {
		APIKeys []string `json:"apiKeys"`
	}
	err := c.do(ctx, requestSpec{
		method:   http.MethodGet,
		endpoint: EndpointGetAPIKeys,
		auth:     authL2,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.APIKeys, nil
}

// DeleteAPIKey revokes the credentials currently attached to the client.
func (c *Client) DeleteAPIKey(ctx context.Context) error {
	return c.do(ctx, requestSpec{
		method:   http.MethodDelete,
		endpoint: EndpointDeleteAPIKey,
		auth:     authL2,
	}, nil)
}

// BalanceAllowanceParams select which balance to query.
type BalanceAllowanceParams struct {
	AssetType types.AssetType
	TokenID   string // required for conditional balances
}

// BalanceAllowance fetches the account's balance and spend allowance for
// collateral or one conditional token.
func (c *Client) BalanceAllowance(ctx context.Context, params *BalanceAllowanceParams) (*types.BalanceAllowance, error) {
	query := map[string]string{"asset_type": string(params.AssetType)}
	if params.TokenID != "" {
		query["token_id"] = params.TokenID
	}

	var resp types.BalanceAllowance
	err := c.do(ctx, requestSpec{
		method:   http.MethodGet,
		endpoint: EndpointGetBalanceAllowance,
		auth:     authL2,
		params:   query,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
