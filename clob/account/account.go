package account

import (
	"encoding/json"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/roushou/polyte/clob/signing"
	"github.com/roushou/polyte/clob/types"
)

// Environment variables recognized by FromEnv.
const (
	EnvPrivateKey    = "POLYMARKET_PRIVATE_KEY"
	EnvMnemonic      = "POLYMARKET_MNEMONIC"
	EnvAPIKey        = "POLYMARKET_API_KEY"
	EnvAPISecret     = "POLYMARKET_API_SECRET"
	EnvAPIPassphrase = "POLYMARKET_API_PASSPHRASE"
)

// Account is a wallet plus optional L2 API credentials. A wallet-only account
// can sign orders and L1 requests; attaching credentials unlocks L2 requests.
type Account struct {
	wallet *Wallet
	creds  *types.ApiKeyCreds
	hmac   *signing.HmacSigner
}

// New builds an account from a wallet and optional credentials.
func New(wallet *Wallet, creds *types.ApiKeyCreds) *Account {
	a := &Account{wallet: wallet, creds: creds}
	if creds != nil {
		a.hmac = signing.NewHmacSigner(creds.Secret)
	}
	return a
}

// FromEnv loads an account from the environment. POLYMARKET_PRIVATE_KEY wins
// over POLYMARKET_MNEMONIC; API credentials are attached when all three
// credential variables are present.
func FromEnv() (*Account, error) {
	var wallet *Wallet
	var err error

	switch {
	case os.Getenv(EnvPrivateKey) != "":
		wallet, err = NewWalletFromPrivateKey(os.Getenv(EnvPrivateKey))
	case os.Getenv(EnvMnemonic) != "":
		wallet, err = NewWalletFromMnemonic(os.Getenv(EnvMnemonic), 0)
	default:
		return nil, errors.Errorf("neither %s nor %s is set", EnvPrivateKey, EnvMnemonic)
	}
	if err != nil {
		return nil, err
	}

	var creds *types.ApiKeyCreds
	key, secret, passphrase := os.Getenv(EnvAPIKey), os.Getenv(EnvAPISecret), os.Getenv(EnvAPIPassphrase)
	if key != "" && secret != "" && passphrase != "" {
		creds = &types.ApiKeyCreds{Key: key, Secret: secret, Passphrase: passphrase}
	}

	return New(wallet, creds), nil
}

// credentialsFile is the on-disk account format.
type credentialsFile struct {
	PrivateKey string `json:"private_key,omitempty"`
	Mnemonic   string `json:"mnemonic,omitempty"`
	APIKey     string `json:"api_key,omitempty"`
	Secret     string `json:"secret,omitempty"`
	Passphrase string `json:"passphrase,omitempty"`
}

// FromFile loads an account from a JSON credentials file.
func FromFile(path string) (*Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read credentials file")
	}
	return FromJSON(data)
}

// FromJSON loads an account from serialized credentials.
func FromJSON(data []byte) (*Account, error) {
	var f credentialsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parse credentials")
	}

	var wallet *Wallet
	var err error
	switch {
	case f.PrivateKey != "":
		wallet, err = NewWalletFromPrivateKey(f.PrivateKey)
	case f.Mnemonic != "":
		wallet, err = NewWalletFromMnemonic(f.Mnemonic, 0)
	default:
		return nil, errors.New("credentials contain neither private_key nor mnemonic")
	}
	if err != nil {
		return nil, err
	}

	var creds *types.ApiKeyCreds
	if f.APIKey != "" && f.Secret != "" && f.Passphrase != "" {
		creds = &types.ApiKeyCreds{Key: f.APIKey, Secret: f.Secret, Passphrase: f.Passphrase}
	}

	return New(wallet, creds), nil
}

// Address returns the wallet address.
func (a *Account) Address() common.Address {
	return a.wallet.Address()
}

// Wallet returns the underlying wallet.
func (a *Account) Wallet() *Wallet {
	return a.wallet
}

// Credentials returns the attached API credentials, nil for wallet-only
// accounts.
func (a *Account) Credentials() *types.ApiKeyCreds {
	return a.creds
}

// SetCredentials attaches (or replaces) API credentials, typically after
// deriving them from the exchange.
func (a *Account) SetCredentials(creds *types.ApiKeyCreds) {
	a.creds = creds
	a.hmac = signing.NewHmacSigner(creds.Secret)
}

// HasCredentials reports whether L2 requests can be signed.
func (a *Account) HasCredentials() bool {
	return a.creds != nil
}

// SignOrder signs an order against the exchange contract for the chain.
func (a *Account) SignOrder(order *types.Order, chainID types.Chain, negRisk bool) (*types.SignedOrder, error) {
	return signing.SignOrder(a.wallet, chainID, negRisk, order)
}

// L1Headers builds wallet-signed request headers.
func (a *Account) L1Headers(chainID types.Chain, nonce, timestamp int64) (*types.L1PolyHeader, error) {
	return signing.CreateL1Headers(a.wallet, chainID, nonce, timestamp)
}

// L2Headers builds HMAC-signed request headers. Fails for wallet-only
// accounts.
func (a *Account) L2Headers(args *types.L2HeaderArgs) (*types.L2PolyHeader, error) {
	if a.creds == nil {
		return nil, types.NewError(types.KindAuthentication, "account has no API credentials")
	}
	return signing.CreateL2Headers(a.wallet.Address().Hex(), a.creds, a.hmac, args)
}

// String redacts everything sensitive.
func (a *Account) String() string {
	return "Account{address:" + a.wallet.Address().Hex() + " credentials:<redacted>}"
}
