// Package account bundles the wallet, API credentials and HMAC signer a
// trader needs into one primitive, with loaders for the usual configuration
// sources.
package account

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"

	"github.com/roushou/polyte/clob/types"
)

// Wallet wraps a secp256k1 private key and implements signing.DigestSigner.
type Wallet struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewWalletFromPrivateKey parses a hex private key, with or without the 0x
// prefix.
func NewWalletFromPrivateKey(hexKey string) (*Wallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, types.WrapError(types.KindCrypto, err, "parse private key")
	}
	return &Wallet{key: key, address: crypto.PubkeyToAddress(key.PublicKey)}, nil
}

// NewWalletFromMnemonic derives a wallet from a BIP-39 mnemonic at the
// standard Ethereum path m/44'/60'/0'/0/{index}.
func NewWalletFromMnemonic(mnemonic string, index uint32) (*Wallet, error) {
	hd, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return nil, types.WrapError(types.KindCrypto, err, "parse mnemonic")
	}

	path, err := hdwallet.ParseDerivationPath(fmt.Sprintf("m/44'/60'/0'/0/%d", index))
	if err != nil {
		return nil, types.WrapError(types.KindCrypto, err, "parse derivation path")
	}

	acct, err := hd.Derive(path, false)
	if err != nil {
		return nil, types.WrapError(types.KindCrypto, err, "derive account")
	}

	key, err := hd.PrivateKey(acct)
	if err != nil {
		return nil, types.WrapError(types.KindCrypto, err, "derive private key")
	}

	return &Wallet{key: key, address: crypto.PubkeyToAddress(key.PublicKey)}, nil
}

// Address returns the wallet address.
func (w *Wallet) Address() common.Address {
	return w.address
}

// SignDigest signs a 32-byte digest, returning the 65-byte r||s||v signature.
func (w *Wallet) SignDigest(digest []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, types.Errorf(types.KindCrypto, "digest must be 32 bytes, got %d", len(digest))
	}
	return crypto.Sign(digest, w.key)
}

// String redacts the key material.
func (w *Wallet) String() string {
	return fmt.Sprintf("Wallet{address:%s key:<redacted>}", w.address.Hex())
}
