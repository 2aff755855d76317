package account

import (
	"fmt"
	"strings"
	"testing"

	"github.com/roushou/polyte/clob/types"
)

// Hardhat/anvil account #0.
const (
	testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testMnemonic   = "test test test test test test test test test test test junk"
	testAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestNewWalletFromPrivateKey(t *testing.T) {
	for _, key := range []string{testPrivateKey, "0x" + testPrivateKey} {
		w, err := NewWalletFromPrivateKey(key)
		if err != nil {
			t.Fatalf("NewWalletFromPrivateKey(%q): %v", key, err)
		}
		if w.Address().Hex() != testAddress {
			t.Errorf("address = %s, want %s", w.Address().Hex(), testAddress)
		}
	}
}

func TestNewWalletFromPrivateKeyInvalid(t *testing.T) {
	_, err := NewWalletFromPrivateKey("not-a-key")
	if !types.IsKind(err, types.KindCrypto) {
		t.Fatalf("error = %v, want crypto kind", err)
	}
}

func TestNewWalletFromMnemonic(t *testing.T) {
	w, err := NewWalletFromMnemonic(testMnemonic, 0)
	if err != nil {
		t.Fatalf("NewWalletFromMnemonic: %v", err)
	}
	if w.Address().Hex() != testAddress {
		t.Errorf("address = %s, want %s", w.Address().Hex(), testAddress)
	}

	// A different index must derive a different account.
	w1, err := NewWalletFromMnemonic(testMnemonic, 1)
	if err != nil {
		t.Fatal(err)
	}
	if w1.Address() == w.Address() {
		t.Error("index 1 derived the same address as index 0")
	}
}

func TestWalletSignDigest(t *testing.T) {
	w, err := NewWalletFromPrivateKey(testPrivateKey)
	if err != nil {
		t.Fatal(err)
	}

	digest := make([]byte, 32)
	digest[31] = 1
	sig, err := w.SignDigest(digest)
	if err != nil {
		t.Fatalf("SignDigest: %v", err)
	}
	if len(sig) != 65 {
		t.Errorf("signature length = %d, want 65", len(sig))
	}

	if _, err := w.SignDigest([]byte{1, 2, 3}); err == nil {
		t.Error("expected error for short digest")
	}
}

func TestAccountSignOrder(t *testing.T) {
	w, err := NewWalletFromPrivateKey(testPrivateKey)
	if err != nil {
		t.Fatal(err)
	}
	acct := New(w, nil)

	order := &types.Order{
		Salt:          "12345",
		Maker:         testAddress,
		Signer:        testAddress,
		Taker:         "0x0000000000000000000000000000000000000000",
		TokenID:       "99",
		MakerAmount:   "5200",
		TakerAmount:   "10000",
		Expiration:    "0",
		Nonce:         "0",
		FeeRateBps:    "0",
		Side:          types.SideBuy,
		SignatureType: types.SignatureTypeEOA,
	}
	signed, err := acct.SignOrder(order, types.ChainPolygon, false)
	if err != nil {
		t.Fatalf("SignOrder: %v", err)
	}
	if !strings.HasPrefix(signed.Signature, "0x") || len(signed.Signature) != 132 {
		t.Errorf("malformed signature %q", signed.Signature)
	}
}

func TestAccountL2HeadersRequireCredentials(t *testing.T) {
	w, err := NewWalletFromPrivateKey(testPrivateKey)
	if err != nil {
		t.Fatal(err)
	}
	acct := New(w, nil)

	_, err = acct.L2Headers(&types.L2HeaderArgs{Method: "GET", RequestPath: "/orders"})
	if !types.IsKind(err, types.KindAuthentication) {
		t.Fatalf("error = %v, want authentication kind", err)
	}

	acct.SetCredentials(&types.ApiKeyCreds{Key: "k", Secret: "c2VjcmV0", Passphrase: "p"})
	h, err := acct.L2Headers(&types.L2HeaderArgs{Method: "GET", RequestPath: "/orders"})
	if err != nil {
		t.Fatalf("L2Headers after SetCredentials: %v", err)
	}
	if h.PolyAddress != testAddress {
		t.Errorf("PolyAddress = %s, want %s", h.PolyAddress, testAddress)
	}
}

func TestFromJSON(t *testing.T) {
	acct, err := FromJSON([]byte(`{
		"private_key": "` + testPrivateKey + `",
		"api_key": "k",
		"secret": "c2VjcmV0",
		"passphrase": "p"
	}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if acct.Address().Hex() != testAddress {
		t.Errorf("address = %s, want %s", acct.Address().Hex(), testAddress)
	}
	if !acct.HasCredentials() {
		t.Error("credentials not attached")
	}
}

func TestFromJSONMissingWallet(t *testing.T) {
	if _, err := FromJSON([]byte(`{"api_key": "k"}`)); err == nil {
		t.Fatal("expected error when no key material present")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvPrivateKey, testPrivateKey)
	t.Setenv(EnvAPIKey, "k")
	t.Setenv(EnvAPISecret, "c2VjcmV0")
	t.Setenv(EnvAPIPassphrase, "p")

	acct, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if acct.Address().Hex() != testAddress {
		t.Errorf("address = %s, want %s", acct.Address().Hex(), testAddress)
	}
	if !acct.HasCredentials() {
		t.Error("credentials not attached")
	}
}

func TestRedaction(t *testing.T) {
	w, err := NewWalletFromPrivateKey(testPrivateKey)
	if err != nil {
		t.Fatal(err)
	}
	acct := New(w, &types.ApiKeyCreds{Key: "key-abc", Secret: "secret-def", Passphrase: "pass-ghi"})

	for _, rendered := range []string{
		fmt.Sprintf("%v", w),
		fmt.Sprintf("%v", acct),
	} {
		for _, leak := range []string{testPrivateKey, "key-abc", "secret-def", "pass-ghi"} {
			if strings.Contains(rendered, leak) {
				t.Errorf("rendered %q leaks %q", rendered, leak)
			}
		}
	}
}
