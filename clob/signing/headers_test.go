package signing

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/roushou/polyte/clob/types"
)

func TestCreateL1Headers(t *testing.T) {
	signer := newTestSigner(t)

	h, err := CreateL1Headers(signer, types.ChainPolygon, 7, 1700000000)
	if err != nil {
		t.Fatalf("CreateL1Headers: %v", err)
	}
	if h.PolyAddress != testAddress {
		t.Errorf("PolyAddress = %s, want %s", h.PolyAddress, testAddress)
	}
	if h.PolyTimestamp != "1700000000" {
		t.Errorf("PolyTimestamp = %s, want 1700000000", h.PolyTimestamp)
	}
	if h.PolyNonce != "7" {
		t.Errorf("PolyNonce = %s, want 7", h.PolyNonce)
	}
	if !strings.HasPrefix(h.PolySignature, "0x") || len(h.PolySignature) != 132 {
		t.Errorf("malformed signature %q", h.PolySignature)
	}
}

func TestCreateL1HeadersDefaultTimestamp(t *testing.T) {
	signer := newTestSigner(t)

	before := time.Now().Unix()
	h, err := CreateL1Headers(signer, types.ChainPolygon, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	after := time.Now().Unix()

	ts, err := strconv.ParseInt(h.PolyTimestamp, 10, 64)
	if err != nil {
		t.Fatalf("PolyTimestamp %q not an integer: %v", h.PolyTimestamp, err)
	}
	if ts < before || ts > after {
		t.Errorf("timestamp %d outside [%d, %d]", ts, before, after)
	}
}

func TestCreateL2Headers(t *testing.T) {
	creds := &types.ApiKeyCreds{Key: "key-1", Secret: "c2VjcmV0", Passphrase: "pass-1"}
	hmacSigner := NewHmacSigner(creds.Secret)

	h, err := CreateL2Headers(testAddress, creds, hmacSigner, &types.L2HeaderArgs{
		Method:      "GET",
		RequestPath: "/orders",
	})
	if err != nil {
		t.Fatalf("CreateL2Headers: %v", err)
	}
	if h.PolyAddress != testAddress || h.PolyAPIKey != "key-1" || h.PolyPassphrase != "pass-1" {
		t.Errorf("unexpected headers: %+v", h)
	}
	if h.PolySignature == "" {
		t.Error("empty signature")
	}
	if strings.ContainsAny(h.PolySignature, "+/") {
		t.Errorf("signature %q uses standard base64 alphabet", h.PolySignature)
	}
}

func TestCreateL2HeadersFreshTimestamp(t *testing.T) {
	creds := &types.ApiKeyCreds{Key: "key-1", Secret: "c2VjcmV0", Passphrase: "pass-1"}
	hmacSigner := NewHmacSigner(creds.Secret)
	args := &types.L2HeaderArgs{Method: "GET", RequestPath: "/orders"}

	h, err := CreateL2Headers(testAddress, creds, hmacSigner, args)
	if err != nil {
		t.Fatal(err)
	}
	ts, err := strconv.ParseInt(h.PolyTimestamp, 10, 64)
	if err != nil {
		t.Fatalf("PolyTimestamp %q not an integer: %v", h.PolyTimestamp, err)
	}
	if now := time.Now().Unix(); ts < now-5 || ts > now {
		t.Errorf("timestamp %d not freshly captured (now %d)", ts, now)
	}
}

func TestCreateL2HeadersIncompleteCreds(t *testing.T) {
	hmacSigner := NewHmacSigner("c2VjcmV0")
	args := &types.L2HeaderArgs{Method: "GET", RequestPath: "/orders"}

	tests := []struct {
		name  string
		creds *types.ApiKeyCreds
	}{
		{"nil", nil},
		{"missing key", &types.ApiKeyCreds{Secret: "c2VjcmV0", Passphrase: "p"}},
		{"missing passphrase", &types.ApiKeyCreds{Key: "k", Secret: "c2VjcmV0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateL2Headers(testAddress, tt.creds, hmacSigner, args)
			if !types.IsKind(err, types.KindAuthentication) {
				t.Errorf("error = %v, want authentication kind", err)
			}
		})
	}
}
