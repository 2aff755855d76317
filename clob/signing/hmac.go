package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"
)

// secretEncodings is the ordered fallback chain for decoding API secrets. The
// exchange's dashboards emit secrets in inconsistent encodings, so the first
// decoder that accepts the string wins; a string no decoder accepts is used as
// raw bytes.
var secretEncodings = []*base64.Encoding{
	base64.URLEncoding.WithPadding(base64.NoPadding),
	base64.URLEncoding,
	base64.StdEncoding,
}

// decodeSecret resolves an API secret string to raw key bytes.
func decodeSecret(secret string) []byte {
	for _, enc := range secretEncodings {
		if b, err := enc.DecodeString(secret); err == nil {
			return b
		}
	}
	return []byte(secret)
}

// HmacSigner computes L2 request signatures. The secret is decoded once at
// construction; the struct never renders it.
type HmacSigner struct {
	secret []byte
}

// NewHmacSigner builds a signer from a base64-encoded (or raw) secret.
func NewHmacSigner(secret string) *HmacSigner {
	return &HmacSigner{secret: decodeSecret(secret)}
}

// Sign HMAC-SHA256s the message and returns it base64-encoded in the URL-safe
// alphabet ('+' -> '-', '/' -> '_') with padding kept, as the exchange
// requires.
func (s *HmacSigner) Sign(message string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(message))

	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	sig = strings.ReplaceAll(sig, "+", "-")
	return strings.ReplaceAll(sig, "/", "_")
}

// String redacts the key material.
func (s *HmacSigner) String() string {
	return "HmacSigner{secret:<redacted>}"
}

// BuildHmacMessage concatenates the canonical L2 message with no separators:
// {timestamp}{METHOD}{path}{body-or-empty}.
func BuildHmacMessage(timestamp int64, method, requestPath, body string) string {
	return strconv.FormatInt(timestamp, 10) + method + requestPath + body
}
