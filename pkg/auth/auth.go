// Package auth builds the two authentication header sets the CLOB API
// accepts: L1 (EIP-712 attestation signature) and L2 (HMAC over the
// request with a shared API secret).
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/GoPolymarket/polysign/pkg/eip712"
	"github.com/GoPolymarket/polysign/pkg/signer"
)

// ErrDecoding reports a shared secret that is not valid base64.
var ErrDecoding = errors.New("auth: malformed api secret")

// Header names the API expects.
const (
	HeaderAddress    = "POLY_ADDRESS"
	HeaderSignature  = "POLY_SIGNATURE"
	HeaderTimestamp  = "POLY_TIMESTAMP"
	HeaderNonce      = "POLY_NONCE"
	HeaderAPIKey     = "POLY_API_KEY"
	HeaderPassphrase = "POLY_PASSPHRASE"
)

// Credentials are the L2 API credentials issued by the CLOB. Secret is
// URL-safe base64 as delivered by the API.
type Credentials struct {
	APIKey     string
	Secret     string
	Passphrase string
}

// Builder derives auth headers for one signer. Header derivation is pure
// and safe for concurrent use.
type Builder struct {
	signer *signer.Signer
	logger *zap.Logger
}

// NewBuilder wraps a signer for header derivation.
func NewBuilder(s *signer.Signer, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{signer: s, logger: logger}
}

// L1Headers signs the ClobAuth attestation for the given unix-second
// timestamp and nonce.
func (b *Builder) L1Headers(timestamp int64, nonce uint64) (map[string]string, error) {
	ts := strconv.FormatInt(timestamp, 10)

	message := eip712.Message{
		"address":   b.signer.Address(),
		"timestamp": ts,
		"nonce":     nonce,
		"message":   eip712.ClobAuthMessage,
	}
	signature, err := b.signer.SignTypedData(
		eip712.ClobAuthDomain(b.signer.ChainID()), "ClobAuth", message, eip712.ClobAuthTypes)
	if err != nil {
		return nil, fmt.Errorf("signing clob auth attestation: %w", err)
	}

	return map[string]string{
		HeaderAddress:   b.signer.Address(),
		HeaderSignature: signature,
		HeaderTimestamp: ts,
		HeaderNonce:     strconv.FormatUint(nonce, 10),
	}, nil
}

// L2Headers computes the HMAC request signature over
// timestamp ‖ method ‖ requestPath ‖ body with no separators.
func (b *Builder) L2Headers(creds Credentials, timestamp int64, method, requestPath, body string) (map[string]string, error) {
	ts := strconv.FormatInt(timestamp, 10)

	secret, err := decodeSecret(creds.Secret)
	if err != nil {
		return nil, err
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(ts))
	mac.Write([]byte(method))
	mac.Write([]byte(requestPath))
	mac.Write([]byte(body))

	// URL-safe alphabet, and the trailing = padding stays: the server
	// rejects unpadded signatures even though most URL-safe encoders
	// strip them.
	signature := base64.URLEncoding.EncodeToString(mac.Sum(nil))

	return map[string]string{
		HeaderAddress:    strings.ToLower(b.signer.Address()),
		HeaderAPIKey:     creds.APIKey,
		HeaderPassphrase: creds.Passphrase,
		HeaderSignature:  signature,
		HeaderTimestamp:  ts,
	}, nil
}

// decodeSecret restores a URL-safe base64 secret to the standard alphabet,
// re-pads it, and decodes it.
func decodeSecret(secret string) ([]byte, error) {
	s := strings.NewReplacer("-", "+", "_", "/").Replace(secret)
	if m := len(s) % 4; m != 0 {
		s += strings.Repeat("=", 4-m)
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecoding, err)
	}
	return raw, nil
}
