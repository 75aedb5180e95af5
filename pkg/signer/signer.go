// Package signer derives Ethereum addresses and produces deterministic
// recoverable secp256k1 signatures over 32-byte hashes.
package signer

import (
	"encoding/hex"
	"errors"
	"fmt"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"go.uber.org/zap"

	"github.com/GoPolymarket/polysign/pkg/eip712"
	"github.com/GoPolymarket/polysign/pkg/keccak"
	"github.com/GoPolymarket/polysign/pkg/util"
)

// ErrInvalidKey reports key material that is not a valid curve scalar.
var ErrInvalidKey = errors.New("signer: invalid private key")

// Signature is a recoverable ECDSA signature. RecoveryID selects which of
// the two candidate public keys the signature recovers to; the wire format
// omits the public key, so it is required for verification.
type Signature struct {
	R          [32]byte
	S          [32]byte
	RecoveryID byte
}

// WireHex renders the 65-byte Ethereum wire form 0x ‖ r ‖ s ‖ (recid+27).
func (sig Signature) WireHex() string {
	out := make([]byte, 0, 65)
	out = append(out, sig.R[:]...)
	out = append(out, sig.S[:]...)
	out = append(out, sig.RecoveryID+27)
	return util.BytesToHex(out)
}

// Signer owns one private key for its lifetime. The key value is immutable
// during signing, so a Signer is safe for concurrent Sign calls; Close
// zeroizes the key and the Signer must not be used afterwards.
type Signer struct {
	key     *secp256k1.PrivateKey
	chainID uint64
	address string
	logger  *zap.Logger
}

// New constructs a Signer from a hex private key (0x prefix optional) and
// the target chain id.
func New(privateKeyHex string, chainID uint64, logger *zap.Logger) (*Signer, error) {
	raw, err := hex.DecodeString(util.TrimHexPrefix(privateKeyHex))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return NewFromBytes(raw, chainID, logger)
}

// NewFromBytes constructs a Signer from a raw 32-byte scalar. The scalar
// must satisfy 0 < k < N.
func NewFromBytes(keyBytes []byte, chainID uint64, logger *zap.Logger) (*Signer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(keyBytes) != 32 {
		return nil, fmt.Errorf("%w: want 32 bytes, got %d", ErrInvalidKey, len(keyBytes))
	}

	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(keyBytes)
	if overflow {
		return nil, fmt.Errorf("%w: scalar not below curve order", ErrInvalidKey)
	}
	if scalar.IsZero() {
		return nil, fmt.Errorf("%w: scalar is zero", ErrInvalidKey)
	}
	key := secp256k1.NewPrivateKey(&scalar)
	scalar.Zero()

	// The uncompressed point is 0x04 ‖ X ‖ Y; the format byte is excluded
	// from the address hash.
	pub := key.PubKey().SerializeUncompressed()
	digest := keccak.Sum256(pub[1:])
	address := util.BytesToHex(digest[12:])

	logger.Debug("signer constructed",
		zap.String("address", address),
		zap.Uint64("chainId", chainID),
	)

	return &Signer{
		key:     key,
		chainID: chainID,
		address: address,
		logger:  logger,
	}, nil
}

// Address returns the derived account address in canonical lowercase hex.
func (s *Signer) Address() string {
	return s.address
}

// ChainID returns the chain this signer targets.
func (s *Signer) ChainID() uint64 {
	return s.chainID
}

// Sign produces a deterministic (RFC 6979) recoverable signature over a
// 32-byte hash. Re-signing the same hash always yields identical bytes.
func (s *Signer) Sign(hash [32]byte) (Signature, error) {
	if s.key == nil {
		return Signature{}, fmt.Errorf("%w: signer is closed", ErrInvalidKey)
	}

	// Compact form is recoveryByte ‖ r ‖ s with recoveryByte = 27 + recid
	// for an uncompressed key.
	compact := secpecdsa.SignCompact(s.key, hash[:], false)

	var sig Signature
	sig.RecoveryID = compact[0] - 27
	copy(sig.R[:], compact[1:33])
	copy(sig.S[:], compact[33:65])
	return sig, nil
}

// SignTypedData hashes the typed message and returns the wire-form
// signature string.
func (s *Signer) SignTypedData(domain eip712.Domain, primaryType string, message eip712.Message, types eip712.Types) (string, error) {
	hash, err := eip712.SigningHash(domain, primaryType, message, types)
	if err != nil {
		return "", err
	}
	sig, err := s.Sign(hash)
	if err != nil {
		return "", err
	}
	return sig.WireHex(), nil
}

// Close zeroizes the private key. The signer is unusable afterwards.
func (s *Signer) Close() {
	if s.key != nil {
		s.key.Zero()
		s.key = nil
	}
}
