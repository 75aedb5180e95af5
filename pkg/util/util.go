// Package util holds the hex plumbing shared by the signing packages.
package util

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/GoPolymarket/polysign/pkg/keccak"
)

// ErrInvalidHex reports a malformed hex input.
var ErrInvalidHex = errors.New("invalid hex input")

// HexToBytes decodes a hex string with or without a 0x prefix. Odd-length
// input is left-padded with a single zero nibble, matching how Ethereum
// JSON-RPC quantities are written ("0x0", "0x123").
func HexToBytes(s string) ([]byte, error) {
	s = TrimHexPrefix(s)
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return b, nil
}

// QuantityToBytes decodes a numeric hex string into its canonical RLP byte
// form: leading zero bytes stripped, with zero reducing to the empty slice.
func QuantityToBytes(s string) ([]byte, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return nil, err
	}
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:], nil
}

// BytesToHex encodes bytes as lowercase hex with a 0x prefix.
func BytesToHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// TrimHexPrefix removes a leading 0x or 0X if present.
func TrimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// ChecksumAddress returns the EIP-55 mixed-case display form of a 20-byte
// address. The lowercase form remains the canonical identity; this is a
// display-only derivative.
func ChecksumAddress(address string) (string, error) {
	raw, err := HexToBytes(address)
	if err != nil {
		return "", err
	}
	if len(raw) != 20 {
		return "", fmt.Errorf("%w: address must be 20 bytes, got %d", ErrInvalidHex, len(raw))
	}

	lower := hex.EncodeToString(raw)
	digest := keccak.Sum256([]byte(lower))

	var out strings.Builder
	out.WriteString("0x")
	for i, c := range lower {
		if c >= 'a' && c <= 'f' {
			// Uppercase when the corresponding digest nibble is >= 8.
			nibble := digest[i/2]
			if i%2 == 0 {
				nibble >>= 4
			}
			if nibble&0x08 != 0 {
				c -= 'a' - 'A'
			}
		}
		out.WriteRune(c)
	}
	return out.String(), nil
}
