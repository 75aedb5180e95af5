// Package rlp implements the recursive-length-prefix encoding used for
// legacy Ethereum transactions.
//
// Only encoding is provided; this module never parses RLP. Canonical form
// matters: integers carry no leading zero bytes and the value zero encodes
// as the empty string, never as a literal 0x00.
package rlp

import "math/big"

// EncodeString encodes a byte string.
func EncodeString(data []byte) []byte {
	if len(data) == 1 && data[0] < 0x80 {
		// A single byte below 0x80 is its own encoding.
		return []byte{data[0]}
	}
	if len(data) < 56 {
		out := make([]byte, 0, 1+len(data))
		out = append(out, 0x80+byte(len(data)))
		return append(out, data...)
	}
	lenBytes := minimalBigEndian(uint64(len(data)))
	out := make([]byte, 0, 1+len(lenBytes)+len(data))
	out = append(out, 0xb7+byte(len(lenBytes)))
	out = append(out, lenBytes...)
	return append(out, data...)
}

// EncodeList encodes a list of already-encoded items.
func EncodeList(items [][]byte) []byte {
	payloadLen := 0
	for _, item := range items {
		payloadLen += len(item)
	}

	var out []byte
	if payloadLen < 56 {
		out = make([]byte, 0, 1+payloadLen)
		out = append(out, 0xc0+byte(payloadLen))
	} else {
		lenBytes := minimalBigEndian(uint64(payloadLen))
		out = make([]byte, 0, 1+len(lenBytes)+payloadLen)
		out = append(out, 0xf7+byte(len(lenBytes)))
		out = append(out, lenBytes...)
	}
	for _, item := range items {
		out = append(out, item...)
	}
	return out
}

// EncodeUint64 encodes an unsigned integer as a minimal big-endian string.
// Zero encodes as the empty string.
func EncodeUint64(value uint64) []byte {
	if value == 0 {
		return EncodeString(nil)
	}
	return EncodeString(minimalBigEndian(value))
}

// EncodeBig encodes a non-negative big integer. Nil and zero both encode
// as the empty string.
func EncodeBig(value *big.Int) []byte {
	if value == nil || value.Sign() == 0 {
		return EncodeString(nil)
	}
	// big.Int.Bytes is already minimal big-endian.
	return EncodeString(value.Bytes())
}

// minimalBigEndian returns v as big-endian bytes with no leading zeros.
func minimalBigEndian(v uint64) []byte {
	var buf []byte
	for v > 0 {
		buf = append([]byte{byte(v & 0xff)}, buf...)
		v >>= 8
	}
	return buf
}
