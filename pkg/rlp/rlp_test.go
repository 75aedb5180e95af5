package rlp

import (
	"bytes"
	"math/big"
	"testing"

	gethrlp "github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/require"
)

// TestEncodeString_SingleByteRule verifies a single byte below 0x80 is its
// own encoding.
func TestEncodeString_SingleByteRule(t *testing.T) {
	require.Equal(t, []byte{0x01}, EncodeString([]byte{0x01}))
	require.Equal(t, []byte{0x7f}, EncodeString([]byte{0x7f}))

	// 0x80 and above still takes a length prefix.
	require.Equal(t, []byte{0x81, 0x80}, EncodeString([]byte{0x80}))
}

// TestEncodeString_Lengths covers empty, short, and long string prefixes.
func TestEncodeString_Lengths(t *testing.T) {
	require.Equal(t, []byte{0x80}, EncodeString(nil))
	require.Equal(t, []byte{0x80}, EncodeString([]byte{}))

	short := []byte("dog")
	require.Equal(t, append([]byte{0x83}, short...), EncodeString(short))

	// 55 bytes is the last short-form length.
	atLimit := bytes.Repeat([]byte{0xaa}, 55)
	require.Equal(t, append([]byte{0x80 + 55}, atLimit...), EncodeString(atLimit))

	// 56 bytes switches to the length-of-length form.
	overLimit := bytes.Repeat([]byte{0xbb}, 56)
	require.Equal(t, append([]byte{0xb8, 56}, overLimit...), EncodeString(overLimit))

	long := bytes.Repeat([]byte{0xcc}, 300)
	require.Equal(t, append([]byte{0xb9, 0x01, 0x2c}, long...), EncodeString(long))
}

// TestEncodeUint64_ZeroRule verifies zero encodes as the empty string.
func TestEncodeUint64_ZeroRule(t *testing.T) {
	require.Equal(t, []byte{0x80}, EncodeUint64(0))
	require.Equal(t, []byte{0x0f}, EncodeUint64(15))
	require.Equal(t, []byte{0x82, 0x04, 0x00}, EncodeUint64(1024))
}

// TestEncodeBig covers nil, zero, and values wider than 64 bits.
func TestEncodeBig(t *testing.T) {
	require.Equal(t, []byte{0x80}, EncodeBig(nil))
	require.Equal(t, []byte{0x80}, EncodeBig(big.NewInt(0)))
	require.Equal(t, EncodeUint64(1024), EncodeBig(big.NewInt(1024)))

	wide, ok := new(big.Int).SetString("fffffffffffffffff", 16)
	require.True(t, ok)
	want, err := gethrlp.EncodeToBytes(wide)
	require.NoError(t, err)
	require.Equal(t, want, EncodeBig(wide))
}

// TestEncodeList_MatchesGoEthereum pins list encoding against go-ethereum.
func TestEncodeList_MatchesGoEthereum(t *testing.T) {
	items := [][]byte{
		EncodeString([]byte("cat")),
		EncodeString([]byte("dog")),
	}
	want, err := gethrlp.EncodeToBytes([]interface{}{[]byte("cat"), []byte("dog")})
	require.NoError(t, err)
	require.Equal(t, want, EncodeList(items))

	// Empty list.
	require.Equal(t, []byte{0xc0}, EncodeList(nil))

	// A list whose payload crosses the 55-byte boundary.
	big1 := bytes.Repeat([]byte{0x11}, 40)
	big2 := bytes.Repeat([]byte{0x22}, 40)
	longItems := [][]byte{EncodeString(big1), EncodeString(big2)}
	wantLong, err := gethrlp.EncodeToBytes([]interface{}{big1, big2})
	require.NoError(t, err)
	require.Equal(t, wantLong, EncodeList(longItems))
}

// FuzzEncodeStringAgainstGoEthereum fuzzes arbitrary byte strings against
// the go-ethereum encoder.
func FuzzEncodeStringAgainstGoEthereum(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0x7f})
	f.Add([]byte{0x80})
	f.Add(bytes.Repeat([]byte{0x55}, 56))

	f.Fuzz(func(t *testing.T, data []byte) {
		want, err := gethrlp.EncodeToBytes(data)
		require.NoError(t, err)
		require.Equal(t, want, EncodeString(data))
	})
}

// FuzzEncodeUint64AgainstGoEthereum fuzzes integer encoding.
func FuzzEncodeUint64AgainstGoEthereum(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(127))
	f.Add(uint64(128))
	f.Add(^uint64(0))

	f.Fuzz(func(t *testing.T, v uint64) {
		want, err := gethrlp.EncodeToBytes(v)
		require.NoError(t, err)
		require.Equal(t, want, EncodeUint64(v))
	})
}
