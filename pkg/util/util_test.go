package util

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

// TestHexToBytes covers prefixes, case, and odd-length padding.
func TestHexToBytes(t *testing.T) {
	b, err := HexToBytes("0x0102")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, b)

	b, err = HexToBytes("0X0A")
	require.NoError(t, err)
	require.Equal(t, []byte{0x0a}, b)

	// Odd length pads a leading zero nibble.
	b, err = HexToBytes("0x123")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x23}, b)

	_, err = HexToBytes("0xzz")
	require.ErrorIs(t, err, ErrInvalidHex)
}

// TestQuantityToBytes verifies canonical RLP quantity reduction.
func TestQuantityToBytes(t *testing.T) {
	b, err := QuantityToBytes("0x0")
	require.NoError(t, err)
	require.Empty(t, b)

	b, err = QuantityToBytes("0x00")
	require.NoError(t, err)
	require.Empty(t, b)

	b, err = QuantityToBytes("0x000123")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x23}, b)

	b, err = QuantityToBytes("0x")
	require.NoError(t, err)
	require.Empty(t, b)
}

// TestBytesToHex round-trips with HexToBytes.
func TestBytesToHex(t *testing.T) {
	require.Equal(t, "0x01ff", BytesToHex([]byte{0x01, 0xff}))
	require.Equal(t, "0x", BytesToHex(nil))
}

// TestChecksumAddress pins EIP-55 vectors and the go-ethereum rendering.
func TestChecksumAddress(t *testing.T) {
	vectors := []string{
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359",
		"0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266",
	}
	for _, lower := range vectors {
		got, err := ChecksumAddress(lower)
		require.NoError(t, err)
		require.Equal(t, common.HexToAddress(lower).Hex(), got)
	}

	_, err := ChecksumAddress("0x1234")
	require.ErrorIs(t, err, ErrInvalidHex)
}
