package util

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// FuzzHexRoundTrip checks BytesToHex output always decodes back to the input.
func FuzzHexRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0xde, 0xad, 0xbe, 0xef})

	f.Fuzz(func(t *testing.T, b []byte) {
		s := BytesToHex(b)
		back, err := HexToBytes(s)
		require.NoError(t, err)
		if len(b) == 0 {
			require.Empty(t, back)
			return
		}
		require.Equal(t, b, back)
	})
}

// FuzzQuantityToBytesNoLeadingZeros checks the canonical quantity invariant.
func FuzzQuantityToBytesNoLeadingZeros(f *testing.F) {
	f.Add("0")
	f.Add("0x0")
	f.Add("0x00000001")
	f.Add("deadbeef")

	f.Fuzz(func(t *testing.T, s string) {
		b, err := QuantityToBytes(s)
		if err != nil {
			return
		}
		if len(b) > 0 {
			require.NotZero(t, b[0], "canonical quantity must not carry leading zero bytes")
		}
	})
}

// FuzzChecksumAddressStable checks checksumming is deterministic and
// case-insensitive over its input.
func FuzzChecksumAddressStable(f *testing.F) {
	f.Add(make([]byte, 20))
	f.Add([]byte("0123456789abcdefghij"))

	f.Fuzz(func(t *testing.T, raw []byte) {
		if len(raw) < 20 {
			return
		}
		addr := "0x" + hex.EncodeToString(raw[:20])

		c1, err := ChecksumAddress(addr)
		require.NoError(t, err)
		c2, err := ChecksumAddress(c1)
		require.NoError(t, err)
		require.Equal(t, c1, c2)
	})
}
