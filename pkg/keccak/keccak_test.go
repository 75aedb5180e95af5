package keccak

import (
	"bytes"
	"encoding/hex"
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

// referenceSum computes the same digest via x/crypto's legacy Keccak, so no
// hand-copied vector is trusted on its own.
func referenceSum(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// TestSum256_KnownVectors checks published Keccak-256 vectors and
// re-derives each one through the x/crypto reference implementation.
func TestSum256_KnownVectors(t *testing.T) {
	vectors := []struct {
		input string
		want  string
	}{
		{"", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"abc", "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
		{"testing", "5f16f4c7f149ac4f9510d9cf8cf384038ad348b3bcdc01915f95de12df9d1b02"},
		{"The quick brown fox jumps over the lazy dog", "4d741b6f1eb29cb2a9b9911c82f56fa8d73b04959d3d9d222895df6c0b28aa15"},
	}

	for _, v := range vectors {
		t.Run(v.input, func(t *testing.T) {
			got := Sum256([]byte(v.input))

			want, err := hex.DecodeString(v.want)
			require.NoError(t, err)
			require.Len(t, want, 32, "vector literal must be exactly 32 bytes")
			require.Equal(t, want, got[:])

			// Cross-check the literal itself against the reference.
			require.Equal(t, referenceSum([]byte(v.input)), got[:])
		})
	}
}

// TestSum256_Determinism verifies identical inputs hash identically.
func TestSum256_Determinism(t *testing.T) {
	data := []byte("deterministic input")
	require.Equal(t, Sum256(data), Sum256(data))
}

// TestSum256_BlockBoundaries exercises inputs around the 136-byte rate.
func TestSum256_BlockBoundaries(t *testing.T) {
	for _, n := range []int{0, 1, 135, 136, 137, 271, 272, 273, 1000} {
		data := bytes.Repeat([]byte{0xa5}, n)
		got := Sum256(data)
		require.Equal(t, referenceSum(data), got[:], "length %d", n)
	}
}

// TestSum256_MatchesGoEthereum pins our digest against go-ethereum's
// Keccak256 for a handful of inputs used elsewhere in the module.
func TestSum256_MatchesGoEthereum(t *testing.T) {
	inputs := [][]byte{
		[]byte("ClobAuth(address address,string timestamp,uint256 nonce,string message)"),
		[]byte("EIP712Domain(string name,string version,uint256 chainId)"),
		{0x19, 0x01},
	}
	for _, in := range inputs {
		got := Sum256(in)
		require.Equal(t, ethcrypto.Keccak256(in), got[:])
	}
}

// TestSum256Concat verifies concatenation hashing equals hashing the joined input.
func TestSum256Concat(t *testing.T) {
	a, b, c := []byte("one"), []byte("two"), []byte("three")
	joined := append(append(append([]byte{}, a...), b...), c...)
	require.Equal(t, Sum256(joined), Sum256Concat(a, b, c))
	require.Equal(t, Sum256(nil), Sum256Concat())
}

// FuzzSum256AgainstReference fuzzes arbitrary inputs against x/crypto.
func FuzzSum256AgainstReference(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("seed"))
	f.Add(bytes.Repeat([]byte{0xff}, 136))

	f.Fuzz(func(t *testing.T, data []byte) {
		got := Sum256(data)
		require.Equal(t, referenceSum(data), got[:])
	})
}
