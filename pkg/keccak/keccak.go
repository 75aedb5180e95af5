// Package keccak implements the original Keccak-256 hash used by Ethereum.
//
// This is the pre-NIST Keccak variant: padding appends 0x01 after the
// message and ORs 0x80 into the last rate byte, unlike SHA3-256 which uses
// the 0x06 domain suffix. Every signing path in this module depends on the
// exact byte output of this function.
package keccak

import "math/bits"

const (
	// rate is the sponge rate in bytes for a 256-bit digest: (1600 - 2*256) / 8.
	rate = 136
	// rounds is the number of Keccak-f[1600] permutation rounds.
	rounds = 24
)

// roundConstants are the iota step constants for Keccak-f[1600].
var roundConstants = [rounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a,
	0x8000000080008000, 0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008a,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotations holds the rho step rotation offsets, walked in pi order.
var rotations = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// piLane holds the lane permutation order for the pi step.
var piLane = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// keccakF1600 applies the full 24-round permutation to the state in place.
func keccakF1600(st *[25]uint64) {
	var bc [5]uint64

	for r := 0; r < rounds; r++ {
		// Theta
		for i := 0; i < 5; i++ {
			bc[i] = st[i] ^ st[i+5] ^ st[i+10] ^ st[i+15] ^ st[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				st[j+i] ^= t
			}
		}

		// Rho and Pi
		t := st[1]
		for i := 0; i < 24; i++ {
			j := piLane[i]
			st[j], t = bits.RotateLeft64(t, rotations[i]), st[j]
		}

		// Chi
		for j := 0; j < 25; j += 5 {
			for i := 0; i < 5; i++ {
				bc[i] = st[j+i]
			}
			for i := 0; i < 5; i++ {
				st[j+i] ^= ^bc[(i+1)%5] & bc[(i+2)%5]
			}
		}

		// Iota
		st[0] ^= roundConstants[r]
	}
}

// absorbBlock XORs one full rate block into the first 17 lanes, little-endian.
func absorbBlock(st *[25]uint64, block []byte) {
	for j := 0; j < rate/8; j++ {
		var lane uint64
		for k := 0; k < 8; k++ {
			lane |= uint64(block[j*8+k]) << (8 * k)
		}
		st[j] ^= lane
	}
}

// Sum256 returns the Keccak-256 digest of data.
func Sum256(data []byte) [32]byte {
	var st [25]uint64

	for len(data) >= rate {
		absorbBlock(&st, data[:rate])
		keccakF1600(&st)
		data = data[rate:]
	}

	// Pad the trailing partial block: 0x01 after the message, 0x80 into
	// the final rate byte. Both land on the same byte for len == rate-1.
	var block [rate]byte
	copy(block[:], data)
	block[len(data)] = 0x01
	block[rate-1] |= 0x80
	absorbBlock(&st, block[:])
	keccakF1600(&st)

	// Squeeze the first four lanes.
	var digest [32]byte
	for i := 0; i < 4; i++ {
		for j := 0; j < 8; j++ {
			digest[i*8+j] = byte(st[i] >> (8 * j))
		}
	}
	return digest
}

// Sum256Concat hashes the concatenation of the given byte slices.
func Sum256Concat(parts ...[]byte) [32]byte {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	buf := make([]byte, 0, total)
	for _, p := range parts {
		buf = append(buf, p...)
	}
	return Sum256(buf)
}
