package blake2f

import (
	"encoding/binary"

	"lukechampine.com/uint128"
)

func patternBytes(n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = byte(i % 251)
	}
	return out
}

func patternBlock(seed uint64) [BlockWords]uint64 {
	var m [BlockWords]uint64
	for i := range m {
		m[i] = seed*0x9e3779b97f4a7c15 + uint64(i)*0xbf58476d1ce4e5b9
	}
	return m
}

func loadBlock(dst *[BlockWords]uint64, b []byte) {
	_ = b[BlockLen-1]
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
}

// sum512 is unkeyed BLAKE2b-512 driven block by block through F.
func sum512(msg []byte) [64]byte {
	h := iv
	h[0] ^= 0x01010000 ^ 64

	var (
		counter uint128.Uint128
		m       [BlockWords]uint64
	)
	for len(msg) > BlockLen {
		counter = counter.Add64(BlockLen)
		loadBlock(&m, msg[:BlockLen])
		F(&h, m, [2]uint64{counter.Lo, counter.Hi}, false, Rounds)
		msg = msg[BlockLen:]
	}
	var last [BlockLen]byte
	copy(last[:], msg)
	counter = counter.Add64(uint64(len(msg)))
	loadBlock(&m, last[:])
	F(&h, m, [2]uint64{counter.Lo, counter.Hi}, true, Rounds)

	var out [64]byte
	for i, w := range h {
		binary.LittleEndian.PutUint64(out[i*8:], w)
	}
	return out
}

func rotr(x uint64, n uint) uint64 {
	return x>>n | x<<(64-n)
}

// gOracle computes G with additions carried out in 128 bits and truncated.
func gOracle(v *[16]uint64, a, b, c, d int, mx, my uint64) {
	add := func(xs ...uint64) uint64 {
		sum := uint128.Zero
		for _, x := range xs {
			sum = sum.Add64(x)
		}
		return sum.Lo
	}
	v[a] = add(v[a], v[b], mx)
	v[d] = rotr(v[d]^v[a], 32)
	v[c] = add(v[c], v[d])
	v[b] = rotr(v[b]^v[c], 24)
	v[a] = add(v[a], v[b], my)
	v[d] = rotr(v[d]^v[a], 16)
	v[c] = add(v[c], v[d])
	v[b] = rotr(v[b]^v[c], 63)
}

// precomputed holds the schedule reordered so that the first message word of
// each G call comes from s[0..3]/s[8..11] and the second from s[4..7]/s[12..15].
var precomputed = [10][16]byte{
	{0, 2, 4, 6, 1, 3, 5, 7, 8, 10, 12, 14, 9, 11, 13, 15},
	{14, 4, 9, 13, 10, 8, 15, 6, 1, 0, 11, 5, 12, 2, 7, 3},
	{11, 12, 5, 15, 8, 0, 2, 13, 10, 3, 7, 9, 14, 6, 1, 4},
	{7, 3, 13, 11, 9, 1, 12, 14, 2, 5, 4, 15, 6, 10, 0, 8},
	{9, 5, 2, 10, 0, 7, 4, 15, 14, 11, 6, 3, 1, 12, 8, 13},
	{2, 6, 0, 8, 12, 10, 11, 3, 4, 7, 15, 1, 13, 5, 14, 9},
	{12, 1, 14, 4, 5, 15, 13, 10, 0, 6, 9, 8, 7, 3, 2, 11},
	{13, 7, 12, 3, 11, 14, 1, 9, 5, 15, 8, 2, 0, 4, 6, 10},
	{6, 14, 11, 0, 15, 9, 3, 8, 12, 13, 1, 10, 2, 7, 4, 5},
	{10, 8, 7, 1, 2, 4, 6, 5, 15, 9, 3, 13, 11, 14, 12, 0},
}

// fReference is an independent rendition of F over the reordered schedule,
// using shift-composed rotations and 128-bit truncated additions.
func fReference(h *[8]uint64, m [16]uint64, t [2]uint64, f bool, rounds uint32) {
	var v [16]uint64
	copy(v[:8], h[:])
	copy(v[8:], iv[:])
	v[12] ^= t[0]
	v[13] ^= t[1]
	if f {
		v[14] ^= 0xffffffffffffffff
	}
	for r := uint32(0); r < rounds; r++ {
		s := &precomputed[r%10]
		gOracle(&v, 0, 4, 8, 12, m[s[0]], m[s[4]])
		gOracle(&v, 1, 5, 9, 13, m[s[1]], m[s[5]])
		gOracle(&v, 2, 6, 10, 14, m[s[2]], m[s[6]])
		gOracle(&v, 3, 7, 11, 15, m[s[3]], m[s[7]])
		gOracle(&v, 0, 5, 10, 15, m[s[8]], m[s[12]])
		gOracle(&v, 1, 6, 11, 12, m[s[9]], m[s[13]])
		gOracle(&v, 2, 7, 8, 13, m[s[10]], m[s[14]])
		gOracle(&v, 3, 4, 9, 14, m[s[11]], m[s[15]])
	}
	for i := 0; i < 8; i++ {
		h[i] ^= v[i] ^ v[i+8]
	}
}
