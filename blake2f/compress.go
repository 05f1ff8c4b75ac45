// Package blake2f implements the BLAKE2b compression function F as defined
// in RFC 7693 and exposed by the EIP-152 precompile, with a caller-chosen
// number of rounds.
package blake2f

import "math/bits"

func g(v *[16]uint64, a, b, c, d int, mx, my uint64) {
	v[a] = v[a] + v[b] + mx
	v[d] = bits.RotateLeft64(v[d]^v[a], -32)
	v[c] = v[c] + v[d]
	v[b] = bits.RotateLeft64(v[b]^v[c], -24)
	v[a] = v[a] + v[b] + my
	v[d] = bits.RotateLeft64(v[d]^v[a], -16)
	v[c] = v[c] + v[d]
	v[b] = bits.RotateLeft64(v[b]^v[c], -63)
}

func round(v *[16]uint64, m *[BlockWords]uint64, s *[BlockWords]uint8) {
	// Mix the columns.
	g(v, 0, 4, 8, 12, m[s[0]], m[s[1]])
	g(v, 1, 5, 9, 13, m[s[2]], m[s[3]])
	g(v, 2, 6, 10, 14, m[s[4]], m[s[5]])
	g(v, 3, 7, 11, 15, m[s[6]], m[s[7]])
	// Mix the diagonals.
	g(v, 0, 5, 10, 15, m[s[8]], m[s[9]])
	g(v, 1, 6, 11, 12, m[s[10]], m[s[11]])
	g(v, 2, 7, 8, 13, m[s[12]], m[s[13]])
	g(v, 3, 4, 9, 14, m[s[14]], m[s[15]])
}

func initVector(h *[StateWords]uint64, t [2]uint64, f bool) [16]uint64 {
	var v [16]uint64
	v[0] = h[0]
	v[1] = h[1]
	v[2] = h[2]
	v[3] = h[3]
	v[4] = h[4]
	v[5] = h[5]
	v[6] = h[6]
	v[7] = h[7]
	v[8] = iv[0]
	v[9] = iv[1]
	v[10] = iv[2]
	v[11] = iv[3]
	v[12] = iv[4] ^ t[0]
	v[13] = iv[5] ^ t[1]
	v[14] = iv[6]
	v[15] = iv[7]
	if f {
		v[14] = ^v[14]
	}
	return v
}

func fold(h *[StateWords]uint64, v *[16]uint64) {
	for i := 0; i < StateWords; i++ {
		h[i] ^= v[i] ^ v[i+8]
	}
}

// F is the BLAKE2b compression function. It mixes the message block m into
// the state h using the offset counter t, the final block indicator f and the
// given number of rounds. h is updated in place.
//
// F accepts any round count, including zero; bounding it is up to the caller.
func F(h *[StateWords]uint64, m [BlockWords]uint64, t [2]uint64, f bool, rounds uint32) {
	v := initVector(h, t, f)
	for i := uint32(0); i < rounds; i++ {
		round(&v, &m, &sigma[i%SigmaRows])
	}
	fold(h, &v)
}
