package eip152

import "encoding/binary"

func loadWords(dst []uint64, b []byte) {
	_ = b[len(dst)*8-1]
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
}

func storeWords(dst []byte, src []uint64) {
	_ = dst[len(src)*8-1]
	for i, w := range src {
		binary.LittleEndian.PutUint64(dst[i*8:], w)
	}
}
