// Package eip152 wraps the BLAKE2b compression function in the byte
// interface of the EIP-152 precompile: input decoding, output encoding,
// per-round gas and an optional host round budget.
package eip152

import (
	"encoding/binary"

	"github.com/TACITVS/Blake2f-Golang/blake2f"
	"github.com/pkg/errors"
	"lukechampine.com/uint128"
)

const (
	InputLen  = 213
	OutputLen = blake2f.StateWords * 8
)

// Field offsets within an encoded input.
const (
	hOffset    = 4
	mOffset    = hOffset + blake2f.StateWords*8
	tOffset    = mOffset + blake2f.BlockLen
	flagOffset = tOffset + 16
)

// Input holds the decoded arguments of one precompile call.
type Input struct {
	Rounds uint32
	H      [blake2f.StateWords]uint64
	M      [blake2f.BlockWords]uint64
	T      [2]uint64
	Final  bool
}

// DecodeInput parses the 213-byte EIP-152 encoding: a big-endian round
// count, the state, message and counter as little-endian words, and a final
// block flag that must be 0 or 1.
func DecodeInput(b []byte) (*Input, error) {
	in := new(Input)
	if err := in.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return in, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (in *Input) UnmarshalBinary(b []byte) error {
	if len(b) != InputLen {
		return errors.Wrapf(ErrInvalidInputLength, "have %d bytes, want %d", len(b), InputLen)
	}
	var final bool
	switch flag := b[flagOffset]; flag {
	case 0:
	case 1:
		final = true
	default:
		return errors.Wrapf(ErrInvalidFinalFlag, "flag byte %#x", flag)
	}

	in.Rounds = binary.BigEndian.Uint32(b[:hOffset])
	loadWords(in.H[:], b[hOffset:mOffset])
	loadWords(in.M[:], b[mOffset:tOffset])
	loadWords(in.T[:], b[tOffset:flagOffset])
	in.Final = final
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (in *Input) MarshalBinary() ([]byte, error) {
	out := make([]byte, InputLen)
	binary.BigEndian.PutUint32(out[:hOffset], in.Rounds)
	storeWords(out[hOffset:mOffset], in.H[:])
	storeWords(out[mOffset:tOffset], in.M[:])
	storeWords(out[tOffset:flagOffset], in.T[:])
	if in.Final {
		out[flagOffset] = 1
	}
	return out, nil
}

// Counter returns the offset counter as a single 128-bit value.
func (in *Input) Counter() uint128.Uint128 {
	return uint128.New(in.T[0], in.T[1])
}

// SetCounter splits c into the two counter words.
func (in *Input) SetCounter(c uint128.Uint128) {
	in.T = [2]uint64{c.Lo, c.Hi}
}

// Compress runs the compression function on a copy of the state and returns
// the result. The receiver is not modified.
func (in *Input) Compress() [blake2f.StateWords]uint64 {
	h := in.H
	blake2f.F(&h, in.M, in.T, in.Final, in.Rounds)
	return h
}

// EncodeOutput serializes a state as eight little-endian words.
func EncodeOutput(h *[blake2f.StateWords]uint64) []byte {
	out := make([]byte, OutputLen)
	storeWords(out, h[:])
	return out
}

// DecodeOutput is the inverse of EncodeOutput.
func DecodeOutput(b []byte) ([blake2f.StateWords]uint64, error) {
	var h [blake2f.StateWords]uint64
	if len(b) != OutputLen {
		return h, errors.Wrapf(ErrInvalidOutputLength, "have %d bytes, want %d", len(b), OutputLen)
	}
	loadWords(h[:], b)
	return h, nil
}
