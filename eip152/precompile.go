package eip152

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// GasPerRound is the EIP-152 cost of a single compression round.
const GasPerRound = 1

// Config holds host policy for the precompile.
type Config struct {
	// MaxRounds rejects inputs asking for more rounds. Zero disables the check.
	MaxRounds uint32
}

// Precompile is the EIP-152 BLAKE2b F precompile. It is safe for concurrent use.
type Precompile struct {
	cfg Config
}

// New returns a precompile applying cfg.
func New(cfg Config) *Precompile {
	return &Precompile{cfg: cfg}
}

// RequiredGas returns the gas charged for input. Malformed lengths cost
// nothing here since Run rejects them.
func (p *Precompile) RequiredGas(input []byte) uint64 {
	if len(input) != InputLen {
		return 0
	}
	return uint64(binary.BigEndian.Uint32(input[:hOffset])) * GasPerRound
}

// Run decodes input, compresses once and returns the encoded state.
func (p *Precompile) Run(input []byte) ([]byte, error) {
	in, err := DecodeInput(input)
	if err != nil {
		return nil, err
	}
	if p.cfg.MaxRounds != 0 && in.Rounds > p.cfg.MaxRounds {
		return nil, errors.Wrapf(ErrRoundsExceeded, "have %d, limit %d", in.Rounds, p.cfg.MaxRounds)
	}
	h := in.Compress()
	return EncodeOutput(&h), nil
}
