package eip152

import "github.com/pkg/errors"

var (
	ErrInvalidInputLength  = errors.New("invalid input length")
	ErrInvalidOutputLength = errors.New("invalid output length")
	ErrInvalidFinalFlag    = errors.New("invalid final flag")
	ErrRoundsExceeded      = errors.New("round count exceeds limit")
)
