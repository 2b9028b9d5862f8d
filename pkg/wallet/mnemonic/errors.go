package mnemonic

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEntropySize = errors.New(
		"entropy size must be a multiple of 32 in the range [128, 256]",
	)
	ErrEntropyUnavailable = errors.New("entropy source unavailable")
	ErrMissingMnemonic    = errors.New("missing mnemonic")
	ErrInvalidWordCount   = errors.New(
		"invalid mnemonic word count, must be one of 12, 15, 18, 21 or 24",
	)
	ErrInvalidWord     = errors.New("mnemonic contains a word not in the dictionary")
	ErrInvalidChecksum = errors.New("invalid mnemonic checksum")
)

// InvalidWordError carries the 1-based position of the first word that is
// not part of the dictionary. The word itself is never reported.
type InvalidWordError struct {
	Position int
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("%s (word #%d)", ErrInvalidWord, e.Position)
}

func (e *InvalidWordError) Unwrap() error {
	return ErrInvalidWord
}
