package mnemonic

import (
	"fmt"
	"io"

	"github.com/tyler-smith/go-bip39"
)

const (
	DefaultEntropySize = 256

	minEntropySize = 128
	maxEntropySize = 256
)

type NewEntropyArgs struct {
	BitSize uint32
	// Source replaces the OS CSPRNG when set.
	Source io.Reader
}

func (a NewEntropyArgs) validate() error {
	if a.BitSize > 0 {
		return ValidateEntropySize(a.BitSize)
	}
	return nil
}

// ValidateEntropySize returns an error if the given size in bits can't be
// used to build a mnemonic.
func ValidateEntropySize(bitSize uint32) error {
	if bitSize < minEntropySize || bitSize > maxEntropySize || bitSize%32 != 0 {
		return ErrInvalidEntropySize
	}
	return nil
}

// NewEntropy returns BitSize bits of randomness, 256 if not specified.
// The caller owns the returned slice and should Zero it once done.
func NewEntropy(args NewEntropyArgs) ([]byte, error) {
	if err := args.validate(); err != nil {
		return nil, err
	}
	if args.BitSize == 0 {
		args.BitSize = DefaultEntropySize
	}

	if args.Source == nil {
		entropy, err := bip39.NewEntropy(int(args.BitSize))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrEntropyUnavailable, err)
		}
		return entropy, nil
	}

	entropy := make([]byte, args.BitSize/8)
	if _, err := io.ReadFull(args.Source, entropy); err != nil {
		Zero(entropy)
		return nil, fmt.Errorf("%w: %s", ErrEntropyUnavailable, err)
	}
	return entropy, nil
}

// Zero overwrites the given buffer with zeros.
func Zero(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
