package hdkey

import (
	"errors"
	"fmt"

	path "github.com/vulpemventures/noir/pkg/wallet/derivation-path"
)

var (
	ErrInvalidSeedLen                       = errors.New("seed length must be between 128 and 512 bits")
	ErrUnusableSeed                         = errors.New("unusable seed")
	ErrHardenedDerivationRequiresPrivateKey = errors.New(
		"cannot derive a hardened key from a public key",
	)
	ErrDerivationOverflow = errors.New("derivation overflow, the derived child key is invalid")
	ErrDerivationTooDeep  = errors.New("cannot derive a key with more than 255 indices in its path")
	ErrInvalidExtendedKey = errors.New("invalid extended key")
	ErrMissingExtendedKey = errors.New("missing extended key")
)

// DerivationError reports the step of a derivation path at which the walk
// failed. Depth is the depth of the child that could not be derived.
type DerivationError struct {
	Depth int
	Index uint32
	Err   error
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf(
		"failed to derive child %s at depth %d: %s",
		formatIndex(e.Index), e.Depth, e.Err,
	)
}

func (e *DerivationError) Unwrap() error {
	return e.Err
}

func formatIndex(index uint32) string {
	if path.IsHardened(index) {
		return fmt.Sprintf("%d'", index-path.HardenedKeyStart)
	}
	return fmt.Sprintf("%d", index)
}
