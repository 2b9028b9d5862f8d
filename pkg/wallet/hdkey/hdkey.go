package hdkey

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	path "github.com/vulpemventures/noir/pkg/wallet/derivation-path"
)

const (
	MinSeedBytes = hdkeychain.MinSeedBytes
	MaxSeedBytes = hdkeychain.MaxSeedBytes
)

// ExtendedKey is a node of a BIP-32 key tree. It holds either a private or a
// public-only key, together with the chain code needed to derive children.
type ExtendedKey struct {
	key *hdkeychain.ExtendedKey
}

// NewMaster returns the root of the key tree for the given seed.
func NewMaster(seed []byte) (*ExtendedKey, error) {
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, translateErr(err)
	}
	return &ExtendedKey{key}, nil
}

// ParseExtendedKey parses a base58 serialized xprv or xpub.
func ParseExtendedKey(xkey string) (*ExtendedKey, error) {
	xkey = strings.TrimSpace(xkey)
	if xkey == "" {
		return nil, ErrMissingExtendedKey
	}
	key, err := hdkeychain.NewKeyFromString(xkey)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidExtendedKey, err)
	}
	if _, err := key.ECPubKey(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidExtendedKey, err)
	}
	return &ExtendedKey{key}, nil
}

// Derive walks the given path starting from the receiver and returns the
// extended key found at its end. The receiver is left untouched, while every
// intermediate key is zeroed as soon as its child has been computed.
func (k *ExtendedKey) Derive(derivationPath path.DerivationPath) (*ExtendedKey, error) {
	if len(derivationPath) <= 0 {
		return k.clone()
	}

	current := k.key
	for i, index := range derivationPath {
		child, err := current.Derive(index)
		if current != k.key {
			current.Zero()
		}
		if err != nil {
			return nil, &DerivationError{
				Depth: int(k.key.Depth()) + i + 1,
				Index: index,
				Err:   translateErr(err),
			}
		}
		current = child
	}
	return &ExtendedKey{current}, nil
}

// Neuter returns the public-only version of the key. The result shares no
// memory with the receiver, so either can be zeroed independently.
func (k *ExtendedKey) Neuter() (*ExtendedKey, error) {
	key, err := k.key.Neuter()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidExtendedKey, err)
	}
	return (&ExtendedKey{key}).clone()
}

func (k *ExtendedKey) IsPrivate() bool {
	return k.key.IsPrivate()
}

func (k *ExtendedKey) PublicKey() (*btcec.PublicKey, error) {
	return k.key.ECPubKey()
}

// PrivateKey returns the secp256k1 private key, or nil for public-only keys.
func (k *ExtendedKey) PrivateKey() *btcec.PrivateKey {
	if !k.key.IsPrivate() {
		return nil
	}
	key, _ := k.key.ECPrivKey()
	return key
}

// PublicKeyBytes returns the 33-byte compressed public key.
func (k *ExtendedKey) PublicKeyBytes() ([]byte, error) {
	pubkey, err := k.PublicKey()
	if err != nil {
		return nil, err
	}
	return pubkey.SerializeCompressed(), nil
}

// PrivateKeyBytes returns the 32-byte private key, or nil for public-only
// keys. The caller owns the returned slice.
func (k *ExtendedKey) PrivateKeyBytes() []byte {
	key := k.PrivateKey()
	if key == nil {
		return nil
	}
	return key.Serialize()
}

func (k *ExtendedKey) ChainCode() []byte {
	return k.key.ChainCode()
}

func (k *ExtendedKey) Depth() uint8 {
	return k.key.Depth()
}

func (k *ExtendedKey) ParentFingerprint() uint32 {
	return k.key.ParentFingerprint()
}

func (k *ExtendedKey) ChildIndex() uint32 {
	return k.key.ChildIndex()
}

// String returns the base58 serialization (xprv or xpub) of the key.
func (k *ExtendedKey) String() string {
	return k.key.String()
}

// Zero wipes the key material. The key can't be used afterwards.
func (k *ExtendedKey) Zero() {
	k.key.Zero()
}

func (k *ExtendedKey) clone() (*ExtendedKey, error) {
	key, err := hdkeychain.NewKeyFromString(k.key.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidExtendedKey, err)
	}
	return &ExtendedKey{key}, nil
}

func translateErr(err error) error {
	switch {
	case errors.Is(err, hdkeychain.ErrInvalidSeedLen):
		return ErrInvalidSeedLen
	case errors.Is(err, hdkeychain.ErrUnusableSeed):
		return ErrUnusableSeed
	case errors.Is(err, hdkeychain.ErrDeriveHardFromPublic):
		return ErrHardenedDerivationRequiresPrivateKey
	case errors.Is(err, hdkeychain.ErrInvalidChild):
		return ErrDerivationOverflow
	case errors.Is(err, hdkeychain.ErrDeriveBeyondMaxDepth):
		return ErrDerivationTooDeep
	default:
		return err
	}
}
