package application

import (
	"encoding/hex"

	"github.com/vulpemventures/noir/internal/core/domain"
	"github.com/vulpemventures/noir/pkg/wallet/address"
	path "github.com/vulpemventures/noir/pkg/wallet/derivation-path"
	"github.com/vulpemventures/noir/pkg/wallet/hdkey"
	"github.com/vulpemventures/noir/pkg/wallet/mnemonic"
)

const (
	MethodGenerate              = "Generate"
	MethodDerive                = "Derive"
	MethodDeriveFromExtendedKey = "DeriveFromExtendedKey"
)

type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Envelope is the uniform result returned to the callers of the service.
// A failed envelope always has a zero Result and a non-empty Message, while a
// successful one always has an empty Message.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Result  T      `json:"result"`
	Message string `json:"message"`
}

func NewSuccessEnvelope[T any](result T) Envelope[T] {
	return Envelope[T]{Success: true, Result: result}
}

func NewFailureEnvelope[T any](err error) Envelope[T] {
	msg := "unknown error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Envelope[T]{Message: msg}
}

// DerivedKeyInfo is the public representation of a derived key. Keys are hex
// encoded, PrivateKey is empty for keys derived from public-only chains.
type DerivedKeyInfo struct {
	Address           string            `json:"address"`
	PublicKey         string            `json:"publicKey"`
	PrivateKey        string            `json:"privateKey,omitempty"`
	ExtendedPublicKey string            `json:"extendedPublicKey"`
	Path              string            `json:"path"`
	Addresses         map[string]string `json:"addresses"`
}

func newDerivedKeyInfo(key *domain.DerivedKey) *DerivedKeyInfo {
	info := &DerivedKeyInfo{
		Address:           key.Address,
		PublicKey:         hex.EncodeToString(key.PublicKey),
		ExtendedPublicKey: key.ExtendedPublicKey,
		Path:              key.Path,
		Addresses:         key.Addresses,
	}
	if !key.IsWatchOnly() {
		info.PrivateKey = hex.EncodeToString(key.PrivateKey)
	}
	return info
}

type ServiceInfo struct {
	BuildInfo
	EntropySize      uint32   `json:"entropySize"`
	AddressFormat    string   `json:"addressFormat"`
	SupportedFormats []string `json:"supportedFormats"`
	MaxConcurrency   int      `json:"maxConcurrency"`
}

type DeriveArgs struct {
	Mnemonic   string
	Path       string
	Hrp        string
	Passphrase string
}

func (a DeriveArgs) validate() error {
	if err := mnemonic.ValidateMnemonic(a.Mnemonic); err != nil {
		return err
	}
	if _, err := path.ParseDerivationPath(a.Path); err != nil {
		return err
	}
	if err := address.ValidateHrp(a.Hrp); err != nil {
		return err
	}
	return nil
}

type DeriveFromExtendedKeyArgs struct {
	ExtendedKey string
	Path        string
	Hrp         string
}

func (a DeriveFromExtendedKeyArgs) validate() error {
	if a.ExtendedKey == "" {
		return hdkey.ErrMissingExtendedKey
	}
	if _, err := path.ParseDerivationPath(a.Path); err != nil {
		return err
	}
	if err := address.ValidateHrp(a.Hrp); err != nil {
		return err
	}
	return nil
}
