package address

import (
	"fmt"
	"sort"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
)

// Format identifies an address encoding.
type Format string

const (
	FormatCosmos   Format = "cosmos"
	FormatEvmos    Format = "evmos"
	FormatBitcoin  Format = "bitcoin"
	FormatEthereum Format = "ethereum"
	FormatLiquid   Format = "liquid"

	DefaultFormat = FormatCosmos
)

// Encoder turns a public key into an address string. Encoders that don't
// make use of the human readable part ignore it.
type Encoder interface {
	Format() Format
	Encode(pubKey *btcec.PublicKey, hrp string) (string, error)
}

// ParseFormat returns the Format of the default registry matching the given
// name, case insensitive.
func ParseFormat(name string) (Format, error) {
	return DefaultRegistry().ParseFormat(name)
}

// Registry is an immutable set of encoders indexed by format. It is safe for
// concurrent use.
type Registry struct {
	encoders map[Format]Encoder
	formats  []Format
}

// NewRegistry returns a registry made of the given encoders.
func NewRegistry(encoders ...Encoder) (*Registry, error) {
	if len(encoders) <= 0 {
		return nil, ErrNoEncoders
	}

	r := &Registry{
		encoders: make(map[Format]Encoder, len(encoders)),
		formats:  make([]Format, 0, len(encoders)),
	}
	for _, e := range encoders {
		if _, ok := r.encoders[e.Format()]; ok {
			return nil, fmt.Errorf("%w '%s'", ErrDuplicateFormat, e.Format())
		}
		r.encoders[e.Format()] = e
		r.formats = append(r.formats, e.Format())
	}
	sort.Slice(r.formats, func(i, j int) bool {
		return r.formats[i] < r.formats[j]
	})
	return r, nil
}

// DefaultRegistry returns a registry containing every encoder of this
// package.
func DefaultRegistry() *Registry {
	r, _ := NewRegistry(defaultEncoders()...)
	return r
}

func (r *Registry) Get(format Format) (Encoder, error) {
	e, ok := r.encoders[format]
	if !ok {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownFormat, format)
	}
	return e, nil
}

// ParseFormat returns the registered Format matching the given name, case
// insensitive.
func (r *Registry) ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := r.encoders[format]; !ok {
		return "", fmt.Errorf("%w '%s'", ErrUnknownFormat, name)
	}
	return format, nil
}

// Formats returns the registered formats in alphabetical order.
func (r *Registry) Formats() []Format {
	return append([]Format{}, r.formats...)
}

// EncodeAll encodes the public key with every registered encoder. Formats
// that fail to encode with the given hrp are left out of the result.
func (r *Registry) EncodeAll(
	pubKey *btcec.PublicKey, hrp string,
) map[Format]string {
	addresses := make(map[Format]string, len(r.formats))
	for _, format := range r.formats {
		addr, err := r.encoders[format].Encode(pubKey, hrp)
		if err != nil {
			continue
		}
		addresses[format] = addr
	}
	return addresses
}

func defaultEncoders() []Encoder {
	return []Encoder{
		NewCosmosEncoder(),
		NewEvmosEncoder(),
		NewBitcoinEncoder(),
		NewEthereumEncoder(),
		NewLiquidEncoder(),
	}
}
