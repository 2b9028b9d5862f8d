package application

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/vulpemventures/noir/internal/core/domain"
	"github.com/vulpemventures/noir/internal/core/ports"
	"github.com/vulpemventures/noir/pkg/wallet/address"
	path "github.com/vulpemventures/noir/pkg/wallet/derivation-path"
	"github.com/vulpemventures/noir/pkg/wallet/hdkey"
	"github.com/vulpemventures/noir/pkg/wallet/mnemonic"
)

type KeygenServiceOpts struct {
	// EntropySize is the size in bits of the entropy of generated mnemonics.
	EntropySize uint32
	// EntropySource replaces the OS CSPRNG, it must be safe for concurrent
	// use.
	EntropySource io.Reader
	// AddressFormat is the format of the main address of derived keys.
	AddressFormat address.Format
	Encoders      *address.Registry
	// MaxConcurrency is the size of the worker pool, defaults to the number
	// of CPUs.
	MaxConcurrency int
	// RequestTimeout bounds the duration of every request, 0 disables it.
	RequestTimeout time.Duration
	Metrics        ports.Metrics
	BuildInfo      BuildInfo
}

func (o KeygenServiceOpts) validate() error {
	if o.EntropySize > 0 {
		if err := mnemonic.ValidateEntropySize(o.EntropySize); err != nil {
			return err
		}
	}
	if o.MaxConcurrency < 0 {
		return ErrInvalidMaxConcurrency
	}
	if o.RequestTimeout < 0 {
		return ErrInvalidRequestTimeout
	}
	encoders := o.Encoders
	if encoders == nil {
		encoders = address.DefaultRegistry()
	}
	if o.AddressFormat != "" {
		if _, err := encoders.Get(o.AddressFormat); err != nil {
			return err
		}
	}
	return nil
}

// KeygenService is responsible for the stateless operations of the daemon:
//   - Generate a new random mnemonic.
//   - Derive the key pair and addresses at a given path of the key tree rooted
//     at a mnemonic (and optional passphrase).
//   - Derive the same info starting from an extended key. Keys derived from
//     an xpub are watch-only and come without private key.
//
// Every result is wrapped into an Envelope, errors never cross the service
// boundary as Go errors nor panics. CPU-heavy work is offloaded to a bounded
// worker pool and any secret material (entropy, seed, intermediate keys) is
// zeroed once done.
type KeygenService struct {
	entropySize   uint32
	entropySource io.Reader
	addressFormat address.Format
	encoders      *address.Registry
	buildInfo     BuildInfo
	pool          *workerPool

	log  func(format string, a ...interface{})
	warn func(err error, format string, a ...interface{})
}

func NewKeygenService(opts KeygenServiceOpts) (*KeygenService, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if opts.EntropySize == 0 {
		opts.EntropySize = mnemonic.DefaultEntropySize
	}
	if opts.AddressFormat == "" {
		opts.AddressFormat = address.DefaultFormat
	}
	if opts.Encoders == nil {
		opts.Encoders = address.DefaultRegistry()
	}
	if opts.MaxConcurrency == 0 {
		opts.MaxConcurrency = runtime.NumCPU()
	}
	if opts.Metrics == nil {
		opts.Metrics = noopMetrics{}
	}

	logFn := func(format string, a ...interface{}) {
		format = fmt.Sprintf("keygen service: %s", format)
		log.Debugf(format, a...)
	}
	warnFn := func(err error, format string, a ...interface{}) {
		format = fmt.Sprintf("keygen service: %s", format)
		log.WithError(err).Warnf(format, a...)
	}

	return &KeygenService{
		entropySize:   opts.EntropySize,
		entropySource: opts.EntropySource,
		addressFormat: opts.AddressFormat,
		encoders:      opts.Encoders,
		buildInfo:     opts.BuildInfo,
		pool: newWorkerPool(
			opts.MaxConcurrency, opts.RequestTimeout, opts.Metrics,
		),
		log:  logFn,
		warn: warnFn,
	}, nil
}

// Generate returns a new random mnemonic.
func (s *KeygenService) Generate(ctx context.Context) Envelope[string] {
	words, err := runJob(ctx, s.pool, MethodGenerate, func() (string, error) {
		return mnemonic.NewMnemonic(mnemonic.NewMnemonicArgs{
			EntropySize: s.entropySize,
			Source:      s.entropySource,
		})
	}, nil)
	if err != nil {
		s.warn(err, "failed to generate mnemonic")
		return NewFailureEnvelope[string](err)
	}

	s.log("generated new %d-bit mnemonic", s.entropySize)
	return NewSuccessEnvelope(words)
}

// Derive returns the key pair and addresses found at the given path of the
// key tree rooted at the mnemonic.
func (s *KeygenService) Derive(
	ctx context.Context, args DeriveArgs,
) Envelope[*DerivedKeyInfo] {
	key, err := runJob(ctx, s.pool, MethodDerive, func() (*domain.DerivedKey, error) {
		if err := args.validate(); err != nil {
			return nil, err
		}
		derivationPath, _ := path.ParseDerivationPath(args.Path)

		seed := mnemonic.MnemonicToSeed(args.Mnemonic, args.Passphrase)
		defer mnemonic.Zero(seed)

		master, err := hdkey.NewMaster(seed)
		if err != nil {
			return nil, err
		}
		defer master.Zero()

		return s.deriveKey(master, derivationPath, args.Hrp)
	}, zeroDerivedKey)
	if err != nil {
		s.warn(err, "failed to derive key")
		return NewFailureEnvelope[*DerivedKeyInfo](err)
	}
	defer key.Zero()

	s.log("derived key at path %s", key.Path)
	return NewSuccessEnvelope(newDerivedKeyInfo(key))
}

// DeriveFromExtendedKey returns the key pair and addresses found at the given
// path relative to the given xprv or xpub.
func (s *KeygenService) DeriveFromExtendedKey(
	ctx context.Context, args DeriveFromExtendedKeyArgs,
) Envelope[*DerivedKeyInfo] {
	key, err := runJob(ctx, s.pool, MethodDeriveFromExtendedKey, func() (*domain.DerivedKey, error) {
		if err := args.validate(); err != nil {
			return nil, err
		}
		derivationPath, _ := path.ParseDerivationPath(args.Path)

		root, err := hdkey.ParseExtendedKey(args.ExtendedKey)
		if err != nil {
			return nil, err
		}
		defer root.Zero()

		return s.deriveKey(root, derivationPath, args.Hrp)
	}, zeroDerivedKey)
	if err != nil {
		s.warn(err, "failed to derive key from extended key")
		return NewFailureEnvelope[*DerivedKeyInfo](err)
	}
	defer key.Zero()

	s.log("derived key at relative path %s", key.Path)
	return NewSuccessEnvelope(newDerivedKeyInfo(key))
}

// GetInfo returns non-sensitive info about the service configuration.
func (s *KeygenService) GetInfo(_ context.Context) ServiceInfo {
	formats := s.encoders.Formats()
	supportedFormats := make([]string, 0, len(formats))
	for _, f := range formats {
		supportedFormats = append(supportedFormats, string(f))
	}
	return ServiceInfo{
		BuildInfo:        s.buildInfo,
		EntropySize:      s.entropySize,
		AddressFormat:    string(s.addressFormat),
		SupportedFormats: supportedFormats,
		MaxConcurrency:   s.pool.size,
	}
}

func (s *KeygenService) deriveKey(
	root *hdkey.ExtendedKey, derivationPath path.DerivationPath, hrp string,
) (*domain.DerivedKey, error) {
	key, err := root.Derive(derivationPath)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	pubkey, err := key.PublicKey()
	if err != nil {
		return nil, err
	}
	xpub, err := key.Neuter()
	if err != nil {
		return nil, err
	}

	encoder, err := s.encoders.Get(s.addressFormat)
	if err != nil {
		return nil, err
	}
	addr, err := encoder.Encode(pubkey, hrp)
	if err != nil {
		return nil, err
	}

	addresses := make(map[string]string)
	for format, addr := range s.encoders.EncodeAll(pubkey, hrp) {
		addresses[string(format)] = addr
	}

	return &domain.DerivedKey{
		Path:              derivationPath.String(),
		PublicKey:         pubkey.SerializeCompressed(),
		PrivateKey:        key.PrivateKeyBytes(),
		ExtendedPublicKey: xpub.String(),
		Address:           addr,
		Addresses:         addresses,
	}, nil
}

func zeroDerivedKey(key *domain.DerivedKey) {
	if key != nil {
		key.Zero()
	}
}

type noopMetrics struct{}

func (noopMetrics) RequestRejected(string)                      {}
func (noopMetrics) RequestStarted(string)                       {}
func (noopMetrics) RequestFinished(string, bool, time.Duration) {}
