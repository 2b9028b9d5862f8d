package mnemonic

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/text/unicode/norm"
)

type NewMnemonicArgs struct {
	EntropySize uint32
	Source      io.Reader
}

func (a NewMnemonicArgs) validate() error {
	if a.EntropySize > 0 {
		return ValidateEntropySize(a.EntropySize)
	}
	return nil
}

// NewMnemonic returns a new mnemonic:
//   - EntropySize: 256 -> 24-words mnemonic.
//   - EntropySize: 128 -> 12-words mnemonic.
func NewMnemonic(args NewMnemonicArgs) (string, error) {
	if err := args.validate(); err != nil {
		return "", err
	}

	entropy, err := NewEntropy(NewEntropyArgs{
		BitSize: args.EntropySize,
		Source:  args.Source,
	})
	if err != nil {
		return "", err
	}
	defer Zero(entropy)

	return EntropyToMnemonic(entropy)
}

// EntropyToMnemonic encodes the entropy as a list of words taken from the
// english dictionary, the last one embedding the checksum.
func EntropyToMnemonic(entropy []byte) (string, error) {
	if err := ValidateEntropySize(uint32(len(entropy) * 8)); err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// MnemonicToEntropy decodes the given mnemonic back to its entropy and
// verifies the checksum.
func MnemonicToEntropy(mnemonic string) ([]byte, error) {
	mnemonic = Normalize(mnemonic)
	if mnemonic == "" {
		return nil, ErrMissingMnemonic
	}

	words := strings.Split(mnemonic, " ")
	if !isValidWordCount(len(words)) {
		return nil, ErrInvalidWordCount
	}
	for i, word := range words {
		if _, ok := bip39.GetWordIndex(word); !ok {
			return nil, &InvalidWordError{Position: i + 1}
		}
	}

	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		if errors.Is(err, bip39.ErrChecksumIncorrect) {
			return nil, ErrInvalidChecksum
		}
		return nil, fmt.Errorf("failed to decode mnemonic: %w", err)
	}
	return entropy, nil
}

// ValidateMnemonic returns an error if the mnemonic is not a valid sequence
// of dictionary words with a matching checksum.
func ValidateMnemonic(mnemonic string) error {
	entropy, err := MnemonicToEntropy(mnemonic)
	if err != nil {
		return err
	}
	Zero(entropy)
	return nil
}

// MnemonicToSeed stretches the mnemonic and the optional passphrase into a
// 64-byte seed. Both are NFKD normalized beforehand.
// The mnemonic is not validated here, use ValidateMnemonic for that.
func MnemonicToSeed(mnemonic, passphrase string) []byte {
	return bip39.NewSeed(Normalize(mnemonic), norm.NFKD.String(passphrase))
}

// Normalize applies the NFKD form to the given mnemonic and collapses any run
// of whitespace to a single space.
func Normalize(mnemonic string) string {
	return strings.Join(strings.Fields(norm.NFKD.String(mnemonic)), " ")
}

func isValidWordCount(count int) bool {
	return count >= 12 && count <= 24 && count%3 == 0
}
