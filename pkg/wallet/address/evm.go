package address

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/sha3"
)

type evmosEncoder struct{}

// NewEvmosEncoder returns the encoder of Ethermint-style accounts: the bech32
// encoding of the 20-byte Ethereum address.
func NewEvmosEncoder() Encoder {
	return evmosEncoder{}
}

func (evmosEncoder) Format() Format {
	return FormatEvmos
}

func (evmosEncoder) Encode(pubKey *btcec.PublicKey, hrp string) (string, error) {
	if pubKey == nil {
		return "", ErrMissingPubKey
	}
	return encodeBech32(hrp, ethereumAddress(pubKey))
}

type ethereumEncoder struct{}

// NewEthereumEncoder returns the encoder of EIP-55 checksummed Ethereum
// addresses. The hrp is ignored.
func NewEthereumEncoder() Encoder {
	return ethereumEncoder{}
}

func (ethereumEncoder) Format() Format {
	return FormatEthereum
}

func (ethereumEncoder) Encode(pubKey *btcec.PublicKey, _ string) (string, error) {
	if pubKey == nil {
		return "", ErrMissingPubKey
	}
	return "0x" + checksumHex(ethereumAddress(pubKey)), nil
}

// ethereumAddress returns the last 20 bytes of the keccak256 hash of the
// uncompressed public key, without its 0x04 prefix.
func ethereumAddress(pubKey *btcec.PublicKey) []byte {
	return keccak256(pubKey.SerializeUncompressed()[1:])[12:]
}

// checksumHex applies EIP-55 mixed-case checksum encoding to the address.
func checksumHex(addr []byte) string {
	lower := hex.EncodeToString(addr)
	hash := keccak256([]byte(lower))

	var b strings.Builder
	b.Grow(len(lower))
	for i, c := range lower {
		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if c >= 'a' && nibble&0x0f >= 8 {
			c -= 'a' - 'A'
		}
		b.WriteRune(c)
	}
	return b.String()
}

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}
