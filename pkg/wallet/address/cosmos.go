package address

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
)

type cosmosEncoder struct{}

// NewCosmosEncoder returns the encoder of Cosmos SDK account addresses:
// the bech32 encoding of the HASH160 of the compressed public key.
func NewCosmosEncoder() Encoder {
	return cosmosEncoder{}
}

func (cosmosEncoder) Format() Format {
	return FormatCosmos
}

func (cosmosEncoder) Encode(pubKey *btcec.PublicKey, hrp string) (string, error) {
	if pubKey == nil {
		return "", ErrMissingPubKey
	}
	return encodeBech32(hrp, btcutil.Hash160(pubKey.SerializeCompressed()))
}
