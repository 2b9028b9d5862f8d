package address

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

type bitcoinEncoder struct{}

// NewBitcoinEncoder returns the encoder of mainnet P2PKH addresses. The hrp
// is ignored.
func NewBitcoinEncoder() Encoder {
	return bitcoinEncoder{}
}

func (bitcoinEncoder) Format() Format {
	return FormatBitcoin
}

func (bitcoinEncoder) Encode(pubKey *btcec.PublicKey, _ string) (string, error) {
	if pubKey == nil {
		return "", ErrMissingPubKey
	}
	addr, err := btcutil.NewAddressPubKeyHash(
		btcutil.Hash160(pubKey.SerializeCompressed()), &chaincfg.MainNetParams,
	)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}
