package address

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/vulpemventures/go-elements/network"
	"github.com/vulpemventures/go-elements/payment"
)

var liquidNetworksByHrp = map[string]*network.Network{
	"ex":  &network.Liquid,
	"tex": &network.Testnet,
	"ert": &network.Regtest,
}

type liquidEncoder struct{}

// NewLiquidEncoder returns the encoder of unconfidential P2WPKH addresses of
// the Liquid network selected by the hrp (ex, tex or ert).
func NewLiquidEncoder() Encoder {
	return liquidEncoder{}
}

func (liquidEncoder) Format() Format {
	return FormatLiquid
}

func (liquidEncoder) Encode(pubKey *btcec.PublicKey, hrp string) (string, error) {
	if pubKey == nil {
		return "", ErrMissingPubKey
	}
	if err := ValidateHrp(hrp); err != nil {
		return "", err
	}
	net, ok := liquidNetworksByHrp[strings.ToLower(hrp)]
	if !ok {
		return "", fmt.Errorf(
			"%w: liquid addresses only support ex, tex or ert", ErrInvalidHrp,
		)
	}
	return payment.FromPublicKey(pubKey, net, nil).WitnessPubKeyHash()
}
