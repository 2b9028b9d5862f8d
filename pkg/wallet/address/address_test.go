package address_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/noir/pkg/wallet/address"
)

const (
	// m/44'/118'/0'/0/0 of the "abandon ... about" mnemonic.
	cosmosPubKey = "024f4e2ad99c34d60b9ba6283c9431a8418af8673212961f97a77b6377fcd05b62"
	// m/44'/60'/0'/0/0 of the "abandon ... about" mnemonic.
	ethereumPubKey = "0237b0bb7a8288d38ed49a524b5dc98cff3eb5ca824c9f9dc0dfdb3d9cd600f299"
	// m/84'/1776'/0'/0/0 of the "abandon ... about" mnemonic.
	liquidPubKey = "023f4e9c163c902c97b2c6a83ee0751157bf716dce8f5f6405f771bd6a44cf69d4"
)

func TestEncoders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   address.Format
		pubKey   string
		hrp      string
		expected string
	}{
		{"cosmos", address.FormatCosmos, cosmosPubKey, "cosmos", "cosmos19rl4cm2hmr8afy4kldpxz3fka4jguq0auqdal4"},
		{"osmosis", address.FormatCosmos, cosmosPubKey, "osmo", "osmo19rl4cm2hmr8afy4kldpxz3fka4jguq0a5m7df8"},
		{"cosmos eth key", address.FormatCosmos, ethereumPubKey, "cosmos", "cosmos1gsvdpdxec8hsu57lhxg5xem7refr233zu34d65"},
		{"evmos", address.FormatEvmos, cosmosPubKey, "evmos", "evmos10sds9dt423w57fpy8s3fhjd9autynv6xghdyj7"},
		{"evmos eth key", address.FormatEvmos, ethereumPubKey, "evmos", "evmos1npvwllfr9dqr8erajqqr6s0vxnk2ak55t3r99j"},
		{"ethereum", address.FormatEthereum, ethereumPubKey, "", "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"},
		{"ethereum cosmos key", address.FormatEthereum, cosmosPubKey, "cosmos", "0x7C1B02B575545d4F24243C229bC9a5ef1649b346"},
		{"bitcoin", address.FormatBitcoin, cosmosPubKey, "", "14jmwUEdEZ7Bn3ksbhceZryVdkbbdSCsMU"},
		{"bitcoin eth key", address.FormatBitcoin, ethereumPubKey, "cosmos", "17D4gErm7cqDznM4EstEfnP6y91MWADXm8"},
		{"liquid", address.FormatLiquid, liquidPubKey, "ex", "ex1qyuh42lps6t6jpdk54cwmmhd27zrs3yulrc7t5a"},
		{"liquid testnet", address.FormatLiquid, liquidPubKey, "tex", "tex1qyuh42lps6t6jpdk54cwmmhd27zrs3yule7vzgk"},
		{"liquid regtest", address.FormatLiquid, liquidPubKey, "ert", "ert1qyuh42lps6t6jpdk54cwmmhd27zrs3yule25nt8"},
		{"liquid cosmos key", address.FormatLiquid, cosmosPubKey, "ex", "ex1q9rl4cm2hmr8afy4kldpxz3fka4jguq0aqnwwkc"},
	}

	registry := address.DefaultRegistry()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			encoder, err := registry.Get(tt.format)
			require.NoError(t, err)
			require.Equal(t, tt.format, encoder.Format())

			addr, err := encoder.Encode(parsePubKey(t, tt.pubKey), tt.hrp)
			require.NoError(t, err)
			require.Equal(t, tt.expected, addr)
		})
	}
}

func TestEncodersInvalidHrp(t *testing.T) {
	t.Parallel()

	pubKey := parsePubKey(t, cosmosPubKey)
	for _, encoder := range []address.Encoder{
		address.NewCosmosEncoder(),
		address.NewEvmosEncoder(),
		address.NewLiquidEncoder(),
	} {
		_, err := encoder.Encode(pubKey, "")
		require.ErrorIs(t, err, address.ErrInvalidHrp, encoder.Format())
	}

	_, err := address.NewLiquidEncoder().Encode(pubKey, "cosmos")
	require.ErrorIs(t, err, address.ErrInvalidHrp)

	for _, encoder := range []address.Encoder{
		address.NewCosmosEncoder(),
		address.NewEvmosEncoder(),
		address.NewBitcoinEncoder(),
		address.NewEthereumEncoder(),
		address.NewLiquidEncoder(),
	} {
		_, err := encoder.Encode(nil, "ex")
		require.ErrorIs(t, err, address.ErrMissingPubKey, encoder.Format())
	}
}

func TestValidateHrp(t *testing.T) {
	t.Parallel()

	valid := []string{"cosmos", "osmo", "EX", "a", "!~", strings.Repeat("a", 83)}
	for _, hrp := range valid {
		require.NoError(t, address.ValidateHrp(hrp), hrp)
	}

	invalid := []string{
		"",
		strings.Repeat("a", 84),
		"Cosmos",
		"cos mos",
		"cosmos\x7f",
		"cösmos",
	}
	for _, hrp := range invalid {
		require.ErrorIs(t, address.ValidateHrp(hrp), address.ErrInvalidHrp, hrp)
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		registry := address.DefaultRegistry()
		require.Equal(t, []address.Format{
			address.FormatBitcoin,
			address.FormatCosmos,
			address.FormatEthereum,
			address.FormatEvmos,
			address.FormatLiquid,
		}, registry.Formats())

		_, err := registry.Get("solana")
		require.ErrorIs(t, err, address.ErrUnknownFormat)
	})

	t.Run("encode all", func(t *testing.T) {
		t.Parallel()

		registry := address.DefaultRegistry()
		addresses := registry.EncodeAll(parsePubKey(t, cosmosPubKey), "cosmos")
		require.Equal(t, map[address.Format]string{
			address.FormatBitcoin:  "14jmwUEdEZ7Bn3ksbhceZryVdkbbdSCsMU",
			address.FormatCosmos:   "cosmos19rl4cm2hmr8afy4kldpxz3fka4jguq0auqdal4",
			address.FormatEthereum: "0x7C1B02B575545d4F24243C229bC9a5ef1649b346",
			address.FormatEvmos:    "cosmos10sds9dt423w57fpy8s3fhjd9autynv6x2ku2gk",
		}, addresses)
	})

	t.Run("custom", func(t *testing.T) {
		t.Parallel()

		registry, err := address.NewRegistry(address.NewEthereumEncoder())
		require.NoError(t, err)
		require.Equal(t, []address.Format{address.FormatEthereum}, registry.Formats())

		_, err = address.NewRegistry()
		require.ErrorIs(t, err, address.ErrNoEncoders)

		_, err = address.NewRegistry(
			address.NewCosmosEncoder(), address.NewCosmosEncoder(),
		)
		require.ErrorIs(t, err, address.ErrDuplicateFormat)
	})
}

func TestBech32HrpLength(t *testing.T) {
	t.Parallel()

	pubKey := parsePubKey(t, cosmosPubKey)
	for _, format := range []address.Format{address.FormatCosmos, address.FormatEvmos} {
		format := format
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			encoder, err := address.DefaultRegistry().Get(format)
			require.NoError(t, err)

			hrp := strings.Repeat("a", 51)
			addr, err := encoder.Encode(pubKey, hrp)
			require.NoError(t, err)
			require.Len(t, addr, 90)

			decodedHrp, _, err := bech32.Decode(addr)
			require.NoError(t, err)
			require.Equal(t, hrp, decodedHrp)

			for _, size := range []int{52, 60, 83} {
				addr, err := encoder.Encode(pubKey, strings.Repeat("a", size))
				require.ErrorIs(t, err, address.ErrInvalidHrp)
				require.Empty(t, addr)
			}
		})
	}

	t.Run("encode all", func(t *testing.T) {
		t.Parallel()

		addresses := address.DefaultRegistry().EncodeAll(pubKey, strings.Repeat("a", 60))
		require.NotContains(t, addresses, address.FormatCosmos)
		require.NotContains(t, addresses, address.FormatEvmos)
		require.Contains(t, addresses, address.FormatBitcoin)
		require.Contains(t, addresses, address.FormatEthereum)
	})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	t.Run("default registry", func(t *testing.T) {
		t.Parallel()

		format, err := address.ParseFormat(" Ethereum ")
		require.NoError(t, err)
		require.Equal(t, address.FormatEthereum, format)

		_, err = address.ParseFormat("dogecoin")
		require.ErrorIs(t, err, address.ErrUnknownFormat)
	})

	t.Run("custom registry", func(t *testing.T) {
		t.Parallel()

		registry, err := address.NewRegistry(junoEncoder{}, address.NewEthereumEncoder())
		require.NoError(t, err)

		format, err := registry.ParseFormat("JUNO")
		require.NoError(t, err)
		require.Equal(t, formatJuno, format)

		encoder, err := registry.Get(format)
		require.NoError(t, err)
		addr, err := encoder.Encode(parsePubKey(t, cosmosPubKey), "")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(addr, "juno1"))

		_, err = registry.ParseFormat("cosmos")
		require.ErrorIs(t, err, address.ErrUnknownFormat)

		_, err = address.ParseFormat("juno")
		require.ErrorIs(t, err, address.ErrUnknownFormat)
	})
}

const formatJuno address.Format = "juno"

// junoEncoder is a cosmos encoder bound to the juno hrp.
type junoEncoder struct{}

func (junoEncoder) Format() address.Format {
	return formatJuno
}

func (junoEncoder) Encode(pubKey *btcec.PublicKey, _ string) (string, error) {
	return address.NewCosmosEncoder().Encode(pubKey, "juno")
}

func parsePubKey(t *testing.T, pubKeyHex string) *btcec.PublicKey {
	buf, err := hex.DecodeString(pubKeyHex)
	require.NoError(t, err)
	pubKey, err := btcec.ParsePubKey(buf)
	require.NoError(t, err)
	return pubKey
}
