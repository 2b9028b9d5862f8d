package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	pb "github.com/vulpemventures/noir/api-spec/keygen/v1"
	"github.com/vulpemventures/noir/internal/core/application"
)

var (
	offline     bool
	entropySize uint32
	mnemonic    string
	passphrase  string
	askPass     bool
	xkey        string
	path        string
	hrp         string

	genSeedCmd = &cobra.Command{
		Use:   "genseed",
		Short: "generate a random mnemonic",
		Long: "this command lets you generate a new random BIP-39 mnemonic, " +
			"either through the daemon or offline",
		RunE: genSeed,
	}
	deriveCmd = &cobra.Command{
		Use:   "derive",
		Short: "derive key pair and addresses from a mnemonic",
		Long: "this command lets you derive the key pair and the addresses at " +
			"the given path of the key tree rooted at a mnemonic. The mnemonic " +
			"is read from the terminal if not provided with --mnemonic",
		RunE: derive,
	}
	deriveXKeyCmd = &cobra.Command{
		Use:   "derivexkey",
		Short: "derive key pair and addresses from an extended key",
		Long: "this command lets you derive the key pair and the addresses at " +
			"the given path relative to an extended key. Keys derived from an " +
			"xpub come without private key",
		RunE: deriveXKey,
	}
	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "get info about the noir daemon",
		Long: "this command returns the build info and the keygen settings of " +
			"the noir daemon",
		RunE: info,
	}
)

func init() {
	for _, cmd := range []*cobra.Command{genSeedCmd, deriveCmd, deriveXKeyCmd} {
		cmd.Flags().BoolVar(
			&offline, "offline", false,
			"run locally without connecting to the daemon",
		)
	}

	genSeedCmd.Flags().Uint32Var(
		&entropySize, "entropy-size", 0,
		"entropy size in bits (128, 160, 192, 224 or 256), offline only",
	)

	deriveCmd.Flags().StringVar(
		&mnemonic, "mnemonic", "", "space separated word list",
	)
	deriveCmd.Flags().StringVar(
		&passphrase, "passphrase", "", "optional BIP-39 passphrase",
	)
	deriveCmd.Flags().BoolVar(
		&askPass, "ask-passphrase", false,
		"read the BIP-39 passphrase from the terminal",
	)

	deriveXKeyCmd.Flags().StringVar(&xkey, "xkey", "", "base58 extended key")
	deriveXKeyCmd.MarkFlagRequired("xkey")

	for _, cmd := range []*cobra.Command{deriveCmd, deriveXKeyCmd} {
		cmd.Flags().StringVar(&path, "path", "", "derivation path")
		cmd.Flags().StringVar(&hrp, "hrp", "", "human readable part of addresses")
		cmd.MarkFlagRequired("path")
		cmd.MarkFlagRequired("hrp")
	}
}

func genSeed(_ *cobra.Command, _ []string) error {
	if offline {
		svc, err := offlineService()
		if err != nil {
			return err
		}
		return printJSON(svc.Generate(context.Background()))
	}

	if entropySize > 0 {
		return fmt.Errorf("entropy size can be customized only in offline mode")
	}

	client, cleanup, err := getKeygenClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.Generate(context.Background(), &pb.GenerateRequest{})
	if err != nil {
		return err
	}
	return printJSON(reply)
}

func derive(_ *cobra.Command, _ []string) error {
	if mnemonic == "" {
		words, err := readSecret("mnemonic: ")
		if err != nil {
			return err
		}
		mnemonic = words
	}
	if askPass {
		pass, err := readSecret("passphrase: ")
		if err != nil {
			return err
		}
		passphrase = pass
	}

	if offline {
		svc, err := offlineService()
		if err != nil {
			return err
		}
		return printJSON(svc.Derive(context.Background(), application.DeriveArgs{
			Mnemonic:   mnemonic,
			Path:       path,
			Hrp:        hrp,
			Passphrase: passphrase,
		}))
	}

	client, cleanup, err := getKeygenClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.Derive(context.Background(), &pb.DeriveRequest{
		Mnemonic:   mnemonic,
		Path:       path,
		Hrp:        hrp,
		Passphrase: passphrase,
	})
	if err != nil {
		return err
	}
	return printJSON(reply)
}

func deriveXKey(_ *cobra.Command, _ []string) error {
	if offline {
		svc, err := offlineService()
		if err != nil {
			return err
		}
		return printJSON(svc.DeriveFromExtendedKey(
			context.Background(), application.DeriveFromExtendedKeyArgs{
				ExtendedKey: xkey,
				Path:        path,
				Hrp:         hrp,
			},
		))
	}

	client, cleanup, err := getKeygenClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.DeriveFromExtendedKey(
		context.Background(), &pb.DeriveFromExtendedKeyRequest{
			ExtendedKey: xkey,
			Path:        path,
			Hrp:         hrp,
		},
	)
	if err != nil {
		return err
	}
	return printJSON(reply)
}

func info(_ *cobra.Command, _ []string) error {
	client, cleanup, err := getKeygenClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.GetInfo(context.Background(), &pb.GetInfoRequest{})
	if err != nil {
		return err
	}
	return printJSON(reply)
}

func offlineService() (*application.KeygenService, error) {
	return application.NewKeygenService(application.KeygenServiceOpts{
		EntropySize: entropySize,
		BuildInfo: application.BuildInfo{
			Version: version,
			Commit:  commit,
			Date:    date,
		},
	})
}
