package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	rpcServer   string
	noTLS       bool
	tlsCertPath string

	configSetCmd = &cobra.Command{
		Use:   "set",
		Short: "edit single CLI config entry",
		Long: "this command lets you customize a single configuration entry of " +
			"the noir CLI",
		Args: cobra.ExactArgs(2),
		RunE: configSet,
	}
	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "edit multiple CLI config entries",
		Long: "this command lets you customize multiple configuration entries of " +
			"the noir CLI",
		RunE: configInit,
	}
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "print or edit CLI configuration",
		Long: "this command lets you show or customize the configuration of " +
			"the noir CLI",
		RunE: configPrint,
	}
)

func init() {
	state := initialState()
	configInitCmd.Flags().StringVar(
		&rpcServer, "rpcserver", state["rpcserver"],
		"address of the noir daemon to connect to",
	)
	configInitCmd.Flags().BoolVar(
		&noTLS, "no-tls", false,
		"this must be set if the noir daemon has TLS disabled",
	)
	configInitCmd.Flags().StringVar(
		&tlsCertPath, "tls-cert-path", state["tls_cert_path"],
		"the path of the TLS certificate file to use to connect to the noir "+
			"daemon if it has TLS enabled",
	)
	configCmd.AddCommand(configSetCmd, configInitCmd)
}

func configSet(_ *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	// Prevent setting anything that is not part of the state.
	if _, ok := initialState()[key]; !ok {
		return fmt.Errorf("unknown config entry %s", key)
	}

	partialState := map[string]string{key: value}
	switch key {
	case "no_tls":
		val, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid no_tls value, must be a boolean")
		}
		partialState["tls_cert_path"] = ""
		if !val {
			partialState["tls_cert_path"] = initialState()["tls_cert_path"]
		}
	case "tls_cert_path":
		partialState["no_tls"] = "true"
		if len(value) > 0 {
			partialState["no_tls"] = "false"
			value = cleanAndExpandPath(value)
			partialState[key] = value
		}
	}
	if err := setState(partialState); err != nil {
		return err
	}

	fmt.Printf("%s %s has been set\n", key, value)
	return nil
}

func configInit(_ *cobra.Command, _ []string) error {
	if _, err := getState(); err != nil {
		return err
	}

	certPath := cleanAndExpandPath(tlsCertPath)
	if noTLS {
		certPath = ""
	}
	if err := setState(map[string]string{
		"rpcserver":     rpcServer,
		"no_tls":        strconv.FormatBool(noTLS),
		"tls_cert_path": certPath,
	}); err != nil {
		return err
	}

	fmt.Println("CLI has been configured")
	return nil
}

func configPrint(_ *cobra.Command, _ []string) error {
	state, err := getState()
	if err != nil {
		return err
	}

	buf, _ := json.MarshalIndent(state, "", "   ")
	fmt.Println(string(buf))
	return nil
}
