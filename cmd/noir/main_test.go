package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testMnemonic      = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	cosmosAccountXpub = "xpub6DGzViq8bmgMLYdVZ3xnLVEdKwzBnGdzzJZ4suG8kVb9TTLAbrwv8YdKBb8FWKdBNinaHKmBv7JpQvqBYx4rxch7WnHzNFzSVrMf8hQepTP"
	cosmosAddress     = "cosmos19rl4cm2hmr8afy4kldpxz3fka4jguq0auqdal4"
)

type envelope struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Message string          `json:"message"`
}

type derivedKey struct {
	Address    string            `json:"address"`
	PrivateKey string            `json:"privateKey"`
	Path       string            `json:"path"`
	Addresses  map[string]string `json:"addresses"`
}

func TestGenSeed(t *testing.T) {
	setupDatadir(t)

	t.Run("default entropy size", func(t *testing.T) {
		res := executeEnvelope(t, "genseed", "--offline", "--entropy-size", "0")
		require.True(t, res.Success, res.Message)

		var words string
		require.NoError(t, json.Unmarshal(res.Result, &words))
		require.Len(t, strings.Fields(words), 24)
	})

	t.Run("custom entropy size", func(t *testing.T) {
		res := executeEnvelope(t, "genseed", "--offline", "--entropy-size", "128")
		require.True(t, res.Success, res.Message)

		var words string
		require.NoError(t, json.Unmarshal(res.Result, &words))
		require.Len(t, strings.Fields(words), 12)
	})

	t.Run("invalid entropy size", func(t *testing.T) {
		_, err := execute(t, "genseed", "--offline", "--entropy-size", "100")
		require.Error(t, err)
	})

	t.Run("entropy size requires offline", func(t *testing.T) {
		_, err := execute(t, "genseed", "--offline=false", "--entropy-size", "128")
		require.Error(t, err)
		require.Contains(t, err.Error(), "offline")
	})
}

func TestDerive(t *testing.T) {
	setupDatadir(t)

	t.Run("valid", func(t *testing.T) {
		res := executeEnvelope(t,
			"derive", "--offline", "--mnemonic", testMnemonic,
			"--path", "m/44'/118'/0'/0/0", "--hrp", "cosmos",
		)
		require.True(t, res.Success, res.Message)

		var key derivedKey
		require.NoError(t, json.Unmarshal(res.Result, &key))
		require.Equal(t, cosmosAddress, key.Address)
		require.Equal(t, "m/44'/118'/0'/0/0", key.Path)
		require.NotEmpty(t, key.PrivateKey)
		require.Equal(t, "0x7C1B02B575545d4F24243C229bC9a5ef1649b346", key.Addresses["ethereum"])
	})

	t.Run("invalid checksum", func(t *testing.T) {
		corrupted := strings.TrimSuffix(testMnemonic, "about") + "abandon"
		res := executeEnvelope(t,
			"derive", "--offline", "--mnemonic", corrupted,
			"--path", "m/44'/118'/0'/0/0", "--hrp", "cosmos",
		)
		require.False(t, res.Success)
		require.Equal(t, "null", string(res.Result))
		require.Contains(t, res.Message, "checksum")
	})

	t.Run("from xpub", func(t *testing.T) {
		res := executeEnvelope(t,
			"derivexkey", "--offline", "--xkey", cosmosAccountXpub,
			"--path", "0/0", "--hrp", "cosmos",
		)
		require.True(t, res.Success, res.Message)

		var key derivedKey
		require.NoError(t, json.Unmarshal(res.Result, &key))
		require.Equal(t, cosmosAddress, key.Address)
		require.Empty(t, key.PrivateKey)
	})
}

func TestConfig(t *testing.T) {
	setupDatadir(t)

	_, err := execute(t, "config", "set", "rpcserver", "localhost:19000")
	require.NoError(t, err)

	out, err := execute(t, "config")
	require.NoError(t, err)

	state := map[string]string{}
	require.NoError(t, json.Unmarshal([]byte(out), &state))
	require.Equal(t, "localhost:19000", state["rpcserver"])
	require.Equal(t, "false", state["no_tls"])

	_, err = execute(t, "config", "set", "unknown", "value")
	require.Error(t, err)
}

func setupDatadir(t *testing.T) {
	prevDatadir, prevStatePath := datadir, statePath
	datadir = t.TempDir()
	statePath = filepath.Join(datadir, "state.json")
	t.Cleanup(func() {
		datadir, statePath = prevDatadir, prevStatePath
	})
}

func executeEnvelope(t *testing.T, args ...string) envelope {
	out, err := execute(t, args...)
	require.NoError(t, err)

	var res envelope
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	return res
}

// execute runs the root command with the given args and returns what it
// printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	stdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	out := make(chan []byte)
	go func() {
		buf, _ := io.ReadAll(r)
		out <- buf
	}()

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()

	w.Close()
	return string(<-out), execErr
}
