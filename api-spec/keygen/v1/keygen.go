package keygenv1

type GenerateRequest struct{}

type GenerateResponse struct {
	Success bool   `json:"success"`
	Result  string `json:"result"`
	Message string `json:"message"`
}

type DeriveRequest struct {
	Mnemonic   string `json:"mnemonic"`
	Path       string `json:"path"`
	Hrp        string `json:"hrp"`
	Passphrase string `json:"passphrase,omitempty"`
}

type DeriveFromExtendedKeyRequest struct {
	ExtendedKey string `json:"extendedKey"`
	Path        string `json:"path"`
	Hrp         string `json:"hrp"`
}

type DeriveResponse struct {
	Success bool        `json:"success"`
	Result  *DerivedKey `json:"result"`
	Message string      `json:"message"`
}

type DerivedKey struct {
	Address           string            `json:"address"`
	PublicKey         string            `json:"publicKey"`
	PrivateKey        string            `json:"privateKey,omitempty"`
	ExtendedPublicKey string            `json:"extendedPublicKey"`
	Path              string            `json:"path"`
	Addresses         map[string]string `json:"addresses"`
}

type GetInfoRequest struct{}

type GetInfoResponse struct {
	Version          string   `json:"version"`
	Commit           string   `json:"commit"`
	Date             string   `json:"date"`
	EntropySize      uint32   `json:"entropySize"`
	AddressFormat    string   `json:"addressFormat"`
	SupportedFormats []string `json:"supportedFormats"`
	MaxConcurrency   int      `json:"maxConcurrency"`
}
