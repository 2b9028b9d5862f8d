package domain

// DerivedKey is the result of walking a derivation path: the key pair found
// at its end together with the addresses it controls.
// PrivateKey is nil when the key has been derived from a public-only chain.
type DerivedKey struct {
	Path              string
	PublicKey         []byte
	PrivateKey        []byte
	ExtendedPublicKey string
	Address           string
	Addresses         map[string]string
}

// IsWatchOnly returns whether the key can only be used to watch addresses.
func (k *DerivedKey) IsWatchOnly() bool {
	return len(k.PrivateKey) <= 0
}

// Zero wipes the private key from memory.
func (k *DerivedKey) Zero() {
	for i := range k.PrivateKey {
		k.PrivateKey[i] = 0
	}
	k.PrivateKey = nil
}
