package grpc_interface

import (
	"os"
	"time"

	"github.com/lightningnetwork/lnd/cert"
)

const (
	tlsKeyFile  = "key.pem"
	tlsCertFile = "cert.pem"

	tlsCertOrganization = "noir autogenerated cert"
	tlsCertValidity     = 14 * 30 * 24 * time.Hour
)

// generateTLSKeyPair creates a self-signed TLS key pair in the given dir,
// unless one already exists there.
func generateTLSKeyPair(
	tlsLocation string, extraIPs, extraDomains []string,
) (bool, error) {
	cfg := ServiceConfig{TLSLocation: tlsLocation}
	if pathExists(cfg.tlsCertPath()) && pathExists(cfg.tlsKeyPath()) {
		return false, nil
	}

	if err := os.MkdirAll(tlsLocation, 0700); err != nil {
		return false, err
	}

	certBytes, keyBytes, err := cert.GenCertPair(
		tlsCertOrganization, extraIPs, extraDomains, false, tlsCertValidity,
	)
	if err != nil {
		return false, err
	}
	if err := cert.WriteCertPair(
		cfg.tlsCertPath(), cfg.tlsKeyPath(), certBytes, keyBytes,
	); err != nil {
		return false, err
	}
	return true, nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
