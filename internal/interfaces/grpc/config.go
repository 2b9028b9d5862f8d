package grpc_interface

import (
	"crypto/tls"
	"fmt"
	"net"
	"path/filepath"

	"golang.org/x/net/http2"
)

const (
	minPort = 1024
	maxPort = 49151
)

type ServiceConfig struct {
	Port         int
	NoTLS        bool
	TLSLocation  string
	ExtraIPs     []string
	ExtraDomains []string
}

func (c ServiceConfig) validate() error {
	if c.Port < minPort || c.Port > maxPort {
		return fmt.Errorf("port must be in range [%d, %d]", minPort, maxPort)
	}
	if !c.insecure() && c.TLSLocation == "" {
		return fmt.Errorf("missing TLS location")
	}
	return nil
}

func (c ServiceConfig) insecure() bool {
	return c.NoTLS
}

func (c ServiceConfig) address() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c ServiceConfig) listener() (net.Listener, error) {
	return net.Listen("tcp", c.address())
}

func (c ServiceConfig) tlsConfig() (*tls.Config, error) {
	if c.insecure() {
		return nil, nil
	}
	cert, err := tls.LoadX509KeyPair(c.tlsCertPath(), c.tlsKeyPath())
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		NextProtos:   []string{http2.NextProtoTLS},
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

func (c ServiceConfig) tlsKeyPath() string {
	return filepath.Join(c.TLSLocation, tlsKeyFile)
}

func (c ServiceConfig) tlsCertPath() string {
	return filepath.Join(c.TLSLocation, tlsCertFile)
}
