package domain

import (
	"context"
	"crypto/x509"
)

// PublicPortion is a node's own certificate together with its PEM-encoded
// public key material, as returned by the directory.
type PublicPortion struct {
	Cert         *x509.Certificate
	CertPEM      string
	PublicKeyPEM string
}

// Directory maps a node id to its certificate and public key material.
// Implementations talk to the external directory service; tests
// substitute a fake.
type Directory interface {
	Lookup(ctx context.Context, id NodeID) (*PublicPortion, bool, error)
}
