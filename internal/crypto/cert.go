package crypto

import (
	"crypto/x509"
	"encoding/pem"
	"strings"

	"github.com/pkg/errors"
)

// ParseCertificatePEM decodes a PEM-encoded X.509 certificate.
func ParseCertificatePEM(pemText string) (*x509.Certificate, error) {
	block, _ := pem.Decode([]byte(strings.TrimSpace(pemText)))
	if block == nil {
		return nil, errors.New("no PEM block found in certificate text")
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, errors.Wrap(err, "invalid certificate")
	}
	return cert, nil
}

// PublicKeyPEM renders the certificate's public key as a PKIX PEM block.
func PublicKeyPEM(cert *x509.Certificate) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(cert.PublicKey)
	if err != nil {
		return "", errors.Wrap(err, "cannot encode certificate public key")
	}
	block := &pem.Block{Type: "PUBLIC KEY", Bytes: der}
	return string(pem.EncodeToMemory(block)), nil
}
