package directory

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/domain"
)

// selfSignedPEM issues a throwaway certificate for a node.
func selfSignedPEM(t *testing.T, serial *big.Int, commonName string) string {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	template := x509.Certificate{
		SerialNumber: serial,
		Subject:      pkix.Name{CommonName: commonName},
		DNSNames:     []string{commonName},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}))
}

func TestLookupFound(t *testing.T) {
	srv := NewServer()
	certPEM := selfSignedPEM(t, big.NewInt(0x1234), "proxy1.broker.example")
	require.NoError(t, srv.Add(domain.NodeID("proxy1.broker.example"), certPEM))

	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	c := NewHTTP(ts.URL)
	pp, ok, err := c.Lookup(context.Background(), domain.NodeID("proxy1.broker.example"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(0x1234), pp.Cert.SerialNumber.Int64())
	assert.Equal(t, "proxy1.broker.example", pp.Cert.Subject.CommonName)
	assert.Equal(t, certPEM, pp.CertPEM)
	assert.Contains(t, pp.PublicKeyPEM, "PUBLIC KEY")
}

func TestLookupNotFound(t *testing.T) {
	ts := httptest.NewServer(NewServer().Routes())
	defer ts.Close()

	pp, ok, err := NewHTTP(ts.URL).Lookup(context.Background(), domain.NodeID("unknown.broker"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, pp)
}

func TestLookupUnreachableDirectory(t *testing.T) {
	// Port 1 refuses connections.
	_, _, err := NewHTTP("http://127.0.0.1:1").Lookup(context.Background(), domain.NodeID("proxy1.broker"))
	require.Error(t, err)
}

func TestServerLoadDir(t *testing.T) {
	dir := t.TempDir()
	certPEM := selfSignedPEM(t, big.NewInt(7), "proxy1.broker.example")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "proxy1.broker.example.crt"), []byte(certPEM), 0o600))

	srv := NewServer()
	require.NoError(t, srv.LoadDir(dir))
	assert.Equal(t, 1, srv.Len())

	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()
	_, ok, err := NewHTTP(ts.URL).Lookup(context.Background(), domain.NodeID("proxy1.broker.example"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestServerRejectsBadCertificate(t *testing.T) {
	srv := NewServer()
	require.Error(t, srv.Add(domain.NodeID("proxy1.broker"), "not a certificate"))
}
