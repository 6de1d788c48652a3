package crypto

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"strings"

	"github.com/pkg/errors"
)

// ParseRSAPrivateKey parses PEM text as an RSA private key, trying
// PKCS#1 first and PKCS#8 second. Both key files produced by the
// enrollment tool and keys re-encoded by other tooling are accepted.
func ParseRSAPrivateKey(pemText string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(strings.TrimSpace(pemText)))
	if block == nil {
		return nil, errors.New("no PEM block found in key text")
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, errors.Wrap(err, "key is neither PKCS#1 nor PKCS#8")
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("PKCS#8 key is not an RSA private key")
	}
	return key, nil
}

// SigningKey is an RS256 (RSA PKCS#1 v1.5 over SHA-256) signing key,
// optionally tagged with a key id. The key id is the formatted serial of
// the node's certificate once bootstrap completes.
type SigningKey struct {
	key   *rsa.PrivateKey
	keyID string
}

// NewSigningKey parses PEM text into a signing key. The parse is
// independent of ParseRSAPrivateKey even though both read the same key
// material; a failure in either surfaces separately.
func NewSigningKey(pemText string) (*SigningKey, error) {
	key, err := ParseRSAPrivateKey(pemText)
	if err != nil {
		return nil, err
	}
	return &SigningKey{key: key}, nil
}

// WithKeyID returns a copy of k tagged with id.
func (k *SigningKey) WithKeyID(id string) *SigningKey {
	return &SigningKey{key: k.key, keyID: id}
}

// KeyID returns the key id, or "" if the key is untagged.
func (k *SigningKey) KeyID() string { return k.keyID }

// Public returns the public half of the key.
func (k *SigningKey) Public() *rsa.PublicKey { return &k.key.PublicKey }

// Sign signs message with RS256 and returns the signature.
func (k *SigningKey) Sign(message []byte) ([]byte, error) {
	digest := sha256.Sum256(message)
	return rsa.SignPKCS1v15(rand.Reader, k.key, crypto.SHA256, digest[:])
}

// Verify reports whether sig is a valid RS256 signature of message by pub.
func Verify(pub *rsa.PublicKey, message, sig []byte) error {
	digest := sha256.Sum256(message)
	return rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], sig)
}
