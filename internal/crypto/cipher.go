package crypto

import (
	"crypto/rand"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"

	"courier/internal/domain"
)

const (
	// KeyBytes is the SecretBox key size.
	KeyBytes = chacha20poly1305.KeySize
	// NonceBytes is the nonce size prepended to each ciphertext.
	NonceBytes = chacha20poly1305.NonceSize
)

// SecretBox encrypts and decrypts envelope payloads with
// ChaCha20-Poly1305. The nonce is random per message and prepended to
// the ciphertext.
type SecretBox struct {
	key [KeyBytes]byte
}

// NewSecretBox returns a SecretBox over a 32-byte key.
func NewSecretBox(key []byte) (*SecretBox, error) {
	if len(key) != KeyBytes {
		return nil, errors.Errorf("key must be %d bytes, got %d", KeyBytes, len(key))
	}
	var b SecretBox
	copy(b.key[:], key)
	return &b, nil
}

// Encrypt seals plaintext and returns nonce||ciphertext.
func (b *SecretBox) Encrypt(plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(b.key[:])
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, NonceBytes, NonceBytes+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens nonce||ciphertext produced by Encrypt.
func (b *SecretBox) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < NonceBytes {
		return nil, errors.New("ciphertext shorter than nonce")
	}
	aead, err := chacha20poly1305.New(b.key[:])
	if err != nil {
		return nil, err
	}
	nonce, ct := ciphertext[:NonceBytes], ciphertext[NonceBytes:]
	return aead.Open(nil, nonce, ct, nil)
}

// Compile-time assertion that SecretBox implements domain.Cipher.
var _ domain.Cipher = (*SecretBox)(nil)
