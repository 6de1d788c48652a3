package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretBoxRoundTrip(t *testing.T) {
	box, err := NewSecretBox(bytes.Repeat([]byte{7}, KeyBytes))
	require.NoError(t, err)

	ct, err := box.Encrypt([]byte("attack at dawn"))
	require.NoError(t, err)
	pt, err := box.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, []byte("attack at dawn"), pt)
}

func TestSecretBoxRejectsTamperedCiphertext(t *testing.T) {
	box, err := NewSecretBox(bytes.Repeat([]byte{7}, KeyBytes))
	require.NoError(t, err)

	ct, err := box.Encrypt([]byte("attack at dawn"))
	require.NoError(t, err)
	ct[len(ct)-1] ^= 0x01
	_, err = box.Decrypt(ct)
	require.Error(t, err)
}

func TestSecretBoxRejectsWrongKey(t *testing.T) {
	box, err := NewSecretBox(bytes.Repeat([]byte{7}, KeyBytes))
	require.NoError(t, err)
	other, err := NewSecretBox(bytes.Repeat([]byte{8}, KeyBytes))
	require.NoError(t, err)

	ct, err := box.Encrypt([]byte("attack at dawn"))
	require.NoError(t, err)
	_, err = other.Decrypt(ct)
	require.Error(t, err)
}

func TestSecretBoxKeySize(t *testing.T) {
	_, err := NewSecretBox([]byte("short"))
	require.Error(t, err)
}

func TestSecretBoxShortCiphertext(t *testing.T) {
	box, err := NewSecretBox(bytes.Repeat([]byte{7}, KeyBytes))
	require.NoError(t, err)
	_, err = box.Decrypt([]byte{1, 2, 3})
	require.Error(t, err)
}
