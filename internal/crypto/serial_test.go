package crypto

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/domain"
)

func TestFormatSerial(t *testing.T) {
	serial, ok := new(big.Int).SetString("440E0D94F36966391117BC9F867D84F0C48CFCB7", 16)
	require.True(t, ok)

	got, err := FormatSerial(serial)
	require.NoError(t, err)
	assert.Equal(t, "44:0e:0d:94:f3:69:66:39:11:17:bc:9f:86:7d:84:f0:c4:8c:fc:b7", got)
}

func TestFormatSerialPadsOddLength(t *testing.T) {
	got, err := FormatSerial(big.NewInt(0xabc))
	require.NoError(t, err)
	assert.Equal(t, "0a:bc", got)
}

func TestFormatSerialSingleByte(t *testing.T) {
	got, err := FormatSerial(big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, "01", got)
}

func TestFormatSerialRejectsNilAndNegative(t *testing.T) {
	var signErr *domain.SignEncryptError

	_, err := FormatSerial(nil)
	require.Error(t, err)
	assert.True(t, errors.As(err, &signErr))

	_, err = FormatSerial(big.NewInt(-5))
	require.Error(t, err)
	assert.True(t, errors.As(err, &signErr))
}
