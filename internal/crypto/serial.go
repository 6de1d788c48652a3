package crypto

import (
	"math/big"
	"strings"

	"courier/internal/domain"
)

// FormatSerial renders a certificate serial number as the display string
// used for key identifiers: lowercase hex, two characters per group,
// groups joined by ':'. Odd-length hex is padded with a leading zero so
// every group holds a full byte.
func FormatSerial(serial *big.Int) (string, error) {
	if serial == nil || serial.Sign() < 0 {
		return "", &domain.SignEncryptError{Msg: "unable to parse certificate serial"}
	}
	hex := serial.Text(16)
	if len(hex)%2 != 0 {
		hex = "0" + hex
	}
	var b strings.Builder
	for i := 0; i < len(hex); i += 2 {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(hex[i : i+2])
	}
	return b.String(), nil
}
