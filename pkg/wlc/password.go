package wlc

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// PasswordLength is fixed by the controller CLI command layout: the
// redaction anchor in Redact assumes exactly this many characters between
// the username and the "wlan" token.
const PasswordLength = 8

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewPassword returns a PasswordLength-character alphanumeric password from
// the OS CSPRNG. Uniqueness across accounts in the same run is not
// guaranteed by construction.
func NewPassword() (string, error) {
	max := big.NewInt(int64(len(passwordAlphabet)))
	buf := make([]byte, PasswordLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generating password: %w", err)
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
