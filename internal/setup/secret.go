package setup

import (
	"crypto/rand"
	"encoding/hex"
)

// SecretLen is the length in characters of a generated JWT secret.
const SecretLen = 64

// GenerateSecret returns a 256-bit random value encoded as 64 hex
// characters. The bytes come from the operating system CSPRNG.
func GenerateSecret() (string, error) {
	buf := make([]byte, SecretLen/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
