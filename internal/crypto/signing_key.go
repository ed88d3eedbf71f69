package crypto

import (
	"errors"
	"fmt"
	"os"
)

var (
	ErrKeyFileNotFound = errors.New("signing key file not found")
	ErrInvalidKeySize  = errors.New("invalid signing key: must be exactly 32 bytes")
)

// SigningKeySize is the required length of the session signing key material.
const SigningKeySize = 32

// LoadSigningKey reads the session signing key from the given file. The key
// is loaded once at process start and injected into the token codec; it is
// never rotated while the process runs.
func LoadSigningKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrKeyFileNotFound, path)
		}
		return nil, err
	}
	if len(key) != SigningKeySize {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidKeySize, len(key))
	}
	return key, nil
}
