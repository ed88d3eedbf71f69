package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

var (
	ErrInvalidHash        = errors.New("invalid password hash encoding")
	ErrUnsupportedVariant = errors.New("unsupported password hash variant")
)

// Cost parameters used when hashing new passwords. Verification always uses
// the parameters embedded in the stored hash, never these.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

// HashPassword derives an Argon2id hash of the password with a fresh random
// salt and returns it in the $argon2id$v=19$m=..,t=..,p=..$salt$hash encoding.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encodedSalt := base64.RawStdEncoding.EncodeToString(salt)
	encodedHash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads, encodedSalt, encodedHash), nil
}

// VerifyPassword compares a plaintext password against a stored encoded hash.
// The salt and cost parameters embedded in the encoding are reused for the
// comparison hash. A malformed encoding returns ErrInvalidHash; it never
// panics on untrusted input.
func VerifyPassword(encodedHash, password string) (bool, error) {
	variant, version, m, t, p, salt, hash, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}
	if variant != "argon2id" {
		return false, ErrUnsupportedVariant
	}
	if version != argon2.Version {
		return false, fmt.Errorf("%w: version %d", ErrUnsupportedVariant, version)
	}
	// argon2.IDKey panics on zero rounds or zero parallelism; a stored hash
	// claiming either is corrupt, not a crash.
	if t == 0 || p == 0 {
		return false, ErrInvalidHash
	}

	comparison := argon2.IDKey([]byte(password), salt, t, m, p, uint32(len(hash)))

	return subtle.ConstantTimeCompare(hash, comparison) == 1, nil
}

func decodeHash(encodedHash string) (variant string, version int, m, t uint32, p uint8, salt, hash []byte, err error) {
	sections := splitSections(encodedHash)
	// Expected: ["argon2id", "v=19", "m=65536,t=1,p=4", "salt", "hash"]
	if len(sections) != 5 {
		err = ErrInvalidHash
		return
	}
	variant = sections[0]

	if _, err = fmt.Sscanf(sections[1], "v=%d", &version); err != nil {
		err = ErrInvalidHash
		return
	}

	var threads uint32
	if _, err = fmt.Sscanf(sections[2], "m=%d,t=%d,p=%d", &m, &t, &threads); err != nil {
		err = ErrInvalidHash
		return
	}
	p = uint8(threads)

	salt, err = base64.RawStdEncoding.DecodeString(sections[3])
	if err != nil {
		err = ErrInvalidHash
		return
	}
	hash, err = base64.RawStdEncoding.DecodeString(sections[4])
	if err != nil {
		err = ErrInvalidHash
		return
	}
	return
}

func splitSections(s string) []string {
	sections := make([]string, 0, 5)
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '$' {
			if i > start {
				sections = append(sections, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		sections = append(sections, s[start:])
	}
	return sections
}
