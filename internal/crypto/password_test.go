package crypto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal/internal/crypto"
)

func TestHashAndVerifyPassword(t *testing.T) {
	encoded, err := crypto.HashPassword("hunter2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))

	t.Run("correct password verifies", func(t *testing.T) {
		ok, err := crypto.VerifyPassword(encoded, "hunter2")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password fails without error", func(t *testing.T) {
		ok, err := crypto.VerifyPassword(encoded, "hunter3")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("salts are fresh per hash", func(t *testing.T) {
		second, err := crypto.HashPassword("hunter2")
		require.NoError(t, err)
		assert.NotEqual(t, encoded, second)

		ok, err := crypto.VerifyPassword(second, "hunter2")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	cases := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not a hash at all", "password"},
		{"too few sections", "$argon2id$v=19$m=65536,t=1,p=4"},
		{"bad version field", "$argon2id$vv$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"bad params field", "$argon2id$v=19$nope$c2FsdA$aGFzaA"},
		{"zero rounds", "$argon2id$v=19$m=65536,t=0,p=4$c2FsdA$aGFzaA"},
		{"zero parallelism", "$argon2id$v=19$m=65536,t=1,p=0$c2FsdA$aGFzaA"},
		{"bad salt base64", "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
		{"bad hash base64", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := crypto.VerifyPassword(tc.encoded, "anything")
			assert.False(t, ok)
			assert.ErrorIs(t, err, crypto.ErrInvalidHash)
		})
	}
}

func TestVerifyPasswordUnsupportedVariant(t *testing.T) {
	ok, err := crypto.VerifyPassword("$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA", "anything")
	assert.False(t, ok)
	assert.ErrorIs(t, err, crypto.ErrUnsupportedVariant)
}
