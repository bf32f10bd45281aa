// AngelaMos | 2026
// security_test.go

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Secure@123")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := VerifyPassword("Secure@123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	for _, other := range []string{"secure@123", "Secure@1234", "", "Secure@12"} {
		ok, err := VerifyPassword(other, hash)
		require.NoError(t, err)
		assert.False(t, ok, other)
	}
}

func TestHashesAreSalted(t *testing.T) {
	a, err := HashPassword("Secure@123")
	require.NoError(t, err)
	b, err := HashPassword("Secure@123")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	_, err := VerifyPassword("x", "not-a-hash")
	assert.Error(t, err)

	_, err = VerifyPassword("x", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA")
	assert.Error(t, err)
}

func TestVerifyPasswordTimingSafe(t *testing.T) {
	hash, err := HashPassword("Secure@123")
	require.NoError(t, err)

	ok, err := VerifyPasswordTimingSafe("Secure@123", &hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPasswordTimingSafe("Secure@123", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	empty := ""
	ok, err = VerifyPasswordTimingSafe("", &empty)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNeedsRehash(t *testing.T) {
	current, err := HashPassword("Secure@123")
	require.NoError(t, err)
	assert.False(t, NeedsRehash(current))

	weaker := DefaultPasswordParams
	weaker.Memory = 16 * 1024
	old, err := HashPasswordWithParams("Secure@123", weaker)
	require.NoError(t, err)
	assert.True(t, NeedsRehash(old))

	assert.True(t, NeedsRehash("garbage"))
}
