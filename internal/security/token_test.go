package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-cms/inkwell/domain"
	"github.com/inkwell-cms/inkwell/internal/security"
)

var secret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	caller := domain.Principal{Name: "zoe", Role: security.RoleEditor}

	token, err := security.SignToken(secret, caller, time.Hour)
	require.NoError(t, err)

	parsed, err := security.ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, caller, parsed)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := security.SignToken(secret, domain.Principal{Name: "zoe", Role: security.RoleAuthor}, time.Hour)
	require.NoError(t, err)

	_, err = security.ParseToken([]byte("other-secret"), token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := security.SignToken(secret, domain.Principal{Name: "zoe", Role: security.RoleAuthor}, -time.Minute)
	require.NoError(t, err)

	_, err = security.ParseToken(secret, token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := security.ParseToken(secret, "not.a.token")
	assert.Error(t, err)
}
