package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Roundtrip(t *testing.T) {
	s := NewService("secret")

	signed, err := s.Issue("64f000000000000000000001", "a@x.com")
	require.NoError(t, err)

	claims, err := s.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "64f000000000000000000001", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestService_Verify_WrongSecret(t *testing.T) {
	signed, err := NewService("secret").Issue("u1", "a@x.com")
	require.NoError(t, err)

	_, err = NewService("other").Verify(signed)
	require.Error(t, err)
}

func TestService_Verify_Malformed(t *testing.T) {
	s := NewService("secret")

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := s.Verify(tok)
		require.Error(t, err)
	}
}

func TestService_Verify_Tampered(t *testing.T) {
	s := NewService("secret")
	signed, err := s.Issue("u1", "a@x.com")
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	parts[1] = parts[1][:len(parts[1])-2] + "xx"

	_, err = s.Verify(strings.Join(parts, "."))
	require.Error(t, err)
}

func TestService_Verify_Expired(t *testing.T) {
	s := NewService("secret")

	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "u1",
		Email:  "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-25 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = s.Verify(signed)
	require.Error(t, err)
}
