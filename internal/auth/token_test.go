package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestTokens(secret string) *TokenService {
	return NewTokenService(StaticSecret(secret)).WithClock(fixedClock(testNow))
}

func TestIssueValidateRoundTrip(t *testing.T) {
	tokens := newTestTokens("test-secret")

	for _, role := range []Role{RoleAdmin, RoleLeader, RoleMember} {
		t.Run(string(role), func(t *testing.T) {
			in := Claim{UserID: "user-1", Email: "ana@example.com", Name: "Ana", Role: role}

			token, err := tokens.Issue(in)
			require.NoError(t, err)
			assert.Len(t, strings.Split(token, "."), 3)

			out := tokens.Validate(token)
			require.NotNil(t, out)
			assert.Equal(t, in, *out)
		})
	}
}

func TestIssueSetsIssuedAtAndExpiry(t *testing.T) {
	tokens := newTestTokens("test-secret")
	token, err := tokens.Issue(Claim{UserID: "u", Email: "u@example.com", Role: RoleMember})
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	assert.EqualValues(t, testNow.Unix(), claims["iat"])
	assert.EqualValues(t, testNow.Add(SessionTTL).Unix(), claims["exp"])
	assert.Equal(t, "u", claims["userId"])
	assert.NotContains(t, claims, "name", "empty name is omitted")
}

func TestValidateRejectsDifferentSecret(t *testing.T) {
	token, err := newTestTokens("secret-a").Issue(Claim{UserID: "u", Email: "e", Role: RoleAdmin})
	require.NoError(t, err)

	assert.Nil(t, newTestTokens("secret-b").Validate(token))
}

func TestValidateExpiry(t *testing.T) {
	tokens := newTestTokens("test-secret")
	token, err := tokens.Issue(Claim{UserID: "u", Email: "e", Role: RoleLeader})
	require.NoError(t, err)

	t.Run("just before expiry", func(t *testing.T) {
		later := tokens.WithClock(fixedClock(testNow.Add(SessionTTL - time.Second)))
		assert.NotNil(t, later.Validate(token))
	})

	t.Run("after expiry", func(t *testing.T) {
		later := tokens.WithClock(fixedClock(testNow.Add(SessionTTL + time.Second)))
		assert.Nil(t, later.Validate(token))
	})
}

func TestValidateRejectsTampering(t *testing.T) {
	tokens := newTestTokens("test-secret")
	token, err := tokens.Issue(Claim{UserID: "u", Email: "e", Role: RoleMember})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	forged, err := newTestTokens("test-secret").Issue(Claim{UserID: "u", Email: "e", Role: RoleAdmin})
	require.NoError(t, err)
	forgedParts := strings.Split(forged, ".")

	// admin payload with the member signature
	assert.Nil(t, tokens.Validate(parts[0]+"."+forgedParts[1]+"."+parts[2]))
	assert.Nil(t, tokens.Validate(parts[0]+"."+parts[1]+"."))
	assert.Nil(t, tokens.Validate(parts[0]+"."+parts[1]))
}

func TestValidateRejectsOtherAlgorithms(t *testing.T) {
	tokens := newTestTokens("test-secret")
	claims := jwt.MapClaims{
		"userId": "u",
		"email":  "e",
		"role":   "admin",
		"iat":    testNow.Unix(),
		"exp":    testNow.Add(time.Hour).Unix(),
	}

	t.Run("none", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		assert.Nil(t, tokens.Validate(token))
	})

	t.Run("HS512", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		assert.Nil(t, tokens.Validate(token))
	})

	t.Run("HS256 accepted", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		assert.NotNil(t, tokens.Validate(token))
	})
}

func TestValidateRejectsUnknownRoleAndMissingExpiry(t *testing.T) {
	tokens := newTestTokens("test-secret")

	sign := func(claims jwt.MapClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		return token
	}

	assert.Nil(t, tokens.Validate(sign(jwt.MapClaims{
		"userId": "u", "email": "e", "role": "superuser",
		"iat": testNow.Unix(), "exp": testNow.Add(time.Hour).Unix(),
	})))
	assert.Nil(t, tokens.Validate(sign(jwt.MapClaims{
		"userId": "u", "email": "e",
		"iat": testNow.Unix(), "exp": testNow.Add(time.Hour).Unix(),
	})))
	assert.Nil(t, tokens.Validate(sign(jwt.MapClaims{
		"userId": "u", "email": "e", "role": "admin", "iat": testNow.Unix(),
	})))
}

func TestValidateMalformedInput(t *testing.T) {
	tokens := newTestTokens("test-secret")
	for _, in := range []string{"", "valid-token", "a.b.c", "...", "eyJhbGciOiJIUzI1NiJ9.%%%.x", strings.Repeat("x", 4096)} {
		assert.NotPanics(t, func() {
			assert.Nil(t, tokens.Validate(in))
		})
	}
}

func TestIssueWithoutSecret(t *testing.T) {
	tokens := NewTokenService(StaticSecret(""))

	_, err := tokens.Issue(Claim{UserID: "u", Email: "e", Role: RoleAdmin})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)

	token, err := newTestTokens("test-secret").Issue(Claim{UserID: "u", Email: "e", Role: RoleAdmin})
	require.NoError(t, err)
	assert.Nil(t, tokens.Validate(token))
}

func TestIssueRejectsInvalidRole(t *testing.T) {
	_, err := newTestTokens("test-secret").Issue(Claim{UserID: "u", Email: "e", Role: "owner"})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestSecretResolvedPerCall(t *testing.T) {
	secret := ""
	tokens := NewTokenService(SecretProviderFunc(func() (string, bool) {
		return secret, secret != ""
	})).WithClock(fixedClock(testNow))

	claim := Claim{UserID: "u", Email: "e", Role: RoleMember}
	_, err := tokens.Issue(claim)
	assert.ErrorIs(t, err, ErrConfiguration)

	secret = "late-binding"
	token, err := tokens.Issue(claim)
	require.NoError(t, err)
	assert.NotNil(t, tokens.Validate(token))

	secret = "rotated"
	assert.Nil(t, tokens.Validate(token))
}
