package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func newTestIssuer(t *testing.T, cfg Config) *Issuer {
	t.Helper()
	if cfg.Secret == "" {
		cfg.Secret = testSecret
	}
	issuer, err := NewIssuer(cfg)
	require.NoError(t, err)
	return issuer
}

func TestNewIssuerRequiresSecret(t *testing.T) {
	_, err := NewIssuer(Config{})
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestIssueAndValidate(t *testing.T) {
	issuer := newTestIssuer(t, Config{})
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	token, err := issuer.Issue("user-42", issuedAt)
	require.NoError(t, err)

	claims, err := issuer.Validate(token, issuedAt)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserId)
	assert.True(t, claims.StartedAt.Equal(issuedAt))
}

func TestValidateExpiryWindow(t *testing.T) {
	issuer := newTestIssuer(t, Config{Validity: 120 * time.Minute, Leeway: 10 * time.Second})
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expiry := issuedAt.Add(120 * time.Minute)

	token, err := issuer.Issue("user-42", issuedAt)
	require.NoError(t, err)

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{name: "at issuance", now: issuedAt},
		{name: "just before expiry", now: expiry.Add(-time.Second)},
		{name: "within leeway past expiry", now: expiry.Add(5 * time.Second)},
		{name: "past expiry and leeway", now: expiry.Add(11 * time.Second), wantErr: ErrTokenExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Validate(token, tt.now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRejectsTamperedSignature(t *testing.T) {
	issuer := newTestIssuer(t, Config{})
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	token, err := issuer.Issue("user-42", now)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = issuer.Validate(tampered, now)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := newTestIssuer(t, Config{})
	other := newTestIssuer(t, Config{Secret: "some-other-secret"})
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	token, err := other.Issue("user-42", now)
	require.NoError(t, err)

	_, err = issuer.Validate(token, now)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestValidateRejectsForeignIssuerAndAudience(t *testing.T) {
	issuer := newTestIssuer(t, Config{})
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mint := func(iss, aud string) string {
		claims := matchTokenClaims{
			UserId: "user-42",
			Start:  now.Format(time.RFC3339Nano),
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    iss,
				Audience:  jwt.ClaimStrings{aud},
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		return token
	}

	_, err := issuer.Validate(mint("SomeOtherService", tokenAudience), now)
	assert.ErrorIs(t, err, ErrIssuerMismatch)

	_, err = issuer.Validate(mint(tokenIssuer, "SomeOtherClient"), now)
	assert.ErrorIs(t, err, ErrAudienceMismatch)
}

func TestValidateRejectsMalformedToken(t *testing.T) {
	issuer := newTestIssuer(t, Config{})
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	_, err := issuer.Validate("not-a-token", now)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
