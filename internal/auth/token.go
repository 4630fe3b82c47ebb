package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "SCWebService"
	tokenAudience = "SCClient"

	// DefaultValidity bounds how long after a match starts its result may
	// still be submitted.
	DefaultValidity = 120 * time.Minute

	// DefaultLeeway absorbs clock drift between issuer and validator. It
	// applies to the expiry check only.
	DefaultLeeway = 10 * time.Second
)

var (
	ErrMissingSecret = errors.New("match token signing secret is empty")

	ErrTokenMalformed   = errors.New("malformed match token")
	ErrBadSignature     = errors.New("match token signature mismatch")
	ErrTokenExpired     = errors.New("match token expired")
	ErrIssuerMismatch   = errors.New("match token issuer mismatch")
	ErrAudienceMismatch = errors.New("match token audience mismatch")
)

// SessionClaims is what a successfully validated token asserts: which user
// the match session was issued to, and when it started.
type SessionClaims struct {
	UserId    string
	StartedAt time.Time
}

type matchTokenClaims struct {
	UserId string `json:"userID"`
	Start  string `json:"start"`
	jwt.RegisteredClaims
}

// Issuer mints and validates match session tokens. The signing secret is
// injected at construction and never read from the environment here.
type Issuer struct {
	secret   []byte
	validity time.Duration
	leeway   time.Duration
}

func NewIssuer(cfg Config) (*Issuer, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	validity := cfg.Validity
	if validity <= 0 {
		validity = DefaultValidity
	}
	leeway := cfg.Leeway
	if leeway <= 0 {
		leeway = DefaultLeeway
	}
	return &Issuer{
		secret:   []byte(cfg.Secret),
		validity: validity,
		leeway:   leeway,
	}, nil
}

// Issue binds userId to the match start instant and signs the pair along
// with issuer, audience and expiry.
func (i *Issuer) Issue(userId string, now time.Time) (string, error) {
	claims := matchTokenClaims{
		UserId: userId,
		Start:  now.UTC().Format(time.RFC3339Nano),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign match token: %w", err)
	}
	return signed, nil
}

// Validate re-derives token validity from the signature and claims; nothing
// is looked up server-side.
func (i *Issuer) Validate(tokenString string, now time.Time) (SessionClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithLeeway(i.leeway),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	var claims matchTokenClaims
	_, err := parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenMalformed):
		return SessionClaims{}, ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return SessionClaims{}, ErrBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return SessionClaims{}, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return SessionClaims{}, ErrIssuerMismatch
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return SessionClaims{}, ErrAudienceMismatch
	default:
		return SessionClaims{}, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	startedAt, err := time.Parse(time.RFC3339Nano, claims.Start)
	if err != nil {
		return SessionClaims{}, ErrTokenMalformed
	}
	return SessionClaims{
		UserId:    claims.UserId,
		StartedAt: startedAt.UTC(),
	}, nil
}
