package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/croftbar/authd/internal/application/auth"
	"github.com/croftbar/authd/internal/domain"
)

// JWTIssuer signs and verifies HS256 access tokens carrying the user
// identity claim set {sub, name}.
type JWTIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewJWTIssuer(secret string, issuer string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &JWTIssuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

type accessClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

func (s *JWTIssuer) Issue(subject string, name string) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the claim set
// unchanged from issuance. Errors distinguish structure, signature,
// and expiry; all of them map to 401 at the transport boundary.
func (s *JWTIssuer) Verify(token string) (auth.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &accessClaims{}, func(t *jwt.Token) (any, error) {
		// prevent alg confusion
		if t.Method != jwt.SigningMethodHS256 {
			return nil, domain.ErrTokenInvalid()
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return auth.TokenClaims{}, domain.ErrTokenMalformed()
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return auth.TokenClaims{}, domain.ErrTokenBadSignature()
		case errors.Is(err, jwt.ErrTokenExpired):
			return auth.TokenClaims{}, domain.ErrTokenExpired()
		default:
			return auth.TokenClaims{}, domain.ErrTokenInvalid()
		}
	}

	claims, ok := parsed.Claims.(*accessClaims)
	if !ok || !parsed.Valid {
		return auth.TokenClaims{}, domain.ErrTokenInvalid()
	}

	exp := time.Time{}
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}

	return auth.TokenClaims{
		Subject: claims.Subject,
		Name:    claims.Name,
		Exp:     exp,
	}, nil
}
