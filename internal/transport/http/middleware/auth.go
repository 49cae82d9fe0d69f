package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/croftbar/authd/internal/application/auth"
	"github.com/croftbar/authd/internal/domain"
)

type TokenVerifier interface {
	Verify(token string) (auth.TokenClaims, error)
}

// UserResolver maps a token subject to a live user. A token whose
// subject no longer exists is treated as unauthenticated.
type UserResolver interface {
	GetUserByID(ctx context.Context, userID string) (domain.User, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// Auth verifies Authorization: Bearer <access_token>, resolves the
// subject against the store, and injects the user into the request
// context. Requests without a token never reach the resolver.
func Auth(verifier TokenVerifier, users UserResolver, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			raw := strings.TrimSpace(parts[1])
			if raw == "" {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			if strings.TrimSpace(claims.Subject) == "" {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			u, err := users.GetUserByID(r.Context(), claims.Subject)
			if err != nil {
				if domain.Is(err, "user_not_found") {
					// Deleted after issuance: unauthenticated, never 404.
					writeErr(w, r, domain.ErrUnknownSubject())
					return
				}
				writeErr(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}
