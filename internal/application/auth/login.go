package auth

import (
	"context"
	"strings"

	"github.com/croftbar/authd/internal/domain"
)

// Login authenticates a user and issues a token.
// IMPORTANT: must not leak whether the email exists (avoid user
// enumeration) — unknown email and wrong password answer identically.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			// Hide not-found behind invalid credentials.
			return LoginResult{}, domain.ErrInvalidCredentials()
		}
		return LoginResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	tok, err := s.issuer.Issue(u.ID, u.Name)
	if err != nil {
		return LoginResult{}, domain.ErrTokenSignFailed(err)
	}

	return LoginResult{User: u, AccessToken: tok}, nil
}
