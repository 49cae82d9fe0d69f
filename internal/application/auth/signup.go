package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/croftbar/authd/internal/domain"
)

// Signup registers a new user and issues its first access token.
// Input shape (non-empty name/password, well-formed email) is enforced
// at the transport boundary; the store enforces email uniqueness.
func (s *Service) Signup(ctx context.Context, name, email, password string) (SignupResult, error) {
	if name == "" || email == "" || password == "" {
		return SignupResult{}, domain.ErrInvalidField("name/email/password", "empty")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return SignupResult{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		// Repo reports a uniqueness violation as credentials_taken;
		// everything else propagates as-is.
		return SignupResult{}, err
	}

	tok, err := s.issuer.Issue(created.ID, created.Name)
	if err != nil {
		return SignupResult{}, domain.ErrTokenSignFailed(err)
	}

	s.publishRegistered(ctx, UserRegisteredEvent{
		UserID: created.ID,
		Name:   created.Name,
		Email:  created.Email,
	})

	return SignupResult{User: created, AccessToken: tok}, nil
}
