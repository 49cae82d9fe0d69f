package auth

import (
	"context"

	"github.com/croftbar/authd/internal/domain"
	"github.com/croftbar/authd/internal/logger"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	issuer TokenIssuer
	pub    EventPublisher
}

func NewService(users UserRepo, hasher PasswordHasher, issuer TokenIssuer, pub EventPublisher) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		issuer: issuer,
		pub:    pub,
	}
}

// SignupResult carries the created user and its first access token.
type SignupResult struct {
	User        domain.User
	AccessToken string
}

type LoginResult struct {
	User        domain.User
	AccessToken string
}

// publishRegistered emits a user.registered event best-effort. Signup
// never fails because the broker is down.
func (s *Service) publishRegistered(ctx context.Context, evt UserRegisteredEvent) {
	if s.pub == nil {
		return
	}
	if err := s.pub.PublishUserRegistered(ctx, evt); err != nil {
		logger.Logger.Error().
			Err(err).
			Str("user_id", evt.UserID).
			Msg("failed to publish user.registered")
	}
}
