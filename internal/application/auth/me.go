package auth

import (
	"context"

	"github.com/croftbar/authd/internal/domain"
)

// GetUserByID resolves a token subject to a live user. The route guard
// is the only caller; it maps user_not_found to unauthenticated.
func (s *Service) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
