package auth

import (
	"context"
	"time"

	"github.com/croftbar/authd/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
Only describes WHAT the auth service needs, not HOW it's stored.
The store owns the email uniqueness constraint; concurrent signups with
the same email race safely there.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

/*
PasswordHasher
--------------
Abstracts the argon2id hash. Hash must salt per call; Compare must be
constant time.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenIssuer
-----------
Issues and verifies bearer access tokens (JWT).
Used by service + auth middleware.
*/
type TokenClaims struct {
	Subject string // user ID
	Name    string
	Exp     time.Time
}

type TokenIssuer interface {
	Issue(subject string, name string) (string, error)
	Verify(token string) (TokenClaims, error)
}

/*
EventPublisher
--------------
Publishes auth events to the message broker. Optional: a nil publisher
disables it. Never on the request critical path.
*/
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, evt UserRegisteredEvent) error
}

type UserRegisteredEvent struct {
	UserID string
	Name   string
	Email  string
}
