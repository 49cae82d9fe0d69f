package dto

import (
	"time"

	"github.com/croftbar/authd/internal/domain"
)

// TokenResponse is the success body for signup and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// UserView is user data in API responses (never the password hash).
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
