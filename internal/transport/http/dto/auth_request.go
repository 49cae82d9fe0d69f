package dto

// SignupRequest is the /auth/signup payload. Email is matched against
// the stored value exactly as given (case preserved), so no
// normalization beyond trimming happens in the handler.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *SignupRequest) Validate() error { return validateStruct(r) }

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error { return validateStruct(r) }
