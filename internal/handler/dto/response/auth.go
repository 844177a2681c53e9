package response

import (
	"slotswapper/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromUserView(v *queries.UserView) UserResponse {
	return UserResponse{
		ID:    v.ID,
		Name:  v.Name,
		Email: v.Email,
	}
}

func NewAuthResponse(token string, v *queries.UserView) *AuthResponse {
	return &AuthResponse{
		Token: token,
		User:  FromUserView(v),
	}
}
