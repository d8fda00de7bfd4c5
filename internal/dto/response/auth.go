package response

import (
	"time"

	"vertex-leisure/internal/data/entity"
)

type AuthResponse struct {
	UserID     string          `json:"user_id"`
	Token      string          `json:"token"`
	ExpiresAt  time.Time       `json:"expires_at"`
	Email      string          `json:"email"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Role       entity.UserRole `json:"role"`
	IsMember   bool            `json:"is_member"`
	IsVerified bool            `json:"is_verified"`
}

type UserResponse struct {
	ID         string          `json:"id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Email      string          `json:"email"`
	BirthDate  string          `json:"birth_date"`
	Role       entity.UserRole `json:"role"`
	IsMember   bool            `json:"is_member"`
	IsVerified bool            `json:"is_verified"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		BirthDate:  user.BirthDate.Format("2006-01-02"),
		Role:       user.Role,
		IsMember:   user.IsMember,
		IsVerified: user.EmailConfirmed,
		CreatedAt:  user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		UserID:     user.ID.String(),
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Role:       user.Role,
		IsMember:   user.IsMember,
		IsVerified: user.EmailConfirmed,
	}

	if session != nil {
		resp.Token = session.Token
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
