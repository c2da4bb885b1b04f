// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// User は学習者。ペース設定 (PacingMode) を持つ。
type User struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"unique;not null" json:"email"`
	PacingMode float64   `gorm:"not null;default:0" json:"pacing_mode"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// CreateUserRequest はユーザー作成APIのリクエストボディ
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// UserResponse はクライアントに返すユーザー情報
type UserResponse struct {
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	PacingMode float64   `json:"pacing_mode"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		UserID:     u.UserID,
		Name:       u.Name,
		Email:      u.Email,
		PacingMode: u.PacingMode,
		CreatedAt:  u.CreatedAt,
	}
}
