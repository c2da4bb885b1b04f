//go:generate mockery --name UserService --output ./mocks --outpkg mocks --case=underscore
// internal/service/user_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"go_5_exam_review/internal/middleware"
	"go_5_exam_review/internal/model"
	"go_5_exam_review/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type userService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
}

func NewUserService(db *gorm.DB, repo repository.UserRepository) UserService {
	return &userService{db: db, userRepo: repo}
}

func (s *userService) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	user := &model.User{
		UserID: uuid.New(),
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.ToLower(strings.TrimSpace(req.Email)),
	}
	if user.Name == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "名前は必須項目です。", "name", model.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.userRepo.Create(ctx, tx, user)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("EMAIL_ALREADY_EXISTS", "このメールアドレスは既に使用されています。", "email", err)
		}
		logger.Error("Failed to create user", "error", err)
		return nil, persistenceError("ユーザーの作成に失敗しました。", err)
	}

	logger.Info("User created", "user_id", user.UserID)
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, lookupError(err, "USER_NOT_FOUND", "ユーザーが見つかりません。", "ユーザーの取得に失敗しました。")
	}
	return user, nil
}
