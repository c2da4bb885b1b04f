package service

import (
	"context"
	"errors"
	"testing"

	"go_5_exam_review/internal/model"
	"go_5_exam_review/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_userService_CreateUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	f := newFixtures(t, db)
	svc := NewUserService(db, f.users)

	tests := []struct {
		name      string
		req       *model.CreateUserRequest
		wantEmail string
		wantErr   error
		wantCode  string
	}{
		{
			name:      "正常系: メールアドレスは小文字に正規化",
			req:       &model.CreateUserRequest{Name: " Asha ", Email: "Asha@Example.com "},
			wantEmail: "asha@example.com",
		},
		{
			name:     "異常系: 大文字違いのメールアドレスも重複",
			req:      &model.CreateUserRequest{Name: "Asha", Email: "ASHA@example.com"},
			wantErr:  model.ErrConflict,
			wantCode: "EMAIL_ALREADY_EXISTS",
		},
		{
			name:     "異常系: 名前が空白のみ",
			req:      &model.CreateUserRequest{Name: "   ", Email: "ravi@example.com"},
			wantErr:  model.ErrInvalidInput,
			wantCode: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.CreateUser(ctx, tt.req)
			if tt.wantErr != nil {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, tt.wantErr)
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, user.Email)
			assert.Equal(t, "Asha", user.Name)
			assert.Equal(t, 0.0, user.PacingMode)

			got, err := svc.GetUser(ctx, user.UserID)
			require.NoError(t, err)
			assert.Equal(t, user.Email, got.Email)
		})
	}
}

func Test_userService_GetUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	mockRepo := new(mocks.UserRepository)
	svc := NewUserService(db, mockRepo)
	userID := uuid.New()

	tests := []struct {
		name      string
		setupMock func()
		wantErr   error
		wantCode  string
	}{
		{
			name: "異常系: 存在しない",
			setupMock: func() {
				mockRepo.On("FindByID", mock.Anything, mock.Anything, userID).Return(nil, model.ErrNotFound).Once()
			},
			wantErr:  model.ErrNotFound,
			wantCode: "USER_NOT_FOUND",
		},
		{
			name: "異常系: DBエラー",
			setupMock: func() {
				mockRepo.On("FindByID", mock.Anything, mock.Anything, userID).Return(nil, errors.New("db error")).Once()
			},
			wantErr:  model.ErrPersistence,
			wantCode: "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.Mock = mock.Mock{}
			tt.setupMock()

			user, err := svc.GetUser(ctx, userID)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.wantErr)
			var appErr *model.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Detail.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func Test_testResultService_CreateTestResult(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	f := newFixtures(t, db)
	svc := NewTestResultService(db, f.results)
	userID := f.user()

	result, err := svc.CreateTestResult(ctx, userID, "  模試 第3回 ")
	require.NoError(t, err)
	assert.Equal(t, "模試 第3回", result.Title)
	assert.Empty(t, result.FeedbackLog)

	got, err := f.results.FindByID(ctx, db, userID, result.ResultID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Version)
	assert.Empty(t, got.FeedbackLog)
}
