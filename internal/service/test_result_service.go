//go:generate mockery --name TestResultService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"strings"

	"go_5_exam_review/internal/middleware"
	"go_5_exam_review/internal/model"
	"go_5_exam_review/internal/repository"
	"go_5_exam_review/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestResultService は復習セッション (テスト結果) を開く
type TestResultService interface {
	CreateTestResult(ctx context.Context, userID uuid.UUID, title string) (*model.TestResult, error)
}

type testResultService struct {
	db         *gorm.DB
	resultRepo repository.TestResultRepository
}

func NewTestResultService(db *gorm.DB, resultRepo repository.TestResultRepository) TestResultService {
	return &testResultService{db: db, resultRepo: resultRepo}
}

func (s *testResultService) CreateTestResult(ctx context.Context, userID uuid.UUID, title string) (*model.TestResult, error) {
	logger := middleware.GetLogger(ctx)

	result := &model.TestResult{
		ResultID:    uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(title),
		FeedbackLog: srs.FeedbackLog{},
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.resultRepo.Create(ctx, tx, result)
	})
	if err != nil {
		logger.Error("Failed to create test result", "error", err)
		return nil, persistenceError("テスト結果の作成に失敗しました。", err)
	}

	logger.Info("Test result created", "result_id", result.ResultID)
	return result, nil
}
