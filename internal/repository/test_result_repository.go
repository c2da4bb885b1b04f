//go:generate mockery --name TestResultRepository --output ./mocks --outpkg mocks --case=underscore
// internal/repository/test_result_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_exam_review/internal/middleware"
	"go_5_exam_review/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestResultRepository interface {
	Create(ctx context.Context, tx *gorm.DB, result *model.TestResult) error
	FindByID(ctx context.Context, db *gorm.DB, userID, resultID uuid.UUID) (*model.TestResult, error) // 所有者でスコープする
	// UpdateFeedbackLog は version が expectedVersion と一致する場合のみ書き込み、version を 1 進める。
	// 一致しなければ model.ErrConflict を返す。
	UpdateFeedbackLog(ctx context.Context, tx *gorm.DB, result *model.TestResult, expectedVersion int64) error
}

type gormTestResultRepository struct{}

func NewGormTestResultRepository() TestResultRepository {
	return &gormTestResultRepository{}
}

func (r *gormTestResultRepository) Create(ctx context.Context, tx *gorm.DB, result *model.TestResult) error {
	logger := middleware.GetLogger(ctx)

	if res := tx.WithContext(ctx).Create(result); res.Error != nil {
		logger.Error(
			"Error creating test result in DB",
			"error", res.Error,
			"user_id", result.UserID.String(),
		)
		return fmt.Errorf("gormTestResultRepository.Create: %w", res.Error)
	}
	return nil
}

func (r *gormTestResultRepository) FindByID(ctx context.Context, db *gorm.DB, userID, resultID uuid.UUID) (*model.TestResult, error) {
	logger := middleware.GetLogger(ctx)
	var result model.TestResult

	res := db.WithContext(ctx).
		Where("result_id = ? AND user_id = ?", resultID, userID).
		First(&result)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding test result in DB",
			"error", res.Error,
			"result_id", resultID.String(),
		)
		return nil, fmt.Errorf("gormTestResultRepository.FindByID: %w", res.Error)
	}
	return &result, nil
}

func (r *gormTestResultRepository) UpdateFeedbackLog(ctx context.Context, tx *gorm.DB, result *model.TestResult, expectedVersion int64) error {
	logger := middleware.GetLogger(ctx)

	next := &model.TestResult{
		FeedbackLog: result.FeedbackLog,
		Version:     expectedVersion + 1,
		UpdatedAt:   time.Now(),
	}
	res := tx.WithContext(ctx).
		Model(&model.TestResult{}).
		Where("result_id = ? AND user_id = ? AND version = ?", result.ResultID, result.UserID, expectedVersion).
		Select("FeedbackLog", "Version", "UpdatedAt").
		Updates(next)
	if res.Error != nil {
		logger.Error(
			"Error updating feedback log in DB",
			"error", res.Error,
			"result_id", result.ResultID.String(),
		)
		return fmt.Errorf("gormTestResultRepository.UpdateFeedbackLog: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		logger.Warn(
			"Feedback log version mismatch",
			"result_id", result.ResultID.String(),
			"expected_version", expectedVersion,
		)
		return model.ErrConflict
	}

	result.Version = next.Version
	result.UpdatedAt = next.UpdatedAt
	return nil
}
