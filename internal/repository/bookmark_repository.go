//go:generate mockery --name BookmarkRepository --output ./mocks --outpkg mocks --case=underscore
// internal/repository/bookmark_repository.go
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

type BookmarkRepository interface {
	Create(ctx context.Context, tx *gorm.DB, bookmark *model.Bookmark) error
	FindByQuestion(ctx context.Context, db *gorm.DB, userID, questionID uuid.UUID) (*model.Bookmark, error)
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Bookmark, error)
	FindDueByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, today time.Time, limit int) ([]*model.Bookmark, error)
	CountDueByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, today time.Time) (int64, error)
	// UpdateSchedule は SRS 状態とリマインダーを書き込む。読み込み時の version と一致する行だけを更新し、
	// 一致しなければ model.ErrConflict、行が無ければ model.ErrNotFound を返す。
	UpdateSchedule(ctx context.Context, tx *gorm.DB, bookmark *model.Bookmark) error
	Delete(ctx context.Context, tx *gorm.DB, userID, questionID uuid.UUID) error
}

type gormBookmarkRepository struct{}

func NewGormBookmarkRepository() BookmarkRepository {
	return &gormBookmarkRepository{}
}

// scheduleColumns は UpdateSchedule で書き込むカラム (ゼロ値も更新する)
var scheduleColumns = []string{
	"Repetitions",
	"EaseFactor",
	"Interval",
	"NextReviewDate",
	"LastReviewedOn",
	"CustomReminderActive",
	"CustomReminderDate",
	"Version",
	"UpdatedAt",
}

func (r *gormBookmarkRepository) Create(ctx context.Context, tx *gorm.DB, bookmark *model.Bookmark) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Create(bookmark)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn(
				"Duplicate bookmark",
				"user_id", bookmark.UserID.String(),
				"question_id", bookmark.QuestionID.String(),
			)
			return model.ErrConflict
		}
		logger.Error(
			"Error creating bookmark in DB",
			"error", result.Error,
			"user_id", bookmark.UserID.String(),
			"question_id", bookmark.QuestionID.String(),
		)
		return fmt.Errorf("gormBookmarkRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormBookmarkRepository) FindByQuestion(ctx context.Context, db *gorm.DB, userID, questionID uuid.UUID) (*model.Bookmark, error) {
	logger := middleware.GetLogger(ctx)
	var bookmark model.Bookmark

	result := db.WithContext(ctx).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		First(&bookmark)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding bookmark in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"question_id", questionID.String(),
		)
		return nil, fmt.Errorf("gormBookmarkRepository.FindByQuestion: %w", result.Error)
	}
	return &bookmark, nil
}

func (r *gormBookmarkRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Bookmark, error) {
	logger := middleware.GetLogger(ctx)
	var bookmarks []*model.Bookmark

	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, bookmark_id ASC").
		Find(&bookmarks)
	if result.Error != nil {
		logger.Error("Error listing bookmarks in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormBookmarkRepository.ListByUser: %w", result.Error)
	}
	return bookmarks, nil
}

// dueScope は今日が期日のブックマークに絞り込む。
// リマインダーが有効ならその日付のみ、無効なら SRS の次回日 (NULL は即時) で判定する。
func dueScope(userID uuid.UUID, today time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"user_id = ? AND ((custom_reminder_active = ? AND custom_reminder_date <= ?)"+
				" OR (custom_reminder_active = ? AND (next_review_date IS NULL OR next_review_date <= ?)))",
			userID, true, today, false, today,
		)
	}
}

func (r *gormBookmarkRepository) FindDueByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, today time.Time, limit int) ([]*model.Bookmark, error) {
	logger := middleware.GetLogger(ctx)
	var bookmarks []*model.Bookmark

	query := db.WithContext(ctx).
		Scopes(dueScope(userID, today)).
		Order("next_review_date ASC, created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if result := query.Find(&bookmarks); result.Error != nil {
		logger.Error("Error finding due bookmarks in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormBookmarkRepository.FindDueByUser: %w", result.Error)
	}
	return bookmarks, nil
}

func (r *gormBookmarkRepository) CountDueByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, today time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64

	result := db.WithContext(ctx).
		Model(&model.Bookmark{}).
		Scopes(dueScope(userID, today)).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting due bookmarks in DB", "error", result.Error, "user_id", userID.String())
		return 0, fmt.Errorf("gormBookmarkRepository.CountDueByUser: %w", result.Error)
	}
	return count, nil
}

func (r *gormBookmarkRepository) UpdateSchedule(ctx context.Context, tx *gorm.DB, bookmark *model.Bookmark) error {
	logger := middleware.GetLogger(ctx)

	expectedVersion := bookmark.Version
	next := *bookmark
	next.Version = expectedVersion + 1
	next.UpdatedAt = time.Now()

	result := tx.WithContext(ctx).
		Model(&model.Bookmark{}).
		Where("bookmark_id = ? AND user_id = ? AND version = ?", bookmark.BookmarkID, bookmark.UserID, expectedVersion).
		Select(scheduleColumns).
		Updates(&next)
	if result.Error != nil {
		logger.Error(
			"Error updating bookmark schedule in DB",
			"error", result.Error,
			"bookmark_id", bookmark.BookmarkID.String(),
		)
		return fmt.Errorf("gormBookmarkRepository.UpdateSchedule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.WithContext(ctx).
			Model(&model.Bookmark{}).
			Where("bookmark_id = ? AND user_id = ?", bookmark.BookmarkID, bookmark.UserID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("gormBookmarkRepository.UpdateSchedule: %w", err)
		}
		if count == 0 {
			return model.ErrNotFound
		}
		logger.Warn(
			"Bookmark version mismatch",
			"bookmark_id", bookmark.BookmarkID.String(),
			"expected_version", expectedVersion,
		)
		return model.ErrConflict
	}

	bookmark.Version = next.Version
	bookmark.UpdatedAt = next.UpdatedAt
	return nil
}

func (r *gormBookmarkRepository) Delete(ctx context.Context, tx *gorm.DB, userID, questionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Delete(&model.Bookmark{})
	if result.Error != nil {
		logger.Error(
			"Error deleting bookmark in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"question_id", questionID.String(),
		)
		return fmt.Errorf("gormBookmarkRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
