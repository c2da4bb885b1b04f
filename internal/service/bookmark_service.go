//go:generate mockery --name BookmarkService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_5_exam_review/internal/middleware"
	"go_5_exam_review/internal/model"
	"go_5_exam_review/internal/repository"
	"go_5_exam_review/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookmarkService interface {
	CreateBookmark(ctx context.Context, userID, questionID uuid.UUID) (*model.Bookmark, error)
	ListBookmarks(ctx context.Context, userID uuid.UUID) ([]*model.Bookmark, error)
	DeleteBookmark(ctx context.Context, userID, questionID uuid.UUID) error
	SetCustomReminder(ctx context.Context, userID, questionID uuid.UUID, date time.Time) (*model.Bookmark, error)
	ClearCustomReminder(ctx context.Context, userID, questionID uuid.UUID) (*model.Bookmark, error)
}

type bookmarkService struct {
	db           *gorm.DB
	bookmarkRepo repository.BookmarkRepository
}

func NewBookmarkService(db *gorm.DB, bookmarkRepo repository.BookmarkRepository) BookmarkService {
	return &bookmarkService{db: db, bookmarkRepo: bookmarkRepo}
}

// CreateBookmark は初期状態 (今日が期日) のブックマークを作る
func (s *bookmarkService) CreateBookmark(ctx context.Context, userID, questionID uuid.UUID) (*model.Bookmark, error) {
	logger := middleware.GetLogger(ctx).With("question_id", questionID)

	bookmark := model.NewBookmark(userID, questionID)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.bookmarkRepo.Create(ctx, tx, bookmark)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("BOOKMARK_EXISTS", "この問題はすでにブックマークされています。", "question_id", err)
		}
		logger.Error("Failed to create bookmark", "error", err)
		return nil, persistenceError("ブックマークの作成に失敗しました。", err)
	}

	logger.Info("Bookmark created", "bookmark_id", bookmark.BookmarkID)
	return bookmark, nil
}

func (s *bookmarkService) ListBookmarks(ctx context.Context, userID uuid.UUID) ([]*model.Bookmark, error) {
	bookmarks, err := s.bookmarkRepo.ListByUser(ctx, s.db, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list bookmarks", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ブックマークの取得に失敗しました。", "", errors.Join(model.ErrPersistence, err))
	}
	return bookmarks, nil
}

func (s *bookmarkService) DeleteBookmark(ctx context.Context, userID, questionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("question_id", questionID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.bookmarkRepo.Delete(ctx, tx, userID, questionID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("BOOKMARK_NOT_FOUND", "ブックマークが見つかりません。", "", err)
		}
		logger.Error("Failed to delete bookmark", "error", err)
		return persistenceError("ブックマークの削除に失敗しました。", err)
	}

	logger.Info("Bookmark deleted")
	return nil
}

// SetCustomReminder はリマインダーを有効にする。SRS の状態 (回数・EF・間隔) は変えない。
func (s *bookmarkService) SetCustomReminder(ctx context.Context, userID, questionID uuid.UUID, date time.Time) (*model.Bookmark, error) {
	day := srs.DateOf(date)
	return s.updateReminder(ctx, userID, questionID, func(b *model.Bookmark) {
		b.CustomReminderActive = true
		b.CustomReminderDate = &day
	})
}

func (s *bookmarkService) ClearCustomReminder(ctx context.Context, userID, questionID uuid.UUID) (*model.Bookmark, error) {
	return s.updateReminder(ctx, userID, questionID, func(b *model.Bookmark) {
		b.CustomReminderActive = false
		b.CustomReminderDate = nil
	})
}

func (s *bookmarkService) updateReminder(ctx context.Context, userID, questionID uuid.UUID, apply func(*model.Bookmark)) (*model.Bookmark, error) {
	logger := middleware.GetLogger(ctx).With("question_id", questionID)

	var bookmark *model.Bookmark
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := s.bookmarkRepo.FindByQuestion(ctx, tx, userID, questionID)
		if err != nil {
			return lookupError(err, "BOOKMARK_NOT_FOUND", "ブックマークが見つかりません。", "ブックマークの取得に失敗しました。")
		}
		apply(b)
		if err := s.bookmarkRepo.UpdateSchedule(ctx, tx, b); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("CONFLICT", "他の更新と競合しました。もう一度お試しください。", "", err)
			}
			logger.Error("Failed to update custom reminder", "error", err)
			return persistenceError("リマインダーの保存に失敗しました。", err)
		}
		bookmark = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Custom reminder updated",
		"active", bookmark.CustomReminderActive,
		"date", srs.FormatDatePtr(bookmark.CustomReminderDate),
	)
	return bookmark, nil
}
