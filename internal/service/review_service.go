//go:generate mockery --name ReviewService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go_5_exam_review/internal/config"
	"go_5_exam_review/internal/metrics"
	"go_5_exam_review/internal/middleware"
	"go_5_exam_review/internal/model"
	"go_5_exam_review/internal/repository"
	"go_5_exam_review/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService interface {
	SubmitReview(ctx context.Context, userID, resultID, questionID uuid.UUID, rating int) (*model.SubmitReviewResponse, error)
	UndoReview(ctx context.Context, userID, resultID, questionID uuid.UUID) (*model.UndoReviewResponse, error)
	GetFeedbackLog(ctx context.Context, userID, resultID uuid.UUID) ([]model.FeedbackEntryResponse, error)
	// GetDueQuestions は on の日付 (nil なら今日) に復習すべき問題を最大 app.due_limit 件返す
	GetDueQuestions(ctx context.Context, userID uuid.UUID, on *time.Time) (*model.DueQuestionsResponse, error)
	CountDue(ctx context.Context, userID uuid.UUID) (*model.DueCountResponse, error)
}

type reviewService struct {
	db           *gorm.DB
	bookmarkRepo repository.BookmarkRepository
	resultRepo   repository.TestResultRepository
	cfg          *config.Config
	clock        srs.Clock
	locks        *keyLock
}

func NewReviewService(
	db *gorm.DB,
	bookmarkRepo repository.BookmarkRepository,
	resultRepo repository.TestResultRepository,
	cfg *config.Config,
	clock srs.Clock,
) ReviewService {
	return &reviewService{
		db:           db,
		bookmarkRepo: bookmarkRepo,
		resultRepo:   resultRepo,
		cfg:          cfg,
		clock:        clock,
		locks:        newKeyLock(),
	}
}

// ledgerMutation は 1 回分の評価記録の読み取り→計算→書き込み
type ledgerMutation func(tx *gorm.DB, result *model.TestResult, bookmark *model.Bookmark) (write bool, err error)

// mutateLedger は (テスト結果, 問題) 単位で直列化し、楽観ロック競合時はスナップショットを読み直して再計算する。
// 評価記録とブックマークのどちらの version 不一致も競合として扱う。
func (s *reviewService) mutateLedger(ctx context.Context, userID, resultID, questionID uuid.UUID, fn ledgerMutation) error {
	logger := middleware.GetLogger(ctx)

	unlock := s.locks.Lock(resultID.String() + ":" + questionID.String())
	defer unlock()

	onRetry := func(n uint, err error) {
		metrics.LedgerConflicts.Inc()
		logger.Warn("Feedback ledger conflict, retrying", "attempt", n+1, "result_id", resultID, "question_id", questionID)
	}
	return retryOnConflict(ctx, s.cfg.App.LedgerRetryAttempts, onRetry, func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result, err := s.resultRepo.FindByID(ctx, tx, userID, resultID)
			if err != nil {
				return lookupError(err, "TEST_RESULT_NOT_FOUND", "テスト結果が見つかりません。", "テスト結果の取得に失敗しました。")
			}
			bookmark, err := s.bookmarkRepo.FindByQuestion(ctx, tx, userID, questionID)
			if err != nil {
				return lookupError(err, "BOOKMARK_NOT_FOUND", "ブックマークが見つかりません。", "ブックマークの取得に失敗しました。")
			}

			expectedVersion := result.Version
			write, err := fn(tx, result, bookmark)
			if err != nil || !write {
				return err
			}

			if err := s.bookmarkRepo.UpdateSchedule(ctx, tx, bookmark); err != nil {
				if errors.Is(err, model.ErrConflict) {
					return err
				}
				logger.Error("Failed to persist bookmark schedule", "error", err, "bookmark_id", bookmark.BookmarkID)
				return persistenceError("復習スケジュールの保存に失敗しました。", err)
			}
			if err := s.resultRepo.UpdateFeedbackLog(ctx, tx, result, expectedVersion); err != nil {
				if errors.Is(err, model.ErrConflict) {
					return err
				}
				logger.Error("Failed to persist feedback log", "error", err, "result_id", resultID)
				return persistenceError("評価記録の保存に失敗しました。", err)
			}
			return nil
		})
	})
}

func (s *reviewService) SubmitReview(ctx context.Context, userID, resultID, questionID uuid.UUID, rating int) (*model.SubmitReviewResponse, error) {
	logger := middleware.GetLogger(ctx).With("result_id", resultID, "question_id", questionID)

	r, err := srs.ParseRating(rating)
	if err != nil {
		logger.Warn("Invalid rating", "rating", rating)
		return nil, model.NewAppError("VALIDATION_ERROR", "評価は1〜4で指定してください。", "rating", errors.Join(model.ErrInvalidInput, err))
	}

	// 一括処理と同様に「今日」は一度だけ取得する
	now := s.clock.Now()
	today := srs.DateOf(now)

	var resp *model.SubmitReviewResponse
	err = s.mutateLedger(ctx, userID, resultID, questionID, func(tx *gorm.DB, result *model.TestResult, bookmark *model.Bookmark) (bool, error) {
		log, updated, err := result.FeedbackLog.Submit(questionID.String(), bookmark.Snapshot(), r, today, now)
		if err != nil {
			return false, model.NewAppError("VALIDATION_ERROR", "評価は1〜4で指定してください。", "rating", errors.Join(model.ErrInvalidInput, err))
		}
		bookmark.ApplySnapshot(updated)
		result.FeedbackLog = log

		resp = &model.SubmitReviewResponse{
			UpdatedSrsState: model.NewSrsStateResponse(updated.State),
			FeedbackLog:     model.NewFeedbackLogResponse(log),
		}
		return true, nil
	})
	if err != nil {
		return nil, finalizeLedgerError(err)
	}

	metrics.ReviewsSubmitted.WithLabelValues(strings.ToLower(r.String())).Inc()
	logger.Info("Review submitted",
		"rating", r.String(),
		"interval", resp.UpdatedSrsState.Interval,
		"ease_factor", resp.UpdatedSrsState.EaseFactor,
	)
	return resp, nil
}

func (s *reviewService) UndoReview(ctx context.Context, userID, resultID, questionID uuid.UUID) (*model.UndoReviewResponse, error) {
	logger := middleware.GetLogger(ctx).With("result_id", resultID, "question_id", questionID)

	var resp *model.UndoReviewResponse
	err := s.mutateLedger(ctx, userID, resultID, questionID, func(tx *gorm.DB, result *model.TestResult, bookmark *model.Bookmark) (bool, error) {
		log, original, ok := result.FeedbackLog.Undo(questionID.String())
		if !ok {
			resp = &model.UndoReviewResponse{Undone: false, FeedbackLog: model.NewFeedbackLogResponse(result.FeedbackLog)}
			return false, nil
		}
		bookmark.ApplySnapshot(original)
		result.FeedbackLog = log
		resp = &model.UndoReviewResponse{Undone: true, FeedbackLog: model.NewFeedbackLogResponse(log)}
		return true, nil
	})
	if err != nil {
		return nil, finalizeLedgerError(err)
	}

	if resp.Undone {
		metrics.ReviewsUndone.WithLabelValues("undone").Inc()
		logger.Info("Review undone")
	} else {
		metrics.ReviewsUndone.WithLabelValues("noop").Inc()
		logger.Debug("Nothing to undo")
	}
	return resp, nil
}

func (s *reviewService) GetFeedbackLog(ctx context.Context, userID, resultID uuid.UUID) ([]model.FeedbackEntryResponse, error) {
	result, err := s.resultRepo.FindByID(ctx, s.db, userID, resultID)
	if err != nil {
		return nil, lookupError(err, "TEST_RESULT_NOT_FOUND", "テスト結果が見つかりません。", "テスト結果の取得に失敗しました。")
	}
	return model.NewFeedbackLogResponse(result.FeedbackLog), nil
}

func (s *reviewService) GetDueQuestions(ctx context.Context, userID uuid.UUID, on *time.Time) (*model.DueQuestionsResponse, error) {
	logger := middleware.GetLogger(ctx)

	today := srs.Today(s.clock)
	if on != nil {
		today = srs.DateOf(*on)
	}

	// 1 件多く取得して、上限で切り詰めたかどうかを判定する
	limit := s.cfg.App.DueLimit
	fetch := limit
	if limit > 0 {
		fetch = limit + 1
	}
	bookmarks, err := s.bookmarkRepo.FindDueByUser(ctx, s.db, userID, today, fetch)
	if err != nil {
		logger.Error("Failed to find due bookmarks", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習対象の取得に失敗しました。", "", errors.Join(model.ErrPersistence, err))
	}
	truncated := limit > 0 && len(bookmarks) > limit
	if truncated {
		bookmarks = bookmarks[:limit]
	}

	questions := make([]*model.DueQuestionResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		reminder := b.Reminder()
		if !srs.IsDue(b.State(), reminder, today) {
			logger.Warn("Store returned bookmark that is not due, skipping", "bookmark_id", b.BookmarkID)
			continue
		}
		questions = append(questions, &model.DueQuestionResponse{
			BookmarkID:        b.BookmarkID,
			QuestionID:        b.QuestionID,
			ViaCustomReminder: srs.IsDueViaReminder(reminder, today),
		})
	}

	logger.Info("Retrieved due questions", "date", srs.FormatDate(today), "count", len(questions), "truncated", truncated)
	return &model.DueQuestionsResponse{
		Date:      srs.FormatDate(today),
		Questions: questions,
		Truncated: truncated,
	}, nil
}

func (s *reviewService) CountDue(ctx context.Context, userID uuid.UUID) (*model.DueCountResponse, error) {
	logger := middleware.GetLogger(ctx)
	today := srs.Today(s.clock)

	count, err := s.bookmarkRepo.CountDueByUser(ctx, s.db, userID, today)
	if err != nil {
		logger.Error("Failed to count due bookmarks", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習対象数の取得に失敗しました。", "", errors.Join(model.ErrPersistence, err))
	}
	return &model.DueCountResponse{Date: srs.FormatDate(today), Count: count}, nil
}

// lookupError はリポジトリの取得エラーを AppError に変換する
func lookupError(err error, notFoundCode, notFoundMsg, failMsg string) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError(notFoundCode, notFoundMsg, "", err)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", failMsg, "", errors.Join(model.ErrPersistence, err))
}

func persistenceError(msg string, err error) error {
	return model.NewAppError("PERSISTENCE_ERROR", msg, "", errors.Join(model.ErrPersistence, err))
}

// finalizeLedgerError はリトライし尽くした競合を 409 の AppError にする
func finalizeLedgerError(err error) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, model.ErrConflict) {
		return model.NewAppError("CONFLICT", "同じ問題への評価が同時に行われました。もう一度お試しください。", "", err)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", "評価の処理に失敗しました。", "", errors.Join(model.ErrPersistence, err))
}
