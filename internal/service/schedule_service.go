//go:generate mockery --name ScheduleService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_5_exam_review/internal/config"
	"go_5_exam_review/internal/metrics"
	"go_5_exam_review/internal/middleware"
	"go_5_exam_review/internal/model"
	"go_5_exam_review/internal/repository"
	"go_5_exam_review/internal/srs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// MaxDelayDays は一括延期で指定できる日数の上限 (絶対値)
const MaxDelayDays = 365

// ScheduleService はユーザーの全ブックマークに対する一括スケジュール変更を扱う
type ScheduleService interface {
	UpdatePacing(ctx context.Context, userID uuid.UUID, pacing float64) (*model.UpdatePacingResponse, error)
	DelayAllReviews(ctx context.Context, userID uuid.UUID, deltaDays int) (*model.DelayReviewsResponse, error)
}

type scheduleService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	bookmarkRepo repository.BookmarkRepository
	cfg          *config.Config
	clock        srs.Clock
}

func NewScheduleService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	bookmarkRepo repository.BookmarkRepository,
	cfg *config.Config,
	clock srs.Clock,
) ScheduleService {
	return &scheduleService{
		db:           db,
		userRepo:     userRepo,
		bookmarkRepo: bookmarkRepo,
		cfg:          cfg,
		clock:        clock,
	}
}

// bulkResult は一括処理 1 回分の集計
type bulkResult struct {
	total   int
	changed []*model.Bookmark
	due     int
}

// bookmarkChange は 1 件分の変更を b に適用し、変更の有無と新たに期日を迎えたかを返す
type bookmarkChange func(b *model.Bookmark) (changed, nowDue bool)

func (s *scheduleService) UpdatePacing(ctx context.Context, userID uuid.UUID, pacing float64) (*model.UpdatePacingResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "pacing_mode", pacing)
	start := time.Now()

	if err := srs.ValidatePacing(pacing); err != nil {
		logger.Warn("Invalid pacing mode")
		return nil, model.NewAppError("VALIDATION_ERROR", "ペース設定は-1.0〜1.0で指定してください。", "pacing_mode", errors.Join(model.ErrInvalidInput, err))
	}

	// 全件で同じ「今日」を使う
	today := srs.Today(s.clock)

	res, err := s.runBulk(ctx, metrics.OperationPacing, userID,
		func(tx *gorm.DB) error {
			if err := s.userRepo.UpdatePacing(ctx, tx, userID, pacing); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", err)
				}
				logger.Error("Failed to save pacing mode", "error", err)
				return persistenceError("ペース設定の保存に失敗しました。", err)
			}
			return nil
		},
		func(b *model.Bookmark) (bool, bool) {
			r := srs.Repace(b.State(), b.LastReviewedOn, pacing, today)
			if !r.Changed {
				return false, false
			}
			b.ApplyState(r.State)
			// リマインダー有効中は SRS の期日が判定に使われない
			return true, r.NewlyDue && !b.CustomReminderActive
		},
	)
	if err != nil {
		return nil, err
	}

	metrics.BulkBookmarksUpdated.WithLabelValues(metrics.OperationPacing).Add(float64(len(res.changed)))
	metrics.BulkNewlyDue.WithLabelValues(metrics.OperationPacing).Add(float64(res.due))
	metrics.BulkDuration.WithLabelValues(metrics.OperationPacing).Observe(time.Since(start).Seconds())
	logger.Info("Pacing recompute completed",
		"today", srs.FormatDate(today),
		"total", res.total,
		"updated", len(res.changed),
		"newly_due", res.due,
	)
	return &model.UpdatePacingResponse{
		Today:         srs.FormatDate(today),
		UpdatedCount:  len(res.changed),
		NewlyDueCount: res.due,
	}, nil
}

func (s *scheduleService) DelayAllReviews(ctx context.Context, userID uuid.UUID, deltaDays int) (*model.DelayReviewsResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "delta_days", deltaDays)
	start := time.Now()

	if deltaDays == 0 || deltaDays < -MaxDelayDays || deltaDays > MaxDelayDays {
		logger.Warn("Invalid delay days")
		return nil, model.NewAppError("VALIDATION_ERROR", "延期日数は-365〜365の0以外で指定してください。", "delta_days", model.ErrInvalidInput)
	}

	today := srs.Today(s.clock)

	res, err := s.runBulk(ctx, metrics.OperationDelay, userID, nil, func(b *model.Bookmark) (bool, bool) {
		return shiftBookmark(b, deltaDays, today)
	})
	if err != nil {
		return nil, err
	}

	metrics.BulkBookmarksUpdated.WithLabelValues(metrics.OperationDelay).Add(float64(len(res.changed)))
	metrics.BulkNewlyDue.WithLabelValues(metrics.OperationDelay).Add(float64(res.due))
	metrics.BulkDuration.WithLabelValues(metrics.OperationDelay).Observe(time.Since(start).Seconds())
	logger.Info("Delay completed",
		"today", srs.FormatDate(today),
		"total", res.total,
		"updated", len(res.changed),
		"now_due", res.due,
	)
	return &model.DelayReviewsResponse{
		Today:        srs.FormatDate(today),
		UpdatedCount: len(res.changed),
		NowDueCount:  res.due,
	}, nil
}

// runBulk は before とユーザーの全ブックマークの書き込みを 1 トランザクションで行う。
// 途中で失敗すれば何も残らないので、呼び出し側はそのまま再実行できる。
// 読み込み後に他の更新が入ったブックマークがあれば、一覧を読み直して最初からやり直す。
func (s *scheduleService) runBulk(ctx context.Context, operation string, userID uuid.UUID, before func(tx *gorm.DB) error, change bookmarkChange) (*bulkResult, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "operation", operation)

	var res *bulkResult
	onRetry := func(n uint, err error) {
		metrics.BulkConflicts.WithLabelValues(operation).Inc()
		logger.Warn("Bookmark changed during bulk operation, restarting", "attempt", n+1)
	}
	err := retryOnConflict(ctx, s.cfg.App.LedgerRetryAttempts, onRetry, func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if before != nil {
				if err := before(tx); err != nil {
					return err
				}
			}

			bookmarks, err := s.bookmarkRepo.ListByUser(ctx, tx, userID)
			if err != nil {
				logger.Error("Failed to list bookmarks for bulk operation", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "ブックマークの取得に失敗しました。", "", errors.Join(model.ErrPersistence, err))
			}

			r, err := s.planChanges(ctx, bookmarks, change)
			if err != nil {
				return err
			}
			if err := s.persistInBatches(ctx, tx, r.changed); err != nil {
				return err
			}
			res = r
			return nil
		})
	})
	if err != nil {
		return nil, finalizeBulkError(err)
	}
	return res, nil
}

// planChanges はバッチ単位に分けて change を並列に適用する。
// 各バッチは自分の要素にしか触れないので、結果は元の順序のまま集計できる。
func (s *scheduleService) planChanges(ctx context.Context, bookmarks []*model.Bookmark, change bookmarkChange) (*bulkResult, error) {
	chunks := chunkBookmarks(bookmarks, s.cfg.App.BulkBatchSize)
	changed := make([][]*model.Bookmark, len(chunks))
	due := make([]int, len(chunks))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.App.BulkParallelism)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			for _, b := range chunk {
				if err := gCtx.Err(); err != nil {
					return err
				}
				moved, nowDue := change(b)
				if !moved {
					continue
				}
				changed[i] = append(changed[i], b)
				if nowDue {
					due[i]++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &bulkResult{total: len(bookmarks), changed: make([]*model.Bookmark, 0, len(bookmarks))}
	for i := range chunks {
		res.changed = append(res.changed, changed[i]...)
		res.due += due[i]
	}
	return res, nil
}

// persistInBatches は同じトランザクション内で bulk_batch_size ごとに順に書き込む
func (s *scheduleService) persistInBatches(ctx context.Context, tx *gorm.DB, bookmarks []*model.Bookmark) error {
	logger := middleware.GetLogger(ctx)

	for n, batch := range chunkBookmarks(bookmarks, s.cfg.App.BulkBatchSize) {
		for _, b := range batch {
			if err := s.bookmarkRepo.UpdateSchedule(ctx, tx, b); err != nil {
				if errors.Is(err, model.ErrConflict) {
					return err
				}
				logger.Error("Failed to persist bulk schedule", "error", err, "batch", n, "bookmark_id", b.BookmarkID)
				return persistenceError("復習スケジュールの変更を保存できませんでした。", err)
			}
		}
		logger.Debug("Bulk batch written", "batch", n, "size", len(batch))
	}
	return nil
}

// finalizeBulkError はやり直しても解消しなかった競合を 409 の AppError にする
func finalizeBulkError(err error) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, model.ErrConflict) {
		return model.NewAppError("CONFLICT", "復習の記録と同時に更新されました。もう一度お試しください。", "", err)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", "一括更新に失敗しました。", "", errors.Join(model.ErrPersistence, err))
}

// shiftBookmark は次回復習日とリマインダー日を deltaDays ずらす。
// 次回日が無いブックマークはもともと期日なので次回日は動かさない。
// nowDue は変更前に期日前で、変更後に期日を迎えた場合のみ true。
func shiftBookmark(b *model.Bookmark, deltaDays int, today time.Time) (changed, nowDue bool) {
	wasDue := srs.IsDue(b.State(), b.Reminder(), today)

	if b.NextReviewDate != nil {
		shifted, _ := srs.ShiftDate(*b.NextReviewDate, deltaDays, today)
		if !shifted.Equal(srs.DateOf(*b.NextReviewDate)) {
			b.NextReviewDate = &shifted
			changed = true
		}
	}
	if b.CustomReminderDate != nil {
		shifted, _ := srs.ShiftDate(*b.CustomReminderDate, deltaDays, today)
		if !shifted.Equal(srs.DateOf(*b.CustomReminderDate)) {
			b.CustomReminderDate = &shifted
			changed = true
		}
	}

	return changed, changed && !wasDue && srs.IsDue(b.State(), b.Reminder(), today)
}

func chunkBookmarks(bookmarks []*model.Bookmark, size int) [][]*model.Bookmark {
	if size <= 0 {
		size = len(bookmarks)
	}
	if size == 0 {
		return nil
	}
	chunks := make([][]*model.Bookmark, 0, (len(bookmarks)+size-1)/size)
	for start := 0; start < len(bookmarks); start += size {
		end := min(start+size, len(bookmarks))
		chunks = append(chunks, bookmarks[start:end])
	}
	return chunks
}
