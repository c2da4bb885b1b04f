package service

import (
	"context"
	"errors"
	"time"

	"go_5_exam_review/internal/model"

	"github.com/avast/retry-go"
)

// conflictRetryDelay は楽観ロック競合時の初回待ち時間
const conflictRetryDelay = 10 * time.Millisecond

// retryOnConflict は fn が素の model.ErrConflict を返す間だけ、最大 attempts 回まで fn を実行する。
// fn は毎回トランザクションを張り直し、最新の状態を読み直して再計算すること。
func retryOnConflict(ctx context.Context, attempts uint, onRetry func(n uint, err error), fn func() error) error {
	return retry.Do(
		fn,
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(conflictRetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRawConflict),
		retry.OnRetry(onRetry),
	)
}

// isRawConflict は AppError に変換される前の競合かどうか
func isRawConflict(err error) bool {
	var appErr *model.AppError
	return errors.Is(err, model.ErrConflict) && !errors.As(err, &appErr)
}
