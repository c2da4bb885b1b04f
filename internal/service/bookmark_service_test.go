package service

import (
	"context"
	"testing"

	"go_5_exam_review/internal/model"
	"go_5_exam_review/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_bookmarkService_CreateAndDelete(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	f := newFixtures(t, db)
	svc := NewBookmarkService(db, f.bookmarks)
	userID := f.user()
	questionID := uuid.New()

	t.Run("正常系: 初期状態で作成される", func(t *testing.T) {
		b, err := svc.CreateBookmark(ctx, userID, questionID)
		require.NoError(t, err)
		assert.Equal(t, 0, b.Repetitions)
		assert.Equal(t, srs.DefaultEaseFactor, b.EaseFactor)
		assert.Equal(t, 0, b.Interval)
		assert.Nil(t, b.NextReviewDate)
		assert.False(t, b.CustomReminderActive)
	})

	t.Run("異常系: 同じ問題は二重登録できない", func(t *testing.T) {
		b, err := svc.CreateBookmark(ctx, userID, questionID)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, model.ErrConflict)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "BOOKMARK_EXISTS", appErr.Detail.Code)
	})

	t.Run("正常系: 一覧", func(t *testing.T) {
		list, err := svc.ListBookmarks(ctx, userID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, questionID, list[0].QuestionID)
	})

	t.Run("正常系: 削除", func(t *testing.T) {
		require.NoError(t, svc.DeleteBookmark(ctx, userID, questionID))
		list, err := svc.ListBookmarks(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("異常系: 存在しないブックマークの削除", func(t *testing.T) {
		err := svc.DeleteBookmark(ctx, userID, questionID)
		assert.ErrorIs(t, err, model.ErrNotFound)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "BOOKMARK_NOT_FOUND", appErr.Detail.Code)
	})
}

func Test_bookmarkService_CustomReminder(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	f := newFixtures(t, db)
	svc := NewBookmarkService(db, f.bookmarks)
	userID := f.user()
	b := f.bookmark(userID, func(b *model.Bookmark) {
		b.Repetitions, b.EaseFactor, b.Interval = 2, 2.36, 6
		b.NextReviewDate, b.LastReviewedOn = day(4), day(-2)
	})

	t.Run("正常系: リマインダー設定は SRS 状態を変えない", func(t *testing.T) {
		got, err := svc.SetCustomReminder(ctx, userID, b.QuestionID, *day(1))
		require.NoError(t, err)
		assert.True(t, got.CustomReminderActive)
		assert.Equal(t, srs.FormatDatePtr(day(1)), srs.FormatDatePtr(got.CustomReminderDate))

		saved := f.reload(b)
		assert.True(t, saved.CustomReminderActive)
		assert.Equal(t, 2, saved.Repetitions)
		assert.Equal(t, 2.36, saved.EaseFactor)
		assert.Equal(t, 6, saved.Interval)
		assert.Equal(t, srs.FormatDatePtr(day(4)), srs.FormatDatePtr(saved.NextReviewDate))
	})

	t.Run("正常系: リマインダー解除", func(t *testing.T) {
		got, err := svc.ClearCustomReminder(ctx, userID, b.QuestionID)
		require.NoError(t, err)
		assert.False(t, got.CustomReminderActive)
		assert.Nil(t, got.CustomReminderDate)

		saved := f.reload(b)
		assert.False(t, saved.CustomReminderActive)
		assert.Nil(t, saved.CustomReminderDate)
		assert.Equal(t, 6, saved.Interval)
	})

	t.Run("異常系: 他ユーザーのブックマーク", func(t *testing.T) {
		got, err := svc.SetCustomReminder(ctx, uuid.New(), b.QuestionID, *day(1))
		assert.Nil(t, got)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
