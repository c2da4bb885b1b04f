package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go_5_exam_review/internal/config"
	"go_5_exam_review/internal/model"
	"go_5_exam_review/internal/repository"
	"go_5_exam_review/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testNow は Asia/Kolkata の 2025-03-10 朝
var testNow = time.Date(2025, 3, 10, 8, 15, 0, 0, time.FixedZone("IST", 5*3600+1800))

var testToday = srs.DateOf(testNow)

func day(offset int) *time.Time {
	d := srs.AddDays(testToday, offset)
	return &d
}

// setupTestDB はテストごとに独立したインメモリ SQLite を返す
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.AutoMigrate(db))
	return db
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.App.BulkBatchSize = 2
	cfg.App.BulkParallelism = 2
	return cfg
}

// fixtures は実リポジトリで DB にデータを用意するヘルパー
type fixtures struct {
	t         *testing.T
	db        *gorm.DB
	users     repository.UserRepository
	bookmarks repository.BookmarkRepository
	results   repository.TestResultRepository
}

func newFixtures(t *testing.T, db *gorm.DB) *fixtures {
	return &fixtures{
		t:         t,
		db:        db,
		users:     repository.NewGormUserRepository(),
		bookmarks: repository.NewGormBookmarkRepository(),
		results:   repository.NewGormTestResultRepository(),
	}
}

func (f *fixtures) user() uuid.UUID {
	u := &model.User{UserID: uuid.New(), Name: "learner", Email: uuid.NewString() + "@example.com"}
	require.NoError(f.t, f.users.Create(context.Background(), f.db, u))
	return u.UserID
}

func (f *fixtures) bookmark(userID uuid.UUID, mutate func(b *model.Bookmark)) *model.Bookmark {
	b := model.NewBookmark(userID, uuid.New())
	if mutate != nil {
		mutate(b)
	}
	require.NoError(f.t, f.bookmarks.Create(context.Background(), f.db, b))
	return b
}

func (f *fixtures) result(userID uuid.UUID) *model.TestResult {
	r := &model.TestResult{ResultID: uuid.New(), UserID: userID, FeedbackLog: srs.FeedbackLog{}}
	require.NoError(f.t, f.results.Create(context.Background(), f.db, r))
	return r
}

func (f *fixtures) reload(b *model.Bookmark) *model.Bookmark {
	got, err := f.bookmarks.FindByQuestion(context.Background(), f.db, b.UserID, b.QuestionID)
	require.NoError(f.t, err)
	return got
}
