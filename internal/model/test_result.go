// internal/model/test_result.go
package model

import (
	"time"

	"go_5_exam_review/internal/srs"

	"github.com/google/uuid"
)

// TestResult は 1 回の練習/模試の結果。復習セッションの評価記録 (FeedbackLog) を保持する。
// Version は FeedbackLog の楽観ロック用。
type TestResult struct {
	ResultID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title       string          `gorm:"not null;default:''"`
	FeedbackLog srs.FeedbackLog `gorm:"type:jsonb;serializer:json"`
	Version     int64           `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TestResult) TableName() string {
	return "test_results"
}

// CreateTestResultRequest はテスト結果 (復習セッション) 作成リクエストDTO
type CreateTestResultRequest struct {
	Title string `json:"title" validate:"max=200"`
}

type TestResultResponse struct {
	ResultID  uuid.UUID `json:"result_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func NewTestResultResponse(r *TestResult) *TestResultResponse {
	return &TestResultResponse{ResultID: r.ResultID, Title: r.Title, CreatedAt: r.CreatedAt}
}
