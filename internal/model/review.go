// internal/model/review.go
package model

import (
	"sort"
	"time"

	"go_5_exam_review/internal/srs"

	"github.com/google/uuid"
)

// SubmitReviewRequest は評価送信リクエストのDTO (1=Again, 2=Hard, 3=Good, 4=Easy)
type SubmitReviewRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=4"`
}

// FeedbackEntryResponse は評価記録 1 件
type FeedbackEntryResponse struct {
	QuestionID       string           `json:"question_id"`
	Rating           int              `json:"rating"`
	Timestamp        time.Time        `json:"timestamp"`
	OriginalSrsState SrsStateResponse `json:"original_srs_state"`
}

// NewFeedbackLogResponse は問題 ID 順に並べた評価記録を返す
func NewFeedbackLogResponse(log srs.FeedbackLog) []FeedbackEntryResponse {
	out := make([]FeedbackEntryResponse, 0, len(log))
	for qid, e := range log {
		out = append(out, FeedbackEntryResponse{
			QuestionID:       qid,
			Rating:           int(e.Rating),
			Timestamp:        e.Timestamp,
			OriginalSrsState: NewSrsStateResponse(e.OriginalSrsState.State),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	return out
}

// SubmitReviewResponse は評価送信のレスポンス
type SubmitReviewResponse struct {
	UpdatedSrsState SrsStateResponse        `json:"updated_srs_state"`
	FeedbackLog     []FeedbackEntryResponse `json:"feedback_log"`
}

// UndoReviewResponse は評価取り消しのレスポンス
type UndoReviewResponse struct {
	Undone      bool                    `json:"undone"`
	FeedbackLog []FeedbackEntryResponse `json:"feedback_log"`
}

// DueQuestionResponse は今日復習すべき問題
type DueQuestionResponse struct {
	BookmarkID        uuid.UUID `json:"bookmark_id"`
	QuestionID        uuid.UUID `json:"question_id"`
	ViaCustomReminder bool      `json:"via_custom_reminder"`
}

// DueQuestionsResponse は復習対象の一覧。app.due_limit で切り詰めた場合は Truncated が true になる
// (全件数は /reviews/due/count で取得する)。
type DueQuestionsResponse struct {
	Date      string                 `json:"date"`
	Questions []*DueQuestionResponse `json:"questions"`
	Truncated bool                   `json:"truncated"`
}

type DueCountResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// UpdatePacingRequest はペース設定変更リクエスト (-1.0 〜 1.0)
type UpdatePacingRequest struct {
	PacingMode *float64 `json:"pacing_mode" validate:"required,min=-1,max=1"`
}

// UpdatePacingResponse の Today は再計算に使った「今日」
type UpdatePacingResponse struct {
	Today         string `json:"today"`
	UpdatedCount  int    `json:"updated_count"`
	NewlyDueCount int    `json:"newly_due_count"`
}

// DelayReviewsRequest は一括延期リクエスト (負数は前倒し)
type DelayReviewsRequest struct {
	DeltaDays int `json:"delta_days" validate:"required,min=-365,max=365"`
}

type DelayReviewsResponse struct {
	Today        string `json:"today"`
	UpdatedCount int    `json:"updated_count"`
	NowDueCount  int    `json:"now_due_count"`
}
