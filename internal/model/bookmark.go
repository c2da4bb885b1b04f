// internal/model/bookmark.go
package model

import (
	"time"

	"go_5_exam_review/internal/srs"

	"github.com/google/uuid"
)

// Bookmark はユーザーが復習対象にした問題と、その SRS スケジュール
type Bookmark struct {
	BookmarkID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_question,unique"`
	QuestionID           uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_question,unique"`
	Repetitions          int        `gorm:"not null;default:0"`
	EaseFactor           float64    `gorm:"not null;default:2.5"`
	Interval             int        `gorm:"column:interval_days;not null;default:0"`
	NextReviewDate       *time.Time `gorm:"type:date;index"`
	LastReviewedOn       *time.Time `gorm:"type:date"`
	CustomReminderActive bool       `gorm:"not null;default:false"`
	CustomReminderDate   *time.Time `gorm:"type:date"`
	Version              int64      `gorm:"not null;default:0"` // スケジュール更新ごとに 1 進む
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

// NewBookmark は初期状態 (今日が期日) のブックマークを作る
func NewBookmark(userID, questionID uuid.UUID) *Bookmark {
	b := &Bookmark{
		BookmarkID: uuid.New(),
		UserID:     userID,
		QuestionID: questionID,
	}
	b.ApplySnapshot(srs.Snapshot{State: srs.NewState()})
	return b
}

func (b *Bookmark) State() srs.State {
	return srs.State{
		Repetitions:    b.Repetitions,
		EaseFactor:     b.EaseFactor,
		Interval:       b.Interval,
		NextReviewDate: b.NextReviewDate,
	}
}

func (b *Bookmark) Snapshot() srs.Snapshot {
	return srs.Snapshot{State: b.State(), LastReviewedOn: b.LastReviewedOn}
}

func (b *Bookmark) Reminder() srs.CustomReminder {
	return srs.CustomReminder{Active: b.CustomReminderActive, Date: b.CustomReminderDate}
}

func (b *Bookmark) ApplyState(s srs.State) {
	b.Repetitions = s.Repetitions
	b.EaseFactor = s.EaseFactor
	b.Interval = s.Interval
	b.NextReviewDate = s.NextReviewDate
}

func (b *Bookmark) ApplySnapshot(s srs.Snapshot) {
	b.ApplyState(s.State)
	b.LastReviewedOn = s.LastReviewedOn
}

// CreateBookmarkRequest はブックマーク作成リクエストDTO
type CreateBookmarkRequest struct {
	QuestionID string `json:"question_id" validate:"required,uuid"`
}

// SetReminderRequest はカスタムリマインダー設定リクエストDTO (YYYY-MM-DD)
type SetReminderRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// SrsStateResponse は SRS 状態のレスポンスDTO
type SrsStateResponse struct {
	Repetitions    int     `json:"repetitions"`
	EaseFactor     float64 `json:"ease_factor"`
	Interval       int     `json:"interval"`
	NextReviewDate *string `json:"next_review_date"`
}

func NewSrsStateResponse(s srs.State) SrsStateResponse {
	return SrsStateResponse{
		Repetitions:    s.Repetitions,
		EaseFactor:     s.EaseFactor,
		Interval:       s.Interval,
		NextReviewDate: srs.FormatDatePtr(s.NextReviewDate),
	}
}

type CustomReminderResponse struct {
	Active bool    `json:"active"`
	Date   *string `json:"date"`
}

// BookmarkResponse はブックマークのレスポンスDTO
type BookmarkResponse struct {
	BookmarkID     uuid.UUID              `json:"bookmark_id"`
	QuestionID     uuid.UUID              `json:"question_id"`
	SrsState       SrsStateResponse       `json:"srs_state"`
	LastReviewedOn *string                `json:"last_reviewed_on"`
	CustomReminder CustomReminderResponse `json:"custom_reminder"`
	CreatedAt      time.Time              `json:"created_at"`
}

func NewBookmarkResponse(b *Bookmark) *BookmarkResponse {
	return &BookmarkResponse{
		BookmarkID:     b.BookmarkID,
		QuestionID:     b.QuestionID,
		SrsState:       NewSrsStateResponse(b.State()),
		LastReviewedOn: srs.FormatDatePtr(b.LastReviewedOn),
		CustomReminder: CustomReminderResponse{
			Active: b.CustomReminderActive,
			Date:   srs.FormatDatePtr(b.CustomReminderDate),
		},
		CreatedAt: b.CreatedAt,
	}
}
