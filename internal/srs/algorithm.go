package srs

import (
	"math"
	"time"
)

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3

	lapseEasePenalty = 0.20
	// 浮動小数点の誤差で ceil が 1 日ずれないようにするための許容値
	ceilTolerance = 1e-9
)

// State はブックマーク 1 件あたりのスケジューリング状態
type State struct {
	Repetitions    int        `json:"repetitions"`
	EaseFactor     float64    `json:"ease_factor"`
	Interval       int        `json:"interval"`
	NextReviewDate *time.Time `json:"next_review_date"`
}

// NewState は未復習 (今日が期日) の初期状態を返す
func NewState() State {
	return State{EaseFactor: DefaultEaseFactor}
}

// sm2Quality は成功評価を SM-2 の 0-5 スケールに写像する。
// Good -> 3, Easy -> 5
func sm2Quality(r Rating) float64 {
	if r == Easy {
		return 5
	}
	return 3
}

// Update は評価 r を受けた後の状態を計算する。
// s は評価直前の状態でなければならない (セッション内の再評価はスナップショットから呼ぶ)。
// r の範囲チェックは呼び出し側の責務。
func Update(s State, r Rating, today time.Time) State {
	next := s
	if next.EaseFactor == 0 {
		next.EaseFactor = DefaultEaseFactor
	}

	if r.IsLapse() {
		next.Repetitions = 0
		next.EaseFactor = roundEase(math.Max(MinEaseFactor, next.EaseFactor-lapseEasePenalty))
		next.Interval = 1
	} else {
		next.Repetitions++
		q := sm2Quality(r)
		ef := next.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
		next.EaseFactor = roundEase(math.Max(MinEaseFactor, ef))

		switch next.Repetitions {
		case 1:
			next.Interval = 1
		case 2:
			next.Interval = 6
		default:
			base := next.Interval
			if base < 1 {
				base = 1
			}
			next.Interval = ceilDays(float64(base) * next.EaseFactor)
		}
	}

	if next.Interval < 1 {
		next.Interval = 1
	}
	next.NextReviewDate = datePtr(AddDays(today, next.Interval))
	return next
}

func roundEase(ef float64) float64 {
	return math.Round(ef*100) / 100
}

func ceilDays(x float64) int {
	return int(math.Ceil(x - ceilTolerance))
}
