package srs

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	MinPacing = -1.0
	MaxPacing = 1.0
)

var ErrInvalidPacing = errors.New("srs: pacing must be between -1 and 1")

func ValidatePacing(p float64) error {
	if math.IsNaN(p) || p < MinPacing || p > MaxPacing {
		return fmt.Errorf("%w: got %v", ErrInvalidPacing, p)
	}
	return nil
}

// ApplyPacing は基準間隔をペース設定で伸縮する。
// 負 = 集中 (圧縮)、正 = ゆったり (伸長)、0 = そのまま。
// 短い間隔ほど効果が強く、長い間隔では効果が弱まる帯域ごとの係数を使う。
func ApplyPacing(baseline int, pacing float64) int {
	if pacing == 0 || baseline <= 0 {
		return baseline
	}
	b := float64(baseline)

	if pacing < 0 {
		intensity := math.Min(-pacing, 1)
		var factor float64
		switch {
		case baseline <= 3:
			factor = 1 - intensity*0.30
		case baseline <= 14:
			factor = 1 - intensity*0.40
		case baseline <= 30:
			factor = 1 - intensity*0.50
		default:
			factor = 1 - intensity*(0.5+0.3*math.Exp(-b/50))
		}
		result := ceilDays(b * factor)
		if result < 1 {
			return 1
		}
		return result
	}

	relaxation := math.Min(pacing, 1)
	var factor float64
	switch {
	case baseline <= 3:
		factor = 1 + relaxation*0.50
	case baseline <= 14:
		factor = 1 + relaxation*0.60
	case baseline <= 30:
		factor = 1 + relaxation*0.50
	case baseline <= 60:
		factor = 1 + relaxation*(0.4+0.3*math.Exp(-b/40))
	default:
		factor = 1 + relaxation*0.30*math.Exp(-b/60)
	}
	return ceilDays(b * factor)
}

// CalculatePacedReviewDate は from + interval 日を返す。過去日になる場合は today に丸める。
func CalculatePacedReviewDate(interval int, from, today time.Time) time.Time {
	d := AddDays(from, interval)
	if d.Before(DateOf(today)) {
		return DateOf(today)
	}
	return d
}

// RepaceResult はペース変更による再計算の結果
type RepaceResult struct {
	State    State
	Changed  bool
	NewlyDue bool
}

// Repace は保存済みの interval をそのまま基準にしてペースを適用し直す。
// SM-2 の再実行ではないため、ペース変更を繰り返すと効果は累積する。
// lastReviewedOn は interval を決めた復習日 (無ければ next - interval から逆算)。
func Repace(s State, lastReviewedOn *time.Time, pacing float64, today time.Time) RepaceResult {
	if s.Interval <= 0 {
		return RepaceResult{State: s}
	}
	today = DateOf(today)

	reference := today
	switch {
	case lastReviewedOn != nil:
		reference = DateOf(*lastReviewedOn)
	case s.NextReviewDate != nil:
		reference = AddDays(*s.NextReviewDate, -s.Interval)
	}

	adjusted := ApplyPacing(s.Interval, pacing)
	daysSince := DaysBetween(reference, today)
	until := adjusted - daysSince
	if until < 0 {
		until = 0
	}
	next := CalculatePacedReviewDate(until, today, today)

	out := s
	out.Interval = adjusted
	out.NextReviewDate = &next

	wasDue := s.NextReviewDate == nil || !s.NextReviewDate.After(today)
	changed := adjusted != s.Interval || s.NextReviewDate == nil || !s.NextReviewDate.Equal(next)
	return RepaceResult{
		State:    out,
		Changed:  changed,
		NewlyDue: !wasDue && !next.After(today),
	}
}
