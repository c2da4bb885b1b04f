package srs

import "time"

// CustomReminder が有効な間は SRS の期日より優先される
type CustomReminder struct {
	Active bool       `json:"active"`
	Date   *time.Time `json:"date"`
}

// IsDue は今日復習すべきかを判定する
func IsDue(s State, reminder CustomReminder, today time.Time) bool {
	today = DateOf(today)
	if reminder.Active {
		return reminder.Date != nil && !DateOf(*reminder.Date).After(today)
	}
	return s.NextReviewDate == nil || !DateOf(*s.NextReviewDate).After(today)
}

// IsDueViaReminder は期日判定がカスタムリマインダー経由かどうか
func IsDueViaReminder(reminder CustomReminder, today time.Time) bool {
	return reminder.Active && reminder.Date != nil && !DateOf(*reminder.Date).After(DateOf(today))
}

// ShiftDate は d を delta 日ずらす。結果が today 以前なら today に丸め、
// 元の日付が today より後だった場合のみ newlyDue を返す。
func ShiftDate(d time.Time, delta int, today time.Time) (shifted time.Time, newlyDue bool) {
	today = DateOf(today)
	shifted = AddDays(d, delta)
	if !shifted.After(today) {
		return today, DateOf(d).After(today)
	}
	return shifted, false
}
