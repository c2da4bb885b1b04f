// Package srs は復習スケジューリング (SM-2 改良版) の純粋なロジックをまとめたパッケージです。
// DB や HTTP には依存しません。
package srs

import (
	"fmt"
	"math"
	"time"
)

// DateLayout は ISO 形式の暦日
const DateLayout = "2006-01-02"

// Clock は現在時刻の取得元
type Clock interface {
	Now() time.Time
}

// SystemClock は指定タイムゾーンの現在時刻を返す
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(c.Location)
}

// FixedClock は常に同じ時刻を返す (テスト・CLI 用)
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }

// Today は clock から見た「今日」を UTC 0 時の暦日として返す。
// 一括処理では一度だけ呼び出して全件に同じ値を使うこと。
func Today(c Clock) time.Time {
	return DateOf(c.Now())
}

// DateOf は t のローカル日付を UTC 0 時に正規化する
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func AddDays(d time.Time, days int) time.Time {
	return DateOf(d).AddDate(0, 0, days)
}

// DaysBetween は from から to までの日数 (to が前なら負)
func DaysBetween(from, to time.Time) int {
	return int(math.Round(DateOf(to).Sub(DateOf(from)).Hours() / 24))
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("srs: invalid date %q: %w", s, err)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return DateOf(t).Format(DateLayout)
}

// FormatDatePtr は nil を nil のまま返す
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}

func datePtr(t time.Time) *time.Time {
	d := DateOf(t)
	return &d
}
