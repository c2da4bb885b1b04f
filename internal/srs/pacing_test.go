package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPacing(t *testing.T) {
	tests := []struct {
		name     string
		baseline int
		pacing   float64
		want     int
	}{
		{name: "標準: 変化なし", baseline: 10, pacing: 0, want: 10},
		{name: "未復習: 0 はそのまま", baseline: 0, pacing: -1, want: 0},
		{name: "集中: 短い間隔 (<=3)", baseline: 3, pacing: -1, want: 3},  // ceil(3*0.7)=ceil(2.1)
		{name: "集中: 1 日は 1 日のまま", baseline: 1, pacing: -1, want: 1}, // ceil(0.7)
		{name: "集中: 4-14 日", baseline: 10, pacing: -0.5, want: 8},     // 10*0.8
		{name: "集中: 15-30 日", baseline: 20, pacing: -1, want: 10},     // 20*0.5
		{name: "集中: 30 日超", baseline: 100, pacing: -1, want: 46},     // 100*(1-(0.5+0.3e^-2))=45.94
		{name: "ゆったり: 短い間隔", baseline: 2, pacing: 1, want: 3},        // 2*1.5
		{name: "ゆったり: 4-14 日", baseline: 10, pacing: 0.5, want: 13},  // 10*1.3
		{name: "ゆったり: 15-30 日", baseline: 20, pacing: 1, want: 30},    // 20*1.5
		{name: "ゆったり: 31-60 日", baseline: 40, pacing: 1, want: 61},    // 40*(1.4+0.3e^-1)=60.41
		{name: "ゆったり: 60 日超", baseline: 120, pacing: 1, want: 125},   // 120*(1+0.3e^-2)=124.87
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyPacing(tt.baseline, tt.pacing))
		})
	}
}

func TestApplyPacing_Identity(t *testing.T) {
	for n := 0; n <= 400; n++ {
		assert.Equal(t, n, ApplyPacing(n, 0))
	}
}

func TestApplyPacing_MonotonicInPacing(t *testing.T) {
	for n := 1; n <= 400; n++ {
		prev := ApplyPacing(n, -1)
		assert.GreaterOrEqual(t, prev, 1)
		for i := -99; i <= 100; i++ {
			p := float64(i) / 100
			got := ApplyPacing(n, p)
			require.GreaterOrEqualf(t, got, prev, "baseline=%d pacing=%.2f", n, p)
			prev = got
		}
	}
}

func TestValidatePacing(t *testing.T) {
	assert.NoError(t, ValidatePacing(-1))
	assert.NoError(t, ValidatePacing(0))
	assert.NoError(t, ValidatePacing(1))
	assert.ErrorIs(t, ValidatePacing(1.01), ErrInvalidPacing)
	assert.ErrorIs(t, ValidatePacing(-1.5), ErrInvalidPacing)
}

func TestCalculatePacedReviewDate(t *testing.T) {
	assert.Equal(t, AddDays(testToday, 4), CalculatePacedReviewDate(4, testToday, testToday))
	// 過去からの計算でも今日より前にはならない
	assert.Equal(t, testToday, CalculatePacedReviewDate(3, AddDays(testToday, -10), testToday))
	assert.Equal(t, AddDays(testToday, 2), CalculatePacedReviewDate(5, AddDays(testToday, -3), testToday))

	for from := -30; from <= 30; from++ {
		for interval := 0; interval <= 40; interval += 5 {
			got := CalculatePacedReviewDate(interval, AddDays(testToday, from), testToday)
			assert.False(t, got.Before(testToday))
		}
	}
}

func TestRepace(t *testing.T) {
	t.Run("未復習の状態は変更しない", func(t *testing.T) {
		got := Repace(NewState(), nil, -1, testToday)
		assert.False(t, got.Changed)
		assert.Nil(t, got.State.NextReviewDate)
	})

	t.Run("経過日数を差し引いて次回日を決める", func(t *testing.T) {
		reviewed := AddDays(testToday, -4)
		next := AddDays(reviewed, 10)
		s := State{Repetitions: 3, EaseFactor: 2.5, Interval: 10, NextReviewDate: &next}

		got := Repace(s, &reviewed, -0.5, testToday) // 10 -> 8, 8-4 = 4 日後

		assert.True(t, got.Changed)
		assert.False(t, got.NewlyDue)
		assert.Equal(t, 8, got.State.Interval)
		assert.Equal(t, AddDays(testToday, 4), *got.State.NextReviewDate)
		assert.Equal(t, 3, got.State.Repetitions)
		assert.Equal(t, 2.5, got.State.EaseFactor)
	})

	t.Run("圧縮で期日を過ぎたものは今日になり新たに期日扱い", func(t *testing.T) {
		reviewed := AddDays(testToday, -9)
		next := AddDays(reviewed, 10)
		s := State{Repetitions: 3, EaseFactor: 2.5, Interval: 10, NextReviewDate: &next}

		got := Repace(s, &reviewed, -1, testToday) // 10 -> 6, 6-9 < 0

		assert.Equal(t, 6, got.State.Interval)
		assert.Equal(t, testToday, *got.State.NextReviewDate)
		assert.True(t, got.NewlyDue)
	})

	t.Run("既に期日のものは新規カウントしない", func(t *testing.T) {
		next := AddDays(testToday, -2)
		s := State{Repetitions: 2, EaseFactor: 2.5, Interval: 6, NextReviewDate: &next}

		got := Repace(s, nil, -1, testToday)

		assert.Equal(t, testToday, *got.State.NextReviewDate)
		assert.False(t, got.NewlyDue)
	})

	t.Run("復習日が無い場合は next - interval を基準にする", func(t *testing.T) {
		next := AddDays(testToday, 6)
		s := State{Repetitions: 2, EaseFactor: 2.5, Interval: 6, NextReviewDate: &next}

		got := Repace(s, nil, 1, testToday) // 基準日 = 今日, 6 -> ceil(9.6) = 10

		assert.Equal(t, 10, got.State.Interval)
		assert.Equal(t, AddDays(testToday, 10), *got.State.NextReviewDate)
	})

	t.Run("ペース変更は累積する", func(t *testing.T) {
		reviewed := testToday
		next := AddDays(testToday, 10)
		s := State{Repetitions: 3, EaseFactor: 2.5, Interval: 10, NextReviewDate: &next}

		first := Repace(s, &reviewed, 0.5, testToday)
		second := Repace(first.State, &reviewed, 0.5, testToday)

		assert.Equal(t, 13, first.State.Interval)
		assert.Equal(t, 17, second.State.Interval) // ceil(13*1.3)=ceil(16.9)
	})
}
