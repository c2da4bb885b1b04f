package srs

import (
	"fmt"
	"time"
)

// Snapshot は評価前に保存する状態。取り消し時にそのまま書き戻す。
type Snapshot struct {
	State
	LastReviewedOn *time.Time `json:"last_reviewed_on,omitempty"`
}

// FeedbackEntry は (テスト結果, 問題) ごとの評価記録
type FeedbackEntry struct {
	Rating           Rating    `json:"rating"`
	Timestamp        time.Time `json:"timestamp"`
	OriginalSrsState Snapshot  `json:"original_srs_state"`
}

// FeedbackLog は 1 回の復習セッション (テスト結果) 内の評価記録。キーは問題 ID。
type FeedbackLog map[string]FeedbackEntry

func (l FeedbackLog) Clone() FeedbackLog {
	out := make(FeedbackLog, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// Submit は評価を記録し、新しい状態を返す。
// 最初の評価時のみ current をスナップショットとして保存し、以降の再評価は
// 常にそのスナップショットから計算するので、何度評価し直しても遷移は 1 回分に留まる。
// l 自体は変更せず、更新後のログを返す。
func (l FeedbackLog) Submit(questionID string, current Snapshot, r Rating, today, at time.Time) (FeedbackLog, Snapshot, error) {
	if !r.Valid() {
		return l, Snapshot{}, fmt.Errorf("%w: got %d", ErrInvalidRating, int(r))
	}

	original := current
	if entry, ok := l[questionID]; ok {
		original = entry.OriginalSrsState
	}

	updated := Snapshot{
		State:          Update(original.State, r, today),
		LastReviewedOn: datePtr(today),
	}

	next := l.Clone()
	next[questionID] = FeedbackEntry{
		Rating:           r,
		Timestamp:        at,
		OriginalSrsState: original,
	}
	return next, updated, nil
}

// Undo はエントリを削除し、書き戻すべきスナップショットを返す。
// エントリが無い場合は ok=false (何もしない)。
func (l FeedbackLog) Undo(questionID string) (FeedbackLog, Snapshot, bool) {
	entry, ok := l[questionID]
	if !ok {
		return l, Snapshot{}, false
	}
	next := l.Clone()
	delete(next, questionID)
	return next, entry.OriginalSrsState, true
}
