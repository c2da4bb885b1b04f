// Package metrics は復習スケジューリングの Prometheus メトリクスを定義する。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "exam_review"

var (
	// ReviewsSubmitted は評価送信の件数。rating: again / hard / good / easy
	ReviewsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "srs",
		Name:      "reviews_submitted_total",
		Help:      "Total review ratings applied to bookmarks",
	}, []string{"rating"})

	// ReviewsUndone は評価取り消しの件数。result: undone / noop
	ReviewsUndone = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "srs",
		Name:      "reviews_undone_total",
		Help:      "Total review undo requests",
	}, []string{"result"})

	// LedgerConflicts は評価記録の楽観ロック競合でリトライした回数
	LedgerConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "srs",
		Name:      "ledger_conflicts_total",
		Help:      "Optimistic version conflicts on feedback ledger writes",
	})

	// BulkBookmarksUpdated は一括処理で更新したブックマーク数。operation: pacing / delay
	BulkBookmarksUpdated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "schedule",
		Name:      "bookmarks_updated_total",
		Help:      "Bookmarks rewritten by bulk schedule operations",
	}, []string{"operation"})

	// BulkNewlyDue は一括処理で新たに期日を迎えたブックマーク数
	BulkNewlyDue = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "schedule",
		Name:      "bookmarks_newly_due_total",
		Help:      "Bookmarks that became due because of a bulk schedule operation",
	}, []string{"operation"})

	// BulkConflicts は一括処理中に他の更新と競合してやり直した回数
	BulkConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "schedule",
		Name:      "bulk_conflicts_total",
		Help:      "Bulk schedule operations restarted after a bookmark version conflict",
	}, []string{"operation"})

	// BulkDuration は一括処理の所要時間
	BulkDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "schedule",
		Name:      "bulk_duration_seconds",
		Help:      "Duration of bulk schedule operations",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

const (
	OperationPacing = "pacing"
	OperationDelay  = "delay"
)
