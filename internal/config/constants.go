// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "exam-review"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort          = ":8080"
	DefaultLogLevel            = "info"
	DefaultTimezone            = "UTC"
	DefaultDueLimit            = 200
	DefaultBulkBatchSize       = 100
	DefaultBulkParallelism     = 4
	DefaultLedgerRetryAttempts = 3
)
