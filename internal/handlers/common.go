// Package handlers は HTTP リクエストを解釈してサービス層を呼び出す。
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_exam_review/internal/middleware"
	"go_5_exam_review/internal/model"
	"go_5_exam_review/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// requestLogger はリクエストスコープのロガー (req_id, user_id 付き) にハンドラ名を足して返す。
// ミドルウェアを通っていない場合はハンドラ生成時のロガーを使う。
func requestLogger(r *http.Request, fallback *slog.Logger, handler string) *slog.Logger {
	logger, ok := middleware.LoggerFromContext(r.Context())
	if !ok {
		logger = fallback
	}
	return logger.With(slog.String("handler", handler))
}

// currentUserID は認証ミドルウェアが設定したユーザーIDを取り出す
func currentUserID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return userID, true
}

// uuidParam は URL パラメータを UUID として解釈する
func uuidParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid UUID in URL", slog.String("param", name), slog.String("value", raw))
		appErr := model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}

// decodeAndValidate は JSON ボディを読み込んで validator で検証する
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return false
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}
