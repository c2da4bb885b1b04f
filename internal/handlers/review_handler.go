// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"go_5_exam_review/internal/model"
	"go_5_exam_review/internal/service"
	"go_5_exam_review/internal/srs"
	"go_5_exam_review/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{service: s, logger: logger}
}

// PutReview は復習セッション内の 1 問を評価する。同じ問題への再評価は前回の評価を置き換える。
func (h *ReviewHandler) PutReview(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PutReview")

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}
	resultID, ok := uuidParam(w, r, logger, "result_id")
	if !ok {
		return
	}
	questionID, ok := uuidParam(w, r, logger, "question_id")
	if !ok {
		return
	}

	var req model.SubmitReviewRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.SubmitReview(r.Context(), userID, resultID, questionID, req.Rating)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// DeleteReview は評価を取り消し、評価前の SRS 状態に戻す
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "DeleteReview")

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}
	resultID, ok := uuidParam(w, r, logger, "result_id")
	if !ok {
		return
	}
	questionID, ok := uuidParam(w, r, logger, "question_id")
	if !ok {
		return
	}

	resp, err := h.service.UndoReview(r.Context(), userID, resultID, questionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetDueQuestions は ?date=YYYY-MM-DD (省略時は今日) に復習すべき問題を返す。
// 一覧は app.due_limit 件までで、切り詰めた場合は truncated が true になる。
func (h *ReviewHandler) GetDueQuestions(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetDueQuestions")

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}

	var on *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		d, err := srs.ParseDate(raw)
		if err != nil {
			logger.Warn("Invalid date query", slog.String("date", raw))
			appErr := model.NewAppError("VALIDATION_ERROR", "日付はYYYY-MM-DD形式で指定してください。", "date", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		on = &d
	}

	resp, err := h.service.GetDueQuestions(r.Context(), userID, on)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if resp.Questions == nil {
		resp.Questions = []*model.DueQuestionResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *ReviewHandler) GetDueCount(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetDueCount")

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}

	count, err := h.service.CountDue(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, count, logger)
}
