// internal/handlers/schedule_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_exam_review/internal/model"
	"go_5_exam_review/internal/service"
	"go_5_exam_review/internal/webutil"
)

type ScheduleHandler struct {
	service service.ScheduleService
	logger  *slog.Logger
}

func NewScheduleHandler(s service.ScheduleService, logger *slog.Logger) *ScheduleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScheduleHandler{service: s, logger: logger}
}

// PutPacing はペース設定を保存し、全ブックマークの次回復習日を再計算する
func (h *ScheduleHandler) PutPacing(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PutPacing")

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.UpdatePacingRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.UpdatePacing(r.Context(), userID, *req.PacingMode)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// PostDelay は全ブックマークの復習日をまとめてずらす
func (h *ScheduleHandler) PostDelay(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PostDelay")

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.DelayReviewsRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.DelayAllReviews(r.Context(), userID, req.DeltaDays)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
