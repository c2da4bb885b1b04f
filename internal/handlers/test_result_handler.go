// internal/handlers/test_result_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_exam_review/internal/model"
	"go_5_exam_review/internal/service"
	"go_5_exam_review/internal/webutil"
)

type TestResultHandler struct {
	results service.TestResultService
	reviews service.ReviewService
	logger  *slog.Logger
}

func NewTestResultHandler(results service.TestResultService, reviews service.ReviewService, logger *slog.Logger) *TestResultHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TestResultHandler{results: results, reviews: reviews, logger: logger}
}

// PostTestResult は復習セッションを開き、空の評価記録を持つテスト結果を作る
func (h *TestResultHandler) PostTestResult(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PostTestResult")

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.CreateTestResultRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	result, err := h.results.CreateTestResult(r.Context(), userID, req.Title)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Test result posted successfully", slog.String("result_id", result.ResultID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewTestResultResponse(result), logger)
}

func (h *TestResultHandler) GetFeedbackLog(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetFeedbackLog")

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}
	resultID, ok := uuidParam(w, r, logger, "result_id")
	if !ok {
		return
	}

	log, err := h.reviews.GetFeedbackLog(r.Context(), userID, resultID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if log == nil {
		log = []model.FeedbackEntryResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, log, logger)
}
