// internal/handlers/bookmark_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_exam_review/internal/model"
	"go_5_exam_review/internal/service"
	"go_5_exam_review/internal/srs"
	"go_5_exam_review/internal/webutil"

	"github.com/google/uuid"
)

type BookmarkHandler struct {
	service service.BookmarkService
	logger  *slog.Logger
}

func NewBookmarkHandler(s service.BookmarkService, logger *slog.Logger) *BookmarkHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookmarkHandler{service: s, logger: logger}
}

// PostBookmark は問題をブックマークし、今日から復習対象にする
func (h *BookmarkHandler) PostBookmark(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PostBookmark")

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.CreateBookmarkRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	// validator で uuid 形式は確認済み
	questionID := uuid.MustParse(req.QuestionID)

	bookmark, err := h.service.CreateBookmark(r.Context(), userID, questionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Bookmark posted successfully", slog.String("bookmark_id", bookmark.BookmarkID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewBookmarkResponse(bookmark), logger)
}

func (h *BookmarkHandler) GetBookmarks(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetBookmarks")

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}

	bookmarks, err := h.service.ListBookmarks(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	responses := make([]*model.BookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		responses = append(responses, model.NewBookmarkResponse(b))
	}
	logger.Info("Bookmarks listed successfully", slog.Int("count", len(responses)))
	webutil.RespondWithJSON(w, http.StatusOK, responses, logger)
}

func (h *BookmarkHandler) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "DeleteBookmark")

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}
	questionID, ok := uuidParam(w, r, logger, "question_id")
	if !ok {
		return
	}

	if err := h.service.DeleteBookmark(r.Context(), userID, questionID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Bookmark deleted successfully", slog.String("question_id", questionID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// PutReminder はカスタムリマインダーを設定する。有効な間は SRS の期日より優先される。
func (h *BookmarkHandler) PutReminder(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PutReminder")

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}
	questionID, ok := uuidParam(w, r, logger, "question_id")
	if !ok {
		return
	}

	var req model.SetReminderRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	date, err := srs.ParseDate(req.Date)
	if err != nil {
		appErr := model.NewAppError("VALIDATION_ERROR", "日付はYYYY-MM-DD形式で指定してください。", "date", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	bookmark, err := h.service.SetCustomReminder(r.Context(), userID, questionID, date)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewBookmarkResponse(bookmark), logger)
}

func (h *BookmarkHandler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "DeleteReminder")

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}
	questionID, ok := uuidParam(w, r, logger, "question_id")
	if !ok {
		return
	}

	bookmark, err := h.service.ClearCustomReminder(r.Context(), userID, questionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewBookmarkResponse(bookmark), logger)
}
