// internal/handlers/user_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_exam_review/internal/model"
	"go_5_exam_review/internal/service"
	"go_5_exam_review/internal/webutil"
)

type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

func NewUserHandler(s service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{service: s, logger: logger}
}

// CreateUser は学習者を登録する (認証不要)
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "CreateUser")

	var req model.CreateUserRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		logger.Warn("Error creating user in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User created successfully", slog.String("user_id", user.UserID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewUserResponse(user), logger)
}

// GetMe はログイン中のユーザー情報 (ペース設定を含む) を返す
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetMe")

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewUserResponse(user), logger)
}
