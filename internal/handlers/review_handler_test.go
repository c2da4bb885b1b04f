package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_5_exam_review/internal/handlers"
	"go_5_exam_review/internal/model"
	svc_mocks "go_5_exam_review/internal/service/mocks"
	"go_5_exam_review/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewHandler_PutReview(t *testing.T) {
	mockService := new(svc_mocks.ReviewService)
	handler := handlers.NewReviewHandler(mockService, discardLogger())

	userID := uuid.New()
	resultID := uuid.New()
	questionID := uuid.New()
	next := "2025-03-11"
	okResp := &model.SubmitReviewResponse{
		UpdatedSrsState: model.SrsStateResponse{Repetitions: 1, EaseFactor: 2.36, Interval: 1, NextReviewDate: &next},
		FeedbackLog:     []model.FeedbackEntryResponse{{QuestionID: questionID.String(), Rating: 3}},
	}

	tests := []struct {
		name           string
		withUser       bool
		resultID       string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedCode   string
		expectedBody   string
	}{
		{
			name:     "正常系: 評価を送信",
			withUser: true,
			resultID: resultID.String(),
			body:     model.SubmitReviewRequest{Rating: 3},
			setupMock: func() {
				mockService.On("SubmitReview", mock.Anything, userID, resultID, questionID, 3).Return(okResp, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"ease_factor":2.36`,
		},
		{
			name:           "異常系: 評価が0",
			withUser:       true,
			resultID:       resultID.String(),
			body:           `{"rating":0}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: 評価が5",
			withUser:       true,
			resultID:       resultID.String(),
			body:           `{"rating":5}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: 未知のフィールド",
			withUser:       true,
			resultID:       resultID.String(),
			body:           `{"rating":3,"quality":5}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "異常系: result_id が不正",
			withUser:       true,
			resultID:       "not-a-uuid",
			body:           model.SubmitReviewRequest{Rating: 3},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_URL_PARAM",
		},
		{
			name:           "異常系: 認証情報なし",
			withUser:       false,
			resultID:       resultID.String(),
			body:           model.SubmitReviewRequest{Rating: 3},
			setupMock:      func() {},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:     "異常系: ブックマークが存在しない",
			withUser: true,
			resultID: resultID.String(),
			body:     model.SubmitReviewRequest{Rating: 2},
			setupMock: func() {
				mockService.On("SubmitReview", mock.Anything, userID, resultID, questionID, 2).
					Return(nil, model.NewAppError("BOOKMARK_NOT_FOUND", "ブックマークが見つかりません。", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "BOOKMARK_NOT_FOUND",
		},
		{
			name:     "異常系: 同時更新の競合",
			withUser: true,
			resultID: resultID.String(),
			body:     model.SubmitReviewRequest{Rating: 4},
			setupMock: func() {
				mockService.On("SubmitReview", mock.Anything, userID, resultID, questionID, 4).
					Return(nil, model.NewAppError("CONFLICT", "競合しました。", "", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "CONFLICT",
		},
		{
			name:     "異常系: 保存失敗",
			withUser: true,
			resultID: resultID.String(),
			body:     model.SubmitReviewRequest{Rating: 1},
			setupMock: func() {
				mockService.On("SubmitReview", mock.Anything, userID, resultID, questionID, 1).
					Return(nil, model.NewAppError("PERSISTENCE_ERROR", "保存に失敗しました。", "", errors.Join(model.ErrPersistence, errors.New("db down")))).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "PERSISTENCE_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJSONRequest(t, http.MethodPut, "/api/v1/test-results/x/reviews/y", tt.body)
			if tt.withUser {
				req = withUser(req, userID)
			}
			req = withURLParams(req, map[string]string{"result_id": tt.resultID, "question_id": questionID.String()})

			rr := httptest.NewRecorder()
			handler.PutReview(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			assertErrorCode(t, rr, tt.expectedCode)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestReviewHandler_DeleteReview(t *testing.T) {
	mockService := new(svc_mocks.ReviewService)
	handler := handlers.NewReviewHandler(mockService, discardLogger())

	userID, resultID, questionID := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name           string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "正常系: 取り消し",
			setupMock: func() {
				mockService.On("UndoReview", mock.Anything, userID, resultID, questionID).
					Return(&model.UndoReviewResponse{Undone: true, FeedbackLog: []model.FeedbackEntryResponse{}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"undone":true`,
		},
		{
			name: "正常系: 取り消す評価なし",
			setupMock: func() {
				mockService.On("UndoReview", mock.Anything, userID, resultID, questionID).
					Return(&model.UndoReviewResponse{Undone: false, FeedbackLog: []model.FeedbackEntryResponse{}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"undone":false`,
		},
		{
			name: "異常系: テスト結果が存在しない",
			setupMock: func() {
				mockService.On("UndoReview", mock.Anything, userID, resultID, questionID).
					Return(nil, model.NewAppError("TEST_RESULT_NOT_FOUND", "テスト結果が見つかりません。", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "TEST_RESULT_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := withUser(newJSONRequest(t, http.MethodDelete, "/api/v1/test-results/x/reviews/y", nil), userID)
			req = withURLParams(req, map[string]string{"result_id": resultID.String(), "question_id": questionID.String()})

			rr := httptest.NewRecorder()
			handler.DeleteReview(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestReviewHandler_GetDueQuestions(t *testing.T) {
	mockService := new(svc_mocks.ReviewService)
	handler := handlers.NewReviewHandler(mockService, discardLogger())
	userID := uuid.New()

	due := &model.DueQuestionsResponse{
		Date: "2025-03-10",
		Questions: []*model.DueQuestionResponse{
			{BookmarkID: uuid.New(), QuestionID: uuid.New(), ViaCustomReminder: true},
		},
	}
	onDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		query          string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "正常系: 今日",
			query: "",
			setupMock: func() {
				mockService.On("GetDueQuestions", mock.Anything, userID, (*time.Time)(nil)).Return(due, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"via_custom_reminder":true`,
		},
		{
			name:  "正常系: 日付指定",
			query: "?date=2025-03-15",
			setupMock: func() {
				mockService.On("GetDueQuestions", mock.Anything, userID, mock.MatchedBy(func(on *time.Time) bool {
					return on != nil && srs.FormatDate(*on) == srs.FormatDate(onDate)
				})).Return(due, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"bookmark_id"`,
		},
		{
			name:  "正常系: 対象なしは空配列",
			query: "",
			setupMock: func() {
				mockService.On("GetDueQuestions", mock.Anything, userID, (*time.Time)(nil)).
					Return(&model.DueQuestionsResponse{Date: "2025-03-10"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"questions":[]`,
		},
		{
			name:  "正常系: 上限で切り詰め",
			query: "",
			setupMock: func() {
				mockService.On("GetDueQuestions", mock.Anything, userID, (*time.Time)(nil)).
					Return(&model.DueQuestionsResponse{Date: "2025-03-10", Questions: due.Questions, Truncated: true}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"truncated":true`,
		},
		{
			name:           "異常系: 日付の形式が不正",
			query:          "?date=15-03-2025",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_ERROR",
		},
		{
			name:  "異常系: サービスエラー",
			query: "",
			setupMock: func() {
				mockService.On("GetDueQuestions", mock.Anything, userID, (*time.Time)(nil)).
					Return(nil, errors.Join(model.ErrPersistence, errors.New("db down"))).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := withUser(newJSONRequest(t, http.MethodGet, "/api/v1/reviews/due"+tt.query, nil), userID)
			rr := httptest.NewRecorder()
			handler.GetDueQuestions(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestReviewHandler_GetDueCount(t *testing.T) {
	mockService := svc_mocks.NewReviewService(t)
	handler := handlers.NewReviewHandler(mockService, discardLogger())
	userID := uuid.New()

	mockService.On("CountDue", mock.Anything, userID).Return(&model.DueCountResponse{Date: "2025-03-10", Count: 4}, nil).Once()

	req := withUser(newJSONRequest(t, http.MethodGet, "/api/v1/reviews/due/count", nil), userID)
	rr := httptest.NewRecorder()
	handler.GetDueCount(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"date":"2025-03-10","count":4}`, rr.Body.String())
}
