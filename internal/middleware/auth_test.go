package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_5_exam_review/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{SecretKey: testSecret}}
	userID := uuid.New()

	validToken := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	expiredToken := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKeyToken := signToken(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": userID.String()})
	badSubToken := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "not-a-uuid"})

	testCases := []struct {
		name         string
		header       string
		expectStatus int
	}{
		{name: "正常系: 有効なトークン", header: "Bearer " + validToken, expectStatus: http.StatusOK},
		{name: "異常系: ヘッダーなし", header: "", expectStatus: http.StatusForbidden},
		{name: "異常系: Bearer 形式でない", header: "Token " + validToken, expectStatus: http.StatusForbidden},
		{name: "異常系: 期限切れ", header: "Bearer " + expiredToken, expectStatus: http.StatusForbidden},
		{name: "異常系: 署名キー不一致", header: "Bearer " + wrongKeyToken, expectStatus: http.StatusForbidden},
		{name: "異常系: sub が UUID でない", header: "Bearer " + badSubToken, expectStatus: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotUserID uuid.UUID
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, err := GetUserIDFromContext(r.Context())
				require.NoError(t, err)
				gotUserID = id
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			JWTAuthMiddleware(cfg)(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectStatus, rr.Code)
			if tc.expectStatus == http.StatusOK {
				assert.Equal(t, userID, gotUserID)
			} else {
				assert.Contains(t, rr.Body.String(), `"error"`)
			}
		})
	}
}

func TestDevUserContextMiddleware(t *testing.T) {
	userID := uuid.New()
	testCases := []struct {
		name         string
		header       string
		expectStatus int
	}{
		{name: "正常系: X-User-ID あり", header: userID.String(), expectStatus: http.StatusOK},
		{name: "異常系: X-User-ID なし", header: "", expectStatus: http.StatusForbidden},
		{name: "異常系: 不正な形式", header: "abc", expectStatus: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, err := GetUserIDFromContext(r.Context())
				require.NoError(t, err)
				assert.Equal(t, userID, id)
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookmarks", nil)
			if tc.header != "" {
				req.Header.Set("X-User-ID", tc.header)
			}
			rr := httptest.NewRecorder()

			DevUserContextMiddleware(next).ServeHTTP(rr, req)
			assert.Equal(t, tc.expectStatus, rr.Code)
		})
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetUserIDFromContext(req.Context())
	assert.Error(t, err)
}

func TestIssueUserToken(t *testing.T) {
	userID := uuid.New()

	token, err := IssueUserToken(userID, "issue-secret", time.Hour)
	require.NoError(t, err)

	got, err := ParseUserToken(token, "issue-secret")
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = ParseUserToken(token, "other-secret")
	assert.Error(t, err, "別の鍵では検証できない")

	expired, err := IssueUserToken(userID, "issue-secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseUserToken(expired, "issue-secret")
	assert.Error(t, err, "期限切れ")
}
