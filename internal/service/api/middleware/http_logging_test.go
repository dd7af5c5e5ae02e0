package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// HTTP 접근 로그 미들웨어 테스트
// =============================================================================

func TestHTTPLogger(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		handler    echo.HandlerFunc
		wantStatus int
		wantBytes  string
	}{
		{
			name:   "성공: 정상 응답 기록",
			method: http.MethodGet,
			path:   "/api/health",
			handler: func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			},
			wantStatus: http.StatusOK,
			wantBytes:  "2",
		},
		{
			name:   "성공: 핸들러 에러는 전송된 상태 코드로 기록",
			method: http.MethodPost,
			path:   "/missing",
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusNotFound, "not found")
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "성공: 빈 응답 기록",
			method: http.MethodDelete,
			path:   "/resource",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			},
			wantStatus: http.StatusNoContent,
			wantBytes:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("User-Agent", "test-agent/1.0")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Response().Header().Set(echo.HeaderXRequestID, "req-1")

			err := HTTPLogger()(tt.handler)(c)

			// 에러는 전역 에러 핸들러로 전달되었으므로 호출자에게는 반환되지 않습니다.
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			entry := findLogEntry(t, logEntries(t, buf), constants.ComponentMiddlewareAccessLog)
			assert.Equal(t, constants.LogMsgHTTPRequest, entry["msg"])
			assert.Equal(t, "info", entry["level"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.path, entry["path"])
			assert.EqualValues(t, tt.wantStatus, entry["status"])
			assert.Equal(t, "test-agent/1.0", entry["user_agent"])
			assert.Equal(t, "req-1", entry["request_id"])
			assert.Equal(t, false, entry["panicked"])
			assert.NotEmpty(t, entry["remote_ip"])
			assert.NotEmpty(t, entry["latency"])
			assert.NotEmpty(t, entry["latency_human"])
			if tt.wantBytes != "" {
				assert.Equal(t, tt.wantBytes, entry["bytes_out"])
			}
		})
	}
}

func TestHTTPLogger_Panic(t *testing.T) {
	buf := captureLog(t)

	e := echo.New()
	e.Use(PanicRecovery(), HTTPLogger())
	e.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// 패닉으로 핸들러가 반환되지 않은 경우에도 접근 로그는 500으로 기록되어야 합니다.
	entry := findLogEntry(t, logEntries(t, buf), constants.ComponentMiddlewareAccessLog)
	assert.EqualValues(t, http.StatusInternalServerError, entry["status"])
	assert.Equal(t, true, entry["panicked"])
}
