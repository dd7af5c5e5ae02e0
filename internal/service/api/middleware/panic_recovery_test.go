package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/darkkaiser/deepfake-server/internal/pkg/errors"
	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Panic Recovery 미들웨어 테스트
// =============================================================================

func TestPanicRecovery(t *testing.T) {
	tests := []struct {
		name         string
		panicPayload any
		requestID    string
		wantMessage  string
	}{
		{
			name:         "성공: 문자열 패닉 복구",
			panicPayload: "치명적인 오류 발생",
			wantMessage:  "치명적인 오류 발생",
		},
		{
			name:         "성공: 에러 객체 패닉 복구",
			panicPayload: errors.New("데이터 처리 실패"),
			wantMessage:  "데이터 처리 실패",
		},
		{
			name:         "성공: 정수형 패닉 복구",
			panicPayload: 12345,
			wantMessage:  "12345",
		},
		{
			name:         "성공: Request ID 포함 패닉 로깅",
			panicPayload: "알 수 없는 오류",
			requestID:    "req-123456",
			wantMessage:  "알 수 없는 오류",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.requestID != "" {
				c.Response().Header().Set(echo.HeaderXRequestID, tt.requestID)
			}

			h := PanicRecovery()(func(c echo.Context) error {
				panic(tt.panicPayload)
			})

			var err error
			require.NotPanics(t, func() { err = h(c) })
			require.Error(t, err)

			// 복구된 패닉은 500으로 변환되는 Server 에러여야 합니다.
			assert.True(t, apperrors.Is(err, apperrors.Server))
			assert.Equal(t, http.StatusInternalServerError, apperrors.StatusCode(err))

			var appErr *apperrors.AppError
			require.True(t, apperrors.As(err, &appErr))
			assert.Equal(t, tt.wantMessage, appErr.Message())

			entry := findLogEntry(t, logEntries(t, buf), constants.ComponentMiddlewarePanicRecovery)
			assert.Equal(t, constants.LogMsgPanicRecovered, entry["msg"])
			assert.Equal(t, "error", entry["level"])
			assert.Contains(t, entry["error"], tt.wantMessage)
			assert.NotEmpty(t, entry["stack"], "스택 트레이스가 포함되어야 합니다")
			assert.Equal(t, tt.requestID, entry["request_id"])
		})
	}
}

func TestPanicRecovery_NoPanic(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handlerErr := echo.NewHTTPError(http.StatusTeapot)
	h := PanicRecovery()(func(c echo.Context) error {
		return handlerErr
	})

	assert.Same(t, handlerErr, h(c), "패닉이 없으면 핸들러의 에러를 그대로 반환해야 합니다")
}

func TestPanicRecovery_ErrAbortHandler(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	h := PanicRecovery()(func(c echo.Context) error {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() { _ = h(c) }, "http.ErrAbortHandler는 다시 패닉을 발생시켜야 합니다")
}

func TestPanicRecovery_Integration(t *testing.T) {
	captureLog(t)

	e := echo.New()
	e.Use(PanicRecovery())
	e.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()

	require.NotPanics(t, func() { e.ServeHTTP(rec, req) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
