package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
	applog "github.com/darkkaiser/deepfake-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// HTTPLogger HTTP 요청/응답을 구조화된 접근 로그로 기록하는 미들웨어를 반환합니다.
//
// 기록되는 정보:
//   - 요청: 메서드, 경로, IP, User-Agent
//   - 응답: 상태 코드, 응답 크기, Request ID
//   - 성능: 처리 시간 (마이크로초 및 사람이 읽기 쉬운 형식)
//
// 하위 핸들러의 에러는 이 미들웨어에서 전역 에러 핸들러로 전달(c.Error)하여
// 실제로 전송된 상태 코드가 로그에 기록되도록 합니다. 로깅 자체는 요청을 실패시키지 않습니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			completed := false

			// panic으로 인해 next가 반환되지 않은 경우에도 로그가 기록되도록 defer를 사용합니다.
			defer func() {
				writeAccessLog(c, time.Since(start), completed)
			}()

			if err := next(c); err != nil {
				c.Error(err)
			}
			completed = true

			return nil
		}
	}
}

func writeAccessLog(c echo.Context, latency time.Duration, completed bool) {
	req := c.Request()
	res := c.Response()

	path := req.URL.Path
	if path == "" {
		path = "/"
	}

	status := res.Status
	if !completed {
		// panic은 바깥쪽 PanicRecovery에서 500 응답으로 변환됩니다.
		status = http.StatusInternalServerError
	}

	applog.WithComponentAndFields(constants.ComponentMiddlewareAccessLog, applog.Fields{
		"method":        req.Method,
		"path":          path,
		"status":        status,
		"remote_ip":     c.RealIP(),
		"user_agent":    req.UserAgent(),
		"bytes_out":     strconv.FormatInt(res.Size, 10),
		"latency":       strconv.FormatInt(latency.Microseconds(), 10),
		"latency_human": latency.String(),
		"request_id":    res.Header().Get(echo.HeaderXRequestID),
		"panicked":      !completed,
	}).Info(constants.LogMsgHTTPRequest)
}
