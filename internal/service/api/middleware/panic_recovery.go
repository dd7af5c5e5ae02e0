package middleware

import (
	"net/http"
	"runtime"

	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
	applog "github.com/darkkaiser/deepfake-server/pkg/log"
	"github.com/labstack/echo/v4"
)

const (
	// stackBufferSize panic 발생 시 스택 트레이스를 저장할 버퍼 크기 (4KB)
	stackBufferSize = 4 << 10
)

// PanicRecovery panic을 복구하고 로깅하는 미들웨어를 반환합니다.
//
// 복구된 panic은 Server 타입의 에러로 변환되어 전역 에러 핸들러로 전달되므로,
// 클라이언트는 프로세스 중단 없이 500 에러 응답을 받습니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				// http.ErrAbortHandler는 net/http가 연결을 끊기 위해 의도적으로 사용하는 panic입니다.
				if r == http.ErrAbortHandler {
					panic(r)
				}

				err := NewErrPanicRecovered(r)

				stack := make([]byte, stackBufferSize)
				length := runtime.Stack(stack, false)

				applog.WithComponentAndFields(constants.ComponentMiddlewarePanicRecovery, applog.Fields{
					"error":      err,
					"stack":      string(stack[:length]),
					"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				}).Error(constants.LogMsgPanicRecovered)

				returnErr = err
			}()

			return next(c)
		}
	}
}
