package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// BodyLimit 요청 본문의 크기를 제한하는 미들웨어를 반환합니다. (예: "10M")
//
// Echo의 BodyLimit 미들웨어를 사용하며, 한도 초과 시 반환되는 echo.ErrStatusRequestEntityTooLarge를
// Client 타입의 413 에러로 변환합니다. Content-Length 헤더가 없는(chunked) 요청은
// 본문을 읽는 시점에 한도 초과가 감지됩니다.
func BodyLimit(limit string) echo.MiddlewareFunc {
	limiter := middleware.BodyLimit(limit)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		h := limiter(next)

		return func(c echo.Context) error {
			err := h(c)
			if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
				return NewErrBodyTooLarge()
			}
			return err
		}
	}
}
