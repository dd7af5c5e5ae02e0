package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// StaticFiles root 디렉토리의 파일을 URL 루트 경로에 매핑하여 제공하는 미들웨어를 반환합니다.
// (예: public/robots.txt → /robots.txt)
//
// GET/HEAD 요청만 처리하며, 일치하는 파일이 없거나 root 디렉토리가 존재하지 않으면
// 다음 핸들러로 요청을 넘깁니다. 디렉토리 목록은 노출하지 않습니다.
func StaticFiles(root string) echo.MiddlewareFunc {
	return middleware.StaticWithConfig(middleware.StaticConfig{
		Root: root,
		Skipper: func(c echo.Context) bool {
			m := c.Request().Method
			return m != http.MethodGet && m != http.MethodHead
		},
	})
}
