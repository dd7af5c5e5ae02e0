package middleware

import (
	"net/http"

	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CORS 모든 Origin의 교차 출처 요청을 허용하는 미들웨어를 반환합니다.
//
// Preflight(OPTIONS) 요청은 라우터의 핸들러까지 전달되지 않고 이 미들웨어에서 204로 응답합니다.
func CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: constants.CORSAllowOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders:     constants.CORSAllowHeaders,
		AllowCredentials: true,
	})
}
