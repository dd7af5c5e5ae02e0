package middleware

import (
	"fmt"

	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// additionalSecurityHeaders Echo의 Secure 미들웨어가 다루지 않는 보안 헤더 목록입니다.
var additionalSecurityHeaders = map[string]string{
	"X-DNS-Prefetch-Control":            "off",
	"X-Download-Options":                "noopen",
	"X-Permitted-Cross-Domain-Policies": "none",
	"Cross-Origin-Opener-Policy":        "same-origin",
	"Cross-Origin-Resource-Policy":      "same-origin",
	"Origin-Agent-Cluster":              "?1",
}

// SecurityHeaders 모든 응답에 고정된 보안 헤더를 추가하는 미들웨어를 반환합니다.
//
// 요청을 차단하지 않으며, 핸들러 실행 전에 헤더를 설정하므로 에러 응답과 404 응답에도 적용됩니다.
// Content-Security-Policy와 Cross-Origin-Embedder-Policy는 전송하지 않습니다.
func SecurityHeaders() echo.MiddlewareFunc {
	secure := middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "no-referrer",
	})

	// Echo의 Secure 미들웨어는 TLS 요청에만 HSTS를 설정하므로 직접 설정합니다.
	hsts := fmt.Sprintf("max-age=%d; includeSubDomains", constants.DefaultHSTSMaxAge)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		h := secure(next)

		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set(echo.HeaderStrictTransportSecurity, hsts)
			for k, v := range additionalSecurityHeaders {
				header.Set(k, v)
			}
			header.Del(echo.HeaderServer)

			return h(c)
		}
	}
}
