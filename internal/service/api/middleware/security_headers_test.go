package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "upstream")
			return next(c)
		}
	})
	e.Use(SecurityHeaders())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError)
	})

	want := map[string]string{
		"X-Content-Type-Options":            "nosniff",
		"X-Frame-Options":                   "SAMEORIGIN",
		"X-XSS-Protection":                  "0",
		"Strict-Transport-Security":         "max-age=15552000; includeSubDomains",
		"Referrer-Policy":                   "no-referrer",
		"X-DNS-Prefetch-Control":            "off",
		"X-Download-Options":                "noopen",
		"X-Permitted-Cross-Domain-Policies": "none",
		"Cross-Origin-Opener-Policy":        "same-origin",
		"Cross-Origin-Resource-Policy":      "same-origin",
		"Origin-Agent-Cluster":              "?1",
	}

	for _, path := range []string{"/", "/fail", "/missing"} {
		t.Run("경로 "+path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			for k, v := range want {
				assert.Equal(t, v, rec.Header().Get(k), k)
			}
			assert.Empty(t, rec.Header().Get(echo.HeaderServer))
			assert.Empty(t, rec.Header().Get(echo.HeaderContentSecurityPolicy))
			assert.Empty(t, rec.Header().Get("Cross-Origin-Embedder-Policy"))
		})
	}
}
