package api

import (
	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
	"github.com/darkkaiser/deepfake-server/internal/service/api/handler/page"
	"github.com/darkkaiser/deepfake-server/internal/service/api/handler/system"
	"github.com/darkkaiser/deepfake-server/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes API 서비스의 전역 라우트를 등록합니다.
//
// 이 함수는 다음과 같은 엔드포인트들을 설정합니다:
//   - 랜딩 페이지: 서버 상태와 API 링크를 보여주는 HTML (/)
//   - 시스템 엔드포인트: 헬스체크(/api/health) 및 서버 정보(/api/info)
//   - 그 외의 모든 경로와 메서드: 404 JSON 응답
//
// GET 라우트는 HEAD 요청에도 같은 핸들러로 응답합니다. 본문은 net/http 서버가 제거합니다.
func RegisterRoutes(e *echo.Echo, systemHandler *system.Handler, pageHandler *page.Handler) {
	if e.Renderer == nil {
		panic(constants.PanicMsgViewRendererRequired)
	}

	registerPageRoutes(e, pageHandler)
	registerSystemRoutes(e, systemHandler)
	registerNotFoundRoutes(e)
}

func registerPageRoutes(e *echo.Echo, h *page.Handler) {
	getAndHead(e, constants.PathRoot, h.IndexHandler)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	getAndHead(e, constants.PathHealth, h.HealthHandler)
	getAndHead(e, constants.PathInfo, h.InfoHandler)
}

func getAndHead(e *echo.Echo, path string, h echo.HandlerFunc) {
	e.GET(path, h)
	e.HEAD(path, h)
}

// registerNotFoundRoutes 매칭되는 라우트가 없는 요청을 처리하는 핸들러를 등록합니다.
//
// 등록된 경로에 다른 메서드로 요청한 경우에도 405가 아닌 404로 응답하도록
// 각 경로마다 Not-Found 핸들러를 함께 등록합니다.
func registerNotFoundRoutes(e *echo.Echo) {
	e.RouteNotFound("/*", notFoundHandler)
	for _, path := range []string{constants.PathRoot, constants.PathHealth, constants.PathInfo} {
		e.RouteNotFound(path, notFoundHandler)
	}
}

func notFoundHandler(c echo.Context) error {
	return httputil.NewRouteNotFoundError(c.Request().Method, c.Request().URL.EscapedPath())
}
