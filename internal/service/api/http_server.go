package api

import (
	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
	"github.com/darkkaiser/deepfake-server/internal/service/api/handler/page"
	"github.com/darkkaiser/deepfake-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/deepfake-server/internal/service/api/middleware"
	"github.com/labstack/echo/v4"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Development 개발 환경 여부
	// true인 경우 에러 응답에 스택 트레이스가 포함되고, Echo 디버그 모드가 활성화됩니다.
	Development bool

	// PublicDir 정적 파일 디렉토리
	PublicDir string
}

// NewHTTPServer 미들웨어 체인과 전역 에러 핸들러가 설정된 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 Interceptors가 반환하는 순서대로 적용됩니다.
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 RegisterRoutes로 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Development
	e.HideBanner = true
	e.HidePort = true

	// 보안 및 리소스 관리를 위한 HTTP 서버 타임아웃 설정
	e.Server.ReadTimeout = constants.DefaultReadTimeout             // 요청 본문 읽기 제한
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout // 요청 헤더 읽기 제한
	e.Server.WriteTimeout = constants.DefaultWriteTimeout           // 응답 쓰기 제한
	e.Server.IdleTimeout = constants.DefaultIdleTimeout             // Keep-Alive 연결 유휴 제한

	// Echo 프레임워크의 내부 로그를 애플리케이션 로거로 통합합니다.
	e.Logger = appmiddleware.NewLogger()

	// 전역 HTTP 에러 핸들러 설정
	e.HTTPErrorHandler = httputil.NewErrorHandler(cfg.Development)

	// 랜딩 페이지 렌더러
	e.Renderer = page.NewRenderer()

	for _, interceptor := range Interceptors(cfg.PublicDir) {
		e.Use(interceptor.Middleware)
	}

	return e
}
