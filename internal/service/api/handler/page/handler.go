// Package page 브라우저에 제공되는 HTML 페이지 핸들러를 제공합니다.
package page

import (
	"net/http"

	"github.com/darkkaiser/deepfake-server/internal/config"
	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
	applog "github.com/darkkaiser/deepfake-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// indexTemplate 랜딩 페이지 템플릿 이름
const indexTemplate = "index.html"

// indexData 랜딩 페이지 템플릿에 전달되는 데이터
type indexData struct {
	ServerName  string
	Port        int
	Environment string
	Endpoints   []string
}

// Handler HTML 페이지 핸들러
type Handler struct {
	appConfig *config.AppConfig
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(appConfig *config.AppConfig) *Handler {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}

	return &Handler{appConfig: appConfig}
}

// IndexHandler 서버 상태와 API 엔드포인트 링크를 보여주는 랜딩 페이지를 반환합니다.
//
// 요청마다 포트와 환경 이름을 템플릿에 채워 새로 생성합니다.
// echo.Echo에 Renderer가 등록되어 있어야 합니다.
func (h *Handler) IndexHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  constants.PathRoot,
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgLandingPage)

	return c.Render(http.StatusOK, indexTemplate, indexData{
		ServerName:  constants.APIServerName,
		Port:        h.appConfig.Port,
		Environment: h.appConfig.EnvironmentName(),
		Endpoints:   []string{constants.PathHealth, constants.PathInfo},
	})
}
