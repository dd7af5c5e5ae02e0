// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 서버 정보 등 인증이 필요 없는 시스템 수준의 API를 처리합니다.
package system

import (
	"net/http"
	"time"

	"github.com/darkkaiser/deepfake-server/internal/config"
	"github.com/darkkaiser/deepfake-server/internal/pkg/version"
	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
	"github.com/darkkaiser/deepfake-server/internal/service/api/httputil"
	"github.com/darkkaiser/deepfake-server/internal/service/api/model/system"
	applog "github.com/darkkaiser/deepfake-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 서버 정보)
type Handler struct {
	appConfig *config.AppConfig

	buildInfo version.Info

	// now 현재 시각을 반환합니다. 테스트에서 시각을 고정할 때 교체합니다.
	now func() time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(appConfig *config.AppConfig, buildInfo version.Info) *Handler {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}

	return &Handler{
		appConfig: appConfig,

		buildInfo: buildInfo,

		now: time.Now,
	}
}

// HealthHandler 서버 헬스체크
//
// 서버가 요청을 처리할 수 있는 상태라면 항상 200과 status "healthy"를 반환합니다.
// uptime은 프로세스 시작 이후 경과 시간(초)입니다.
func (h *Handler) HealthHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  constants.PathHealth,
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	now := h.now()

	uptime := now.Sub(h.appConfig.StartedAt).Seconds()
	if uptime < 0 {
		uptime = 0
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:      constants.HealthStatusHealthy,
		Timestamp:   httputil.Timestamp(now),
		Uptime:      uptime,
		Environment: h.appConfig.EnvironmentName(),
	})
}

// InfoHandler 서버 정보
//
// 서버 이름, API 버전, 리스닝 포트와 Go 런타임 버전, 운영체제를 반환합니다.
func (h *Handler) InfoHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  constants.PathInfo,
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgServerInfo)

	return c.JSON(http.StatusOK, system.InfoResponse{
		Server:         constants.APIServerName,
		Version:        constants.APIVersion,
		Port:           h.appConfig.Port,
		RuntimeVersion: h.buildInfo.GoVersion,
		Platform:       h.buildInfo.OS,
		Timestamp:      httputil.Timestamp(h.now()),
	})
}
