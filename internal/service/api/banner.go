package api

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/darkkaiser/deepfake-server/internal/pkg/mark"
	"github.com/darkkaiser/deepfake-server/internal/pkg/netutil"
	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
)

// bannerStartedAtLayout 배너에 표시되는 서버 시작 시각의 형식 (예: 09:00:00 17/10/2026)
const bannerStartedAtLayout = "15:04:05 02/01/2006"

const bannerRuleWidth = 50

// bannerInfo 리스닝 시작 시 출력되는 진단 배너의 내용입니다.
type bannerInfo struct {
	ListenAddress string
	Port          int
	NetworkHost   string
	Environment   string
	StartedAt     time.Time
}

// newBannerInfo 네트워크 인터페이스를 조회하여 배너 정보를 생성합니다.
func newBannerInfo(port int, environment string, startedAt time.Time) bannerInfo {
	return bannerInfo{
		ListenAddress: fmt.Sprintf("%s:%d", constants.DefaultListenHost, port),
		Port:          port,
		NetworkHost:   netutil.ResolveLocalIPv4(),
		Environment:   environment,
		StartedAt:     startedAt,
	}
}

// writeBanner 운영자가 서버에 접속할 수 있는 주소와 실행 환경을 출력합니다.
func writeBanner(w io.Writer, info bannerInfo) error {
	rule := strings.Repeat("=", bannerRuleWidth)

	var sb strings.Builder
	sb.WriteString(rule + "\n")
	fmt.Fprintf(&sb, "%s 서버가 모든 인터페이스에서 실행 중입니다 (%s)\n", mark.Launch, info.ListenAddress)
	fmt.Fprintf(&sb, "%s Local: http://%s:%d\n", mark.Local, netutil.Localhost, info.Port)
	fmt.Fprintf(&sb, "%s Network: http://%s:%d\n", mark.Network, info.NetworkHost, info.Port)
	fmt.Fprintf(&sb, "%s API Health check: http://%s:%d%s\n", mark.HealthCheck, info.NetworkHost, info.Port, constants.PathHealth)
	fmt.Fprintf(&sb, "%s Environment: %s\n", mark.Environment, info.Environment)
	fmt.Fprintf(&sb, "%s Started at: %s\n", mark.Clock, info.StartedAt.Format(bannerStartedAtLayout))
	sb.WriteString(rule + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
