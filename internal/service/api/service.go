package api

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/darkkaiser/deepfake-server/internal/config"
	"github.com/darkkaiser/deepfake-server/internal/pkg/version"
	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
	"github.com/darkkaiser/deepfake-server/internal/service/api/handler/page"
	"github.com/darkkaiser/deepfake-server/internal/service/api/handler/system"
	applog "github.com/darkkaiser/deepfake-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// State API 서비스의 생명주기 상태입니다.
type State int32

const (
	// StateStarting 설정을 읽고 서버를 구성하는 중
	StateStarting State = iota

	// StateListening 포트 바인딩을 완료하고 요청을 처리하는 중
	StateListening

	// StateShuttingDown 새 연결을 거부하고 처리 중인 요청의 완료를 기다리는 중
	StateShuttingDown

	// StateStopped 서버가 완전히 종료됨
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateListening:
		return "listening"
	case StateShuttingDown:
		return "shutting_down"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Service Deepfake Detection API 서버의 생명주기를 관리하는 서비스입니다.
//
// 이 서비스는 다음과 같은 역할을 수행합니다:
//   - Echo 기반 HTTP 서버 구성 (미들웨어 체인, 라우트, 전역 에러 핸들러)
//   - 포트 바인딩 및 진단 배너 출력
//   - Graceful Shutdown 지원 (처리 중인 요청 완료 대기, 최대 30초)
//
// Start() 메서드로 시작하고, context 취소로 종료됩니다.
type Service struct {
	appConfig *config.AppConfig

	buildInfo version.Info

	// bannerOut 진단 배너 출력 대상 (기본값: 표준 출력)
	bannerOut io.Writer

	shutdownTimeout time.Duration

	state atomic.Int32

	addr net.Addr

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}

	return &Service{
		appConfig: appConfig,

		buildInfo: buildInfo,

		bannerOut: os.Stdout,

		shutdownTimeout: constants.DefaultShutdownTimeout,
	}
}

// State 서비스의 현재 생명주기 상태를 반환합니다.
func (s *Service) State() State {
	return State(s.state.Load())
}

// Addr 서버가 바인딩된 주소를 반환합니다. 아직 바인딩되지 않았다면 nil을 반환합니다.
func (s *Service) Addr() net.Addr {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.addr
}

func (s *Service) setState(state State) {
	s.state.Store(int32(state))

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"state": state.String(),
	}).Debug("API 서비스 상태 변경")
}

// Start API 서비스를 시작합니다.
//
// 포트 바인딩은 호출자의 고루틴에서 동기적으로 수행되므로, 포트가 이미 사용 중인 경우
// Startup 에러가 즉시 반환됩니다. 바인딩에 성공하면 배너를 출력하고, 실제 서버는 고루틴에서 실행됩니다.
//
// Parameters:
//   - serviceStopCtx: 서비스 종료 신호를 받기 위한 Context
//   - serviceStopWG: 서비스 종료 완료를 알리기 위한 WaitGroup
//
// Returns:
//   - error: 포트 바인딩에 실패한 경우 (이 경우에도 serviceStopWG.Done()은 호출됩니다)
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	return s.start(serviceStopCtx, serviceStopWG, s.setupServer)
}

func (s *Service) start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup, setup func() *echo.Echo) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.setState(StateStarting)

	e := setup()

	address := net.JoinHostPort(constants.DefaultListenHost, strconv.Itoa(s.appConfig.Port))
	ln, err := net.Listen("tcp", address)
	if err != nil {
		defer serviceStopWG.Done()
		s.setState(StateStopped)
		return NewErrPortBindFailed(err, address)
	}

	e.Listener = ln
	s.addr = ln.Addr()
	s.running = true

	s.setState(StateListening)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"address":     s.addr.String(),
		"environment": s.appConfig.EnvironmentName(),
	}).Info(constants.LogMsgServiceHTTPServerListening)

	if err := writeBanner(s.bannerOut, newBannerInfo(s.appConfig.Port, s.appConfig.EnvironmentName(), time.Now())); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Warn("배너 출력 실패")
	}

	go s.runServiceLoop(serviceStopCtx, serviceStopWG, e)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

// setupServer Echo 서버 인스턴스를 생성하고 모든 설정을 완료합니다.
//
// 다음 순서로 서버를 구성합니다:
//  1. Handler 생성 (System 핸들러, Page 핸들러)
//  2. Echo 서버 생성 (미들웨어 체인, 에러 핸들러 포함)
//  3. 라우트 등록
func (s *Service) setupServer() *echo.Echo {
	// 1. Handler 생성
	systemHandler := system.NewHandler(s.appConfig, s.buildInfo)
	pageHandler := page.NewHandler(s.appConfig)

	// 2. Echo 서버 생성 (미들웨어 체인 포함)
	e := NewHTTPServer(HTTPServerConfig{
		Development: s.appConfig.IsDevelopment(),
		PublicDir:   s.appConfig.PublicDir,
	})

	// 3. 라우트 등록
	RegisterRoutes(e, systemHandler, pageHandler)

	return e
}

// runServiceLoop 서비스의 메인 실행 루프입니다.
// HTTP 서버 시작과 Shutdown 대기를 수행합니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup, e *echo.Echo) {
	defer serviceStopWG.Done()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// startHTTPServer 바인딩된 Listener로 HTTP 서버를 실행합니다.
// 서버가 종료되면 done 채널을 닫아 대기 중인 고루틴에 신호를 보냅니다.
//
// Note: 이 함수는 블로킹되며, 서버가 종료될 때까지 반환되지 않습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	// Listener가 이미 설정되어 있으므로 주소는 사용되지 않습니다.
	s.handleServerError(e.Start(""))
}

// handleServerError HTTP 서버 실행 중 발생한 에러를 처리합니다.
//
// 에러 처리 방식:
//   - nil: 처리하지 않음 (정상 종료)
//   - http.ErrServerClosed: Info 레벨 로깅 (Graceful Shutdown)
//   - 그 외: Error 레벨 로깅 (예상치 못한 에러)
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.Port,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
//
// 종료 처리 순서:
//  1. 종료 신호 대기 (정상 종료 또는 서버 조기 종료)
//  2. Echo 서버 Shutdown 호출 (새 연결 거부, 처리 중인 요청 완료 대기)
//  3. HTTP 서버 완전 종료 대기
//  4. 서비스 상태 정리
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// HTTP 서버가 예기치 않게 종료됨
		// 이미 종료되었으므로 Shutdown 호출 없이 상태만 정리
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	s.setState(StateShuttingDown)

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)

		// 제한 시간 내에 완료되지 않은 연결은 강제로 닫습니다.
		_ = e.Close()
	}

	<-httpServerDone

	s.cleanup()
}

// cleanup 서비스 종료 후 상태를 정리합니다.
func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	s.setState(StateStopped)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
