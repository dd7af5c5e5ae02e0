package api

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/deepfake-server/internal/config"
	apperrors "github.com/darkkaiser/deepfake-server/internal/pkg/errors"
	"github.com/darkkaiser/deepfake-server/internal/pkg/version"
	"github.com/darkkaiser/deepfake-server/internal/service"
	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
	"github.com/darkkaiser/deepfake-server/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var _ service.Service = (*Service)(nil)

// =============================================================================
// Test Helpers
// =============================================================================

// setupServiceHelper 동적으로 할당한 포트를 사용하는 API 서비스를 생성합니다.
func setupServiceHelper(t *testing.T, environment string) (*Service, *config.AppConfig, *strings.Builder) {
	t.Helper()

	// 충돌 방지를 위한 동적 포트 할당
	port, err := testutil.GetFreePort()
	require.NoError(t, err, "사용 가능한 포트를 가져오는데 실패했습니다")

	appConfig := newTestAppConfig(t, environment)
	appConfig.Port = port

	var banner strings.Builder
	s := NewService(appConfig, version.Get())
	s.bannerOut = &banner

	return s, appConfig, &banner
}

func newTestClient() *http.Client {
	return &http.Client{
		Timeout:   10 * time.Second,
		Transport: &http.Transport{DisableKeepAlives: true},
	}
}

func baseURL(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d", port)
}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewService(t *testing.T) {
	t.Parallel()

	t.Run("성공: 서비스 생성", func(t *testing.T) {
		t.Parallel()

		appConfig := &config.AppConfig{Port: 5000}
		s := NewService(appConfig, version.Info{})

		assert.Same(t, appConfig, s.appConfig)
		assert.Equal(t, constants.DefaultShutdownTimeout, s.shutdownTimeout)
		assert.Equal(t, StateStarting, s.State())
		assert.Nil(t, s.Addr())
	})

	t.Run("실패: AppConfig가 nil이면 패닉", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, constants.PanicMsgAppConfigRequired, func() {
			NewService(nil, version.Info{})
		})
	})
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "starting", StateStarting.String())
	assert.Equal(t, "listening", StateListening.String())
	assert.Equal(t, "shutting_down", StateShuttingDown.String())
	assert.Equal(t, "stopped", StateStopped.String())
	assert.Equal(t, "unknown", State(42).String())
}

// =============================================================================
// Lifecycle Tests
// =============================================================================

func TestService_StartAndStop(t *testing.T) {
	s, appConfig, banner := setupServiceHelper(t, "production")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	// Start가 반환되는 시점에는 이미 바인딩이 완료되어 있어야 합니다.
	assert.Equal(t, StateListening, s.State())
	require.NotNil(t, s.Addr())
	assert.Equal(t, appConfig.Port, s.Addr().(*net.TCPAddr).Port)

	assert.Contains(t, banner.String(), fmt.Sprintf("http://localhost:%d", appConfig.Port))
	assert.Contains(t, banner.String(), "Environment: production")

	require.NoError(t, testutil.WaitForServer(appConfig.Port, 5*time.Second))

	resp, err := newTestClient().Get(baseURL(appConfig.Port) + constants.PathHealth)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", gjson.GetBytes(body, "status").String())
	assert.Equal(t, "production", gjson.GetBytes(body, "environment").String())
	assert.GreaterOrEqual(t, gjson.GetBytes(body, "uptime").Float(), 0.0)

	// HEAD 요청은 GET과 같은 상태 코드를 본문 없이 반환합니다.
	headResp, err := newTestClient().Head(baseURL(appConfig.Port) + constants.PathHealth)
	require.NoError(t, err)
	headBody, err := io.ReadAll(headResp.Body)
	require.NoError(t, err)
	require.NoError(t, headResp.Body.Close())

	assert.Equal(t, http.StatusOK, headResp.StatusCode)
	assert.Empty(t, headBody)

	cancel()
	wg.Wait()

	assert.Equal(t, StateStopped, s.State())

	_, err = net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", appConfig.Port), 500*time.Millisecond)
	assert.Error(t, err, "종료 후에는 연결을 수락하지 않아야 합니다")
}

func TestService_AlreadyStarted(t *testing.T) {
	s, _, _ := setupServiceHelper(t, "production")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	// 중복 시작은 에러 없이 무시되고, WaitGroup은 즉시 Done 처리되어야 합니다.
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	assert.Equal(t, StateListening, s.State())

	cancel()
	wg.Wait()

	assert.Equal(t, StateStopped, s.State())
}

func TestService_PortInUse(t *testing.T) {
	s, appConfig, banner := setupServiceHelper(t, "production")

	// 다른 프로세스가 포트를 사용 중인 상황
	occupied, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%d", appConfig.Port))
	require.NoError(t, err)
	defer occupied.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	wg.Add(1)
	err = s.Start(ctx, wg)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Startup))
	assert.Contains(t, err.Error(), fmt.Sprintf("0.0.0.0:%d", appConfig.Port))
	assert.Equal(t, StateStopped, s.State())
	assert.Empty(t, banner.String(), "바인딩에 실패하면 배너를 출력하지 않아야 합니다")

	// 실패한 경우에도 WaitGroup은 Done 처리되어야 합니다.
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("WaitGroup이 Done 처리되지 않았습니다")
	}
}

// TestService_GracefulShutdown 종료 신호 이후에도 처리 중인 요청은 완료되고,
// 새로운 연결은 수락되지 않는지 검증합니다.
func TestService_GracefulShutdown(t *testing.T) {
	s, appConfig, _ := setupServiceHelper(t, "production")

	started := make(chan struct{})
	release := make(chan struct{})
	setup := func() *echo.Echo {
		e := s.setupServer()
		e.GET("/slow", func(c echo.Context) error {
			close(started)
			<-release
			return c.String(http.StatusOK, "done")
		})
		return e
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.start(ctx, wg, setup))
	require.NoError(t, testutil.WaitForServer(appConfig.Port, 5*time.Second))

	type result struct {
		status int
		body   string
		err    error
	}
	resultC := make(chan result, 1)
	go func() {
		resp, err := newTestClient().Get(baseURL(appConfig.Port) + "/slow")
		if err != nil {
			resultC <- result{err: err}
			return
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		resultC <- result{status: resp.StatusCode, body: string(b), err: err}
	}()

	<-started

	// 종료 신호 (SIGINT/SIGTERM 수신 시 main에서 context를 취소합니다)
	cancel()

	require.Eventually(t, func() bool {
		return s.State() == StateShuttingDown
	}, 5*time.Second, 10*time.Millisecond)

	// 새로운 연결은 거부되어야 합니다.
	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", appConfig.Port), 100*time.Millisecond)
		if err != nil {
			return true
		}
		_ = conn.Close()
		return false
	}, 5*time.Second, 20*time.Millisecond)

	// 처리 중인 요청이 끝나기 전에는 종료되지 않아야 합니다.
	assert.Equal(t, StateShuttingDown, s.State())

	close(release)

	r := <-resultC
	require.NoError(t, r.err)
	assert.Equal(t, http.StatusOK, r.status)
	assert.Equal(t, "done", r.body)

	wg.Wait()
	assert.Equal(t, StateStopped, s.State())
}

func TestService_ShutdownTimeout(t *testing.T) {
	s, appConfig, _ := setupServiceHelper(t, "production")
	s.shutdownTimeout = 100 * time.Millisecond

	release := make(chan struct{})
	defer close(release)

	started := make(chan struct{})
	setup := func() *echo.Echo {
		e := s.setupServer()
		e.GET("/stuck", func(c echo.Context) error {
			close(started)
			select {
			case <-release:
			case <-c.Request().Context().Done():
			}
			return nil
		})
		return e
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.start(ctx, wg, setup))
	require.NoError(t, testutil.WaitForServer(appConfig.Port, 5*time.Second))

	errC := make(chan error, 1)
	go func() {
		resp, err := newTestClient().Get(baseURL(appConfig.Port) + "/stuck")
		if err == nil {
			resp.Body.Close()
		}
		errC <- err
	}()

	<-started
	cancel()

	// 제한 시간이 지나면 남은 연결을 강제로 닫고 종료합니다.
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("제한 시간 이후에도 서비스가 종료되지 않았습니다")
	}

	assert.Equal(t, StateStopped, s.State())
	<-errC
}
