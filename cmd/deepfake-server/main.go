package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/deepfake-server/internal/config"
	"github.com/darkkaiser/deepfake-server/internal/pkg/version"
	"github.com/darkkaiser/deepfake-server/internal/service"
	"github.com/darkkaiser/deepfake-server/internal/service/api"
	applog "github.com/darkkaiser/deepfake-server/pkg/log"
)

const (
	banner = `
  ____                       __         _
 |  _ \   ___   ___  _ __   / _|  __ _ | | __  ___
 | | | | / _ \ / _ \| '_ \ | |_  / _` + "`" + ` || |/ / / _ \
 | |_| ||  __/|  __/| |_) ||  _|| (_| ||   < |  __/
 |____/  \___| \___|| .__/ |_|   \__,_||_|\_\ \___|
                    |_|                    %s
                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

// shutdownSignals 종료 신호로 취급하는 시그널 목록입니다.
// SIGINT(Ctrl+C)와 SIGTERM(컨테이너 종료)은 동일한 Graceful Shutdown 절차를 따릅니다.
var shutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.IsDevelopment() {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	buildInfo := version.Get()

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Printf(banner, buildInfo.Commit)

	// 빌드 정보 출력
	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     appConfig.EnvironmentName(),
		"port":    appConfig.Port,
	}).Info("서버 초기화 시작")

	// 서비스 시작 전에 시그널 수신을 등록하여 기동 중에 들어온 종료 신호도 놓치지 않는다.
	termC := make(chan os.Signal, 1)
	signal.Notify(termC, shutdownSignals...)
	defer signal.Stop(termC)

	apiService := api.NewService(appConfig, buildInfo)

	if err := run([]service.Service{apiService}, termC); err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("서비스 초기화 실패")

		// os.Exit는 defer를 실행하지 않으므로 로그 파일을 먼저 닫는다.
		appLogCloser.Close()
		os.Exit(1)
	}
}

// run 서비스를 순서대로 시작하고, 종료 신호를 받으면 모든 서비스가 정리될 때까지 대기합니다.
//
// 하나라도 시작에 실패하면 이미 시작된 서비스를 모두 종료시킨 뒤 에러를 반환합니다.
func run(services []service.Service, termC <-chan os.Signal) error {
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			return err
		}
	}

	applog.WithComponent("main").Info("서버 가동 완료")

	sig := <-termC // 종료 신호가 올 때까지 대기

	applog.WithComponentAndFields("main", applog.Fields{
		"signal": sig.String(),
	}).Info("종료 신호 수신, 서버를 종료합니다")

	cancel()             // 모든 서비스에 종료를 알린다
	serviceStopWG.Wait() // 모든 서비스가 정리될 때까지 대기

	applog.WithComponent("main").Info("서버 종료 완료")

	return nil
}
