package log

// callerPathPrefix 호출 위치 출력 시 잘라낼 모듈 경로입니다.
const callerPathPrefix = "github.com/darkkaiser/deepfake-server"

// NewProductionOptions 운영(Production) 환경에 최적화된 로그 설정을 반환합니다.
//
// 컨테이너 환경의 로그 수집기를 위해 콘솔 출력을 유지하면서,
// 장애 분석을 위한 Critical 로그를 별도 파일로 격리합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: InfoLevel,

		MaxAge:     30,  // 30일 보관
		MaxSizeMB:  100, // 100MB 단위 로테이션
		MaxBackups: 20,  // 최대 20개 백업 유지

		EnableCriticalLog: true,
		EnableVerboseLog:  false,
		EnableConsoleLog:  true,

		ReportCaller:     false,
		CallerPathPrefix: callerPathPrefix,
	}
}

// NewDevelopmentOptions 개발(Development) 환경에 최적화된 로그 설정을 반환합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: DebugLevel,

		MaxAge:     1,  // 1일 보관
		MaxSizeMB:  50, // 50MB 단위 로테이션
		MaxBackups: 5,  // 최대 5개 백업 유지

		EnableCriticalLog: false,
		EnableVerboseLog:  false,
		EnableConsoleLog:  true,

		ReportCaller:     true,
		CallerPathPrefix: callerPathPrefix,
	}
}
