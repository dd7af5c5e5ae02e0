package constants

// 로그 발생 위치(컴포넌트) 식별을 위한 상수입니다.
const (
	// ComponentService 서비스 컴포넌트 이름
	ComponentService = "api.service"

	// ComponentHandler 핸들러 컴포넌트 이름
	ComponentHandler = "api.handler"

	// ComponentEcho Echo 프레임워크 내부 로그의 컴포넌트 이름
	ComponentEcho = "api.echo"

	// ComponentMiddlewareAccessLog 접근 로그 미들웨어 컴포넌트 이름
	ComponentMiddlewareAccessLog = "api.middleware.access_log"

	// ComponentMiddlewarePanicRecovery 패닉 복구 미들웨어 컴포넌트 이름
	ComponentMiddlewarePanicRecovery = "api.middleware.panic_recovery"

	// ComponentMiddlewareBodyParser 요청 본문 파싱 미들웨어 컴포넌트 이름
	ComponentMiddlewareBodyParser = "api.middleware.body_parser"

	// ComponentErrorHandler 에러 핸들러 컴포넌트 이름
	ComponentErrorHandler = "api.error_handler"
)
