// Package middleware Echo 프레임워크를 위한 HTTP 미들웨어를 제공합니다.
//
// 이 패키지는 API 서버의 모든 요청에 공통으로 적용되는 기능을 처리하는 미들웨어를 포함합니다.
//
// 제공되는 미들웨어:
//
//   - PanicRecovery: 패닉 복구 및 에러 로깅
//   - SecurityHeaders: 고정된 보안 응답 헤더 추가
//   - CORS: 교차 출처 요청 허용 및 Preflight 응답
//   - HTTPLogger: HTTP 요청/응답 접근 로깅
//   - BodyLimit: 요청 본문 크기 제한
//   - BodyParser: JSON 및 URL 인코딩 폼 본문 파싱
//   - StaticFiles: 정적 파일 제공
//   - Logger: Echo 로거를 애플리케이션 로거로 연결
//
// 미들웨어의 적용 순서는 api 패키지의 Interceptors 함수에서 결정됩니다.
//
// 사용 예시:
//
//	e := echo.New()
//	e.Use(middleware.PanicRecovery())
//	e.Use(middleware.SecurityHeaders())
//	e.Use(middleware.HTTPLogger())
package middleware
