package api

import (
	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
	appmiddleware "github.com/darkkaiser/deepfake-server/internal/service/api/middleware"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Capability 미들웨어 체인에서 각 인터셉터가 담당하는 기능입니다.
type Capability int

const (
	CapabilityRecover Capability = iota
	CapabilityRequestID
	CapabilitySecurityHeaders
	CapabilityCORS
	CapabilityAccessLog
	CapabilityBodyLimit
	CapabilityBodyParser
	CapabilityStaticFiles
)

func (c Capability) String() string {
	switch c {
	case CapabilityRecover:
		return "recover"
	case CapabilityRequestID:
		return "request_id"
	case CapabilitySecurityHeaders:
		return "security_headers"
	case CapabilityCORS:
		return "cors"
	case CapabilityAccessLog:
		return "access_log"
	case CapabilityBodyLimit:
		return "body_limit"
	case CapabilityBodyParser:
		return "body_parser"
	case CapabilityStaticFiles:
		return "static_files"
	}
	return "unknown"
}

// Interceptor 미들웨어 체인을 구성하는 하나의 단계입니다.
type Interceptor struct {
	Capability Capability
	Middleware echo.MiddlewareFunc
}

// Interceptors 모든 요청에 적용되는 미들웨어 체인을 적용 순서대로 반환합니다.
//
// 순서가 중요합니다:
//
//  1. Recover - 가장 바깥에 위치해야 이후 모든 단계에서 발생한 panic을 500 에러로 변환할 수 있습니다.
//  2. RequestID - 접근 로그와 에러 로그에 request_id가 포함되려면 로깅보다 먼저 적용되어야 합니다.
//  3. SecurityHeaders - 요청을 차단하지 않으며, 에러 응답을 포함한 모든 응답에 보안 헤더를 추가합니다.
//  4. CORS - Preflight(OPTIONS) 요청은 이 단계에서 204로 응답합니다.
//  5. AccessLog - 하위 단계의 에러를 전역 에러 핸들러로 전달하여 실제 응답 코드를 기록합니다.
//  6. BodyLimit - 10MB를 초과하는 본문은 413으로 거절합니다.
//  7. BodyParser - JSON 및 URL 인코딩 폼 본문을 파싱합니다.
//  8. StaticFiles - publicDir의 파일이 있으면 제공하고, 없으면 라우터의 핸들러로 넘깁니다.
func Interceptors(publicDir string) []Interceptor {
	return []Interceptor{
		{Capability: CapabilityRecover, Middleware: appmiddleware.PanicRecovery()},
		{Capability: CapabilityRequestID, Middleware: middleware.RequestID()},
		{Capability: CapabilitySecurityHeaders, Middleware: appmiddleware.SecurityHeaders()},
		{Capability: CapabilityCORS, Middleware: appmiddleware.CORS()},
		{Capability: CapabilityAccessLog, Middleware: appmiddleware.HTTPLogger()},
		{Capability: CapabilityBodyLimit, Middleware: appmiddleware.BodyLimit(constants.DefaultMaxBodySize)},
		{Capability: CapabilityBodyParser, Middleware: appmiddleware.BodyParser()},
		{Capability: CapabilityStaticFiles, Middleware: appmiddleware.StaticFiles(publicDir)},
	}
}
