package constants

import "time"

// 보안 관련 상수입니다.
const (
	// DefaultMaxBodySize JSON 및 폼 요청 본문의 최대 크기 (10MB)
	DefaultMaxBodySize = "10M"

	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간 (Slowloris 방어)
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultHSTSMaxAge Strict-Transport-Security 헤더의 max-age (180일, 초 단위)
	DefaultHSTSMaxAge = 15552000
)

// CORS 정책 상수입니다.
var (
	// CORSAllowOrigins 모든 Origin을 허용합니다.
	CORSAllowOrigins = []string{"*"}

	// CORSAllowHeaders 허용하는 요청 헤더 목록
	CORSAllowHeaders = []string{"Content-Type", "Authorization", "X-Requested-With"}
)
