package constants

import "time"

// API 응답에 노출되는 서버 식별 정보입니다.
const (
	// APIServerName /api/info 응답의 server 필드
	APIServerName = "Deepfake Detection API"

	// APIVersion /api/info 응답의 version 필드
	APIVersion = "1.0.0"

	// HealthStatusHealthy 헬스체크 응답의 status 필드
	HealthStatusHealthy = "healthy"
)

// 라우트 경로입니다.
const (
	PathRoot   = "/"
	PathHealth = "/api/health"
	PathInfo   = "/api/info"
)

// TimestampFormat 응답의 timestamp 필드 형식입니다. (ISO-8601, UTC, 밀리초)
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultListenHost 모든 네트워크 인터페이스에 바인딩합니다.
	DefaultListenHost = "0.0.0.0"

	// DefaultShutdownTimeout Graceful Shutdown 시 처리 중인 요청의 완료를 기다리는 최대 시간
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultReadTimeout 요청 전체(헤더 + 본문)를 읽는 최대 시간
	// 10MB 본문을 느린 네트워크에서도 수신할 수 있어야 합니다.
	DefaultReadTimeout = 60 * time.Second

	// DefaultWriteTimeout 응답 쓰기 최대 시간
	DefaultWriteTimeout = 60 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 최대 유휴 시간
	DefaultIdleTimeout = 120 * time.Second
)
