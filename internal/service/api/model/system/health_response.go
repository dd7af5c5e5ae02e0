package system

// HealthResponse 서버 헬스체크 응답
type HealthResponse struct {
	// 서버 상태 (항상 "healthy")
	Status string `json:"status"`
	// 응답 생성 시각 (ISO-8601)
	Timestamp string `json:"timestamp"`
	// 프로세스 시작 이후 경과 시간(초)
	Uptime float64 `json:"uptime"`
	// 실행 환경 이름
	Environment string `json:"environment"`
}
