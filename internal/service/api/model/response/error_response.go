package response

// ErrorResponse 모든 실패 응답에 사용되는 JSON 본문입니다.
type ErrorResponse struct {
	// Error 에러 레이블 (라우트 없음: "Not Found", 그 외: "Internal Server Error")
	Error string `json:"error"`

	// Message 사람이 읽을 수 있는 에러 메시지
	Message string `json:"message"`

	// Stack 에러 체인과 스택 트레이스 (개발 환경에서만 포함)
	Stack string `json:"stack,omitempty"`

	// Timestamp 응답 생성 시각 (ISO-8601)
	Timestamp string `json:"timestamp"`
}
