package errors

import "net/http"

//go:generate stringer -type=ErrorType

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

// 에러 타입 상수
const (
	// Unknown 알 수 없는 에러
	Unknown ErrorType = iota

	// Client 클라이언트 요청 오류 (존재하지 않는 경로, 잘못된 본문, 크기 초과 등)
	Client

	// Server 요청 처리 중 발생한 서버 내부 오류
	Server

	// Startup 프로세스 초기화 실패 (포트 바인딩 실패, 잘못된 설정 등)
	Startup
)

// DefaultStatus ErrorType에 대응하는 기본 HTTP 상태 코드를 반환합니다.
//
// Startup 에러는 HTTP 응답으로 변환되지 않지만, 잘못 전달된 경우를 대비해 500을 반환합니다.
func (t ErrorType) DefaultStatus() int {
	switch t {
	case Client:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
