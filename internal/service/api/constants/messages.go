package constants

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	// ErrMsgRouteNotFound 매칭되는 라우트가 없을 때의 메시지 형식 (메서드, 경로)
	ErrMsgRouteNotFound = "Route %s %s does not exist"

	// ErrMsgInvalidJSON 요청 본문이 올바른 JSON이 아닐 때의 메시지
	ErrMsgInvalidJSON = "Request body is not valid JSON"

	// ErrMsgInvalidForm 폼 본문을 해석할 수 없을 때의 메시지
	ErrMsgInvalidForm = "Request body is not a valid form"

	// ErrMsgRequestEntityTooLarge 요청 본문이 크기 제한을 초과했을 때의 메시지
	ErrMsgRequestEntityTooLarge = "request entity too large"

	// ErrMsgBodyReadFailed 요청 본문을 읽지 못했을 때의 메시지
	ErrMsgBodyReadFailed = "Failed to read request body"

	// ErrMsgInternalServer 에러 메시지가 비어있을 때 사용하는 기본 메시지
	ErrMsgInternalServer = "An internal server error occurred"
)

// 에러 응답의 error 필드에 사용되는 레이블입니다.
// 라우트를 찾지 못한 경우만 LabelNotFound를 사용하고, 그 외 전역 에러 핸들러에 도달한 모든 에러는
// 상태 코드와 관계없이 LabelInternalServerError를 사용합니다.
const (
	LabelNotFound            = "Not Found"
	LabelInternalServerError = "Internal Server Error"
)
