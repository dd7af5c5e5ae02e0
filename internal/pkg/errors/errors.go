// Package errors 애플리케이션 전용 에러 처리 시스템을 제공합니다.
//
// 모든 에러는 ErrorType(Client, Server, Startup)으로 분류되며, 각 타입은
// HTTP 응답으로 변환될 때 사용할 기본 상태 코드를 가집니다.
// 전역 에러 핸들러는 StatusCode 함수만으로 어떤 에러든 응답 코드를 결정할 수 있습니다.
//
// # 기본 사용법
//
// 새 에러 생성:
//
//	err := errors.New(errors.Client, "잘못된 요청입니다")
//
// 상태 코드를 명시한 에러 생성:
//
//	err := errors.NewWithStatus(errors.Client, http.StatusRequestEntityTooLarge, "request entity too large")
//
// 에러 래핑 (컨텍스트 추가):
//
//	if err != nil {
//	    return errors.Wrap(err, errors.Startup, "포트 바인딩 실패")
//	}
//
// 응답 코드 결정:
//
//	code := errors.StatusCode(err) // AppError가 없으면 0
//
// # ErrorType 선택 가이드
//
// Client:
//   - 요청 자체가 잘못된 경우 (존재하지 않는 경로, 잘못된 JSON 본문, 너무 큰 본문)
//   - 메시지는 항상 호출자에게 그대로 노출되므로 내부 정보를 포함하지 않아야 합니다.
//
// Server:
//   - 핸들러 처리 중 예상하지 못한 실패, 복구된 panic
//   - 개발 환경에서만 스택 트레이스가 응답에 포함됩니다.
//
// Startup:
//   - 포트 바인딩 실패, 잘못된 설정값 등 프로세스를 더 이상 진행할 수 없는 실패
//   - HTTP 응답으로 변환되지 않으며, main에서 에러 로그를 남긴 뒤 종료 코드 1로 프로세스를 종료합니다.
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 애플리케이션에서 발생하는 모든 에러를 표준화하여 표현하는 구조체입니다.
type AppError struct {
	errType ErrorType    // 에러의 종류
	status  int          // HTTP 상태 코드 (0: ErrorType의 기본값 사용)
	message string       // 사용자에게 보여줄 메시지
	cause   error        // 이 에러가 발생하게 된 근본 원인 (에러 체이닝)
	stack   []StackFrame // 에러 발생 시점의 함수 호출 스택 정보
}

// Type 에러의 타입을 반환합니다.
func (e *AppError) Type() ErrorType {
	return e.errType
}

// Message 에러 메시지를 반환합니다.
func (e *AppError) Message() string {
	return e.message
}

// StatusCode 이 에러를 HTTP 응답으로 변환할 때 사용할 상태 코드를 반환합니다.
// 명시된 상태 코드가 없으면 ErrorType의 기본 상태 코드를 반환합니다.
func (e *AppError) StatusCode() int {
	if e.status != 0 {
		return e.status
	}
	return e.errType.DefaultStatus()
}

// Stack 스택 트레이스를 반환합니다.
func (e *AppError) Stack() []StackFrame {
	return e.stack
}

// Error 표준 errors.Error 인터페이스를 구현합니다.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.errType, e.message)
}

// Unwrap 표준 errors.Unwrap 인터페이스를 구현합니다.
func (e *AppError) Unwrap() error {
	return e.cause
}

// Format fmt.Formatter 인터페이스를 구현합니다.
// %+v 사용 시 에러 체인과 스택 트레이스를 상세히 출력합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

			// 체인 중간의 AppError는 스택을 생략하고, Root 또는 외부 에러와의 경계에서만 출력합니다.
			var target *AppError
			if e.cause == nil || !errors.As(e.cause, &target) {
				writeStack(s, e.stack)
			}

			if e.cause != nil {
				fmt.Fprint(s, "\nCaused by:\n")
				if formatter, ok := e.cause.(fmt.Formatter); ok {
					formatter.Format(s, verb)
				} else {
					fmt.Fprintf(s, "\t%v", e.cause)
				}
			}
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

func writeStack(w io.Writer, stack []StackFrame) {
	if len(stack) == 0 {
		return
	}

	fmt.Fprint(w, "\nStack trace:")
	for _, frame := range stack {
		// 함수명에서 패키지 경로 간소화
		funcName := frame.Function
		if idx := strings.LastIndex(funcName, "/"); idx != -1 {
			funcName = funcName[idx+1:]
		}
		fmt.Fprintf(w, "\n\t%s:%d %s", frame.File, frame.Line, funcName)
	}
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return &AppError{
		errType: errType,
		message: message,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Newf 포맷 문자열을 사용하여 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return &AppError{
		errType: errType,
		message: fmt.Sprintf(format, args...),
		stack:   captureStack(defaultCallerSkip),
	}
}

// NewWithStatus ErrorType의 기본값 대신 지정한 HTTP 상태 코드를 가지는 새로운 에러를 생성합니다.
func NewWithStatus(errType ErrorType, status int, message string) error {
	return &AppError{
		errType: errType,
		status:  status,
		message: message,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Wrap 기존 에러를 감싸서 새로운 에러를 생성합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		errType: errType,
		message: message,
		cause:   err,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Wrapf 포맷 문자열을 사용하여 기존 에러를 감쌉니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &AppError{
		errType: errType,
		message: fmt.Sprintf(format, args...),
		cause:   err,
		stack:   captureStack(defaultCallerSkip),
	}
}

// WrapWithStatus 기존 에러를 감싸면서 ErrorType의 기본값 대신 지정한 HTTP 상태 코드를 가지는 에러를 생성합니다.
func WrapWithStatus(err error, errType ErrorType, status int, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		errType: errType,
		status:  status,
		message: message,
		cause:   err,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Is 에러 체인에 특정 ErrorType이 포함되어 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			if appErr.errType == errType {
				return true
			}
		}
		err = errors.Unwrap(err)
	}
	return false
}

// As 에러 체인에서 특정 타입의 에러를 찾아 대상 변수에 할당합니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause 에러가 발생한 가장 근본적인 원인 에러를 찾습니다.
func RootCause(err error) error {
	if err == nil {
		return nil
	}

	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}

// UnderlyingType 에러 체인에서 가장 안쪽에 있는 AppError의 ErrorType을 반환합니다.
// 체인에 AppError가 없거나 err이 nil인 경우 Unknown을 반환합니다.
func UnderlyingType(err error) ErrorType {
	lastAppErrorType := Unknown

	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			lastAppErrorType = appErr.errType
		}
		err = errors.Unwrap(err)
	}

	return lastAppErrorType
}

// StatusCode 에러 체인으로부터 HTTP 상태 코드를 결정합니다.
//
// 결정 순서:
//  1. 체인의 바깥쪽부터 순회하면서 처음으로 상태 코드가 명시된 AppError의 값
//  2. 명시된 값이 없다면 가장 바깥쪽 AppError의 ErrorType 기본값
//  3. 체인에 AppError가 없다면 0 (호출자가 결정)
func StatusCode(err error) int {
	var outermost *AppError

	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			if appErr.status != 0 {
				return appErr.status
			}
			if outermost == nil {
				outermost = appErr
			}
		}
		err = errors.Unwrap(err)
	}

	if outermost == nil {
		return 0
	}
	return outermost.errType.DefaultStatus()
}
