package middleware

import (
	"fmt"
	"net/http"

	apperrors "github.com/darkkaiser/deepfake-server/internal/pkg/errors"
	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
)

// NewErrBodyTooLarge 요청 본문의 크기가 허용 한도를 초과했을 때 반환하는 413 에러를 생성합니다.
func NewErrBodyTooLarge() error {
	return apperrors.NewWithStatus(apperrors.Client, http.StatusRequestEntityTooLarge, constants.ErrMsgRequestEntityTooLarge)
}

// NewErrInvalidJSON 요청 본문이 올바른 JSON 형식이 아닐 때 반환하는 400 에러를 생성합니다.
func NewErrInvalidJSON() error {
	return apperrors.New(apperrors.Client, constants.ErrMsgInvalidJSON)
}

// NewErrBodyReadFailed 요청 본문을 읽는 데 실패했을 때 반환하는 400 에러를 생성합니다.
func NewErrBodyReadFailed(cause error) error {
	return apperrors.Wrap(cause, apperrors.Client, constants.ErrMsgBodyReadFailed)
}

// NewErrPanicRecovered 캡처된 패닉 값을 서버 내부 오류로 래핑하여 새로운 에러를 생성합니다.
func NewErrPanicRecovered(r any) error {
	if err, ok := r.(error); ok {
		return apperrors.Wrap(err, apperrors.Server, err.Error())
	}
	return apperrors.New(apperrors.Server, fmt.Sprintf("%v", r))
}

// NewErrInvalidForm 요청 본문이 올바른 URL 인코딩 폼 형식이 아닐 때 반환하는 400 에러를 생성합니다.
func NewErrInvalidForm(cause error) error {
	return apperrors.Wrap(cause, apperrors.Client, constants.ErrMsgInvalidForm)
}
