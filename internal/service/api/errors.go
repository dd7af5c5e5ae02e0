package api

import (
	apperrors "github.com/darkkaiser/deepfake-server/internal/pkg/errors"
)

// NewErrPortBindFailed 리스닝 포트 바인딩에 실패했을 때 반환하는 Startup 에러를 생성합니다.
// (예: 다른 프로세스가 이미 포트를 사용 중인 경우)
func NewErrPortBindFailed(err error, address string) error {
	return apperrors.Wrapf(err, apperrors.Startup, "HTTP 서버의 포트 바인딩에 실패했습니다 (address: %s)", address)
}
