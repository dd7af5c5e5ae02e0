package httputil

import (
	"time"

	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
)

// Timestamp 응답의 timestamp 필드 값을 생성합니다. (예: "2026-10-17T09:00:00.000Z")
func Timestamp(t time.Time) string {
	return t.UTC().Format(constants.TimestampFormat)
}

// Now 현재 시각의 timestamp 필드 값을 생성합니다.
func Now() string {
	return Timestamp(time.Now())
}
