package httputil

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/darkkaiser/deepfake-server/internal/pkg/errors"
	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
	"github.com/darkkaiser/deepfake-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/deepfake-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrRouteNotFound 매칭되는 라우트가 없는 요청임을 나타냅니다.
var ErrRouteNotFound = errors.New("route not found")

// NewRouteNotFoundError 매칭되는 라우트가 없는 요청에 대한 404 에러를 생성합니다.
// path는 요청에 포함된 그대로(퍼센트 인코딩 유지) 전달해야 합니다.
func NewRouteNotFoundError(method, path string) error {
	return apperrors.WrapWithStatus(ErrRouteNotFound, apperrors.Client, http.StatusNotFound, fmt.Sprintf(constants.ErrMsgRouteNotFound, method, path))
}

// NewErrorHandler Echo 프레임워크의 전역 에러 핸들러를 생성합니다.
//
// 모든 에러를 가로채서 표준 ErrorResponse JSON 형식으로 변환하여 반환합니다.
// 상태 코드는 다음 순서로 결정됩니다:
//  1. AppError에 명시된 상태 코드 또는 ErrorType의 기본 상태 코드
//  2. *echo.HTTPError의 Code (BodyLimit, CORS 등 Echo 미들웨어가 반환한 에러)
//  3. 그 외의 에러는 500
//
// error 필드는 라우트를 찾지 못한 경우 "Not Found", 그 외에는 상태 코드와 관계없이 "Internal Server Error"입니다.
// development가 true인 경우에만 응답 본문에 에러 체인과 스택 트레이스(stack)를 포함하며, 이때 stack 필드는 항상 채워집니다.
func NewErrorHandler(development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		code, message := resolve(err, c)

		fields := applog.Fields{
			"path":        c.Request().URL.EscapedPath(),
			"method":      c.Request().Method,
			"status_code": code,
			"error":       err,
			"remote_ip":   c.RealIP(),
			"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
		}

		if code >= http.StatusInternalServerError {
			applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
		} else {
			applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
		}

		// 이중 응답 방지: 이미 응답이 전송된 경우 추가 응답 시도하지 않음
		if c.Response().Committed {
			return
		}

		// HEAD 요청은 헤더만 반환하고 본문은 생략
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}

		body := response.ErrorResponse{
			Error:     errorLabel(err),
			Message:   message,
			Timestamp: Now(),
		}
		if development {
			body.Stack = stackTrace(err, message)
		}

		if err := c.JSON(code, body); err != nil {
			applog.WithComponentAndFields(constants.ComponentErrorHandler, applog.Fields{
				"path":  c.Request().URL.EscapedPath(),
				"error": err,
			}).Error("에러 응답 전송 실패")
		}
	}
}

// resolve 에러로부터 HTTP 상태 코드와 클라이언트에게 반환할 메시지를 결정합니다.
func resolve(err error, c echo.Context) (int, string) {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		return apperrors.StatusCode(err), orDefault(appErr.Message())
	}

	var he *echo.HTTPError
	if apperrors.As(err, &he) {
		// Echo 라우터의 404는 직접 등록한 Not-Found 핸들러와 동일한 메시지로 통일합니다.
		if he.Code == http.StatusNotFound {
			return he.Code, fmt.Sprintf(constants.ErrMsgRouteNotFound, c.Request().Method, c.Request().URL.EscapedPath())
		}

		var message string
		switch m := he.Message.(type) {
		case string:
			message = m
		case error:
			message = m.Error()
		case nil:
			message = http.StatusText(he.Code)
		default:
			message = fmt.Sprint(m)
		}
		return he.Code, orDefault(message)
	}

	return http.StatusInternalServerError, orDefault(err.Error())
}

// errorLabel 응답의 error 필드 값을 결정합니다.
// Echo 라우터가 반환한 404도 라우트를 찾지 못한 경우로 취급합니다.
func errorLabel(err error) string {
	if errors.Is(err, ErrRouteNotFound) {
		return constants.LabelNotFound
	}

	var he *echo.HTTPError
	if apperrors.As(err, &he) && he.Code == http.StatusNotFound {
		return constants.LabelNotFound
	}

	return constants.LabelInternalServerError
}

// stackTrace 에러 체인과 스택 트레이스를 문자열로 반환합니다.
// AppError가 아닌 에러는 스택 정보가 없으므로 AppError로 감싸 호출 지점의 스택을 남깁니다.
func stackTrace(err error, message string) string {
	var appErr *apperrors.AppError
	if !apperrors.As(err, &appErr) {
		err = apperrors.Wrap(err, apperrors.Server, message)
	}
	return fmt.Sprintf("%+v", err)
}

func orDefault(message string) string {
	if message == "" {
		return constants.ErrMsgInternalServer
	}
	return message
}
