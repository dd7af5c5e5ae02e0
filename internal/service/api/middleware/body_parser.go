package middleware

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
	applog "github.com/darkkaiser/deepfake-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"
)

// ContextKeyParsedBody 파싱된 요청 본문(*ParsedBody)이 저장되는 echo.Context 키입니다.
const ContextKeyParsedBody = "parsed_body"

// ParsedBody 파싱된 요청 본문입니다.
// JSON 본문이면 JSON 필드가, URL 인코딩 폼 본문이면 Form 필드가 채워집니다.
type ParsedBody struct {
	Raw  []byte
	JSON gjson.Result
	Form url.Values
}

// IsJSON JSON 본문인지 여부를 반환합니다.
func (b *ParsedBody) IsJSON() bool {
	return b.JSON.Exists()
}

// ParsedBodyFrom echo.Context에 저장된 파싱된 요청 본문을 반환합니다.
// 본문이 없거나 파싱 대상이 아닌 Content-Type인 경우 false를 반환합니다.
func ParsedBodyFrom(c echo.Context) (*ParsedBody, bool) {
	b, ok := c.Get(ContextKeyParsedBody).(*ParsedBody)
	return b, ok
}

// BodyParser JSON(application/json, application/*+json) 및 URL 인코딩 폼 요청 본문을 파싱하는 미들웨어를 반환합니다.
//
// 파싱된 본문은 ContextKeyParsedBody 키로 저장되며, 원본 본문은 다시 읽을 수 있도록 복원됩니다.
// 올바르지 않은 JSON은 400 에러로 처리되고, 본문 크기 초과 에러는 그대로 전달됩니다.
// 그 외의 Content-Type이나 빈 본문은 건드리지 않고 다음 핸들러로 넘깁니다.
func BodyParser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.Body == http.NoBody {
				return next(c)
			}

			kind := bodyKindOf(req.Header.Get(echo.HeaderContentType))
			if kind == bodyKindNone {
				return next(c)
			}

			raw, err := io.ReadAll(req.Body)
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					return err
				}
				return NewErrBodyReadFailed(err)
			}
			req.Body = io.NopCloser(bytes.NewReader(raw))

			if len(raw) == 0 {
				return next(c)
			}

			parsed := &ParsedBody{Raw: raw}
			switch kind {
			case bodyKindJSON:
				if !gjson.ValidBytes(raw) {
					applog.WithComponentAndFields(constants.ComponentMiddlewareBodyParser, applog.Fields{
						"path":       req.URL.Path,
						"method":     req.Method,
						"size":       len(raw),
						"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
					}).Debug(constants.LogMsgBodyParseFailed)

					return NewErrInvalidJSON()
				}
				parsed.JSON = gjson.ParseBytes(raw)

			case bodyKindForm:
				form, err := url.ParseQuery(string(raw))
				if err != nil {
					return NewErrInvalidForm(err)
				}
				parsed.Form = form
			}

			c.Set(ContextKeyParsedBody, parsed)

			return next(c)
		}
	}
}

type bodyKind int

const (
	bodyKindNone bodyKind = iota
	bodyKindJSON
	bodyKindForm
)

func bodyKindOf(contentType string) bodyKind {
	if contentType == "" {
		return bodyKindNone
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return bodyKindNone
	}

	switch {
	case mediaType == echo.MIMEApplicationJSON, strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"):
		return bodyKindJSON
	case mediaType == echo.MIMEApplicationForm:
		return bodyKindForm
	}

	return bodyKindNone
}
