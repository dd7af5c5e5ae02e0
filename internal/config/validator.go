package config

import (
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/deepfake-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// newValidator 새로운 Validator 인스턴스를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 검증 에러 메시지에 Go 구조체 필드명(예: Port) 대신 JSON 이름(예: port)을 보여주도록 설정합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// checkStruct 구조체의 유효성을 검사하고, 사용자 친화적인 에러 메시지를 반환합니다.
func checkStruct(v *validator.Validate, s interface{}, contextName string) error {
	if err := v.Struct(s); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			// 첫 번째 에러만 상세히 보고
			firstErr := validationErrors[0]
			return apperrors.Newf(apperrors.Startup, "%s의 설정이 올바르지 않습니다: %s=%v (조건: %s)", contextName, firstErr.Field(), firstErr.Value(), firstErr.Tag())
		}
		return apperrors.Wrapf(err, apperrors.Startup, "%s 유효성 검증에 실패했습니다", contextName)
	}
	return nil
}
