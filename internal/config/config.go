package config

import (
	"time"

	apperrors "github.com/darkkaiser/deepfake-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "deepfake-server"

	// DefaultPort PORT 환경 변수가 없을 때 사용하는 리스닝 포트입니다.
	DefaultPort = 5000

	// DefaultPublicDir 정적 파일을 제공하는 디렉토리입니다.
	DefaultPublicDir = "public"

	// EnvDevelopment 개발 환경 이름입니다. 환경 이름이 정확히 이 값일 때만 에러 응답에 스택 트레이스가 포함됩니다.
	EnvDevelopment = "development"
)

// 설정값을 읽어오는 환경 변수 이름입니다.
const (
	EnvKeyPort        = "PORT"
	EnvKeyEnvironment = "APP_ENV"
)

// envKeys 읽어들일 환경 변수와 설정 키의 대응 관계입니다.
// 목록에 없는 환경 변수는 무시합니다.
var envKeys = map[string]string{
	EnvKeyPort:        "port",
	EnvKeyEnvironment: "environment",
}

// AppConfig 프로세스 시작 시 한 번 생성되어 모든 컴포넌트에 전달되는 불변 설정입니다.
type AppConfig struct {
	// Port HTTP 서버가 바인딩할 포트
	Port int `json:"port" validate:"min=1,max=65535"`

	// Environment 실행 환경 이름 (예: production, development). 설정되지 않았다면 빈 문자열입니다.
	Environment string `json:"environment" validate:"omitempty,max=64,printascii"`

	// PublicDir 정적 파일 디렉토리
	PublicDir string `json:"-"`

	// StartedAt 프로세스 시작 시각 (uptime 계산 기준)
	StartedAt time.Time `json:"-"`
}

// EnvironmentName 화면 및 응답에 표시할 환경 이름을 반환합니다.
// 환경이 설정되지 않았다면 "development"를 반환합니다.
func (c *AppConfig) EnvironmentName() string {
	if c.Environment == "" {
		return EnvDevelopment
	}
	return c.Environment
}

// IsDevelopment 환경 이름이 명시적으로 "development"로 설정된 경우에만 true를 반환합니다.
//
// 환경이 설정되지 않은 경우 EnvironmentName()은 "development"를 반환하지만,
// 내부 정보 노출을 막기 위해 이 함수는 false를 반환합니다.
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// Load 환경 변수로부터 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return load(time.Now())
}

func load(startedAt time.Time) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(AppConfig{Port: DefaultPort}, "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Startup, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. 환경 변수 로드 (기본값 덮어쓰기)
	// 값이 비어있는 환경 변수는 설정되지 않은 것으로 간주합니다. (예: PORT= -> 5000)
	if err := k.Load(env.ProviderWithValue("", ".", func(key string, value string) (string, interface{}) {
		name, ok := envKeys[key]
		if !ok || value == "" {
			return "", nil
		}
		return name, value
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Startup, "환경 변수 로드에 실패했습니다")
	}

	// 3. 구조체 언마샬링
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true,
			WeaklyTypedInput: true, // "5000" -> 5000
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.Startup, "환경 변수 %s의 값이 올바르지 않습니다", EnvKeyPort)
	}

	appConfig.PublicDir = DefaultPublicDir
	appConfig.StartedAt = startedAt

	// 4. 유효성 검사
	if err := appConfig.validate(); err != nil {
		return nil, err
	}

	return &appConfig, nil
}

func (c *AppConfig) validate() error {
	return checkStruct(newValidator(), c, "AppConfig")
}
