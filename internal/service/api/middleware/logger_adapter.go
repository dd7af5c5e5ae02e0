package middleware

import (
	"io"

	"github.com/darkkaiser/deepfake-server/internal/service/api/constants"
	applog "github.com/darkkaiser/deepfake-server/pkg/log"
	"github.com/labstack/gommon/log"
)

// Logger Echo의 log.Logger 인터페이스를 구현하는 Logger 어댑터입니다.
//
// Echo 프레임워크 내부에서 발생하는 로그(서버 에러, 경고 등)를 애플리케이션 로거로 전달합니다.
// 모든 로그에는 component 필드(api.echo)가 추가됩니다.
type Logger struct {
	entry *applog.Entry
}

// NewLogger 전역 Logger를 사용하는 Echo Logger 어댑터를 생성합니다.
func NewLogger() *Logger {
	return &Logger{entry: applog.WithComponent(constants.ComponentEcho)}
}

// Output 현재 출력 Writer를 반환합니다.
func (l *Logger) Output() io.Writer {
	return l.entry.Logger.Out
}

func (l *Logger) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}

func (l *Logger) Prefix() string {
	return ""
}

func (l *Logger) SetPrefix(string) {
	// Echo의 Prefix 기능은 사용하지 않음
}

// Level 애플리케이션 로거의 레벨을 Echo의 로그 레벨로 변환합니다.
func (l *Logger) Level() log.Lvl {
	switch l.entry.Logger.GetLevel() {
	case applog.DebugLevel, applog.TraceLevel:
		return log.DEBUG
	case applog.InfoLevel:
		return log.INFO
	case applog.WarnLevel:
		return log.WARN
	case applog.ErrorLevel:
		return log.ERROR
	}

	return log.OFF
}

// SetLevel Echo의 로그 레벨을 애플리케이션 로거의 레벨로 변환하여 설정합니다.
func (l *Logger) SetLevel(lvl log.Lvl) {
	switch lvl {
	case log.DEBUG:
		l.entry.Logger.SetLevel(applog.DebugLevel)
	case log.INFO:
		l.entry.Logger.SetLevel(applog.InfoLevel)
	case log.WARN:
		l.entry.Logger.SetLevel(applog.WarnLevel)
	case log.ERROR:
		l.entry.Logger.SetLevel(applog.ErrorLevel)
	case log.OFF:
		// log.OFF는 대응하는 레벨이 없으므로 무시
	}
}

func (l *Logger) SetHeader(string) {
	// Echo의 Header 기능은 사용하지 않음
}

// 아래 메서드들은 Echo의 Logger 인터페이스 요구사항을 충족하기 위해
// Entry의 해당 메서드로 단순 위임합니다.

func (l *Logger) Print(i ...interface{})                    { l.entry.Print(i...) }
func (l *Logger) Printf(format string, args ...interface{}) { l.entry.Printf(format, args...) }
func (l *Logger) Printj(j log.JSON)                         { l.entry.WithFields(applog.Fields(j)).Print() }

func (l *Logger) Debug(i ...interface{})                    { l.entry.Debug(i...) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *Logger) Debugj(j log.JSON)                         { l.entry.WithFields(applog.Fields(j)).Debug() }

func (l *Logger) Info(i ...interface{})                    { l.entry.Info(i...) }
func (l *Logger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }
func (l *Logger) Infoj(j log.JSON)                         { l.entry.WithFields(applog.Fields(j)).Info() }

func (l *Logger) Warn(i ...interface{})                    { l.entry.Warn(i...) }
func (l *Logger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }
func (l *Logger) Warnj(j log.JSON)                         { l.entry.WithFields(applog.Fields(j)).Warn() }

func (l *Logger) Error(i ...interface{})                    { l.entry.Error(i...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }
func (l *Logger) Errorj(j log.JSON)                         { l.entry.WithFields(applog.Fields(j)).Error() }

func (l *Logger) Fatal(i ...interface{})                    { l.entry.Fatal(i...) }
func (l *Logger) Fatalf(format string, args ...interface{}) { l.entry.Fatalf(format, args...) }
func (l *Logger) Fatalj(j log.JSON)                         { l.entry.WithFields(applog.Fields(j)).Fatal() }

func (l *Logger) Panic(i ...interface{})                    { l.entry.Panic(i...) }
func (l *Logger) Panicf(format string, args ...interface{}) { l.entry.Panicf(format, args...) }
func (l *Logger) Panicj(j log.JSON)                         { l.entry.WithFields(applog.Fields(j)).Panic() }
