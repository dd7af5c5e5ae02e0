// Package mark 콘솔 배너와 로그에서 사용되는 이모지 상수를 중앙 관리하는 패키지입니다.
package mark

// Mark 이모지 상수를 위한 타입입니다.
type Mark string

const (
	// 서버 기동
	Launch Mark = "🚀"

	// 로컬 접속 주소
	Local Mark = "📍"

	// 네트워크 접속 주소
	Network Mark = "🌐"

	// 헬스체크
	HealthCheck Mark = "📡"

	// 실행 환경
	Environment Mark = "🌍"

	// 시각
	Clock Mark = "⏰"
)

var all = []Mark{Launch, Local, Network, HealthCheck, Environment, Clock}

// Values 정의된 모든 마크를 반환합니다. 반환된 슬라이스는 호출자가 자유롭게 수정할 수 있는 복사본입니다.
func Values() []Mark {
	values := make([]Mark, len(all))
	copy(values, all)
	return values
}

// IsValid 정의된 마크인지 확인합니다.
func (m Mark) IsValid() bool {
	for _, v := range all {
		if v == m {
			return true
		}
	}
	return false
}

// String 마크의 순수 이모지 값을 문자열로 반환합니다.
func (m Mark) String() string {
	return string(m)
}
