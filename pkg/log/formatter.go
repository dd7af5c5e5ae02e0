package log

// silentFormatter 아무런 동작도 하지 않는 포맷터입니다.
// 출력이 io.Discard여도 Logrus는 포맷팅을 수행하므로 이를 막기 위해 사용합니다. (실제 포맷팅은 hook에서 수행)
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *Entry) ([]byte, error) {
	return nil, nil
}
