package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer Setup에서 생성된 로그 파일들의 해제를 통합 관리합니다.
// 여러 번 호출해도 안전하며, 두 번째 이후 호출은 즉시 nil을 반환합니다.
type closer struct {
	closers []io.Closer

	hook *hook

	closed atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	// 닫힌 파일에 쓰기가 시도되지 않도록 Hook을 먼저 비활성화합니다.
	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
