// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service main에서 시작하고 종료를 기다리는 장기 실행 서비스입니다.
//
// Start를 호출하기 전에 serviceStopWG.Add(1)을 호출해야 하며, 서비스는 완전히 종료되었을 때
// (또는 Start가 에러를 반환할 때) serviceStopWG.Done()을 호출합니다.
// serviceStopCtx가 취소되면 서비스는 종료 절차를 시작합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
