package constants

// 시스템 시작/구동 시 발생할 수 있는 크리티컬한 패닉 메시지 상수입니다.
const (
	// PanicMsgAppConfigRequired 패닉 메시지: AppConfig 필수
	PanicMsgAppConfigRequired = "AppConfig는 필수입니다"

	// PanicMsgViewRendererRequired 패닉 메시지: 뷰 렌더러 필수
	PanicMsgViewRendererRequired = "echo.Renderer는 필수입니다"
)
