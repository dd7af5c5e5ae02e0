package system

// InfoResponse 서버 정보 응답
type InfoResponse struct {
	Server         string `json:"server"`
	Version        string `json:"version"`
	Port           int    `json:"port"`
	RuntimeVersion string `json:"runtimeVersion"` // Go 런타임 버전 (예: go1.24.11)
	Platform       string `json:"platform"`       // 운영체제 (예: linux)
	Timestamp      string `json:"timestamp"`
}
