// Package version 빌드 시점에 주입된 메타데이터와 실행 환경 정보를 제공합니다.
//
// 커밋 해시와 빌드 시간은 링커 플래그로 주입합니다.
//
//	go build -ldflags "-X github.com/darkkaiser/deepfake-server/internal/pkg/version.gitCommitHash=$(git rev-parse --short HEAD)"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

const unknown = "unknown"

// 링커 플래그(-ldflags -X)로 주입되는 값입니다. 직접 참조하지 말고 Get()을 사용합니다.
var (
	gitCommitHash = ""
	buildDate     = ""
)

// readBuildInfo 테스트에서 교체할 수 있도록 변수로 선언합니다.
var readBuildInfo = debug.ReadBuildInfo

// Info 빌드 및 실행 환경 정보입니다.
type Info struct {
	Commit     string `json:"commit"`      // Git 커밋 해시 (short)
	BuildDate  string `json:"build_date"`  // 빌드 시간
	GoVersion  string `json:"go_version"`  // Go 런타임 버전 (예: go1.24.11)
	OS         string `json:"os"`          // 실행 중인 운영체제 (예: linux)
	Arch       string `json:"arch"`        // 실행 중인 아키텍처 (예: amd64)
	DirtyBuild bool   `json:"dirty_build"` // 커밋되지 않은 변경사항이 포함된 빌드인지 여부
}

var get = sync.OnceValue(func() Info {
	return collect(strings.TrimSpace(gitCommitHash), strings.TrimSpace(buildDate))
})

// Get 빌드 정보를 반환합니다. 최초 호출 시 한 번만 수집합니다.
func Get() Info {
	return get()
}

// collect 주입된 값에 런타임 정보와 VCS 메타데이터를 보강하여 Info를 생성합니다.
// 링커 플래그 없이 빌드된 경우(go run 등)에도 debug.ReadBuildInfo로 커밋 정보를 확보합니다.
func collect(commit, date string) Info {
	bi := Info{
		Commit:    commit,
		BuildDate: date,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}

	if val, ok := readBuildInfo(); ok {
		for _, setting := range val.Settings {
			switch setting.Key {
			case "vcs.revision":
				if bi.Commit == "" {
					bi.Commit = shorten(setting.Value)
				}
			case "vcs.time":
				if bi.BuildDate == "" {
					bi.BuildDate = setting.Value
				}
			case "vcs.modified":
				bi.DirtyBuild = setting.Value == "true"
			}
		}
	}

	if bi.Commit == "" {
		bi.Commit = unknown
	}
	if bi.BuildDate == "" {
		bi.BuildDate = unknown
	}

	return bi
}

func shorten(revision string) string {
	const shortHashLength = 7
	if len(revision) > shortHashLength {
		return revision[:shortHashLength]
	}
	return revision
}

// String 로그 출력용 문자열을 반환합니다.
func (i Info) String() string {
	s := fmt.Sprintf("commit=%s, build_date=%s, %s %s/%s", i.Commit, i.BuildDate, i.GoVersion, i.OS, i.Arch)
	if i.DirtyBuild {
		s += " (dirty)"
	}
	return s
}
