package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubBuildInfo 테스트 동안 readBuildInfo를 교체합니다.
func stubBuildInfo(t *testing.T, settings []debug.BuildSetting, ok bool) {
	t.Helper()

	original := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		if !ok {
			return nil, false
		}
		return &debug.BuildInfo{Settings: settings}, true
	}
	t.Cleanup(func() { readBuildInfo = original })
}

func TestCollect(t *testing.T) {
	tests := []struct {
		name     string
		commit   string
		date     string
		settings []debug.BuildSetting
		ok       bool
		want     Info
	}{
		{
			name: "빌드 정보 없음",
			want: Info{Commit: unknown, BuildDate: unknown},
		},
		{
			name:   "링커 플래그로 주입된 값 우선",
			commit: "abc1234",
			date:   "2026-10-17T09:00:00Z",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "ffffffffffffffff"},
				{Key: "vcs.time", Value: "2000-01-01T00:00:00Z"},
			},
			ok:   true,
			want: Info{Commit: "abc1234", BuildDate: "2026-10-17T09:00:00Z"},
		},
		{
			name: "VCS 메타데이터로 보강",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.time", Value: "2026-10-17T09:00:00Z"},
				{Key: "vcs.modified", Value: "true"},
			},
			ok:   true,
			want: Info{Commit: "0123456", BuildDate: "2026-10-17T09:00:00Z", DirtyBuild: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubBuildInfo(t, tt.settings, tt.ok)

			tt.want.GoVersion = runtime.Version()
			tt.want.OS = runtime.GOOS
			tt.want.Arch = runtime.GOARCH

			assert.Equal(t, tt.want, collect(tt.commit, tt.date))
		})
	}
}

func TestInfo_String(t *testing.T) {
	t.Parallel()

	info := Info{Commit: "abc1234", BuildDate: "unknown", GoVersion: "go1.24.0", OS: "linux", Arch: "amd64"}
	assert.Equal(t, "commit=abc1234, build_date=unknown, go1.24.0 linux/amd64", info.String())

	info.DirtyBuild = true
	assert.Contains(t, info.String(), "(dirty)")
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.NotEmpty(t, info.Commit)
	assert.Equal(t, info, Get())
}
