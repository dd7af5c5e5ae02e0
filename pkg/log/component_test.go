package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithComponentAndFields(t *testing.T) {
	t.Parallel()

	fields := Fields{"path": "/api/health"}
	entry := WithComponentAndFields("api.handler", fields)

	assert.Equal(t, "api.handler", entry.Data["component"])
	assert.Equal(t, "/api/health", entry.Data["path"])
	assert.NotContains(t, fields, "component", "원본 fields 맵은 수정되지 않아야 합니다")
}

func TestWithComponent(t *testing.T) {
	t.Parallel()

	entry := WithComponent("api.service")
	assert.Equal(t, Fields{"component": "api.service"}, entry.Data)
	assert.Same(t, StandardLogger(), entry.Logger)
}
