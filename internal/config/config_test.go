package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("EP_TEST_DSN", "user:pass@tcp(db:3306)/eventpulse")
	assert.Equal(t, "user:pass@tcp(db:3306)/eventpulse", GetEnv("EP_TEST_DSN", "fallback"))

	// 未设置和设空串都走默认值
	assert.Equal(t, "fallback", GetEnv("EP_TEST_MISSING", "fallback"))
	t.Setenv("EP_TEST_EMPTY", "")
	assert.Equal(t, "fallback", GetEnv("EP_TEST_EMPTY", "fallback"))
}
