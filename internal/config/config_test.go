package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("DWALLET_TEST_SET", "value")
	assert.Equal(t, "value", GetEnv("DWALLET_TEST_SET", "fallback"))
	assert.Equal(t, "fallback", GetEnv("DWALLET_TEST_UNSET", "fallback"))

	t.Setenv("DWALLET_TEST_EMPTY", "")
	assert.Equal(t, "fallback", GetEnv("DWALLET_TEST_EMPTY", "fallback"))
}

func TestGetIntEnv(t *testing.T) {
	t.Setenv("DWALLET_TEST_INT", "42")
	assert.Equal(t, 42, GetIntEnv("DWALLET_TEST_INT", 7))

	t.Setenv("DWALLET_TEST_INT", "not-a-number")
	assert.Equal(t, 7, GetIntEnv("DWALLET_TEST_INT", 7))
	assert.Equal(t, 7, GetIntEnv("DWALLET_TEST_INT_UNSET", 7))
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("DWALLET_TEST_DUR", "90s")
	assert.Equal(t, 90*time.Second, GetDurationEnv("DWALLET_TEST_DUR", time.Minute))

	t.Setenv("DWALLET_TEST_DUR", "soon")
	assert.Equal(t, time.Minute, GetDurationEnv("DWALLET_TEST_DUR", time.Minute))
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	assert.True(t, IsProduction())

	t.Setenv("ENV", "development")
	assert.False(t, IsProduction())
}
