package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	assert.Equal(t, "value", GetEnvString("TEST_STRING", "default"))

	t.Setenv("TEST_STRING", "")
	assert.Equal(t, "default", GetEnvString("TEST_STRING", "default"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("TEST_INT", 7))

	t.Setenv("TEST_INT", "not a number")
	assert.Equal(t, 7, GetEnvInt("TEST_INT", 7))

	t.Setenv("TEST_INT", "")
	assert.Equal(t, 7, GetEnvInt("TEST_INT", 7))
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "6.5")
	assert.Equal(t, 6.5, GetEnvFloat("TEST_FLOAT", 5.0))

	t.Setenv("TEST_FLOAT", "bogus")
	assert.Equal(t, 5.0, GetEnvFloat("TEST_FLOAT", 5.0))
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true}, {"true", true}, {"TRUE", true}, {"t", true},
		{"0", false}, {"false", false}, {"False", false}, {"f", false},
	}
	for _, tt := range tests {
		t.Setenv("TEST_BOOL", tt.value)
		assert.Equal(t, tt.want, GetEnvBool("TEST_BOOL", !tt.want), "value %q", tt.value)
	}

	t.Setenv("TEST_BOOL", "maybe")
	assert.True(t, GetEnvBool("TEST_BOOL", true))
	assert.False(t, GetEnvBool("TEST_BOOL", false))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "soon")
	assert.Equal(t, time.Minute, GetEnvDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "")
	assert.Equal(t, time.Minute, GetEnvDuration("TEST_DURATION", time.Minute))
}
