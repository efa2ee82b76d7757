package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapEnvToGinMode(t *testing.T) {
	tests := map[string]string{
		"production":  "release",
		"prod":        "release",
		"release":     "release",
		"test":        "test",
		"testing":     "test",
		"development": "debug",
		"debug":       "debug",
		"":            "debug",
	}
	for in, want := range tests {
		assert.Equal(t, want, MapEnvToGinMode(in), in)
	}
}
