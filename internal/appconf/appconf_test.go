package appconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvFromString(t *testing.T) {
	tests := []struct {
		name string
		want Environment
	}{
		{"development", Development},
		{"test", Test},
		{"Production", Production},
		{"", Development},
		{"staging", Development},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EnvFromString(tt.name))
		})
	}
}

func TestEnvironmentString(t *testing.T) {
	assert.Equal(t, "development", Development.String())
	assert.Equal(t, "test", Test.String())
	assert.Equal(t, "production", Production.String())
}
