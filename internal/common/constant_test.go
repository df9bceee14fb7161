package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLocalEnvironment(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"local", true},
		{"Local", true},
		{"DEVELOPMENT", true},
		{" development ", true},
		{"production", false},
		{"staging", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLocalEnvironment(tt.env))
		})
	}
}
