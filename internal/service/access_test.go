package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessGate_SubmitCode(t *testing.T) {
	gate := NewAccessGate("3675")

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "exact match", input: "3675", want: true},
		{name: "wrong code", input: "0000", want: false},
		{name: "empty", input: "", want: false},
		{name: "prefix", input: "367", want: false},
		{name: "surrounding spaces", input: " 3675 ", want: false},
		{name: "longer", input: "36750", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.SubmitCode(tt.input))
		})
	}
}

func TestAccessGate_CaseSensitive(t *testing.T) {
	gate := NewAccessGate("Secret")

	assert.True(t, gate.SubmitCode("Secret"))
	assert.False(t, gate.SubmitCode("secret"))
}
