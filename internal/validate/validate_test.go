package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		accepted bool
		message  string
	}{
		{name: "empty", raw: "", message: "Task cannot be empty!"},
		{name: "whitespace only", raw: " \t\n  ", message: "Task cannot be empty!"},
		{name: "single char", raw: "a", accepted: true},
		{name: "padded", raw: "   Buy milk  ", accepted: true},
		{name: "exactly max", raw: strings.Repeat("x", MaxLength), accepted: true},
		{name: "max after trim", raw: "  " + strings.Repeat("x", MaxLength) + "  ", accepted: true},
		{name: "over max", raw: strings.Repeat("x", MaxLength+1), message: "Task must not exceed 200 characters"},
		{name: "multibyte at max", raw: strings.Repeat("é", MaxLength), accepted: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Task(tt.raw)
			assert.Equal(t, tt.accepted, got.Accepted)
			assert.Equal(t, tt.message, got.Message)
			if !tt.accepted {
				assert.NotEmpty(t, got.Message)
			}
		})
	}
}

func TestResultErr(t *testing.T) {
	require.NoError(t, Task("ok").Err())

	err := Task("").Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRejected))

	var rej *RejectedError
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, "Task cannot be empty!", rej.Message)
	assert.Equal(t, rej.Message, err.Error())
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, MaxLength, Remaining(""))
	assert.Equal(t, MaxLength-3, Remaining("abc"))
	assert.Equal(t, -1, Remaining(strings.Repeat("y", MaxLength+1)))
}
