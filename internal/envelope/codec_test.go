package envelope

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, OK(map[string]any{"version": "2.12.0"}))
	require.NoError(t, err)

	res, err := Decode(&buf)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Nil(t, res.Error)

	data, ok := res.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2.12.0", data["version"])
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"failure without error", `{"success": false}`},
		{"success with error", `{"success": true, "error": {"category": "execution-error", "message": "x"}}`},
		{"error without message", `{"success": false, "error": {"category": "execution-error"}}`},
		{"not json", `annotation complete`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.json))
			assert.Error(t, err)
		})
	}
}

func TestFromErrorKeepsCategory(t *testing.T) {
	res := FromError(Errorf(NotConfigured, "modules directory is not set"))
	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Equal(t, NotConfigured, res.Error.Category)
}

func TestFromErrorUnwrapsClassified(t *testing.T) {
	wrapped := fmt.Errorf("invoke: %w", Errorf(InvalidInput, "bad genome assembly"))
	res := FromError(wrapped)
	require.NotNil(t, res.Error)
	assert.Equal(t, InvalidInput, res.Error.Category)
	assert.Equal(t, "bad genome assembly", res.Error.Message)
}

func TestFromErrorDefaultsToExecution(t *testing.T) {
	res := FromError(errors.New("module not found in store"))
	require.NotNil(t, res.Error)
	assert.Equal(t, ExecutionError, res.Error.Category)
	assert.Equal(t, "module not found in store", res.Error.Message)
}
