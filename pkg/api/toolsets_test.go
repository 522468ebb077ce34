package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeRequest map[string]any

func (f fakeRequest) GetArguments() map[string]any { return f }

func TestToolHandlerParamsGetString(t *testing.T) {
	params := ToolHandlerParams{ToolCallRequest: fakeRequest{"name": "value", "number": 7}}

	assert.Equal(t, "value", params.GetString("name", "fallback"))
	assert.Equal(t, "fallback", params.GetString("missing", "fallback"))
	assert.Equal(t, "fallback", params.GetString("number", "fallback"), "wrong type falls back")
}

func TestToolHandlerParamsGetBool(t *testing.T) {
	params := ToolHandlerParams{ToolCallRequest: fakeRequest{"flag": true}}

	assert.True(t, params.GetBool("flag", false))
	assert.True(t, params.GetBool("missing", true))
}

func TestToolHandlerParamsGetInt(t *testing.T) {
	// JSON numbers arrive as float64.
	params := ToolHandlerParams{ToolCallRequest: fakeRequest{"slot": float64(2), "exact": 3}}

	assert.Equal(t, 2, params.GetInt("slot", 0))
	assert.Equal(t, 3, params.GetInt("exact", 0))
	assert.Equal(t, 9, params.GetInt("missing", 9))
}
