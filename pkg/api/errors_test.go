package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := NewError(KindNotFound, 404, "qkview %s does not exist", "123")
	assert.Equal(t, "not_found error (status 404): qkview 123 does not exist", err.Error())

	err = NewError(KindConfiguration, 0, "credentials missing")
	assert.Equal(t, "configuration error: credentials missing", err.Error())
}

func TestIsKind(t *testing.T) {
	err := NewError(KindAuthentication, 401, "rejected")
	assert.True(t, IsKind(err, KindAuthentication))
	assert.False(t, IsKind(err, KindUpstream))

	wrapped := fmt.Errorf("tool failed: %w", err)
	assert.True(t, IsKind(wrapped, KindAuthentication))

	assert.False(t, IsKind(errors.New("plain"), KindAuthentication))
	assert.False(t, IsKind(nil, KindAuthentication))
}

func TestErrorAs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewError(KindUpstream, 503, "down"))

	var apiErr *Error
	assert.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, 503, apiErr.Status)
	assert.Equal(t, KindUpstream, apiErr.Kind)
}
