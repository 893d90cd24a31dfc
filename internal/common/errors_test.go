package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPErrorFrom(t *testing.T) {
	errMissing := errors.New("missing")
	errMath := errors.New("overflow")

	got := HTTPErrorFrom(fmt.Errorf("%w: key", errMissing), errMissing)
	assert.Equal(t, http.StatusBadRequest, got.StatusCode)
	assert.Equal(t, "missing: key", got.Message)

	got = HTTPErrorFrom(errMath, errMissing)
	assert.Equal(t, http.StatusUnprocessableEntity, got.StatusCode)

	passthrough := HTTPErrorTooManyRequests("")
	assert.Same(t, passthrough, HTTPErrorFrom(fmt.Errorf("wrapped: %w", passthrough)))
	assert.Equal(t, "Rate limit exceeded", passthrough.Message)
}
