package nookipedia

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		status   int
		wantKind ErrorKind
	}{
		{400, KindBadRequest},
		{401, KindUnauthorized},
		{404, KindNotFound},
		{500, KindServerError},
		{403, KindUnknown},
		{429, KindUnknown},
		{502, KindUnknown},
		{999, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			apiErr := classify(tt.status, ErrorBody{Title: "t", Details: "d"})
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			if tt.wantKind == KindUnknown {
				assert.Equal(t, unknownErrorTitle, apiErr.Title)
			} else {
				assert.Equal(t, "t", apiErr.Title)
				assert.Equal(t, "d", apiErr.Details)
			}
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	t.Run("with details", func(t *testing.T) {
		err := classify(404, ErrorBody{Title: "Not found", Details: "no such fish"})
		assert.Equal(t, "nookipedia API error: status 404: Not found: no such fish", err.Error())
	})

	t.Run("without details", func(t *testing.T) {
		err := classify(401, ErrorBody{Title: "Unauthorized"})
		assert.Equal(t, "nookipedia API error: status 401: Unauthorized", err.Error())
	})
}

func TestAPIErrorHelpers(t *testing.T) {
	assert.True(t, classify(404, ErrorBody{}).IsNotFound())
	assert.False(t, classify(500, ErrorBody{}).IsNotFound())
	assert.True(t, classify(401, ErrorBody{}).IsUnauthorized())
	assert.False(t, classify(404, ErrorBody{}).IsUnauthorized())
}

func TestAPIErrorAs(t *testing.T) {
	var err error = classify(500, ErrorBody{Title: "boom"})
	wrapped := fmt.Errorf("fetching fish: %w", err)

	var apiErr *APIError
	require.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, KindServerError, apiErr.Kind)
	assert.Equal(t, 500, apiErr.StatusCode)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "bad request", KindBadRequest.String())
	assert.Equal(t, "unauthorized", KindUnauthorized.String())
	assert.Equal(t, "not found", KindNotFound.String())
	assert.Equal(t, "server error", KindServerError.String())
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "unknown", ErrorKind(99).String())
}
