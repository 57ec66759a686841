package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatError(t *testing.T) {
	err := NewFormatError("no detectable delimiter", "tried %q", ",;|")
	assert.True(t, IsFormatError(err))
	assert.False(t, IsSchemaError(err))
	assert.Contains(t, err.Error(), "no detectable delimiter")
	assert.Contains(t, err.Error(), `",;|"`)

	// Wrapping preserves the type.
	wrapped := fmt.Errorf("load table: %w", err)
	assert.True(t, IsFormatError(wrapped))
}

func TestSchemaError(t *testing.T) {
	err := &SchemaError{Reason: "no usable observations", Columns: []string{"A", "B"}}
	assert.True(t, IsSchemaError(err))
	assert.False(t, IsFormatError(err))
	assert.Contains(t, err.Error(), "no usable observations")
}

func TestFromPipeline(t *testing.T) {
	apiErr := FromPipeline(NewFormatError("empty file", "zero bytes"))
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "FORMAT_ERROR", apiErr.ErrorCode)

	apiErr = FromPipeline(&SchemaError{Reason: "missing columns"})
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "SCHEMA_ERROR", apiErr.ErrorCode)

	apiErr = FromPipeline(fmt.Errorf("disk on fire"))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}
