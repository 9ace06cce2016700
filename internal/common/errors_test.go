package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("EXTRACTION_ERROR", "document text is not valid UTF-8", ErrInvalidInput)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "EXTRACTION_ERROR: document text is not valid UTF-8: invalid input", err.Error())
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrInvalidInput))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrValidation))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(ErrDatabase))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("anything else")))

	wrapped := NewAppError("RECORD_INVALID", "bad record", ErrValidation)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(wrapped))
}
