package utils

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolhub/kolhub/internal/shared/errors"
)

type bindTarget struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"contact_email" binding:"omitempty,email"`
	Role  string `json:"role" binding:"omitempty,oneof=owner admin staff"`
	Days  int    `json:"duration_days" binding:"omitempty,min=1"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	UseJSONFieldNames()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var target bindTarget
	return c.ShouldBindJSON(&target)
}

func TestBindingError_ValidationMessages(t *testing.T) {
	err := bind(t, `{"contact_email":"nope","role":"root","duration_days":-1}`)
	require.Error(t, err)

	appErr := errors.GetAppError(BindingError(err))
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, "validation failed", appErr.Message)
	assert.Contains(t, appErr.Details, "name is required")
	assert.Contains(t, appErr.Details, "contact_email must be a valid email address")
	assert.Contains(t, appErr.Details, "role must be one of [owner admin staff]")
	assert.Contains(t, appErr.Details, "duration_days must be at least 1")
}

func TestBindingError_MalformedJSON(t *testing.T) {
	err := bind(t, `{"name":`)
	require.Error(t, err)

	appErr := errors.GetAppError(BindingError(err))
	require.NotNil(t, appErr)
	assert.Equal(t, "invalid request body", appErr.Message)
	assert.True(t, errors.IsValidationError(appErr))
}
