package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Size string `validate:"omitempty,oneof=xs sm md"`
	Name string `validate:"max=4"`
}

func TestCustomValidator(t *testing.T) {
	cv := NewValidator()

	assert.NoError(t, cv.Validate(sampleRequest{Size: "sm", Name: "Ada"}))
	assert.NoError(t, cv.Validate(sampleRequest{}))
	assert.Error(t, cv.Validate(sampleRequest{Size: "huge"}))
}

func TestBadRequest(t *testing.T) {
	t.Run("validation errors list fields", func(t *testing.T) {
		err := NewValidator().Validate(sampleRequest{Size: "huge", Name: "Grace"})
		he := BadRequest(err)

		assert.Equal(t, http.StatusBadRequest, he.Code)
		resp, ok := he.Message.(ErrorResponse)
		require.True(t, ok)
		assert.Equal(t, "invalid_request", resp.Code)
		assert.Contains(t, resp.Message, `Size failed "oneof"`)
		assert.Contains(t, resp.Message, `Name failed "max"`)
	})

	t.Run("http errors keep their message", func(t *testing.T) {
		he := BadRequest(echo.NewHTTPError(http.StatusUnsupportedMediaType, "bad body"))
		assert.Equal(t, http.StatusBadRequest, he.Code)
		assert.Equal(t, "bad body", he.Message.(ErrorResponse).Message)
	})

	t.Run("plain errors", func(t *testing.T) {
		he := BadRequest(errors.New("avatar: unknown size"))
		assert.Equal(t, "avatar: unknown size", he.Message.(ErrorResponse).Message)
	})
}

func TestHealthGet(t *testing.T) {
	e := echo.New()
	h := NewHealthHandler("1.2.3", func() int { return 7 })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.HealthGet(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, HealthResponse{Status: "ok", Version: "1.2.3", Mounts: 7}, resp)
}
