package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	const limit = 5

	e := echo.New()
	e.POST("/mounts/:id/load", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}, RateLimiter(limit))

	post := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/mounts/abc/load", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("allows requests within the limit", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, post("192.0.2.1:1234").Code)
	})

	t.Run("blocks requests exceeding the burst", func(t *testing.T) {
		clientIP := "192.0.2.2:1234"
		for i := 0; i < limit; i++ {
			require.Equal(t, http.StatusOK, post(clientIP).Code, "request %d should be allowed", i+1)
		}

		rec := post(clientIP)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "Too many requests")
	})

	t.Run("limits are per client", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, post("192.0.2.3:1234").Code)
	})
}
