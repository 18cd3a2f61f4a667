package rendering_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/avatarkit/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestRenderComponent(t *testing.T) {
	r := rendering.NewUniversalRenderer(nil)

	t.Run("gomponents node", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), h.Span(g.Text("JD")))
		require.NoError(t, err)
		assert.Equal(t, "<span>JD</span>", string(out))
	})

	t.Run("templ component", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), templ.Raw("<i>x</i>"))
		require.NoError(t, err)
		assert.Equal(t, "<i>x</i>", string(out))
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := r.RenderComponent(context.Background(), 42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported component type: int")
	})
}

func TestRenderPage(t *testing.T) {
	e := echo.New()
	r := rendering.NewUniversalRenderer(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, r.RenderPage(c, http.StatusCreated, h.P(g.Text("ok"))))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "<p>ok</p>", rec.Body.String())
}

func TestRenderPage_Error(t *testing.T) {
	e := echo.New()
	r := rendering.NewUniversalRenderer(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := r.RenderPage(c, http.StatusOK, struct{}{})
	require.Error(t, err)
	assert.Empty(t, rec.Body.String())
}

func TestEchoRender(t *testing.T) {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer(nil)
	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusOK, "", h.B(g.Text("bold")))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<b>bold</b>", rec.Body.String())
}
