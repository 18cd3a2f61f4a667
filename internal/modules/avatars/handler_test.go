package avatars

import (
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/avatarkit/internal/avatar"
	"github.com/nfrund/avatarkit/internal/handlers"
	"github.com/nfrund/avatarkit/internal/identity"
	"github.com/nfrund/avatarkit/internal/mount"
	"github.com/nfrund/avatarkit/internal/rendering"
	"github.com/nfrund/avatarkit/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mountIDPattern = regexp.MustCompile(`id="avatar-([0-9a-f-]{36})"`)

type clickRecorder struct {
	mu    sync.Mutex
	specs []avatar.Spec
}

func (r *clickRecorder) click(ctx context.Context, id string, spec avatar.Spec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs = append(r.specs, spec)
	return nil
}

type testServer struct {
	e      *echo.Echo
	mounts *mount.Store
	clicks *clickRecorder
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	clicks := &clickRecorder{}
	mounts := mount.NewStore(mount.WithClickHandler(clicks.click))
	themes := theme.NewStore(theme.Default())

	e := echo.New()
	e.Validator = handlers.NewValidator()
	h := NewHandler(themes, mounts, rendering.NewUniversalRenderer(nil), "/avatars/", 5)
	h.Routes(e.Group("/avatars"), nil)

	return &testServer{e: e, mounts: mounts, clicks: clicks}
}

func (s *testServer) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func mountID(t *testing.T, body string) string {
	t.Helper()
	m := mountIDPattern.FindStringSubmatch(body)
	require.Len(t, m, 2, "no mount id in %s", body)
	return m[1]
}

func TestFragmentGet_InitialsAreStatic(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/avatars/fragment?name=Ada+Lovelace&size=lg")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-state="initials"`)
	assert.Contains(t, body, ">AL</span>")
	assert.Contains(t, body, "width:48px")
	assert.NotContains(t, body, "/mounts/")
	assert.Equal(t, 0, s.mounts.Len())
}

func TestFragmentGet_ImageLifecycle(t *testing.T) {
	s := newTestServer(t)

	q := url.Values{"image": {"https://cdn.example.com/ada.png"}, "name": {"Ada Lovelace"}}
	rec := s.do(http.MethodGet, "/avatars/fragment?"+q.Encode())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-state="loading"`)
	require.Equal(t, 1, s.mounts.Len())

	id := mountID(t, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "/avatars/mounts/"+id+"/load")
	assert.Contains(t, rec.Body.String(), "/avatars/mounts/"+id+"/error")

	rec = s.do(http.MethodPost, "/avatars/mounts/"+id+"/load")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-state="image"`)
	assert.Contains(t, rec.Body.String(), `id="avatar-`+id+`"`)

	rec = s.do(http.MethodPost, "/avatars/mounts/"+id+"/error")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-state="initials"`)
	assert.Contains(t, rec.Body.String(), ">AL</span>")

	// An error is terminal for the mount.
	rec = s.do(http.MethodPost, "/avatars/mounts/"+id+"/load")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-state="initials"`)
}

func TestFragmentGet_ForceLoading(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/avatars/fragment?name=Ada&loading=true")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-state="loading"`)
	assert.Contains(t, rec.Body.String(), `aria-busy="true"`)
}

func TestFragmentGet_ForceLoadingImageIsStatic(t *testing.T) {
	s := newTestServer(t)

	q := url.Values{"image": {"https://cdn.example.com/ada.png"}, "loading": {"true"}}
	rec := s.do(http.MethodGet, "/avatars/fragment?"+q.Encode())

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-state="loading"`)
	assert.NotContains(t, body, "<img")
	assert.NotContains(t, body, "/mounts/")
	assert.Equal(t, 0, s.mounts.Len())
}

func TestMountEvents_ForceLoadingDoesNotRearmHooks(t *testing.T) {
	s := newTestServer(t)

	q := url.Values{"image": {"https://cdn.example.com/ada.png"}, "loading": {"true"}, "interactive": {"true"}}
	rec := s.do(http.MethodGet, "/avatars/fragment?"+q.Encode())
	require.Equal(t, http.StatusOK, rec.Code)
	id := mountID(t, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "/load")
	assert.Contains(t, rec.Body.String(), "/avatars/mounts/"+id+"/click")

	for _, event := range []string{"load", "error", "load"} {
		rec = s.do(http.MethodPost, "/avatars/mounts/"+id+"/"+event)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `data-state="loading"`)
		assert.NotContains(t, body, "<img", event)
		assert.NotContains(t, body, "/avatars/mounts/"+id+"/load", event)
		assert.NotContains(t, body, "/avatars/mounts/"+id+"/error", event)
	}
}

func TestRoutes_LimitsMountingRoutes(t *testing.T) {
	themes := theme.NewStore(theme.Default())
	e := echo.New()
	e.Validator = handlers.NewValidator()

	var limited []string
	limit := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limited = append(limited, c.Path())
			return echo.NewHTTPError(http.StatusTooManyRequests)
		}
	}
	NewHandler(themes, mount.NewStore(), rendering.NewUniversalRenderer(nil), "/avatars", 5).Routes(e.Group("/avatars"), limit)

	for _, target := range []string{"/avatars/preview?name=Ada", "/avatars/fragment?name=Ada", "/avatars/group?name=Ada", "/avatars/mounts/x/load"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(methodFor(target), target, nil))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code, target)
	}
	for _, target := range []string{"/avatars/color?name=Ada", "/avatars/initials.png?name=Ada"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}
	assert.Len(t, limited, 4)
}

func methodFor(target string) string {
	if strings.Contains(target, "/mounts/") {
		return http.MethodPost
	}
	return http.MethodGet
}

func TestFragmentGet_BadRequest(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{name: "unknown size", query: "size=huge"},
		{name: "unknown shape", query: "shape=hexagon"},
		{name: "unknown status", query: "status=dnd"},
		{name: "script image", query: "image=" + url.QueryEscape("javascript:alert(1)")},
		{name: "relative image", query: "image=avatar.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodGet, "/avatars/fragment?"+tt.query)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid_request")
		})
	}
	assert.Equal(t, 0, s.mounts.Len())
}

func TestMountEvents_NotFound(t *testing.T) {
	s := newTestServer(t)

	for _, event := range []string{"load", "error", "click"} {
		rec := s.do(http.MethodPost, "/avatars/mounts/does-not-exist/"+event)
		assert.Equal(t, http.StatusNotFound, rec.Code, event)
		assert.Contains(t, rec.Body.String(), "mount_not_found")
	}
}

func TestClickPost(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/avatars/fragment?name=Grace+Hopper&interactive=true")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `role="button"`)
	id := mountID(t, rec.Body.String())

	rec = s.do(http.MethodPost, "/avatars/mounts/"+id+"/click")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, s.clicks.specs, 1)
	assert.Equal(t, "Grace Hopper", s.clicks.specs[0].DisplayName)
}

func TestClickPost_NotInteractive(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/avatars/fragment?image="+url.QueryEscape("/static/grace.png"))
	require.Equal(t, http.StatusOK, rec.Code)
	id := mountID(t, rec.Body.String())

	rec = s.do(http.MethodPost, "/avatars/mounts/"+id+"/click")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_interactive")
	assert.Empty(t, s.clicks.specs)
}

func TestGroupGet(t *testing.T) {
	s := newTestServer(t)

	q := url.Values{"size": {"sm"}, "spacing": {"normal"}}
	for _, name := range []string{"Ada", "Grace", "Linus", "Ken", "Rob", "Barbara", "Frances", "Radia"} {
		q.Add("name", name)
	}
	rec := s.do(http.MethodGet, "/avatars/group?"+q.Encode())

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, 6, strings.Count(body, `class="avatar-group-item`))
	assert.Contains(t, body, ">+3</span>")
	assert.Contains(t, body, `data-hidden="3"`)
	assert.Contains(t, body, "z-index:5;margin-left:0px")
}

func TestGroupGet_MaxAndImages(t *testing.T) {
	s := newTestServer(t)

	q := url.Values{
		"name":  {"Ada", "Grace", "Linus"},
		"image": {"https://cdn.example.com/ada.png"},
		"max":   {"2"},
	}
	rec := s.do(http.MethodGet, "/avatars/group?"+q.Encode())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ">+1</span>")
	assert.Equal(t, 1, s.mounts.Len(), "only the image member needs a mount")
}

func TestGroupGet_BadRequest(t *testing.T) {
	s := newTestServer(t)

	for _, query := range []string{"name=Ada&max=-1", "name=Ada&spacing=wide", "name=Ada&image=ftp%3A%2F%2Fx"} {
		rec := s.do(http.MethodGet, "/avatars/group?"+query)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestInitialsGet(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/avatars/initials.png?name=Ada+Lovelace&px=48&shape=square")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 48, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestInitialsGet_DefaultSize(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/avatars/initials.png?name=Ada")

	require.Equal(t, http.StatusOK, rec.Code)
	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, defaultRasterPx, img.Bounds().Dx())
}

func TestInitialsGet_BadRequest(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/avatars/initials.png?px=4").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/avatars/initials.png?px=4096").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/avatars/initials.png?shape=star").Code)
}

func TestColorGet(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/avatars/color?name=Hello+World")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ColorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Hello World", resp.Name)
	assert.Equal(t, theme.Default().Palette[6], resp.Color)
	assert.Equal(t, identity.ColorFor("Hello World", theme.Default().Palette), resp.Color)
	assert.Equal(t, "HW", resp.Initials)
}

func TestPreviewGet(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/avatars/preview?name=Ada+Lovelace&status=online&show_status=true")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, "<title>Avatar preview - avatarkit</title>")
	assert.Contains(t, body, "htmx.org")
	assert.Contains(t, body, `data-status="online"`)
	assert.Contains(t, body, "<dd>Ada Lovelace</dd>")
}
