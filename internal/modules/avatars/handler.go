package avatars

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/avatarkit/internal/avatar"
	"github.com/nfrund/avatarkit/internal/avatargroup"
	"github.com/nfrund/avatarkit/internal/handlers"
	"github.com/nfrund/avatarkit/internal/identity"
	"github.com/nfrund/avatarkit/internal/middleware"
	"github.com/nfrund/avatarkit/internal/mount"
	"github.com/nfrund/avatarkit/internal/raster"
	"github.com/nfrund/avatarkit/internal/rendering"
	"github.com/nfrund/avatarkit/internal/theme"
	"github.com/nfrund/avatarkit/internal/view"
	g "maragu.dev/gomponents"
)

const defaultRasterPx = 64

// Handler serves avatar fragments, pages and the image event callbacks.
type Handler struct {
	themes   *theme.Store
	mounts   *mount.Store
	renderer rendering.Renderer
	basePath string
	groupMax int
}

// NewHandler creates a handler whose callback URLs live under basePath.
func NewHandler(themes *theme.Store, mounts *mount.Store, renderer rendering.Renderer, basePath string, groupMax int) *Handler {
	return &Handler{
		themes:   themes,
		mounts:   mounts,
		renderer: renderer,
		basePath: strings.TrimSuffix(basePath, "/"),
		groupMax: groupMax,
	}
}

// Routes registers the handler on group. Routes that create mounts and the
// mount event callbacks go through limit.
func (h *Handler) Routes(group *echo.Group, limit echo.MiddlewareFunc) {
	var limited []echo.MiddlewareFunc
	if limit != nil {
		limited = append(limited, limit)
	}

	group.GET("/preview", h.PreviewGet, limited...)
	group.GET("/fragment", h.FragmentGet, limited...)
	group.GET("/group", h.GroupGet, limited...)
	group.GET("/initials.png", h.InitialsGet)
	group.GET("/color", h.ColorGet)

	events := group.Group("/mounts/:id", limited...)
	events.POST("/load", h.LoadPost)
	events.POST("/error", h.ErrorPost)
	events.POST("/click", h.ClickPost)
}

// PreviewGet renders one avatar on a full page.
func (h *Handler) PreviewGet(c echo.Context) error {
	spec, err := bindAvatar(c)
	if err != nil {
		return err
	}
	th := h.themes.Current()
	page := view.Base("Avatar preview", view.AdaptGomponentToTempl(previewContent(spec, h.render(th, spec))))
	return h.renderer.RenderPage(c, http.StatusOK, page)
}

// FragmentGet renders one avatar as an htmx fragment.
func (h *Handler) FragmentGet(c echo.Context) error {
	spec, err := bindAvatar(c)
	if err != nil {
		return err
	}
	return h.renderer.RenderPage(c, http.StatusOK, h.render(h.themes.Current(), spec))
}

// GroupGet renders a stacked group with an overflow badge.
func (h *Handler) GroupGet(c echo.Context) error {
	var req GroupRequest
	if err := c.Bind(&req); err != nil {
		return handlers.BadRequest(err)
	}
	if err := c.Validate(&req); err != nil {
		return handlers.BadRequest(err)
	}
	specs, size, spacing, err := req.ToSpecs()
	if err != nil {
		return handlers.BadRequest(err)
	}

	limit := req.Max
	if limit == 0 {
		limit = h.groupMax
	}
	comp, err := avatargroup.Compose(specs, limit, size, spacing)
	if err != nil {
		return handlers.BadRequest(err)
	}

	middleware.FromContext(c.Request().Context()).Debug("Rendering avatar group",
		"members", len(specs), "visible", len(comp.Visible), "hidden", comp.Hidden)
	return h.renderer.RenderPage(c, http.StatusOK, avatargroup.Render(h.themes.Current(), comp, h.mountSlot))
}

// LoadPost records an image load and returns the re-rendered avatar.
func (h *Handler) LoadPost(c echo.Context) error {
	m, err := h.mounts.Load(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mountError(err)
	}
	return h.renderMount(c, m)
}

// ErrorPost records an image failure and returns the re-rendered avatar.
func (h *Handler) ErrorPost(c echo.Context) error {
	m, err := h.mounts.Fail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mountError(err)
	}
	return h.renderMount(c, m)
}

// ClickPost forwards a click on an interactive avatar.
func (h *Handler) ClickPost(c echo.Context) error {
	if err := h.mounts.Click(c.Request().Context(), c.Param("id")); err != nil {
		return mountError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// InitialsGet serves a PNG initials badge for clients that cannot render HTML.
func (h *Handler) InitialsGet(c echo.Context) error {
	var req InitialsRequest
	if err := c.Bind(&req); err != nil {
		return handlers.BadRequest(err)
	}
	if err := c.Validate(&req); err != nil {
		return handlers.BadRequest(err)
	}
	shape, err := avatar.ParseShape(req.Shape)
	if err != nil {
		return handlers.BadRequest(err)
	}
	px := req.Px
	if px == 0 {
		px = defaultRasterPx
	}

	img, err := raster.Initials(h.themes.Current(), req.Name, px, shape)
	if err != nil {
		return handlers.BadRequest(err)
	}
	var buf bytes.Buffer
	if err := raster.EncodePNG(&buf, img); err != nil {
		return err
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

// ColorGet returns the identity colour and initials for a name.
func (h *Handler) ColorGet(c echo.Context) error {
	name := c.QueryParam("name")
	th := h.themes.Current()
	return c.JSON(http.StatusOK, ColorResponse{
		Name:     name,
		Color:    identity.ColorFor(name, th.Palette),
		Initials: identity.InitialsFor(name),
	})
}

func (h *Handler) render(th theme.Theme, spec avatar.Spec) g.Node {
	v, hooks := h.mountSpec(spec)
	return avatar.Render(v.View(th), hooks)
}

func (h *Handler) renderMount(c echo.Context, m *mount.Mount) error {
	return h.renderer.RenderPage(c, http.StatusOK, avatar.Render(m.View(h.themes.Current()), h.hooks(m.ID)))
}

// mountSpec registers spec when the browser has something to report back:
// an image that may load or fail, or clicks. Other avatars render static,
// including forced skeletons, which never load their image.
func (h *Handler) mountSpec(spec avatar.Spec) (avatargroup.Viewer, avatar.Hooks) {
	watchesImage := spec.HasImage() && !spec.ForceLoading
	if !watchesImage && !spec.Interactive {
		return avatar.NewMachine(spec), avatar.Hooks{}
	}
	m := h.mounts.Mount(spec)
	return m, h.hooks(m.ID)
}

func (h *Handler) mountSlot(slot avatargroup.Slot) (avatargroup.Viewer, avatar.Hooks) {
	return h.mountSpec(slot.Spec)
}

// hooks builds the callback URLs for a mount. DOM ids get a letter prefix
// since uuids may start with a digit.
func (h *Handler) hooks(id string) avatar.Hooks {
	base := h.basePath + "/mounts/" + id
	return avatar.Hooks{
		ID:       "avatar-" + id,
		LoadURL:  base + "/load",
		ErrorURL: base + "/error",
		ClickURL: base + "/click",
	}
}

func bindAvatar(c echo.Context) (avatar.Spec, error) {
	var req AvatarRequest
	if err := c.Bind(&req); err != nil {
		return avatar.Spec{}, handlers.BadRequest(err)
	}
	if err := c.Validate(&req); err != nil {
		return avatar.Spec{}, handlers.BadRequest(err)
	}
	spec, err := req.ToSpec()
	if err != nil {
		return avatar.Spec{}, handlers.BadRequest(err)
	}
	return spec, nil
}

func mountError(err error) error {
	switch {
	case errors.Is(err, mount.ErrMountNotFound):
		return echo.NewHTTPError(http.StatusNotFound, handlers.ErrorResponse{Code: "mount_not_found", Message: err.Error()})
	case errors.Is(err, mount.ErrNotInteractive):
		return echo.NewHTTPError(http.StatusConflict, handlers.ErrorResponse{Code: "not_interactive", Message: err.Error()})
	default:
		return err
	}
}
