// Package raster draws initials avatars as bitmaps for clients that cannot
// render HTML, such as email and chat integrations.
//
// Text is drawn with basicfont.Face7x13, which only has printable ASCII.
// Initials with any other rune are left off and the badge keeps just its
// background colour.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfrund/avatarkit/internal/avatar"
	"github.com/nfrund/avatarkit/internal/identity"
	"github.com/nfrund/avatarkit/internal/theme"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// glyph cell of basicfont.Face7x13; text is drawn at this scale and resized.
const (
	cellAdvance = 7
	cellHeight  = 13
	cellAscent  = 11
)

var (
	ErrInvalidSize  = errors.New("raster: size must be between 8 and 512 pixels")
	ErrInvalidColor = errors.New("raster: invalid hex colour")
)

// Initials draws the initials badge for name at px by px. Names without
// initials get the neutral background only.
func Initials(th theme.Theme, name string, px int, shape avatar.Shape) (image.Image, error) {
	if px < 8 || px > 512 {
		return nil, ErrInvalidSize
	}

	bg := th.Colors.Neutral
	if strings.TrimSpace(name) != "" {
		bg = identity.ColorFor(name, th.Palette)
	}
	bgColor, err := parseHex(bg)
	if err != nil {
		return nil, err
	}
	fgColor, err := parseHex(avatar.InitialsForeground)
	if err != nil {
		return nil, err
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, px, px))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: bgColor}, image.Point{}, draw.Src)

	if text := identity.InitialsFor(name); text != "" && drawable(basicfont.Face7x13, text) {
		label := drawLabel(text, fgColor)
		// Text occupies roughly 40% of the badge height.
		h := max(px*2/5, 1)
		w := max(label.Bounds().Dx()*h/label.Bounds().Dy(), 1)
		scaled := imaging.Resize(label, w, h, imaging.Lanczos)
		at := image.Pt((px-w)/2, (px-h)/2)
		draw.Draw(canvas, scaled.Bounds().Add(at), scaled, image.Point{}, draw.Over)
	}

	if shape == avatar.ShapeCircular {
		out := image.NewNRGBA(canvas.Bounds())
		draw.DrawMask(out, out.Bounds(), canvas, image.Point{}, circle{d: px}, image.Point{}, draw.Over)
		return out, nil
	}
	return canvas, nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// drawable reports whether face has a real glyph for every rune of text.
// GlyphAdvance is not ok for runes the face would draw as U+FFFD.
func drawable(face font.Face, text string) bool {
	for _, r := range text {
		if _, ok := face.GlyphAdvance(r); !ok {
			return false
		}
	}
	return true
}

func drawLabel(text string, fg color.Color) *image.NRGBA {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	if width == 0 {
		width = cellAdvance
	}

	label := image.NewNRGBA(image.Rect(0, 0, width, cellHeight))
	d := &font.Drawer{
		Dst:  label,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(0, cellAscent),
	}
	d.DrawString(text)
	return label
}

// circle is an alpha mask for a disc inscribed in a d by d square.
type circle struct {
	d int
}

func (c circle) ColorModel() color.Model { return color.AlphaModel }

func (c circle) Bounds() image.Rectangle { return image.Rect(0, 0, c.d, c.d) }

func (c circle) At(x, y int) color.Color {
	r := float64(c.d) / 2
	dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
	if dx*dx+dy*dy <= r*r {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}

// parseHex accepts the forms the theme validator allows: #RGB, #RGBA,
// #RRGGBB and #RRGGBBAA.
func parseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 || len(hex) == 4 {
		long := make([]byte, 0, len(hex)*2)
		for i := 0; i < len(hex); i++ {
			long = append(long, hex[i], hex[i])
		}
		hex = string(long)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
