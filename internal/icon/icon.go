// Package icon synthesizes swatch images for resolved colors and caches
// them on disk so the launcher can show them next to each result.
package icon

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/Jaesung-Jung/Colors/internal/color"
	"github.com/Jaesung-Jung/Colors/internal/logging"
	"github.com/Jaesung-Jung/Colors/internal/storage"
)

// DefaultSize is the edge length of a swatch in pixels.
const DefaultSize = 64

// Checkerboard gray levels drawn behind translucent swatches.
const (
	checkerLight = 0.94
	checkerDark  = 0.74
)

// Key names a swatch by its 8-digit RRGGBBAA hex. Alpha reads FF when the
// query did not supply one.
func Key(c color.Color, usesAlpha bool) string {
	r, g, b, a := c.RGBA()
	if !usesAlpha {
		a = 1
	}
	return fmt.Sprintf("%02X%02X%02X%02X", byte255(r), byte255(g), byte255(b), byte255(a))
}

func byte255(ch float64) int {
	return int(math.Round(ch * 255))
}

// Render draws a rounded swatch of c and writes it to w as PNG.
func Render(w io.Writer, c color.Color, size int) error {
	if size <= 0 {
		return fmt.Errorf("invalid icon size %d", size)
	}

	dc := gg.NewContext(size, size)
	defer dc.Close()

	s := float64(size)
	inset := 1.0
	radius := s / 6
	side := s - 2*inset

	r, g, b, a := c.RGBA()
	if a < 1 {
		dc.DrawRoundedRectangle(inset, inset, side, side, radius)
		dc.Clip()

		cell := max(s/8, 1)
		for y := 0; float64(y)*cell < s; y++ {
			for x := 0; float64(x)*cell < s; x++ {
				shade := checkerDark
				if (x+y)%2 == 0 {
					shade = checkerLight
				}
				dc.SetRGB(shade, shade, shade)
				dc.DrawRectangle(float64(x)*cell, float64(y)*cell, cell, cell)
				if err := dc.Fill(); err != nil {
					return fmt.Errorf("drawing checkerboard: %w", err)
				}
			}
		}
		dc.ResetClip()
	}

	dc.SetRGBA(r, g, b, a)
	dc.DrawRoundedRectangle(inset, inset, side, side, radius)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("filling swatch: %w", err)
	}

	dc.SetRGBA(0, 0, 0, 0.2)
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(inset, inset, side, side, radius)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroking swatch: %w", err)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding swatch: %w", err)
	}
	return nil
}

// Cache renders swatches on demand and keeps them in storage.
type Cache struct {
	Storage *storage.Storage
	Size    int
}

// NewCache creates a swatch cache backed by s.
func NewCache(s *storage.Storage, size int) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	return &Cache{Storage: s, Size: size}
}

// Path returns the cached swatch for c, rendering it on a miss.
func (ic *Cache) Path(c color.Color, usesAlpha bool) (string, error) {
	key := Key(c, usesAlpha)
	if ic.Storage.IconExists(key) {
		return ic.Storage.IconPath(key), nil
	}

	if !usesAlpha {
		r, g, b, _ := c.RGBA()
		c = color.NewRGB(r, g, b, 1)
	}

	var buf bytes.Buffer
	if err := Render(&buf, c, ic.Size); err != nil {
		return "", err
	}

	path, err := ic.Storage.SaveIcon(key, buf.Bytes())
	if err != nil {
		return "", err
	}
	logging.Logger().Debug("cached swatch", "key", key, "path", path)
	return path, nil
}

// TryPath is Path for callers that must not fail: errors are logged and an
// empty path is returned so the result is shown without an icon.
func (ic *Cache) TryPath(c color.Color, usesAlpha bool) string {
	if ic == nil {
		return ""
	}
	path, err := ic.Path(c, usesAlpha)
	if err != nil {
		logging.Logger().Warn("swatch unavailable", "key", Key(c, usesAlpha), "error", err)
		return ""
	}
	return path
}
