package signpad

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/signpad/internal/blend"
)

// Surface is the mutable raster strokes are drawn into.
// Pixels are non-premultiplied RGBA, 4 bytes per pixel, fully transparent
// at creation. The size is fixed for the surface's lifetime and the pixel
// buffer is never reallocated.
//
// Surface is not safe for concurrent use. A Pad only touches its surface
// from its action queue.
type Surface struct {
	img *image.NRGBA
}

// NewSurface creates a transparent surface with the given dimensions.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Surface{img: image.NewNRGBA(image.Rect(0, 0, width, height))}, nil
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// NRGBAAt returns the pixel at (x, y). Out-of-bounds reads are transparent.
func (s *Surface) NRGBAAt(x, y int) color.NRGBA {
	return s.img.NRGBAAt(x, y)
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Rect
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

// Clear makes every pixel transparent.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// Image returns a copy of the current pixels.
func (s *Surface) Image() *image.NRGBA {
	return imaging.Clone(s.img)
}

// Replace overwrites every pixel with img, which must match the surface
// size. The copy is exact, so replacing with a previous Image restores it
// bit for bit.
func (s *Surface) Replace(img image.Image) error {
	if img.Bounds().Size() != s.img.Rect.Size() {
		return fmt.Errorf("%w: have %v, got %v", ErrInvalidSize, s.img.Rect.Size(), img.Bounds().Size())
	}
	src, ok := img.(*image.NRGBA)
	if !ok {
		src = imaging.Clone(img)
	}
	rowLen := s.img.Rect.Dx() * 4
	for y := 0; y < s.img.Rect.Dy(); y++ {
		si := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		di := y * s.img.Stride
		copy(s.img.Pix[di:di+rowLen], src.Pix[si:si+rowLen])
	}
	return nil
}

// DrawOver composites img over the current content with its top-left
// corner at the surface origin. Parts outside the surface are clipped.
func (s *Surface) DrawOver(img image.Image) {
	b := img.Bounds()
	xdraw.Draw(s.img, s.img.Rect, img, b.Min, xdraw.Over)
}

// composite blends src through a coverage mask whose bounds are in
// surface coordinates.
func (s *Surface) composite(mask *image.Alpha, src color.NRGBA, mode CompositeMode) {
	blend.Mask(s.img, mask, mask.Rect.Min, src, mode.blendMode())
}
