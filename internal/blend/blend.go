package blend

import (
	"image"
	"image/color"
)

// Mode represents a compositing operator.
type Mode int

const (
	// SourceOver blends the source over the destination.
	// Formula: Ra = Sa + Da*(1-Sa), Rc = (Sc*Sa + Dc*Da*(1-Sa)) / Ra
	SourceOver Mode = iota

	// DestinationOut keeps the destination where the source is transparent.
	// Formula: Ra = Da*(1-Sa), Rc = Dc
	DestinationOut
)

// Pixel composites src, scaled by coverage cov, into the non-premultiplied
// RGBA pixel p (4 bytes).
func Pixel(p []uint8, src color.NRGBA, cov uint8, mode Mode) {
	switch mode {
	case DestinationOut:
		destinationOut(p, mulDiv255(src.A, cov))
	default:
		sourceOver(p, src, mulDiv255(src.A, cov))
	}
}

// Mask composites src through mask onto dst. Mask pixel (x, y) lands on
// dst pixel at.Add(x, y); anything outside dst's bounds is clipped.
func Mask(dst *image.NRGBA, mask *image.Alpha, at image.Point, src color.NRGBA, mode Mode) {
	mb := mask.Bounds()
	r := mb.Add(at.Sub(mb.Min)).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		mrow := mask.Pix[mask.PixOffset(mb.Min.X+r.Min.X-at.X, mb.Min.Y+y-at.Y):]
		drow := dst.Pix[dst.PixOffset(r.Min.X, y):]
		for x := 0; x < r.Dx(); x++ {
			cov := mrow[x]
			if cov == 0 {
				continue
			}
			Pixel(drow[x*4:x*4+4:x*4+4], src, cov, mode)
		}
	}
}

// sourceOver composites an opaque color with effective alpha sa over p.
func sourceOver(p []uint8, src color.NRGBA, sa uint8) {
	if sa == 0 {
		return
	}
	if sa == 0xff {
		p[0], p[1], p[2], p[3] = src.R, src.G, src.B, 0xff
		return
	}

	// Alpha terms in units of 1/(255*255).
	sTerm := uint32(sa) * 255
	dTerm := uint32(p[3]) * uint32(255-sa)
	outA := sTerm + dTerm

	p[0] = uint8(divRound(uint32(src.R)*sTerm+uint32(p[0])*dTerm, outA))
	p[1] = uint8(divRound(uint32(src.G)*sTerm+uint32(p[1])*dTerm, outA))
	p[2] = uint8(divRound(uint32(src.B)*sTerm+uint32(p[2])*dTerm, outA))
	p[3] = uint8(divRound(outA, 255))
}

// destinationOut reduces p's alpha by sa. Fully cleared pixels become
// transparent black so erased regions compare equal to untouched ones.
func destinationOut(p []uint8, sa uint8) {
	if sa == 0 {
		return
	}
	a := mulDiv255(p[3], 255-sa)
	if a == 0 {
		p[0], p[1], p[2], p[3] = 0, 0, 0, 0
		return
	}
	p[3] = a
}
