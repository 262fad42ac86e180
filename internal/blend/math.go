// Package blend composites coverage masks onto non-premultiplied RGBA
// pixels using the two Porter-Duff operators a signature pad needs.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// mulDiv255 multiplies two bytes and divides by 255 with rounding.
//
// Formula: t = a*b + 128; (t + (t >> 8)) >> 8
//
// This is Alvy Ray Smith's formula and is exact for every byte pair.
// Exactness matters here: erase and re-draw passes must not drift.
func mulDiv255(a, b byte) byte {
	t := uint32(a)*uint32(b) + 128
	return byte((t + (t >> 8)) >> 8)
}

// divRound divides n by d rounding half up. d must be non-zero.
func divRound(n, d uint32) uint32 {
	return (n + d/2) / d
}
