package signpad

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Snapshot is an immutable encoded copy of the whole surface, held by the
// history. The zero value is empty and never produced by a Codec.
type Snapshot struct {
	data []byte
}

// Len returns the encoded size in bytes.
func (s Snapshot) Len() int {
	return len(s.data)
}

// Bytes returns a copy of the encoded image.
func (s Snapshot) Bytes() []byte {
	return bytes.Clone(s.data)
}

// Codec encodes surface images into snapshots and back.
// Decode must return an image whose pixels equal the encoded ones exactly.
type Codec interface {
	Encode(img *image.NRGBA) ([]byte, error)
	Decode(data []byte) (*image.NRGBA, error)
}

// PNGCodec stores snapshots as PNG. It is lossless for non-premultiplied
// 8-bit images and is the default codec.
type PNGCodec struct{}

// Encode implements Codec.
func (PNGCodec) Encode(img *image.NRGBA) ([]byte, error) {
	return EncodePNG(img)
}

// Decode implements Codec.
func (PNGCodec) Decode(data []byte) (*image.NRGBA, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba, nil
	}
	return imaging.Clone(img), nil
}

// EncodePNG encodes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("signpad: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// takeSnapshot encodes the surface's current pixels.
func takeSnapshot(c Codec, s *Surface) (Snapshot, error) {
	data, err := c.Encode(s.img)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{data: data}, nil
}

// restoreSnapshot decodes snap into a standalone image. The surface is
// untouched, so a failure leaves it as it was.
func restoreSnapshot(c Codec, snap Snapshot, source string) (*image.NRGBA, error) {
	img, err := c.Decode(snap.data)
	if err != nil {
		return nil, &DecodeError{Source: source, Err: err}
	}
	return img, nil
}
