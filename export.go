package signpad

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/gogpu/signpad/storage"
)

const (
	// DefaultStorageKey is the persistence slot holding the saved signature.
	DefaultStorageKey = "savedSignature"

	// DefaultDownloadName is the file name offered for download.
	DefaultDownloadName = "signature.png"

	// pngMediaType is the media type of persisted data URLs.
	pngMediaType = "image/png"
)

// Artifact is a flattened signature ready for download.
type Artifact struct {
	Name  string
	Image *image.NRGBA
	PNG   []byte
}

// Downloader delivers an Artifact to the user.
type Downloader interface {
	Download(ctx context.Context, a Artifact) error
}

// DownloaderFunc adapts a function to the Downloader interface.
type DownloaderFunc func(ctx context.Context, a Artifact) error

// Download implements Downloader.
func (f DownloaderFunc) Download(ctx context.Context, a Artifact) error {
	return f(ctx, a)
}

type discardDownloader struct{}

func (discardDownloader) Download(context.Context, Artifact) error { return nil }

// Flatten returns a new opaque image of img's size filled with bg, with
// img alpha-composited on top. img is not modified.
func Flatten(img image.Image, bg RGB) *image.NRGBA {
	b := img.Bounds()
	dst := imaging.New(b.Dx(), b.Dy(), bg.NRGBA())
	return imaging.Overlay(dst, img, image.Pt(0, 0), 1.0)
}

// Persist stores img under key as a PNG data URL, replacing any previous
// value. Backend failures are returned as *StorageError.
func Persist(ctx context.Context, s storage.Store, key string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	return persistPNG(ctx, s, key, data)
}

// persistPNG stores already encoded PNG bytes as a data URL.
func persistPNG(ctx context.Context, s storage.Store, key string, png []byte) error {
	if err := s.Save(ctx, key, storage.EncodeDataURL(pngMediaType, png)); err != nil {
		return &StorageError{Key: key, Err: err}
	}
	return nil
}

// ExportDownload hands a to d.
func ExportDownload(ctx context.Context, d Downloader, a Artifact) error {
	if err := d.Download(ctx, a); err != nil {
		return fmt.Errorf("signpad: download %q: %w", a.Name, err)
	}
	return nil
}

// RecoverLatest loads and decodes the image stored under key. It returns
// ErrNoSavedSignature when the slot is empty and *DecodeError when the
// stored value is not a readable image.
func RecoverLatest(ctx context.Context, s storage.Store, key string) (*image.NRGBA, error) {
	value, err := s.Load(ctx, key)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && len(value) == 0) {
		return nil, ErrNoSavedSignature
	}
	if err != nil {
		return nil, &StorageError{Key: key, Err: err}
	}

	_, data, err := storage.DecodeDataURL(value)
	if err != nil {
		return nil, &DecodeError{Source: "storage", Err: err}
	}
	img, err := PNGCodec{}.Decode(data)
	if err != nil {
		return nil, &DecodeError{Source: "storage", Err: err}
	}
	return img, nil
}
