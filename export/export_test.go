package export

import (
	"bytes"
	"context"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/signpad"
)

func artifact(t *testing.T, w, h int) signpad.Artifact {
	t.Helper()
	img := signpad.Flatten(image.NewNRGBA(image.Rect(0, 0, w, h)), signpad.White)
	data, err := signpad.EncodePNG(img)
	require.NoError(t, err)
	return signpad.Artifact{Name: signpad.DefaultDownloadName, Image: img, PNG: data}
}

func TestDir_Download(t *testing.T) {
	dir := t.TempDir()
	a := artifact(t, 12, 8)

	require.NoError(t, Dir{Path: dir}.Download(context.Background(), a))

	got, err := os.ReadFile(filepath.Join(dir, "signature.png"))
	require.NoError(t, err)
	assert.Equal(t, a.PNG, got)
}

func TestDir_DownloadStripsDirectories(t *testing.T) {
	dir := t.TempDir()
	a := artifact(t, 2, 2)
	a.Name = "../../escape.png"

	require.NoError(t, Dir{Path: dir}.Download(context.Background(), a))
	_, err := os.Stat(filepath.Join(dir, "escape.png"))
	assert.NoError(t, err)
}

func TestDir_DownloadInvalidName(t *testing.T) {
	a := artifact(t, 2, 2)
	a.Name = ".."
	assert.Error(t, Dir{Path: t.TempDir()}.Download(context.Background(), a))
}

func TestDir_DownloadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Dir{Path: t.TempDir()}.Download(ctx, artifact(t, 2, 2))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(artifact(t, 300, 100))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "output is a PDF")
	assert.True(t, bytes.Contains(data, []byte("/Subtype /Image")), "page embeds the image")
}

func TestRenderPDF_NoImage(t *testing.T) {
	_, err := RenderPDF(signpad.Artifact{Name: "empty"})
	assert.Error(t, err)
}

func TestPDF_Download(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, PDF{Path: dir}.Download(context.Background(), artifact(t, 40, 60)))

	got, err := os.ReadFile(filepath.Join(dir, "signature.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(got, []byte("%PDF-")))
}
