package signpad

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/signpad/storage"
)

// brokenStore fails every operation with err.
type brokenStore struct{ err error }

func (s brokenStore) Load(context.Context, string) ([]byte, error) { return nil, s.err }
func (s brokenStore) Save(context.Context, string, []byte) error   { return s.err }

func TestFlatten_EmptySurfaceIsBackground(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 9))
	flat := Flatten(src, White)

	require.Equal(t, src.Bounds(), flat.Bounds())
	for i, v := range flat.Pix {
		if v != 0xff {
			t.Fatalf("flat.Pix[%d] = %d, want uniformly white", i, v)
		}
	}
}

func TestFlatten_CompositesInkOverBackground(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(1, 1, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(2, 2, color.NRGBA{R: 255, A: 128})
	before := append([]uint8(nil), src.Pix...)

	flat := Flatten(src, MustHex("#0000FF"))

	assert.Equal(t, color.NRGBA{R: 255, A: 255}, flat.NRGBAAt(1, 1))
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, flat.NRGBAAt(0, 0))
	half := flat.NRGBAAt(2, 2)
	assert.Equal(t, uint8(255), half.A, "flattened output is opaque")
	assert.InDelta(t, 128, int(half.R), 2)
	assert.InDelta(t, 127, int(half.B), 2)
	assert.Equal(t, before, src.Pix, "Flatten must not modify its input")
}

func TestPersistAndRecoverLatest(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	img := Flatten(image.NewNRGBA(image.Rect(0, 0, 5, 5)), MustHex("#228B22"))
	require.NoError(t, Persist(ctx, store, DefaultStorageKey, img))

	raw, err := store.Load(ctx, DefaultStorageKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw[:30]), "data:image/png;base64,")

	got, err := RecoverLatest(ctx, store, DefaultStorageKey)
	require.NoError(t, err)
	assert.Equal(t, img.Pix, got.Pix)
}

func TestRecoverLatest_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty slot", func(t *testing.T) {
		_, err := RecoverLatest(ctx, storage.NewMemory(), DefaultStorageKey)
		assert.ErrorIs(t, err, ErrNoSavedSignature)
	})

	t.Run("empty value", func(t *testing.T) {
		store := storage.NewMemory()
		require.NoError(t, store.Save(ctx, DefaultStorageKey, nil))
		_, err := RecoverLatest(ctx, store, DefaultStorageKey)
		assert.ErrorIs(t, err, ErrNoSavedSignature)
	})

	t.Run("not a data URL", func(t *testing.T) {
		store := storage.NewMemory()
		require.NoError(t, store.Save(ctx, DefaultStorageKey, []byte("garbage")))
		_, err := RecoverLatest(ctx, store, DefaultStorageKey)
		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "storage", de.Source)
		assert.ErrorIs(t, err, storage.ErrMalformedDataURL)
	})

	t.Run("corrupt png", func(t *testing.T) {
		store := storage.NewMemory()
		require.NoError(t, store.Save(ctx, DefaultStorageKey, storage.EncodeDataURL("image/png", []byte("nope"))))
		_, err := RecoverLatest(ctx, store, DefaultStorageKey)
		var de *DecodeError
		assert.ErrorAs(t, err, &de)
	})

	t.Run("backend failure", func(t *testing.T) {
		boom := errors.New("disk on fire")
		_, err := RecoverLatest(ctx, brokenStore{boom}, DefaultStorageKey)
		var se *StorageError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, DefaultStorageKey, se.Key)
		assert.ErrorIs(t, err, boom)
	})
}

func TestPersist_StorageError(t *testing.T) {
	boom := errors.New("quota")
	err := Persist(context.Background(), brokenStore{boom}, "k", image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "k", se.Key)
	assert.Equal(t, `signpad: storage "k": quota`, err.Error())
}

func TestExportDownload(t *testing.T) {
	var got Artifact
	d := DownloaderFunc(func(_ context.Context, a Artifact) error {
		got = a
		return nil
	})
	a := Artifact{Name: DefaultDownloadName, PNG: []byte{1}}
	require.NoError(t, ExportDownload(context.Background(), d, a))
	assert.Equal(t, a.Name, got.Name)

	fail := DownloaderFunc(func(context.Context, Artifact) error { return errors.New("no space") })
	err := ExportDownload(context.Background(), fail, a)
	assert.ErrorContains(t, err, "signature.png")
}
