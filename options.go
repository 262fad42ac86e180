package signpad

import (
	"image"
	"math/rand/v2"

	"github.com/gogpu/signpad/storage"
)

// Option configures a Pad during creation.
// Use functional options to customize Pad behavior.
//
// Example:
//
//	// In-memory storage, notices to the package logger
//	pad, err := signpad.New(800, 400)
//
//	// Persistent storage and a custom notifier (dependency injection)
//	pad, err := signpad.New(800, 400,
//	    signpad.WithStore(storage.NewDir(dir)),
//	    signpad.WithNotifier(toasts),
//	)
type Option func(*options)

// options holds optional configuration for Pad creation.
type options struct {
	controls     Controls
	notifier     Notifier
	store        storage.Store
	downloader   Downloader
	codec        Codec
	rng          *rand.Rand
	historyLimit int
	storageKey   string
	downloadName string
	queueDepth   int
	onChange     func(*image.NRGBA)
}

// defaultOptions returns the default pad options.
func defaultOptions() options {
	return options{
		controls:     nil, // Will be set to NewSettings() if nil
		notifier:     LogNotifier{},
		store:        nil, // Will be set to storage.NewMemory() if nil
		downloader:   discardDownloader{},
		codec:        PNGCodec{},
		historyLimit: DefaultHistoryLimit,
		storageKey:   DefaultStorageKey,
		downloadName: DefaultDownloadName,
	}
}

// WithControls sets the configuration panel the pad reads brush and
// background values from. The default is a fresh Settings.
func WithControls(c Controls) Option {
	return func(o *options) {
		o.controls = c
	}
}

// WithNotifier sets the receiver of status notices.
// The default writes them to the package logger.
func WithNotifier(n Notifier) Option {
	return func(o *options) {
		if n != nil {
			o.notifier = n
		}
	}
}

// WithStore sets the persistence backend used by Save and Recover.
// The default is an in-memory store.
func WithStore(s storage.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithDownloader sets where Save delivers the flattened image.
// The default discards it.
func WithDownloader(d Downloader) Option {
	return func(o *options) {
		if d != nil {
			o.downloader = d
		}
	}
}

// WithCodec sets the snapshot codec. The default is PNGCodec.
func WithCodec(c Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithRand sets the random source of the scatter brush.
// Use a seeded source for reproducible output.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithHistoryLimit bounds the number of past snapshots kept for undo.
// Zero or a negative value keeps every snapshot.
func WithHistoryLimit(n int) Option {
	return func(o *options) {
		o.historyLimit = n
	}
}

// WithStorageKey sets the persistence key. The default is "savedSignature".
func WithStorageKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.storageKey = key
		}
	}
}

// WithDownloadName sets the file name offered for download.
// The default is "signature.png".
func WithDownloadName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.downloadName = name
		}
	}
}

// WithQueueDepth sets how many actions may wait in the pad's queue before
// HandleEvent blocks.
func WithQueueDepth(n int) Option {
	return func(o *options) {
		o.queueDepth = n
	}
}

// WithChangeHook registers fn to receive a copy of the surface after
// every change. fn runs on the pad's worker and must not call back into
// the pad's blocking methods.
func WithChangeHook(fn func(*image.NRGBA)) Option {
	return func(o *options) {
		o.onChange = fn
	}
}
