package signpad

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/gogpu/signpad/internal/queue"
	"github.com/gogpu/signpad/storage"
)

// Pad is one signing session: a surface, its undo history and the brush
// engine that draws into it.
//
// Every action that reads or mutates the surface or history runs on a
// single worker in the order it was issued, so an undo whose snapshot is
// still decoding always lands before the stroke that follows it.
//
// Thread safety: Pad is safe for concurrent use.
type Pad struct {
	id   string
	opts options

	// Owned by the worker.
	surf    *Surface
	engine  *Engine
	history *History

	queue *queue.Serial

	mu     sync.Mutex
	origin Point
}

// New creates a pad with a transparent width×height surface.
func New(width, height int, opts ...Option) (*Pad, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.controls == nil {
		o.controls = NewSettings()
	}
	if o.store == nil {
		o.store = storage.NewMemory()
	}

	surf, err := NewSurface(width, height)
	if err != nil {
		return nil, err
	}
	blank, err := takeSnapshot(o.codec, surf)
	if err != nil {
		return nil, fmt.Errorf("signpad: initial snapshot: %w", err)
	}

	p := &Pad{
		id:      uuid.NewString(),
		opts:    o,
		surf:    surf,
		engine:  NewEngine(surf, o.rng),
		history: NewHistory(blank, o.historyLimit),
		queue:   queue.NewSerial(o.queueDepth),
	}
	p.log().Info("signpad: pad created", "width", width, "height", height)
	return p, nil
}

// ID returns the session identifier attached to the pad's log records.
func (p *Pad) ID() string {
	return p.id
}

// Size returns the surface dimensions.
func (p *Pad) Size() (width, height int) {
	return p.surf.Width(), p.surf.Height()
}

// Controls returns the configuration the pad reads brush values from.
func (p *Pad) Controls() Controls {
	return p.opts.controls
}

// SetOrigin sets the surface's top-left corner in client coordinates.
// Events already handed to HandleEvent are not affected.
func (p *Pad) SetOrigin(origin Point) {
	p.mu.Lock()
	p.origin = origin
	p.mu.Unlock()
}

// HandleEvent samples ev and queues it for the drawing state machine.
// It does not wait for the event to be rendered; use Flush for that.
//
//   - PointerDown starts a stroke, first committing one still in progress.
//   - PointerMove extends the stroke in progress.
//   - PointerUp and PointerOut end and commit the stroke in progress.
//
// Events without a usable position are dropped. The brush is read from
// the controls here, so a setting changed afterwards only affects later
// events.
func (p *Pad) HandleEvent(ev PointerEvent) error {
	p.mu.Lock()
	origin := p.origin
	p.mu.Unlock()

	pt, ok := Sample(ev, origin)
	if !ok && (ev.Kind == PointerDown || ev.Kind == PointerMove) {
		return nil
	}
	kind := ev.Kind
	var cfg BrushConfig
	if kind == PointerDown || kind == PointerMove {
		cfg = p.opts.controls.Brush()
	}
	return closedErr(p.queue.Go(func() { p.apply(kind, pt, cfg) }))
}

// apply runs one step of the Idle → Drawing → Idle state machine.
func (p *Pad) apply(kind EventKind, pt Point, cfg BrushConfig) {
	switch kind {
	case PointerDown:
		p.finishStroke()
		p.engine.BeginStroke(pt, cfg)
		p.changed()
	case PointerMove:
		if p.engine.Active() {
			p.engine.ExtendStroke(pt, cfg)
			p.changed()
		}
	case PointerUp, PointerOut:
		p.finishStroke()
	}
}

// finishStroke ends and commits the stroke in progress, if any.
func (p *Pad) finishStroke() {
	if !p.engine.Active() {
		return
	}
	p.engine.EndStroke()
	p.commit("stroke")
}

// commit records the surface as a new history entry.
func (p *Pad) commit(reason string) {
	snap, err := takeSnapshot(p.opts.codec, p.surf)
	if err != nil {
		p.log().Warn("signpad: snapshot failed", "reason", reason, "error", err)
		p.notify(SeverityError, MsgRestoreFailed)
		return
	}
	p.history.Commit(snap)
	p.log().Debug("signpad: committed", "reason", reason, "past", p.history.PastLen(), "bytes", snap.Len())
}

// Flush waits until every action issued before the call has been applied.
func (p *Pad) Flush(ctx context.Context) error {
	return closedErr(p.queue.Wait(ctx))
}

// Undo restores the previous snapshot. It does nothing when only the
// initial state remains. A stroke in progress is committed first.
// If the snapshot fails to decode, the surface and history are left as
// they were and a *DecodeError is returned.
func (p *Pad) Undo(ctx context.Context) error {
	return wait(ctx, p.StartUndo(ctx))
}

// StartUndo queues an undo and returns without waiting. The channel
// receives Undo's result. Actions started from one goroutine, pointer
// events included, apply in the order they were started.
func (p *Pad) StartUndo(ctx context.Context) <-chan error {
	return p.start(ctx, p.undo)
}

func (p *Pad) undo() error {
	p.finishStroke()
	target, ok := p.history.UndoTarget()
	if !ok {
		return nil
	}
	if err := p.restore(target, "undo"); err != nil {
		return err
	}
	p.history.Undo()
	p.notify(SeverityInfo, MsgUndo)
	return nil
}

// Redo re-applies the most recently undone snapshot. It does nothing when
// there is nothing to redo. Decode failures behave as in Undo.
func (p *Pad) Redo(ctx context.Context) error {
	return wait(ctx, p.StartRedo(ctx))
}

// StartRedo is the non-blocking form of Redo; see StartUndo.
func (p *Pad) StartRedo(ctx context.Context) <-chan error {
	return p.start(ctx, p.redo)
}

func (p *Pad) redo() error {
	p.finishStroke()
	target, ok := p.history.RedoTarget()
	if !ok {
		return nil
	}
	if err := p.restore(target, "redo"); err != nil {
		return err
	}
	p.history.Redo()
	p.notify(SeverityInfo, MsgRedo)
	return nil
}

// restore decodes snap and overwrites the surface with it. Nothing is
// changed unless decoding succeeds.
func (p *Pad) restore(snap Snapshot, source string) error {
	img, err := restoreSnapshot(p.opts.codec, snap, source)
	if err == nil {
		if rerr := p.surf.Replace(img); rerr != nil {
			err = &DecodeError{Source: source, Err: rerr}
		}
	}
	if err != nil {
		p.log().Warn("signpad: restore failed", "source", source, "error", err)
		p.notify(SeverityError, MsgRestoreFailed)
		return err
	}
	p.log().Debug("signpad: restored", "source", source)
	p.changed()
	return nil
}

// Clear wipes the surface to transparent and records it in history.
func (p *Pad) Clear(ctx context.Context) error {
	return wait(ctx, p.StartClear(ctx))
}

// StartClear is the non-blocking form of Clear; see StartUndo.
func (p *Pad) StartClear(ctx context.Context) <-chan error {
	return p.start(ctx, func() error {
		p.finishStroke()
		p.surf.Clear()
		p.commit("clear")
		p.changed()
		p.notify(SeverityWarning, MsgCleared)
		return nil
	})
}

// Recover draws the saved signature on top of the current drawing and
// records the result in history. It returns ErrNoSavedSignature when
// nothing was saved; the surface is unchanged on any error.
func (p *Pad) Recover(ctx context.Context) error {
	return wait(ctx, p.StartRecover(ctx))
}

// StartRecover is the non-blocking form of Recover; see StartUndo.
func (p *Pad) StartRecover(ctx context.Context) <-chan error {
	return p.start(ctx, func() error {
		p.finishStroke()
		img, err := RecoverLatest(ctx, p.opts.store, p.opts.storageKey)
		switch {
		case errors.Is(err, ErrNoSavedSignature):
			p.notify(SeverityWarning, MsgNoSaved)
			return err
		case err != nil:
			p.log().Warn("signpad: recover failed", "key", p.opts.storageKey, "error", err)
			p.notify(SeverityError, MsgRestoreFailed)
			return err
		}

		p.surf.DrawOver(img)
		p.commit("recover")
		p.changed()
		p.log().Info("signpad: signature recovered", "key", p.opts.storageKey)
		p.notify(SeverityInfo, MsgRecovered)
		return nil
	})
}

// SaveResult is the outcome of a save started with StartSave.
type SaveResult struct {
	Artifact Artifact
	Err      error
}

// Save flattens the drawing over the background color, persists it and
// hands it to the downloader. The download is attempted even when
// persisting fails; both failures are returned joined, the persistence
// one as *StorageError.
//
// Flattening, encoding and persisting run as one queued action, so a
// Recover issued after Save sees the saved signature.
func (p *Pad) Save(ctx context.Context) (Artifact, error) {
	select {
	case r := <-p.StartSave(ctx):
		return r.Artifact, r.Err
	case <-ctx.Done():
		return Artifact{}, ctx.Err()
	}
}

// StartSave is the non-blocking form of Save. The download runs after
// the queued part, off the pad's worker.
func (p *Pad) StartSave(ctx context.Context) <-chan SaveResult {
	var (
		a        Artifact
		storeErr error
	)
	queued := p.start(ctx, func() error {
		flat := Flatten(p.surf.img, p.opts.controls.Background())
		data, err := EncodePNG(flat)
		if err != nil {
			return err
		}
		a = Artifact{Name: p.opts.downloadName, Image: flat, PNG: data}

		if storeErr = persistPNG(ctx, p.opts.store, p.opts.storageKey, data); storeErr != nil {
			p.log().Warn("signpad: persist failed", "key", p.opts.storageKey, "error", storeErr)
			p.notify(SeverityError, MsgSaveFailed)
		}
		return nil
	})

	out := make(chan SaveResult, 1)
	go func() {
		if err := <-queued; err != nil {
			out <- SaveResult{Err: err}
			return
		}
		dlErr := ExportDownload(ctx, p.opts.downloader, a)
		if dlErr != nil {
			p.log().Warn("signpad: download failed", "name", a.Name, "error", dlErr)
			p.notify(SeverityError, MsgDownloadFailed)
		} else {
			p.log().Info("signpad: signature saved", "name", a.Name, "bytes", len(a.PNG))
			p.notify(SeveritySuccess, MsgDownloaded)
		}
		out <- SaveResult{Artifact: a, Err: errors.Join(storeErr, dlErr)}
	}()
	return out
}

// SetBackground changes the export background color. The surface itself
// is unaffected. Controls without a SetBackground method are left alone
// and only the notice is sent.
func (p *Pad) SetBackground(c RGB) {
	if s, ok := p.opts.controls.(interface{ SetBackground(RGB) }); ok {
		s.SetBackground(c)
	}
	p.notify(SeverityInfo, MsgBackground)
}

// Image returns a copy of the surface after all previously issued actions.
func (p *Pad) Image(ctx context.Context) (*image.NRGBA, error) {
	var img *image.NRGBA
	err := p.do(ctx, func() error {
		img = p.surf.Image()
		return nil
	})
	return img, err
}

// HistoryLen returns the number of past snapshots (including the current
// one) and of undone snapshots available to Redo.
func (p *Pad) HistoryLen(ctx context.Context) (past, future int, err error) {
	err = p.do(ctx, func() error {
		past, future = p.history.PastLen(), p.history.FutureLen()
		return nil
	})
	return past, future, err
}

// Close commits any stroke in progress, applies every queued action and
// stops the worker. Later calls return ErrClosed.
func (p *Pad) Close() error {
	if err := p.queue.Go(p.finishStroke); err != nil {
		return closedErr(err)
	}
	p.queue.Close()
	p.log().Info("signpad: pad closed")
	return nil
}

func (p *Pad) do(ctx context.Context, fn func() error) error {
	return wait(ctx, p.start(ctx, fn))
}

// start queues fn and returns a channel that receives its result.
func (p *Pad) start(ctx context.Context, fn func() error) <-chan error {
	errc, err := p.queue.Submit(ctx, fn)
	if err != nil {
		done := make(chan error, 1)
		done <- closedErr(err)
		return done
	}
	return errc
}

// wait returns the result from errc, or ctx's error if it ends first.
func wait(ctx context.Context, errc <-chan error) error {
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pad) changed() {
	if p.opts.onChange != nil {
		p.opts.onChange(p.surf.Image())
	}
}

func (p *Pad) notify(sev Severity, msg string) {
	p.opts.notifier.Notify(Notice{Severity: sev, Message: msg})
}

func (p *Pad) log() *slog.Logger {
	return Logger().With("session", p.id)
}

// closedErr maps the queue's closed error to ErrClosed.
func closedErr(err error) error {
	if errors.Is(err, queue.ErrClosed) {
		return ErrClosed
	}
	return err
}
