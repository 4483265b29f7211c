package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"taller_movil/internal/domain/entities"
	"taller_movil/internal/metrics"
	"taller_movil/internal/usecase/interfaces"
)

const (
	defaultDebounce      = 2 * time.Second
	defaultRemoteTimeout = 10 * time.Second
)

var ErrLocalCacheWrite = errors.New("local draft cache write failed")

// AutoPersistOptions configures the autosave worker.
type AutoPersistOptions struct {
	Logger        *log.Entry
	Metrics       *metrics.AutosaveMetrics
	Debounce      time.Duration
	RemoteTimeout time.Duration
	Online        func() bool
}

// AutoPersistOption mutates AutoPersistOptions.
type AutoPersistOption func(*AutoPersistOptions)

// WithAutoPersistLogger sets the worker logger.
func WithAutoPersistLogger(logger *log.Entry) AutoPersistOption {
	return func(opts *AutoPersistOptions) {
		opts.Logger = logger
	}
}

// WithAutoPersistMetrics sets the metrics sink.
func WithAutoPersistMetrics(m *metrics.AutosaveMetrics) AutoPersistOption {
	return func(opts *AutoPersistOptions) {
		opts.Metrics = m
	}
}

// WithDebounce sets the quiet window coalescing mutation bursts.
func WithDebounce(d time.Duration) AutoPersistOption {
	return func(opts *AutoPersistOptions) {
		opts.Debounce = d
	}
}

// WithRemoteTimeout bounds each remote draft write.
func WithRemoteTimeout(d time.Duration) AutoPersistOption {
	return func(opts *AutoPersistOptions) {
		opts.RemoteTimeout = d
	}
}

// WithOnlineProbe sets the connectivity check consulted before each remote
// write. Offline is not an error; the remote write is simply skipped until
// the next cycle.
func WithOnlineProbe(probe func() bool) AutoPersistOption {
	return func(opts *AutoPersistOptions) {
		opts.Online = probe
	}
}

// AutoPersist observes one composition's mutation stream, debounces it and
// performs a single-flight dual write: the local cache slot first
// (synchronous, authoritative for "work is safe"), then the remote draft
// endpoint when connectivity allows.
//
// Scheduling is purely reactive: there is no periodic re-check poll, every
// write traces back to a mutation, and the shutdown path is covered by an
// unconditional Flush. The debounce timer is the only cancellation point;
// once a save starts it runs to completion.

type AutoPersist struct {
	comp   *OrderComposition
	local  interfaces.ILocalDraftCache
	remote interfaces.IDraftStore

	debounce      time.Duration
	remoteTimeout time.Duration
	online        func() bool

	mu      sync.Mutex
	cond    *sync.Cond
	timer   *time.Timer
	saving  bool
	pending bool
	closed  bool
	state   entities.SaveState
	lastErr error

	logger  *log.Entry
	metrics *metrics.AutosaveMetrics
}

// NewAutoPersist wires the worker to the composition's mutation stream and
// returns it. The remote store may be nil (local-only persistence).
func NewAutoPersist(comp *OrderComposition, local interfaces.ILocalDraftCache, remote interfaces.IDraftStore, options ...AutoPersistOption) *AutoPersist {
	opts := AutoPersistOptions{
		Debounce:      defaultDebounce,
		RemoteTimeout: defaultRemoteTimeout,
		Online:        func() bool { return true },
	}
	for _, o := range options {
		o(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = log.NewEntry(log.StandardLogger())
	}

	ap := &AutoPersist{
		comp:          comp,
		local:         local,
		remote:        remote,
		debounce:      opts.Debounce,
		remoteTimeout: opts.RemoteTimeout,
		online:        opts.Online,
		state:         entities.SaveStateIdle,
		logger:        opts.Logger.WithField("component", "autopersist").WithField("draft_id", comp.ID()),
		metrics:       opts.Metrics,
	}
	ap.cond = sync.NewCond(&ap.mu)
	comp.SetOnMutate(ap.Schedule)
	return ap
}

// Schedule (re)arms the debounce timer. Called on every mutation; a burst of
// mutations inside the window collapses into one write. Mutations on an
// empty aggregate schedule nothing.
func (ap *AutoPersist) Schedule() {
	if ap.comp.IsEmpty() {
		return
	}

	ap.mu.Lock()
	defer ap.mu.Unlock()
	if ap.closed {
		return
	}
	ap.metrics.RecordScheduled()
	if ap.timer != nil {
		ap.timer.Stop()
		ap.metrics.RecordCoalesced()
	}
	ap.timer = time.AfterFunc(ap.debounce, ap.fire)
}

// fire runs when the debounce window elapses. If a save is already in
// flight the request is queued logically (pending) instead of interleaving.
func (ap *AutoPersist) fire() {
	ap.mu.Lock()
	ap.timer = nil
	if ap.closed {
		ap.mu.Unlock()
		return
	}
	if ap.saving {
		ap.pending = true
		ap.mu.Unlock()
		return
	}
	ap.saving = true
	ap.state = entities.SaveStateSaving
	ap.mu.Unlock()

	for {
		err := ap.performSave(context.Background())

		ap.mu.Lock()
		ap.finishSave(err)
		if ap.pending && !ap.closed {
			ap.pending = false
			ap.saving = true
			ap.state = entities.SaveStateSaving
			ap.mu.Unlock()
			continue
		}
		ap.mu.Unlock()
		return
	}
}

// finishSave updates the state signal after one write attempt. Caller holds
// the lock.
func (ap *AutoPersist) finishSave(err error) {
	ap.saving = false
	ap.lastErr = err
	if err != nil {
		ap.state = entities.SaveStateError
	} else {
		ap.state = entities.SaveStateSaved
	}
	ap.cond.Broadcast()
}

// performSave captures the snapshot at execution time, never a stale one
// from when the save was scheduled, writes it to the local slot and then,
// connectivity permitting, to the remote draft endpoint. A remote failure is
// reported but never rolls back the local write, and is only retried on the
// next natural cycle.
func (ap *AutoPersist) performSave(ctx context.Context) error {
	snap := ap.comp.Snapshot(time.Now().UTC())

	var firstErr error
	if err := ap.local.Store(snap); err != nil {
		// The local slot is the "work is safe" guarantee; this failure is
		// loud, not silent.
		ap.logger.WithError(err).Error("local draft cache write failed")
		ap.metrics.RecordWrite("local", "error")
		firstErr = fmt.Errorf("%w: %w", ErrLocalCacheWrite, err)
	} else {
		ap.metrics.RecordWrite("local", "ok")
	}

	if ap.remote == nil {
		return firstErr
	}
	if !ap.online() {
		ap.logger.Debug("offline, skipping remote draft save")
		ap.metrics.RecordWrite("remote", "offline")
		return firstErr
	}

	remoteCtx, cancel := context.WithTimeout(ctx, ap.remoteTimeout)
	defer cancel()
	if err := ap.remote.SaveDraft(remoteCtx, ap.comp.ID(), snap); err != nil {
		ap.logger.WithError(err).Warn("remote draft save failed")
		ap.metrics.RecordWrite("remote", "error")
		if firstErr == nil {
			firstErr = err
		}
		return firstErr
	}
	ap.metrics.RecordWrite("remote", "ok")
	return firstErr
}

// Flush persists immediately, bypassing the debounce window. It waits for an
// in-flight save to finish first so writes never interleave, then performs
// one synchronous save of the latest state. Used on session termination and
// before finalize.
func (ap *AutoPersist) Flush(ctx context.Context) error {
	ap.mu.Lock()
	if ap.timer != nil {
		ap.timer.Stop()
		ap.timer = nil
	}
	for ap.saving {
		ap.cond.Wait()
	}
	ap.pending = false
	if ap.comp.IsEmpty() {
		ap.mu.Unlock()
		return nil
	}
	ap.saving = true
	ap.state = entities.SaveStateSaving
	ap.mu.Unlock()

	err := ap.performSave(ctx)

	ap.mu.Lock()
	ap.finishSave(err)
	ap.mu.Unlock()
	return err
}

// Close stops scheduling and makes a final unconditional flush attempt.
func (ap *AutoPersist) Close(ctx context.Context) error {
	err := ap.Flush(ctx)
	ap.Stop()
	return err
}

// Stop cancels any pending timer and stops scheduling without flushing.
// Used after finalize, when the draft must not be re-written.
func (ap *AutoPersist) Stop() {
	ap.mu.Lock()
	ap.closed = true
	if ap.timer != nil {
		ap.timer.Stop()
		ap.timer = nil
	}
	ap.mu.Unlock()
}

// SaveState exposes the save signal for the UI.
func (ap *AutoPersist) SaveState() entities.SaveState {
	ap.mu.Lock()
	defer ap.mu.Unlock()
	return ap.state
}

// LastError returns the error behind a SaveStateError, if any.
func (ap *AutoPersist) LastError() error {
	ap.mu.Lock()
	defer ap.mu.Unlock()
	return ap.lastErr
}

// LoadCached returns the previously cached draft, if the slot holds one. The
// snapshot is offered for restoration, never merged implicitly.
func (ap *AutoPersist) LoadCached() (entities.OrderSnapshot, bool, error) {
	return ap.local.Load()
}

// ClearCache empties the local slot, e.g. after a successful finalize.
func (ap *AutoPersist) ClearCache() error {
	return ap.local.Clear()
}
