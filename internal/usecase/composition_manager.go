package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"taller_movil/internal/domain/entities"
	"taller_movil/internal/metrics"
	"taller_movil/internal/usecase/interfaces"
)

var (
	ErrNoCachedDraft = errors.New("no cached draft available")
	ErrOrderNotValid = errors.New("order is not ready to finalize")
)

// CompositionView is the read model handed to the HTTP layer: the serialized
// aggregate plus every derived figure the UI shows.
type CompositionView struct {
	DraftID             string
	Snapshot            entities.OrderSnapshot
	Progress            int
	Valid               bool
	AllDevicesDiagnosed bool
	OrderTotal          float64
	SaveState           entities.SaveState
}

// ICompositionManager is the session-facing surface of the composition
// engine: it owns the live compositions, one autosave worker each, and routes
// mutations to the right aggregate.

type ICompositionManager interface {
	Start(restoreFromCache bool) (CompositionView, error)
	Get(draftID string) (CompositionView, error)
	CachedDraft() (entities.OrderSnapshot, bool, error)

	SetCustomer(draftID string, c entities.Customer) (CompositionView, error)
	AddDevice(draftID string, d entities.Device) (CompositionView, error)
	RemoveDevice(draftID, deviceID string) (CompositionView, error)
	ReorderDevice(draftID string, fromIndex, toIndex int) (CompositionView, error)
	SetDiagnosisBudget(draftID, deviceID string, b *entities.DiagnosisBudget) (CompositionView, error)
	SetPricing(draftID string, globalDiscount, deposit *float64) (CompositionView, error)
	RecordDeposit(draftID string, amount float64) (CompositionView, error)
	Navigate(draftID string, target entities.Section) (CompositionView, error)

	Finalize(ctx context.Context, draftID string) (orderID string, err error)
	Abandon(ctx context.Context, draftID string) error
	CloseAll(ctx context.Context)
}

type compositionSession struct {
	comp    *OrderComposition
	persist *AutoPersist
}

type CompositionManager struct {
	mu       sync.Mutex
	sessions map[string]*compositionSession

	local   interfaces.ILocalDraftCache
	remote  interfaces.IDraftStore
	options []AutoPersistOption

	metrics *metrics.AutosaveMetrics
	logger  *log.Entry
}

var _ ICompositionManager = (*CompositionManager)(nil)

func NewCompositionManager(local interfaces.ILocalDraftCache, remote interfaces.IDraftStore, m *metrics.AutosaveMetrics, logger *log.Entry, options ...AutoPersistOption) *CompositionManager {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &CompositionManager{
		sessions: make(map[string]*compositionSession),
		local:    local,
		remote:   remote,
		options:  append([]AutoPersistOption{WithAutoPersistMetrics(m)}, options...),
		metrics:  m,
		logger:   logger.WithField("component", "composition"),
	}
}

// Start opens a new composition session. With restoreFromCache the previously
// cached draft is applied explicitly; starting fresh leaves the cached draft
// untouched until the first autosave overwrites the slot.
func (mgr *CompositionManager) Start(restoreFromCache bool) (CompositionView, error) {
	var cached entities.OrderSnapshot
	if restoreFromCache {
		snap, ok, err := mgr.local.Load()
		if err != nil {
			return CompositionView{}, err
		}
		if !ok {
			return CompositionView{}, ErrNoCachedDraft
		}
		cached = snap
	}

	comp := NewOrderComposition(uuid.NewString(), mgr.logger)
	persist := NewAutoPersist(comp, mgr.local, mgr.remote, mgr.options...)
	sess := &compositionSession{comp: comp, persist: persist}

	mgr.mu.Lock()
	mgr.sessions[comp.ID()] = sess
	mgr.mu.Unlock()
	mgr.metrics.CompositionOpened()

	if restoreFromCache {
		comp.Restore(cached)
	}
	mgr.logger.WithField("draft_id", comp.ID()).Info("composition session started")
	return mgr.view(sess), nil
}

func (mgr *CompositionManager) session(draftID string) (*compositionSession, error) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	sess, ok := mgr.sessions[draftID]
	if !ok {
		return nil, ErrCompositionNotFound
	}
	return sess, nil
}

func (mgr *CompositionManager) view(sess *compositionSession) CompositionView {
	return CompositionView{
		DraftID:             sess.comp.ID(),
		Snapshot:            sess.comp.Snapshot(time.Time{}),
		Progress:            sess.comp.Progress(),
		Valid:               sess.comp.IsValid(),
		AllDevicesDiagnosed: sess.comp.AllDevicesDiagnosed(),
		OrderTotal:          sess.comp.Total(),
		SaveState:           sess.persist.SaveState(),
	}
}

func (mgr *CompositionManager) Get(draftID string) (CompositionView, error) {
	sess, err := mgr.session(draftID)
	if err != nil {
		return CompositionView{}, err
	}
	return mgr.view(sess), nil
}

// CachedDraft exposes the restore offer without touching any live session.
func (mgr *CompositionManager) CachedDraft() (entities.OrderSnapshot, bool, error) {
	return mgr.local.Load()
}

func (mgr *CompositionManager) SetCustomer(draftID string, c entities.Customer) (CompositionView, error) {
	sess, err := mgr.session(draftID)
	if err != nil {
		return CompositionView{}, err
	}
	if err := sess.comp.SetCustomer(c); err != nil {
		return CompositionView{}, err
	}
	return mgr.view(sess), nil
}

func (mgr *CompositionManager) AddDevice(draftID string, d entities.Device) (CompositionView, error) {
	sess, err := mgr.session(draftID)
	if err != nil {
		return CompositionView{}, err
	}
	if _, err := sess.comp.AddDevice(d); err != nil {
		return CompositionView{}, err
	}
	return mgr.view(sess), nil
}

func (mgr *CompositionManager) RemoveDevice(draftID, deviceID string) (CompositionView, error) {
	sess, err := mgr.session(draftID)
	if err != nil {
		return CompositionView{}, err
	}
	sess.comp.RemoveDevice(deviceID)
	return mgr.view(sess), nil
}

func (mgr *CompositionManager) ReorderDevice(draftID string, fromIndex, toIndex int) (CompositionView, error) {
	sess, err := mgr.session(draftID)
	if err != nil {
		return CompositionView{}, err
	}
	sess.comp.ReorderDevice(fromIndex, toIndex)
	return mgr.view(sess), nil
}

func (mgr *CompositionManager) SetDiagnosisBudget(draftID, deviceID string, b *entities.DiagnosisBudget) (CompositionView, error) {
	sess, err := mgr.session(draftID)
	if err != nil {
		return CompositionView{}, err
	}
	if err := sess.comp.SetDiagnosisBudget(deviceID, b); err != nil {
		return CompositionView{}, err
	}
	return mgr.view(sess), nil
}

func (mgr *CompositionManager) SetPricing(draftID string, globalDiscount, deposit *float64) (CompositionView, error) {
	sess, err := mgr.session(draftID)
	if err != nil {
		return CompositionView{}, err
	}
	if err := sess.comp.SetPricing(globalDiscount, deposit); err != nil {
		return CompositionView{}, err
	}
	return mgr.view(sess), nil
}

func (mgr *CompositionManager) RecordDeposit(draftID string, amount float64) (CompositionView, error) {
	sess, err := mgr.session(draftID)
	if err != nil {
		return CompositionView{}, err
	}
	if err := sess.comp.AddDeposit(amount); err != nil {
		return CompositionView{}, err
	}
	return mgr.view(sess), nil
}

func (mgr *CompositionManager) Navigate(draftID string, target entities.Section) (CompositionView, error) {
	sess, err := mgr.session(draftID)
	if err != nil {
		return CompositionView{}, err
	}
	if err := sess.comp.SetActiveSection(target); err != nil {
		return CompositionView{}, err
	}
	return mgr.view(sess), nil
}

// Finalize flushes pending autosave work, submits the draft as a definitive
// order and releases the session. The local slot is cleared only after the
// remote accepted the order.
func (mgr *CompositionManager) Finalize(ctx context.Context, draftID string) (string, error) {
	sess, err := mgr.session(draftID)
	if err != nil {
		return "", err
	}
	if !sess.comp.IsValid() {
		return "", ErrOrderNotValid
	}
	if err := sess.persist.Flush(ctx); err != nil {
		// A remote draft failure does not block finalize; the local slot
		// already holds the latest state and finalize is its own remote call.
		if errors.Is(err, ErrLocalCacheWrite) {
			return "", err
		}
		mgr.logger.WithError(err).WithField("draft_id", draftID).Warn("flush before finalize failed")
	}

	orderID, err := mgr.remote.Finalize(ctx, draftID, sess.comp.Snapshot(time.Now().UTC()))
	if err != nil {
		return "", err
	}

	if err := sess.persist.ClearCache(); err != nil {
		mgr.logger.WithError(err).Warn("failed clearing local draft cache after finalize")
	}
	mgr.release(ctx, draftID, sess, false)
	mgr.logger.WithField("draft_id", draftID).WithField("order_id", orderID).Info("order finalized")
	return orderID, nil
}

// Abandon closes the session with a final flush; the draft stays recoverable
// from the cache slot and the remote draft store.
func (mgr *CompositionManager) Abandon(ctx context.Context, draftID string) error {
	sess, err := mgr.session(draftID)
	if err != nil {
		return err
	}
	mgr.release(ctx, draftID, sess, true)
	mgr.logger.WithField("draft_id", draftID).Info("composition session abandoned")
	return nil
}

func (mgr *CompositionManager) release(ctx context.Context, draftID string, sess *compositionSession, flush bool) {
	if flush {
		if err := sess.persist.Close(ctx); err != nil {
			mgr.logger.WithError(err).WithField("draft_id", draftID).Warn("final flush failed")
		}
	} else {
		sess.persist.Stop()
	}
	mgr.mu.Lock()
	delete(mgr.sessions, draftID)
	mgr.mu.Unlock()
	mgr.metrics.CompositionClosed()
}

// CloseAll flushes every open session; called on server shutdown.
func (mgr *CompositionManager) CloseAll(ctx context.Context) {
	mgr.mu.Lock()
	sessions := make(map[string]*compositionSession, len(mgr.sessions))
	for id, sess := range mgr.sessions {
		sessions[id] = sess
	}
	mgr.mu.Unlock()

	for id, sess := range sessions {
		mgr.release(ctx, id, sess, true)
	}
}
