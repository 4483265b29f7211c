package usecase

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"taller_movil/internal/domain/entities"
)

var (
	ErrInvalidCustomer     = errors.New("invalid customer")
	ErrInvalidDevice       = errors.New("invalid device")
	ErrInvalidBudget       = errors.New("invalid diagnosis budget")
	ErrUnknownDevice       = errors.New("unknown device id")
	ErrNavigationBlocked   = errors.New("section gate not satisfied")
	ErrInvalidSection      = errors.New("invalid section")
	ErrNegativeAmount      = errors.New("amount must be non-negative")
	ErrCompositionNotFound = errors.New("composition not found")
)

// Progress weights per workflow phase. Diagnosis counts as soon as any
// device has a budget entry; see AllDevicesDiagnosed for the strict reading.
const (
	progressCustomer  = 25
	progressDevices   = 25
	progressDiagnosis = 50
)

// OrderComposition owns the aggregate state of one repair order being
// composed. All mutators are synchronous and atomic: the mutex guarantees no
// observer ever sees a half-applied mutation, and every mutator re-derives
// dependent state (totals, section) before releasing the lock.
//
// After each successful mutation the onMutate hook fires outside the
// mutator's critical path; autosave subscribes there.

type OrderComposition struct {
	mu  sync.Mutex
	id  string
	agg entities.OrderAggregate

	onMutate func()
	logger   *log.Entry
}

func NewOrderComposition(id string, logger *log.Entry) *OrderComposition {
	if id == "" {
		id = uuid.NewString()
	}
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &OrderComposition{
		id:     id,
		agg:    entities.NewOrderAggregate(),
		logger: logger.WithField("draft_id", id),
	}
}

func (c *OrderComposition) ID() string {
	return c.id
}

// SetOnMutate registers the mutation observer. A single observer is enough:
// the only consumer is the autosave scheduler.
func (c *OrderComposition) SetOnMutate(fn func()) {
	c.mu.Lock()
	c.onMutate = fn
	c.mu.Unlock()
}

func (c *OrderComposition) notify() {
	c.mu.Lock()
	fn := c.onMutate
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// advanceIfNewlySatisfied applies the auto-advance rule: move to NextSection
// only when this mutation flipped the active section's gate from unsatisfied
// to satisfied. Gates that were already satisfied before the mutation (e.g.
// after an explicit backward navigation) do not re-fire.
func (c *OrderComposition) advanceIfNewlySatisfied(satisfiedBefore bool) {
	if satisfiedBefore {
		return
	}
	c.agg.ActiveSection = NextSection(&c.agg)
}

// SetCustomer replaces the order's customer. Missing required fields block
// the mutation entirely; a valid customer satisfies the customer gate and may
// auto-advance the workflow to the devices section.
func (c *OrderComposition) SetCustomer(cust entities.Customer) error {
	if errs := cust.ValidateInvariants(); len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidCustomer}, errs...)...)
	}

	c.mu.Lock()
	satBefore := gateSatisfied(&c.agg, c.agg.ActiveSection)
	c.agg.Customer = &cust
	c.advanceIfNewlySatisfied(satBefore)
	c.mu.Unlock()

	c.logger.WithField("customer_id", cust.ID).Debug("customer attached")
	c.notify()
	return nil
}

// AddDevice appends a device at the end of the list. A missing id is
// generated; Order is always assigned by the engine.
func (c *OrderComposition) AddDevice(d entities.Device) (entities.Device, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	c.mu.Lock()
	satBefore := gateSatisfied(&c.agg, c.agg.ActiveSection)
	d.Order = len(c.agg.Devices) + 1
	if errs := d.ValidateInvariants(); len(errs) > 0 {
		c.mu.Unlock()
		return entities.Device{}, errors.Join(append([]error{ErrInvalidDevice}, errs...)...)
	}
	for _, existing := range c.agg.Devices {
		if existing.ID == d.ID {
			c.mu.Unlock()
			return entities.Device{}, errors.Join(ErrInvalidDevice, errors.New("duplicate device id"))
		}
	}
	c.agg.Devices = append(c.agg.Devices, d)
	c.advanceIfNewlySatisfied(satBefore)
	c.mu.Unlock()

	c.logger.WithField("device_id", d.ID).Debug("device added")
	c.notify()
	return d, nil
}

// RemoveDevice deletes the device, renumbers the remaining ones to keep a
// dense 1..N ordering and cascades the removal of its diagnosis budget.
// Removing an unknown id is a no-op.
func (c *OrderComposition) RemoveDevice(deviceID string) {
	c.mu.Lock()
	idx := -1
	for i, d := range c.agg.Devices {
		if d.ID == deviceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return
	}
	c.agg.Devices = append(c.agg.Devices[:idx], c.agg.Devices[idx+1:]...)
	for i := range c.agg.Devices {
		c.agg.Devices[i].Order = i + 1
	}
	delete(c.agg.DiagnosisBudgets, deviceID)
	c.mu.Unlock()

	c.logger.WithField("device_id", deviceID).Debug("device removed")
	c.notify()
}

// ReorderDevice moves the device at fromIndex to toIndex (0-based) and
// renumbers every Order field. Out-of-range indexes are a no-op.
func (c *OrderComposition) ReorderDevice(fromIndex, toIndex int) {
	c.mu.Lock()
	n := len(c.agg.Devices)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n || fromIndex == toIndex {
		c.mu.Unlock()
		return
	}
	d := c.agg.Devices[fromIndex]
	rest := append(c.agg.Devices[:fromIndex:fromIndex], c.agg.Devices[fromIndex+1:]...)
	devices := make([]entities.Device, 0, n)
	devices = append(devices, rest[:toIndex]...)
	devices = append(devices, d)
	devices = append(devices, rest[toIndex:]...)
	for i := range devices {
		devices[i].Order = i + 1
	}
	c.agg.Devices = devices
	c.mu.Unlock()

	c.notify()
}

// SetDiagnosisBudget upserts the budget for a device; a nil budget removes
// the entry, signaling the diagnosis is incomplete again. Totals are
// recomputed here so stored totals can never drift from the fault entries.
func (c *OrderComposition) SetDiagnosisBudget(deviceID string, budget *entities.DiagnosisBudget) error {
	c.mu.Lock()
	known := false
	for _, d := range c.agg.Devices {
		if d.ID == deviceID {
			known = true
			break
		}
	}
	if !known {
		c.mu.Unlock()
		return ErrUnknownDevice
	}

	if budget == nil || len(budget.Faults) == 0 {
		delete(c.agg.DiagnosisBudgets, deviceID)
		c.mu.Unlock()
		c.logger.WithField("device_id", deviceID).Debug("diagnosis budget removed")
		c.notify()
		return nil
	}

	if errs := budget.ValidateInvariants(); len(errs) > 0 {
		c.mu.Unlock()
		return errors.Join(append([]error{ErrInvalidBudget}, errs...)...)
	}

	b := *budget
	b.Faults = append([]entities.FaultEntry(nil), budget.Faults...)
	b.Totals = ComputeBudgetTotals(b)
	satBefore := gateSatisfied(&c.agg, c.agg.ActiveSection)
	c.agg.DiagnosisBudgets[deviceID] = b
	c.advanceIfNewlySatisfied(satBefore)
	c.mu.Unlock()

	c.logger.WithField("device_id", deviceID).Debug("diagnosis budget upserted")
	c.notify()
	return nil
}

// SetPricing updates the order-level discount and/or the tracked deposit.
// Nil means "leave unchanged".
func (c *OrderComposition) SetPricing(globalDiscount, deposit *float64) error {
	if (globalDiscount != nil && *globalDiscount < 0) || (deposit != nil && *deposit < 0) {
		return ErrNegativeAmount
	}

	c.mu.Lock()
	if globalDiscount != nil {
		c.agg.GlobalDiscount = *globalDiscount
	}
	if deposit != nil {
		c.agg.Deposit = *deposit
	}
	c.mu.Unlock()

	c.notify()
	return nil
}

// AddDeposit accumulates a collected amount onto the tracked deposit figure.
func (c *OrderComposition) AddDeposit(amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	c.mu.Lock()
	c.agg.Deposit += amount
	c.mu.Unlock()
	c.notify()
	return nil
}

// SetActiveSection handles explicit navigation. Backward is always allowed
// and never invalidates later data; forward requires every gate in between to
// be satisfied.
func (c *OrderComposition) SetActiveSection(target entities.Section) error {
	if !target.Valid() {
		return ErrInvalidSection
	}

	c.mu.Lock()
	if !CanNavigate(&c.agg, target) {
		c.mu.Unlock()
		return ErrNavigationBlocked
	}
	c.agg.ActiveSection = target
	c.mu.Unlock()

	c.notify()
	return nil
}

// Progress is the weighted completion percentage: customer 25%, first device
// 25%, any started diagnosis 50%.
func (c *OrderComposition) Progress() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := 0
	if c.agg.Customer != nil {
		p += progressCustomer
	}
	if len(c.agg.Devices) > 0 {
		p += progressDevices
	}
	if len(c.agg.DiagnosisBudgets) > 0 {
		p += progressDiagnosis
	}
	return p
}

// IsValid reports whether the order can be finalized: customer set, at least
// one device, at least one diagnosis started.
func (c *OrderComposition) IsValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.agg.Customer != nil && len(c.agg.Devices) > 0 && len(c.agg.DiagnosisBudgets) > 0
}

// AllDevicesDiagnosed is the strict completeness reading: every registered
// device has a diagnosis budget. Progress and IsValid deliberately use the
// looser "at least one" rule; callers that want to block finalization until
// every device was looked at gate on this instead.
func (c *OrderComposition) AllDevicesDiagnosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.agg.Devices) == 0 {
		return false
	}
	for _, d := range c.agg.Devices {
		if _, ok := c.agg.DiagnosisBudgets[d.ID]; !ok {
			return false
		}
	}
	return true
}

// Total is the order-level total under the current line items and discounts.
func (c *OrderComposition) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return OrderTotal(&c.agg)
}

// Snapshot captures the serialized shape of the aggregate at this instant.
func (c *OrderComposition) Snapshot(lastSavedAt time.Time) entities.OrderSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.agg.Snapshot(lastSavedAt)
}

// IsEmpty reports whether there is anything worth persisting.
func (c *OrderComposition) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.agg.IsEmpty()
}

// Restore replaces the aggregate with a previously cached snapshot. This only
// happens on an explicit user action, never as an implicit merge.
func (c *OrderComposition) Restore(snap entities.OrderSnapshot) {
	agg := snap.Aggregate()
	for id, b := range agg.DiagnosisBudgets {
		b.Totals = ComputeBudgetTotals(b)
		agg.DiagnosisBudgets[id] = b
	}

	c.mu.Lock()
	c.agg = agg
	c.mu.Unlock()

	c.logger.Info("draft restored from cache")
	c.notify()
}
