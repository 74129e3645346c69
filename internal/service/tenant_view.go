package service

import (
	"context"
	"sync"

	"condo-ops-backend/internal/database/models"
	"condo-ops-backend/internal/logger"
	"condo-ops-backend/internal/store"
)

// TenantView holds the live duty, reservation, cleaning and sauna sets of
// one tenant. A single worker goroutine applies incoming snapshots; every
// snapshot replaces the previous state of its collection wholesale.
type TenantView struct {
	mu           sync.RWMutex
	duties       []models.Duty
	reservations []models.Reservation
	cleaning     []models.CleaningDuty
	sauna        []models.SaunaSession
	ready        map[string]bool

	subs   []*store.Subscription
	cancel context.CancelFunc
	done   chan struct{}

	closeOnce sync.Once
	isClosed  bool
	onClose   func(*TenantView)
	log       *logger.Logger
}

var viewCollections = []string{
	models.CollectionDuties,
	models.CollectionReservations,
	models.CollectionCleaningDuties,
	models.CollectionSaunaSessions,
}

func newTenantView(parent context.Context, st store.Store, tenantID string, onClose func(*TenantView)) (*TenantView, error) {
	ctx, cancel := context.WithCancel(parent)
	v := &TenantView{
		ready:   map[string]bool{},
		cancel:  cancel,
		done:    make(chan struct{}),
		onClose: onClose,
		log:     logger.New().WithField("tenant_id", tenantID),
	}

	for _, collection := range viewCollections {
		sub, err := st.Subscribe(ctx, collection, tenantID)
		if err != nil {
			for _, s := range v.subs {
				s.Close()
			}
			cancel()
			return nil, err
		}
		v.subs = append(v.subs, sub)
	}

	go v.run(ctx)
	return v, nil
}

// run applies snapshots until the context ends or every subscription is
// gone. A view whose worker has stopped is detached and never serves reads.
func (v *TenantView) run(ctx context.Context) {
	defer close(v.done)
	defer v.shutdown()

	duties := v.subs[0].Snapshots()
	reservations := v.subs[1].Snapshots()
	cleaning := v.subs[2].Snapshots()
	sauna := v.subs[3].Snapshots()

	for duties != nil || reservations != nil || cleaning != nil || sauna != nil {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-duties:
			if !ok {
				duties = nil
				v.lost(models.CollectionDuties, ctx)
				continue
			}
			v.apply(snap)
		case snap, ok := <-reservations:
			if !ok {
				reservations = nil
				v.lost(models.CollectionReservations, ctx)
				continue
			}
			v.apply(snap)
		case snap, ok := <-cleaning:
			if !ok {
				cleaning = nil
				v.lost(models.CollectionCleaningDuties, ctx)
				continue
			}
			v.apply(snap)
		case snap, ok := <-sauna:
			if !ok {
				sauna = nil
				v.lost(models.CollectionSaunaSessions, ctx)
				continue
			}
			v.apply(snap)
		}
	}
}

// apply decodes a snapshot and swaps it into the view
func (v *TenantView) apply(snap store.Snapshot) {
	var err error
	v.mu.Lock()
	switch snap.Collection {
	case models.CollectionDuties:
		var duties []models.Duty
		if duties, err = store.Decode[models.Duty](snap); err == nil {
			v.duties = duties
		}
	case models.CollectionReservations:
		var reservations []models.Reservation
		if reservations, err = store.Decode[models.Reservation](snap); err == nil {
			v.reservations = reservations
		}
	case models.CollectionCleaningDuties:
		var cleaning []models.CleaningDuty
		if cleaning, err = store.Decode[models.CleaningDuty](snap); err == nil {
			v.cleaning = cleaning
		}
	case models.CollectionSaunaSessions:
		var sauna []models.SaunaSession
		if sauna, err = store.Decode[models.SaunaSession](snap); err == nil {
			v.sauna = sauna
		}
	}
	if err == nil {
		v.ready[snap.Collection] = true
	}
	v.mu.Unlock()

	if err != nil {
		v.log.WithError(err).WithField("collection", snap.Collection).Error("Dropping undecodable snapshot")
	}
}

// lost marks a collection stale after its subscription ended
func (v *TenantView) lost(collection string, ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	v.mu.Lock()
	v.ready[collection] = false
	v.mu.Unlock()
	v.log.WithField("collection", collection).Warn("Subscription ended, serving reads from the store")
}

// State returns a copy of the current state. ok is false until every
// collection has delivered a snapshot, or after a subscription was lost.
func (v *TenantView) State() (TenantState, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.isClosed {
		return TenantState{}, false
	}
	for _, c := range viewCollections {
		if !v.ready[c] {
			return TenantState{}, false
		}
	}
	return TenantState{
		Duties:       append([]models.Duty(nil), v.duties...),
		Reservations: append([]models.Reservation(nil), v.reservations...),
		Cleaning:     append([]models.CleaningDuty(nil), v.cleaning...),
		Sauna:        append([]models.SaunaSession(nil), v.sauna...),
	}, true
}

func (v *TenantView) closed() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.isClosed
}

// Close unsubscribes from the store and stops the worker. No snapshot is
// applied after Close returns.
func (v *TenantView) Close() {
	v.shutdown()
	<-v.done
}

// shutdown marks the view closed, releases its subscriptions and detaches
// it from the service. It does not wait for the worker.
func (v *TenantView) shutdown() {
	v.closeOnce.Do(func() {
		v.mu.Lock()
		v.isClosed = true
		for c := range v.ready {
			v.ready[c] = false
		}
		v.mu.Unlock()

		v.cancel()
		for _, sub := range v.subs {
			sub.Close()
		}
		if v.onClose != nil {
			v.onClose(v)
		}
	})
}
