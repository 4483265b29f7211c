package interfaces

import (
	"context"

	"taller_movil/internal/domain/entities"
)

// IDraftStore abstracts the remote order persistence service.
//
// SaveDraft upserts the serialized aggregate under its draft id. Finalize
// turns the draft into a definitive order and returns its id; after a
// successful finalize the draft is gone from the remote store.

type IDraftStore interface {
	SaveDraft(ctx context.Context, draftID string, snap entities.OrderSnapshot) error
	Finalize(ctx context.Context, draftID string, snap entities.OrderSnapshot) (orderID string, err error)
}

// ILocalDraftCache is the single durable local slot holding the most recent
// draft snapshot. It is synchronous and local, so calls take no context.
//
// Load reports ok=false when the slot is empty, which is not an error.

type ILocalDraftCache interface {
	Store(snap entities.OrderSnapshot) error
	Load() (snap entities.OrderSnapshot, ok bool, err error)
	Clear() error
}
