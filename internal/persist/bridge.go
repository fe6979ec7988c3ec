package persist

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/talkincode/restodesk/internal/store"
	"go.uber.org/zap"
)

// Source tells where the hydrated state came from.
type Source string

const (
	SourceSlot     Source = "slot"
	SourceSeed     Source = "seed"
	SourceFallback Source = "seed-fallback"
)

// FailureFunc observes persistence failures; op is "load" or "save".
type FailureFunc func(op string, err error)

// Bridge keeps a store and a durable slot in sync: it hydrates the store on
// start and writes the persisted subset after every commit. Any slot
// failure switches the bridge to in-memory-only for the rest of the session.
type Bridge struct {
	slot      Slot
	degraded  atomic.Bool
	onFailure FailureFunc
}

func NewBridge(slot Slot) *Bridge {
	return &Bridge{slot: slot}
}

// OnFailure registers fn to observe load and save failures.
func (b *Bridge) OnFailure(fn FailureFunc) {
	b.onFailure = fn
}

// Degraded reports whether the bridge stopped writing to the slot.
func (b *Bridge) Degraded() bool {
	return b.degraded.Load()
}

// Hydrate loads the durable snapshot into st. When the slot is empty it
// dispatches seed() and writes it back; when the slot cannot be read it
// dispatches seed() and continues in memory only.
func (b *Bridge) Hydrate(ctx context.Context, st *store.Store, seed func() Snapshot) Source {
	data, err := b.slot.Load(ctx)
	if err == nil {
		snap, derr := Decode(data)
		if derr == nil {
			st.Dispatch(snap.Actions()...)
			zap.L().Info("state restored from durable slot",
				zap.String("namespace", "persist"),
				zap.Int("orders", len(snap.Orders)),
				zap.Int("menu_items", len(snap.MenuItems)))
			return SourceSlot
		}
		err = derr
	}

	st.Dispatch(seed().Actions()...)
	if errors.Is(err, ErrSlotEmpty) {
		zap.L().Info("durable slot empty, loaded seed data", zap.String("namespace", "persist"))
		b.Flush(ctx, st.State())
		return SourceSeed
	}

	b.fail("load", err)
	return SourceFallback
}

// Attach registers the write-back hook on st.
func (b *Bridge) Attach(st *store.Store) error {
	return st.OnCommit(func(c store.Commit) {
		if !store.Persisted(c.Action) {
			return
		}
		b.Flush(context.Background(), c.Next)
	})
}

// Flush writes the persisted subset of s unless the bridge is degraded.
func (b *Bridge) Flush(ctx context.Context, s store.State) {
	if b.Degraded() {
		return
	}
	data, err := Encode(FromState(s))
	if err == nil {
		err = b.slot.Save(ctx, data)
	}
	if err != nil {
		b.fail("save", err)
	}
}

// Reset clears the durable slot and re-enables writes.
func (b *Bridge) Reset(ctx context.Context) error {
	if err := b.slot.Clear(ctx); err != nil {
		return err
	}
	b.degraded.Store(false)
	return nil
}

func (b *Bridge) fail(op string, err error) {
	b.degraded.Store(true)
	zap.L().Error("durable slot unavailable, continuing in memory only",
		zap.String("namespace", "persist"),
		zap.String("op", op),
		zap.Error(err))
	if b.onFailure != nil {
		b.onFailure(op, err)
	}
}
