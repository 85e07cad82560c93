// Package list owns the canonical application state: the ordered collection
// of shopping lists and the id of the one currently shown in the editor.
// All mutation goes through the Repository; every mutation rewrites the full
// collection to its storage slot before returning.
package list

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"listcal/internal/domain"
	"listcal/internal/slot"
)

// StorageKey is the slot the list collection is persisted under.
const StorageKey = "listcal-lists"

type Repository struct {
	mu       sync.Mutex
	store    slot.Store
	logger   *slog.Logger
	lists    []domain.ShoppingList
	activeID string
}

// NewRepository loads the persisted collection from store. An absent or
// damaged slot yields an empty collection.
func NewRepository(ctx context.Context, store slot.Store, logger *slog.Logger) *Repository {
	lists := slot.LoadJSON(ctx, store, StorageKey, []domain.ShoppingList{})
	logger.Info("loaded shopping lists", "count", len(lists))
	return &Repository{
		store:  store,
		logger: logger,
		lists:  lists,
	}
}

// Lists returns the collection in stored order. The returned slice is a
// copy; callers cannot reach the canonical state through it.
func (r *Repository) Lists() []domain.ShoppingList {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.lists)
}

// Get returns the list with the given id.
func (r *Repository) Get(id string) (domain.ShoppingList, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if idx := r.indexOf(id); idx >= 0 {
		return r.lists[idx], true
	}
	return domain.ShoppingList{}, false
}

// Active resolves the current selection. If the selected id no longer names
// a list, selection falls back to the first list, or to none when the
// collection is empty. The fallback is applied on every observation, so a
// stale id is never a fatal condition.
func (r *Repository) Active() (domain.ShoppingList, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx := r.indexOf(r.activeID); idx >= 0 {
		return r.lists[idx], true
	}
	if len(r.lists) > 0 {
		r.activeID = r.lists[0].ID
		return r.lists[0], true
	}
	r.activeID = ""
	return domain.ShoppingList{}, false
}

// AddList creates a list with the trimmed name and no items, appends it,
// makes it the active list, and persists.
func (r *Repository) AddList(ctx context.Context, name string) domain.ShoppingList {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := domain.NewList(name)
	r.lists = append(slices.Clone(r.lists), created)
	r.activeID = created.ID
	r.persist(ctx)
	r.logger.Info("list created", "list_id", created.ID, "name", created.Name)
	return created
}

// DeleteList removes the list with the given id and persists. If the active
// list was removed, selection re-resolves on the next call to Active.
func (r *Repository) DeleteList(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]domain.ShoppingList, 0, len(r.lists))
	for _, l := range r.lists {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(r.lists) {
		return
	}
	r.lists = kept
	r.persist(ctx)
	r.logger.Info("list deleted", "list_id", id)
}

// UpdateList replaces the stored list whose id matches updated, keeping its
// position, and persists. Unknown ids are a no-op.
func (r *Repository) UpdateList(ctx context.Context, updated domain.ShoppingList) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(updated.ID)
	if idx < 0 {
		return
	}
	lists := slices.Clone(r.lists)
	lists[idx] = updated
	r.lists = lists
	r.persist(ctx)
}

// SelectList records id as the active selection. Existence is not checked
// here; Active applies the fallback rule on the next observation.
func (r *Repository) SelectList(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activeID = id
}

func (r *Repository) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for idx, l := range r.lists {
		if l.ID == id {
			return idx
		}
	}
	return -1
}

// persist rewrites the full collection to the slot. Write failures are
// logged and otherwise ignored: persistence here is best-effort, and the
// in-memory state stays authoritative for the rest of the process.
// Callers must hold r.mu.
func (r *Repository) persist(ctx context.Context) {
	if err := slot.SaveJSON(ctx, r.store, StorageKey, r.lists); err != nil {
		r.logger.Error("failed to persist shopping lists", "error", err)
	}
}
