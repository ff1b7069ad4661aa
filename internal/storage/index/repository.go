package index

import (
	"context"
	"fmt"

	"resource_catalog/internal/domain"
)

// Repository upserts and reads catalog entities. Every writer inserts by the
// entity's natural key (ignoring conflicts), then updates the row by that
// same key, persists, and returns the row id or -1 if it cannot be found.
type Repository struct {
	store *Store
}

func NewRepository(store *Store) *Repository {
	return &Repository{store: store}
}

type field struct {
	name    string
	present bool
}

func required(name, value string) field { return field{name: name, present: value != ""} }

func requiredID(name string, value int64) field { return field{name: name, present: value > 0} }

func validate(entity string, fields ...field) error {
	for _, f := range fields {
		if !f.present {
			return &domain.ValidationError{Entity: entity, Field: f.name}
		}
	}
	return nil
}

// upsert runs an insert-or-ignore/update batch, saves, and re-selects the id.
func (r *Repository) upsert(ctx context.Context, entity, batch, lookup string, params map[string]any) (int64, error) {
	if err := r.store.Run(ctx, batch, params); err != nil {
		return 0, fmt.Errorf("upsert %s: %w", entity, err)
	}
	if err := r.store.Save(ctx); err != nil {
		return 0, fmt.Errorf("save %s: %w", entity, err)
	}
	return r.lookupID(ctx, entity, lookup, params)
}

func (r *Repository) lookupID(ctx context.Context, entity, lookup string, params map[string]any) (int64, error) {
	var id int64
	found, err := r.store.Get(ctx, &id, lookup, params)
	if err != nil {
		return 0, fmt.Errorf("lookup %s: %w", entity, err)
	}
	if !found {
		return -1, nil
	}
	return id, nil
}

func (r *Repository) get(ctx context.Context, dest any, query string, params map[string]any) (bool, error) {
	return r.store.Get(ctx, dest, query, params)
}
