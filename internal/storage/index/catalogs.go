package index

import (
	"context"

	"resource_catalog/internal/domain"
)

func (r *Repository) AddCatalog(ctx context.Context, catalog domain.Catalog) (int64, error) {
	if err := validate("catalog",
		required("slug", catalog.Slug),
		required("url", catalog.URL),
	); err != nil {
		return 0, err
	}

	return r.upsert(ctx, "catalog", `
		INSERT INTO catalog (slug, url, modified_at) VALUES (:slug, :url, :modified_at)
		ON CONFLICT DO NOTHING;
		UPDATE catalog SET url = :url, modified_at = :modified_at WHERE slug = :slug`,
		`SELECT id FROM catalog WHERE slug = :slug`,
		map[string]any{
			"slug":        catalog.Slug,
			"url":         catalog.URL,
			"modified_at": catalog.ModifiedAt,
		})
}

func (r *Repository) GetCatalog(ctx context.Context, slug string) (*domain.Catalog, error) {
	var catalog domain.Catalog
	found, err := r.get(ctx, &catalog,
		`SELECT id, slug, url, modified_at FROM catalog WHERE slug = :slug`,
		map[string]any{"slug": slug})
	if err != nil || !found {
		return nil, err
	}
	return &catalog, nil
}

// GetCatalogs lists catalogs in the order they were first added.
func (r *Repository) GetCatalogs(ctx context.Context) ([]domain.Catalog, error) {
	var catalogs []domain.Catalog
	err := r.store.Query(ctx, &catalogs,
		`SELECT id, slug, url, modified_at FROM catalog ORDER BY id`, nil)
	return catalogs, err
}
