package index

import (
	"context"
	"fmt"

	"resource_catalog/internal/domain"
)

// AddVersification upserts a versification and its name in the given source language.
func (r *Repository) AddVersification(ctx context.Context, v domain.Versification, sourceLanguageID int64) (int64, error) {
	if err := validate("versification",
		required("slug", v.Slug),
		required("name", v.Name),
		requiredID("source_language_id", sourceLanguageID),
	); err != nil {
		return 0, err
	}

	params := map[string]any{
		"slug":               v.Slug,
		"name":               v.Name,
		"source_language_id": sourceLanguageID,
	}
	if err := r.store.Run(ctx, `
		INSERT INTO versification (slug) VALUES (:slug) ON CONFLICT DO NOTHING`, params); err != nil {
		return 0, fmt.Errorf("upsert versification: %w", err)
	}
	id, err := r.lookupID(ctx, "versification", `SELECT id FROM versification WHERE slug = :slug`, params)
	if err != nil || id < 0 {
		return id, err
	}

	params["versification_id"] = id
	if err := r.store.Run(ctx, `
		INSERT INTO versification_name (name, source_language_id, versification_id)
		VALUES (:name, :source_language_id, :versification_id)
		ON CONFLICT DO NOTHING;
		UPDATE versification_name SET name = :name
		WHERE source_language_id = :source_language_id AND versification_id = :versification_id`, params); err != nil {
		return 0, fmt.Errorf("upsert versification name: %w", err)
	}
	if err := r.store.Save(ctx); err != nil {
		return 0, fmt.Errorf("save versification: %w", err)
	}
	return id, nil
}

func (r *Repository) GetVersification(ctx context.Context, languageSlug, slug string) (*domain.Versification, error) {
	var v domain.Versification
	found, err := r.get(ctx, &v, `
		SELECT v.id, v.slug, vn.name
		FROM versification v
		JOIN versification_name vn ON vn.versification_id = v.id
		JOIN source_language sl ON sl.id = vn.source_language_id
		WHERE sl.slug = :language_slug AND v.slug = :slug`,
		map[string]any{"language_slug": languageSlug, "slug": slug})
	if err != nil || !found {
		return nil, err
	}
	return &v, nil
}

// AddChunkMarker records the first verse of a chunk. Every column is part
// of the natural key, so an existing marker is left untouched.
func (r *Repository) AddChunkMarker(ctx context.Context, marker domain.ChunkMarker, projectSlug string, versificationID int64) (int64, error) {
	if err := validate("chunk marker",
		required("chapter", marker.Chapter),
		required("verse", marker.Verse),
		required("project_slug", projectSlug),
		requiredID("versification_id", versificationID),
	); err != nil {
		return 0, err
	}

	return r.upsert(ctx, "chunk marker", `
		INSERT INTO chunk_marker (chapter, verse, project_slug, versification_id)
		VALUES (:chapter, :verse, :project_slug, :versification_id)
		ON CONFLICT DO NOTHING`,
		`SELECT id FROM chunk_marker
		WHERE project_slug = :project_slug AND versification_id = :versification_id
			AND chapter = :chapter AND verse = :verse`,
		map[string]any{
			"chapter":          marker.Chapter,
			"verse":            marker.Verse,
			"project_slug":     projectSlug,
			"versification_id": versificationID,
		})
}

func (r *Repository) GetChunkMarkers(ctx context.Context, projectSlug, versificationSlug string) ([]domain.ChunkMarker, error) {
	var markers []domain.ChunkMarker
	err := r.store.Query(ctx, &markers, `
		SELECT cm.id, cm.chapter, cm.verse, cm.project_slug, cm.versification_id
		FROM chunk_marker cm
		JOIN versification v ON v.id = cm.versification_id
		WHERE cm.project_slug = :project_slug AND v.slug = :versification_slug
		ORDER BY cm.id`,
		map[string]any{"project_slug": projectSlug, "versification_slug": versificationSlug})
	return markers, err
}
