package index

import (
	"context"

	"resource_catalog/internal/domain"
)

func (r *Repository) AddSourceLanguage(ctx context.Context, lang domain.SourceLanguage) (int64, error) {
	if err := validate("source language",
		required("slug", lang.Slug),
		required("name", lang.Name),
		required("direction", lang.Direction),
	); err != nil {
		return 0, err
	}

	return r.upsert(ctx, "source language", `
		INSERT INTO source_language (slug, name, direction)
		VALUES (:slug, :name, :direction)
		ON CONFLICT DO NOTHING;
		UPDATE source_language SET name = :name, direction = :direction
		WHERE slug = :slug`,
		`SELECT id FROM source_language WHERE slug = :slug`,
		map[string]any{
			"slug":      lang.Slug,
			"name":      lang.Name,
			"direction": lang.Direction,
		})
}

func (r *Repository) GetSourceLanguage(ctx context.Context, slug string) (*domain.SourceLanguage, error) {
	var lang domain.SourceLanguage
	found, err := r.get(ctx, &lang,
		`SELECT id, slug, name, direction FROM source_language WHERE slug = :slug`,
		map[string]any{"slug": slug})
	if err != nil || !found {
		return nil, err
	}
	return &lang, nil
}

func (r *Repository) GetSourceLanguages(ctx context.Context) ([]domain.SourceLanguage, error) {
	var langs []domain.SourceLanguage
	err := r.store.Query(ctx, &langs,
		`SELECT id, slug, name, direction FROM source_language ORDER BY slug`, nil)
	return langs, err
}

func (r *Repository) AddTargetLanguage(ctx context.Context, lang domain.TargetLanguage) (int64, error) {
	if err := validate("target language",
		required("slug", lang.Slug),
		required("name", lang.Name),
		required("direction", lang.Direction),
	); err != nil {
		return 0, err
	}

	return r.upsert(ctx, "target language", `
		INSERT INTO target_language (slug, name, anglicized_name, direction, region, is_gateway_language)
		VALUES (:slug, :name, :anglicized_name, :direction, :region, :is_gateway_language)
		ON CONFLICT DO NOTHING;
		UPDATE target_language SET
			name = :name,
			anglicized_name = :anglicized_name,
			direction = :direction,
			region = :region,
			is_gateway_language = :is_gateway_language
		WHERE slug = :slug`,
		`SELECT id FROM target_language WHERE slug = :slug`,
		map[string]any{
			"slug":                lang.Slug,
			"name":                lang.Name,
			"anglicized_name":     lang.AnglicizedName,
			"direction":           lang.Direction,
			"region":              lang.Region,
			"is_gateway_language": lang.IsGatewayLanguage,
		})
}

const targetLanguageColumns = `id, slug, name, anglicized_name, direction, region, is_gateway_language`

func (r *Repository) GetTargetLanguage(ctx context.Context, slug string) (*domain.TargetLanguage, error) {
	var lang domain.TargetLanguage
	found, err := r.get(ctx, &lang,
		`SELECT `+targetLanguageColumns+` FROM target_language WHERE slug = :slug`,
		map[string]any{"slug": slug})
	if err != nil || !found {
		return nil, err
	}
	return &lang, nil
}

func (r *Repository) GetTargetLanguages(ctx context.Context) ([]domain.TargetLanguage, error) {
	var langs []domain.TargetLanguage
	err := r.store.Query(ctx, &langs,
		`SELECT `+targetLanguageColumns+` FROM target_language ORDER BY slug`, nil)
	return langs, err
}
