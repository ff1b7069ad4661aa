package index

import (
	"context"
	"database/sql"
	"fmt"

	"resource_catalog/internal/domain"
)

// AddResource upserts a resource under its project along with every one of its formats.
func (r *Repository) AddResource(ctx context.Context, resource domain.Resource, projectID int64) (int64, error) {
	if err := validate("resource",
		required("slug", resource.Slug),
		required("name", resource.Name),
		requiredID("project_id", projectID),
	); err != nil {
		return 0, err
	}
	for _, f := range resource.Formats {
		if err := validate("resource format",
			required("mime_type", f.MimeType),
			required("url", f.URL),
		); err != nil {
			return 0, err
		}
	}

	params := map[string]any{
		"slug":           resource.Slug,
		"name":           resource.Name,
		"translate_mode": resource.TranslateMode,
		"checking_level": resource.CheckingLevel,
		"comments":       resource.Comments,
		"pub_date":       resource.PubDate,
		"license":        resource.License,
		"version":        resource.Version,
		"project_id":     projectID,
	}
	if err := r.store.Run(ctx, `
		INSERT INTO resource (slug, name, translate_mode, checking_level, comments, pub_date, license, version, project_id)
		VALUES (:slug, :name, :translate_mode, :checking_level, :comments, :pub_date, :license, :version, :project_id)
		ON CONFLICT DO NOTHING;
		UPDATE resource SET
			name = :name,
			translate_mode = :translate_mode,
			checking_level = :checking_level,
			comments = :comments,
			pub_date = :pub_date,
			license = :license,
			version = :version
		WHERE slug = :slug AND project_id = :project_id`, params); err != nil {
		return 0, fmt.Errorf("upsert resource: %w", err)
	}

	id, err := r.lookupID(ctx, "resource",
		`SELECT id FROM resource WHERE slug = :slug AND project_id = :project_id`, params)
	if err != nil || id < 0 {
		return id, err
	}

	for _, f := range resource.Formats {
		if err := r.store.Run(ctx, `
			INSERT INTO resource_format (syntax_version, mime_type, modified_at, url, resource_id)
			VALUES (:syntax_version, :mime_type, :modified_at, :url, :resource_id)
			ON CONFLICT DO NOTHING;
			UPDATE resource_format SET
				syntax_version = :syntax_version,
				modified_at = :modified_at,
				url = :url
			WHERE mime_type = :mime_type AND resource_id = :resource_id`,
			map[string]any{
				"syntax_version": f.SyntaxVersion,
				"mime_type":      f.MimeType,
				"modified_at":    f.ModifiedAt,
				"url":            f.URL,
				"resource_id":    id,
			}); err != nil {
			return 0, fmt.Errorf("upsert resource format: %w", err)
		}
	}

	if err := r.store.Save(ctx); err != nil {
		return 0, fmt.Errorf("save resource: %w", err)
	}
	return id, nil
}

// resourceRow is a resource joined with at most one container format.
type resourceRow struct {
	domain.Resource
	FormatID            sql.NullInt64  `db:"format_id"`
	FormatSyntaxVersion sql.NullString `db:"format_syntax_version"`
	FormatMimeType      sql.NullString `db:"format_mime_type"`
	FormatModifiedAt    sql.NullInt64  `db:"format_modified_at"`
	FormatURL           sql.NullString `db:"format_url"`
}

func (row resourceRow) toResource() domain.Resource {
	res := row.Resource
	if row.FormatID.Valid {
		res.ContainerFormat = &domain.ResourceFormat{
			ID:            row.FormatID.Int64,
			SyntaxVersion: row.FormatSyntaxVersion.String,
			MimeType:      row.FormatMimeType.String,
			ModifiedAt:    row.FormatModifiedAt.Int64,
			URL:           row.FormatURL.String,
			ResourceID:    res.ID,
		}
	}
	return res
}

// Only formats whose media type is a resource container are joined.
const resourceSelect = `
	SELECT r.id, r.slug, r.name, r.translate_mode, r.checking_level, r.comments,
		r.pub_date, r.license, r.version, r.project_id,
		sl.slug AS language_slug, p.slug AS project_slug,
		rf.id AS format_id, rf.syntax_version AS format_syntax_version,
		rf.mime_type AS format_mime_type, rf.modified_at AS format_modified_at,
		rf.url AS format_url
	FROM resource r
	JOIN project p ON p.id = r.project_id
	JOIN source_language sl ON sl.id = p.source_language_id
	LEFT JOIN resource_format rf
		ON rf.resource_id = r.id AND rf.mime_type LIKE :container_mime`

func containerMimePattern() string {
	return domain.ContainerMimePrefix + "%"
}

func (r *Repository) GetResource(ctx context.Context, languageSlug, projectSlug, resourceSlug string) (*domain.Resource, error) {
	var rows []resourceRow
	err := r.store.Query(ctx, &rows, resourceSelect+`
		WHERE sl.slug = :language_slug AND p.slug = :project_slug AND r.slug = :slug
		ORDER BY rf.id`,
		map[string]any{
			"container_mime": containerMimePattern(),
			"language_slug":  languageSlug,
			"project_slug":   projectSlug,
			"slug":           resourceSlug,
		})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	res := rows[0].toResource()
	return &res, nil
}

// GetResources lists resources, narrowed by language and project when they are non-empty.
// A resource with several container formats is listed once, with its first format.
func (r *Repository) GetResources(ctx context.Context, languageSlug, projectSlug string) ([]domain.Resource, error) {
	var rows []resourceRow
	err := r.store.Query(ctx, &rows, resourceSelect+`
		WHERE (CAST(:language_slug AS TEXT) = '' OR sl.slug = :language_slug)
			AND (CAST(:project_slug AS TEXT) = '' OR p.slug = :project_slug)
		ORDER BY sl.slug, p.sort, p.slug, r.slug, rf.id`,
		map[string]any{
			"container_mime": containerMimePattern(),
			"language_slug":  languageSlug,
			"project_slug":   projectSlug,
		})
	if err != nil {
		return nil, err
	}

	resources := make([]domain.Resource, 0, len(rows))
	seen := make(map[int64]bool, len(rows))
	for _, row := range rows {
		if seen[row.ID] {
			continue
		}
		seen[row.ID] = true
		resources = append(resources, row.toResource())
	}
	return resources, nil
}
