package index

import (
	"context"
	"fmt"

	"resource_catalog/internal/domain"
)

// AddCategories walks a category path root to leaf, upserting each level and
// its name in the source language. It returns the leaf id, or 0 for an empty path.
func (r *Repository) AddCategories(ctx context.Context, categories []domain.Category, sourceLanguageID int64) (int64, error) {
	var parentID int64
	for _, c := range categories {
		if err := validate("category",
			required("slug", c.Slug),
			required("name", c.Name),
			requiredID("source_language_id", sourceLanguageID),
		); err != nil {
			return 0, err
		}

		params := map[string]any{
			"slug":               c.Slug,
			"parent_id":          parentID,
			"name":               c.Name,
			"source_language_id": sourceLanguageID,
		}

		// Slug and parent make up the whole row, so there is nothing to update.
		if err := r.store.Run(ctx, `
			INSERT INTO category (slug, parent_id) VALUES (:slug, :parent_id)
			ON CONFLICT DO NOTHING`, params); err != nil {
			return 0, fmt.Errorf("upsert category: %w", err)
		}
		id, err := r.lookupID(ctx, "category",
			`SELECT id FROM category WHERE slug = :slug AND parent_id = :parent_id`, params)
		if err != nil {
			return 0, err
		}
		if id < 0 {
			return -1, nil
		}

		params["category_id"] = id
		if err := r.store.Run(ctx, `
			INSERT INTO category_name (name, source_language_id, category_id)
			VALUES (:name, :source_language_id, :category_id)
			ON CONFLICT DO NOTHING;
			UPDATE category_name SET name = :name
			WHERE source_language_id = :source_language_id AND category_id = :category_id`, params); err != nil {
			return 0, fmt.Errorf("upsert category name: %w", err)
		}
		parentID = id
	}

	if err := r.store.Save(ctx); err != nil {
		return 0, fmt.Errorf("save categories: %w", err)
	}
	return parentID, nil
}

// GetCategories returns a project's category path root to leaf, named in
// the project's source language.
func (r *Repository) GetCategories(ctx context.Context, leafID, sourceLanguageID int64) ([]domain.Category, error) {
	var path []domain.Category
	for id := leafID; id > 0; {
		var c domain.Category
		found, err := r.get(ctx, &c, `
			SELECT c.id, c.slug, c.parent_id, COALESCE(cn.name, c.slug) AS name
			FROM category c
			LEFT JOIN category_name cn
				ON cn.category_id = c.id AND cn.source_language_id = :source_language_id
			WHERE c.id = :id`,
			map[string]any{"id": id, "source_language_id": sourceLanguageID})
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}
		path = append([]domain.Category{c}, path...)
		id = c.ParentID
	}
	return path, nil
}

// AddProject upserts the project under its source language, together with its category path.
func (r *Repository) AddProject(ctx context.Context, project domain.Project, categories []domain.Category, sourceLanguageID int64) (int64, error) {
	if err := validate("project",
		required("slug", project.Slug),
		required("name", project.Name),
		requiredID("source_language_id", sourceLanguageID),
	); err != nil {
		return 0, err
	}

	categoryID, err := r.AddCategories(ctx, categories, sourceLanguageID)
	if err != nil {
		return 0, err
	}
	if categoryID < 0 {
		categoryID = 0
	}

	return r.upsert(ctx, "project", `
		INSERT INTO project (slug, name, description, icon, sort, chunks_url, source_language_id, category_id)
		VALUES (:slug, :name, :description, :icon, :sort, :chunks_url, :source_language_id, :category_id)
		ON CONFLICT DO NOTHING;
		UPDATE project SET
			name = :name,
			description = :description,
			icon = :icon,
			sort = :sort,
			chunks_url = :chunks_url,
			category_id = :category_id
		WHERE slug = :slug AND source_language_id = :source_language_id`,
		`SELECT id FROM project WHERE slug = :slug AND source_language_id = :source_language_id`,
		map[string]any{
			"slug":               project.Slug,
			"name":               project.Name,
			"description":        project.Desc,
			"icon":               project.Icon,
			"sort":               project.Sort,
			"chunks_url":         project.ChunksURL,
			"source_language_id": sourceLanguageID,
			"category_id":        categoryID,
		})
}

const projectSelect = `
	SELECT p.id, p.slug, p.name, p.description, p.icon, p.sort, p.chunks_url,
		p.source_language_id, p.category_id, sl.slug AS language_slug
	FROM project p
	JOIN source_language sl ON sl.id = p.source_language_id`

func (r *Repository) GetProject(ctx context.Context, languageSlug, projectSlug string) (*domain.Project, error) {
	var project domain.Project
	found, err := r.get(ctx, &project,
		projectSelect+` WHERE sl.slug = :language_slug AND p.slug = :slug`,
		map[string]any{"language_slug": languageSlug, "slug": projectSlug})
	if err != nil || !found {
		return nil, err
	}
	return &project, nil
}

// GetProjects lists the projects of a source language, or of every language when languageSlug is empty.
func (r *Repository) GetProjects(ctx context.Context, languageSlug string) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.store.Query(ctx, &projects,
		projectSelect+`
		WHERE (CAST(:language_slug AS TEXT) = '' OR sl.slug = :language_slug)
		ORDER BY sl.slug, p.sort, p.slug`,
		map[string]any{"language_slug": languageSlug})
	return projects, err
}
