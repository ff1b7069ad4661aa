package service

import (
	"context"
	"fmt"

	"resource_catalog/internal/chain"
	"resource_catalog/internal/domain"
	"resource_catalog/internal/source/door43"
)

// UpdateChunks indexes the chunk markers of every project that publishes
// them. Each project slug is fetched once; its versification is recorded
// for every source language the project exists in.
func (s *Indexer) UpdateChunks(ctx context.Context, onProgress ProgressFunc) (*domain.SyncStats, error) {
	projects, err := s.index.GetProjects(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("get projects: %w", err)
	}

	stats := &domain.SyncStats{}
	cache := &chunkCache{feeds: make(map[string][]door43.ChunkEntry), indexed: make(map[string]bool)}
	progress := newProgress(StageChunks, len(projects), onProgress)

	_, err = chain.Map(ctx, projects,
		func(ctx context.Context, project domain.Project) (struct{}, bool, error) {
			defer progress.step()
			if project.ChunksURL == "" {
				return struct{}{}, false, nil
			}
			return struct{}{}, false, s.indexChunks(ctx, project, cache, stats)
		},
		chain.SkipWith[domain.Project](func(project domain.Project, err error) {
			stats.Skipped++
			s.logger.Warn("skipping chunks",
				"language", project.LanguageSlug, "project", project.Slug, "url", project.ChunksURL, "error", err)
		}),
	)
	return stats, err
}

// chunkCache holds decoded feeds by project slug and remembers which
// slugs already have every marker written.
type chunkCache struct {
	feeds   map[string][]door43.ChunkEntry
	indexed map[string]bool
}

func (s *Indexer) indexChunks(ctx context.Context, project domain.Project, cache *chunkCache, stats *domain.SyncStats) error {
	entries, ok := cache.feeds[project.Slug]
	if !ok {
		data, err := s.fetch(ctx, project.ChunksURL)
		if err != nil {
			return err
		}
		if entries, err = door43.DecodeChunks(data); err != nil {
			return err
		}
		cache.feeds[project.Slug] = entries
	}

	versificationID, err := s.index.AddVersification(ctx, domain.Versification{
		Slug: door43.DefaultVersificationSlug,
		Name: door43.DefaultVersificationName,
	}, project.SourceLanguageID)
	if err != nil {
		return fmt.Errorf("add versification: %w", err)
	}
	if cache.indexed[project.Slug] {
		return nil
	}

	for _, entry := range entries {
		marker := domain.ChunkMarker{Chapter: entry.Chapter, Verse: entry.Verse}
		if _, err := s.index.AddChunkMarker(ctx, marker, project.Slug, versificationID); err != nil {
			return fmt.Errorf("add chunk marker %s:%s: %w", entry.Chapter, entry.Verse, err)
		}
		stats.ChunkMarkers++
	}
	cache.indexed[project.Slug] = true
	return nil
}
