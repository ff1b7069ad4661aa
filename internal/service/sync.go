package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"resource_catalog/internal/chain"
	"resource_catalog/internal/container"
	"resource_catalog/internal/domain"
	"resource_catalog/internal/source/door43"
)

type Config struct {
	RootURL       string
	ContainersDir string
	Container     container.Options
}

// ProgressFunc reports how far a sync stage has got.
type ProgressFunc func(stage string, total, completed int)

const (
	StageProjects  = "projects"
	StageResources = "resources"
	StageCatalogs  = "catalogs"
	StageChunks    = "chunks"
)

// Indexer keeps the local index in step with the remote catalog and manages
// the resource containers it references.
type Indexer struct {
	transport Transport
	index     Index
	publisher Publisher
	logger    *slog.Logger
	config    Config
}

func NewIndexer(
	transport Transport,
	index Index,
	publisher Publisher,
	logger *slog.Logger,
	cfg Config,
) *Indexer {
	return &Indexer{
		transport: transport,
		index:     index,
		publisher: publisher,
		logger:    logger.With("component", "indexer"),
		config:    cfg,
	}
}

// Sync rebuilds the index from the configured root catalog and announces the result.
func (s *Indexer) Sync(ctx context.Context) (*domain.SyncStats, error) {
	stats, err := s.BuildIndex(ctx, s.config.RootURL, nil)
	if err != nil {
		return stats, err
	}

	if s.publisher != nil {
		event := &domain.CatalogEvent{Action: domain.EventIndexBuilt, Stats: stats}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Error("failed to publish index event", "error", err)
		}
	}
	return stats, nil
}

// BuildIndex runs every updater against rootURL: global catalogs, the
// project/resource crawl, the catalog family and chunk markers.
func (s *Indexer) BuildIndex(ctx context.Context, rootURL string, onProgress ProgressFunc) (*domain.SyncStats, error) {
	startTime := time.Now()
	s.logger.Info("starting index build", "root_url", rootURL)

	if err := s.InjectGlobalCatalogs(ctx); err != nil {
		return nil, err
	}

	stats, err := s.UpdatePrimaryIndex(ctx, rootURL, onProgress)
	if err != nil {
		return nil, fmt.Errorf("update primary index: %w", err)
	}

	catalogStats, err := s.UpdateCatalogIndex(ctx, onProgress)
	stats.Add(catalogStats)
	if err != nil {
		return stats, fmt.Errorf("update catalog index: %w", err)
	}

	chunkStats, err := s.UpdateChunks(ctx, onProgress)
	stats.Add(chunkStats)
	if err != nil {
		return stats, fmt.Errorf("update chunks: %w", err)
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("index build completed",
		"languages", stats.Languages,
		"projects", stats.Projects,
		"resources", stats.Resources,
		"catalogs", stats.Catalogs,
		"target_languages", stats.TargetLanguages,
		"questionnaires", stats.Questionnaires,
		"chunk_markers", stats.ChunkMarkers,
		"skipped", stats.Skipped,
		"duration", stats.Duration,
	)
	return stats, nil
}

// InjectGlobalCatalogs records the catalogs the legacy root feed leaves out.
func (s *Indexer) InjectGlobalCatalogs(ctx context.Context) error {
	for _, catalog := range door43.GlobalCatalogs() {
		if _, err := s.index.AddCatalog(ctx, catalog); err != nil {
			return fmt.Errorf("add catalog %s: %w", catalog.Slug, err)
		}
	}
	return nil
}

type projectRef struct {
	id          int64
	slug        string
	language    string
	resourceURL string
}

// UpdatePrimaryIndex crawls root catalog → language catalogs → resource
// catalogs. Only the root catalog is fatal; a failing project or resource
// catalog is logged and skipped.
func (s *Indexer) UpdatePrimaryIndex(ctx context.Context, rootURL string, onProgress ProgressFunc) (*domain.SyncStats, error) {
	data, err := s.fetch(ctx, rootURL)
	if err != nil {
		return nil, err
	}
	roots, err := door43.DecodeRootCatalog(data)
	if err != nil {
		return nil, err
	}
	s.logger.Info("fetched root catalog", "projects", len(roots))

	stats := &domain.SyncStats{RootURL: rootURL}
	progress := newProgress(StageProjects, len(roots), onProgress)

	groups, err := chain.Map(ctx, roots,
		func(ctx context.Context, root door43.RootEntry) ([]projectRef, bool, error) {
			defer progress.step()
			refs, err := s.indexProject(ctx, root, stats)
			return refs, true, err
		},
		chain.SkipWith[door43.RootEntry](func(root door43.RootEntry, err error) {
			stats.Skipped++
			s.logger.Warn("skipping project", "project", root.Slug, "url", root.LangCatalog, "error", err)
		}),
	)
	if err != nil {
		return stats, err
	}
	refs := chain.Flatten(groups)

	progress = newProgress(StageResources, len(refs), onProgress)
	_, err = chain.Map(ctx, refs,
		func(ctx context.Context, ref projectRef) (struct{}, bool, error) {
			defer progress.step()
			return struct{}{}, false, s.indexResources(ctx, ref, stats)
		},
		chain.SkipWith[projectRef](func(ref projectRef, err error) {
			stats.Skipped++
			s.logger.Warn("skipping resources",
				"language", ref.language, "project", ref.slug, "url", ref.resourceURL, "error", err)
		}),
	)
	return stats, err
}

func (s *Indexer) indexProject(ctx context.Context, root door43.RootEntry, stats *domain.SyncStats) ([]projectRef, error) {
	data, err := s.fetch(ctx, root.LangCatalog)
	if err != nil {
		return nil, err
	}
	entries, err := door43.DecodeLanguageCatalog(data)
	if err != nil {
		return nil, err
	}

	refs := make([]projectRef, 0, len(entries))
	for _, entry := range entries {
		languageID, err := s.index.AddSourceLanguage(ctx, entry.SourceLanguage())
		if err != nil {
			return refs, fmt.Errorf("add source language %s: %w", entry.Language.Slug, err)
		}
		stats.Languages++

		projectID, err := s.index.AddProject(ctx, entry.Project(root), entry.Categories(root), languageID)
		if err != nil {
			return refs, fmt.Errorf("add project %s: %w", root.Slug, err)
		}
		stats.Projects++

		refs = append(refs, projectRef{
			id:          projectID,
			slug:        root.Slug,
			language:    entry.Language.Slug,
			resourceURL: entry.ResCatalog,
		})
	}
	return refs, nil
}

func (s *Indexer) indexResources(ctx context.Context, ref projectRef, stats *domain.SyncStats) error {
	data, err := s.fetch(ctx, ref.resourceURL)
	if err != nil {
		return err
	}
	entries, err := door43.DecodeResourceCatalog(data)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if _, err := s.index.AddResource(ctx, entry.Resource(ref.slug), ref.id); err != nil {
			return fmt.Errorf("add resource %s: %w", entry.Slug, err)
		}
		stats.Resources++
	}
	return nil
}

// fetch reads uri and treats any status other than 200 as a TransportError.
func (s *Indexer) fetch(ctx context.Context, uri string) ([]byte, error) {
	resp, err := s.transport.Read(ctx, uri)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, &domain.TransportError{URL: uri, Status: resp.Status}
	}
	return resp.Data, nil
}

type progress struct {
	stage     string
	total     int
	completed int
	report    ProgressFunc
}

func newProgress(stage string, total int, report ProgressFunc) *progress {
	p := &progress{stage: stage, total: total, report: report}
	if report != nil {
		report(stage, total, 0)
	}
	return p
}

func (p *progress) step() {
	p.completed++
	if p.report != nil {
		p.report(p.stage, p.total, p.completed)
	}
}
