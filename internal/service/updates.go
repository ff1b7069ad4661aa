package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"resource_catalog/internal/container"
	"resource_catalog/internal/domain"
)

// archivePattern matches <language>_<project>_<resource>.tsrc.
var archivePattern = regexp.MustCompile(`^[^_]+_[^_]+_[^_]+` + regexp.QuoteMeta(container.Ext) + `$`)

// ListSourceLanguageUpdates returns the languages that have at least one
// downloaded container older than the index.
func (s *Indexer) ListSourceLanguageUpdates(ctx context.Context) ([]string, error) {
	return s.listUpdates(ctx, func(m *container.Manifest) (string, bool) {
		return m.Language.Slug, true
	})
}

// ListProjectUpdates returns the projects that have at least one downloaded
// container older than the index. A non-empty language limits the scan to
// containers in that language.
func (s *Indexer) ListProjectUpdates(ctx context.Context, language string) ([]string, error) {
	return s.listUpdates(ctx, func(m *container.Manifest) (string, bool) {
		if language != "" && m.Language.Slug != language {
			return "", false
		}
		return m.Project.Slug, true
	})
}

// CheckUpdates runs both listings and announces them when anything is stale.
func (s *Indexer) CheckUpdates(ctx context.Context, language string) (*domain.Updates, error) {
	languages, err := s.ListSourceLanguageUpdates(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.ListProjectUpdates(ctx, language)
	if err != nil {
		return nil, err
	}

	updates := &domain.Updates{SourceLanguages: languages, Projects: projects}
	if !updates.Empty() && s.publisher != nil {
		event := &domain.CatalogEvent{Action: domain.EventUpdatesAvailable, Updates: updates}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Error("failed to publish updates event", "error", err)
		}
	}
	return updates, nil
}

func (s *Indexer) listUpdates(ctx context.Context, key func(*container.Manifest) (string, bool)) ([]string, error) {
	manifests, err := s.localManifests()
	if err != nil {
		return nil, err
	}

	found := make(map[string]struct{})
	for _, m := range manifests {
		slug, ok := key(m)
		if !ok {
			continue
		}
		if _, dup := found[slug]; dup {
			continue
		}

		res, err := s.index.GetResource(ctx, m.Language.Slug, m.Project.Slug, m.Resource.Slug)
		if err != nil {
			return nil, fmt.Errorf("get resource: %w", err)
		}
		if res == nil || res.ContainerFormat == nil {
			continue
		}
		if res.ContainerFormat.ModifiedAt > m.ModifiedAt {
			found[slug] = struct{}{}
		}
	}

	slugs := make([]string, 0, len(found))
	for slug := range found {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs, nil
}

// localManifests reads the manifest of every downloaded archive without
// extracting it. Unreadable archives are logged and left out.
func (s *Indexer) localManifests() ([]*container.Manifest, error) {
	entries, err := os.ReadDir(s.config.ContainersDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}

	var manifests []*container.Manifest
	for _, entry := range entries {
		if entry.IsDir() || !archivePattern.MatchString(entry.Name()) {
			continue
		}
		path := filepath.Join(s.config.ContainersDir, entry.Name())
		m, err := container.ReadManifest(path, s.config.Container)
		if err != nil {
			s.logger.Warn("unreadable container archive", "path", path, "error", err)
			continue
		}
		manifests = append(manifests, m)
	}
	return manifests, nil
}
