package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"resource_catalog/internal/chain"
	"resource_catalog/internal/container"
	"resource_catalog/internal/domain"
	"resource_catalog/internal/transport"
)

// DownloadProgress reports the transfer of one resource container.
type DownloadProgress func(resource domain.Resource, total, completed int64)

// ArchivePath is where the closed container of a resource is kept.
func (s *Indexer) ArchivePath(language, project, resource string) string {
	return filepath.Join(s.config.ContainersDir, container.ArchiveName(language, project, resource))
}

// DownloadResourceContainer fetches the container archive of one indexed
// resource. An archive already on disk is kept unless force is set.
func (s *Indexer) DownloadResourceContainer(
	ctx context.Context,
	language, project, resource string,
	force bool,
	onProgress transport.ProgressFunc,
) (string, error) {
	res, err := s.index.GetResource(ctx, language, project, resource)
	if err != nil {
		return "", fmt.Errorf("get resource: %w", err)
	}
	key := fmt.Sprintf("%s/%s/%s", language, project, resource)
	if res == nil {
		return "", &domain.NotFoundError{Kind: domain.NotFoundResource, Key: key}
	}
	if res.ContainerFormat == nil {
		return "", &domain.NotFoundError{Kind: domain.NotFoundContainerFormat, Key: key}
	}
	return s.download(ctx, *res, force, onProgress)
}

func (s *Indexer) download(ctx context.Context, res domain.Resource, force bool, onProgress transport.ProgressFunc) (string, error) {
	dest := s.ArchivePath(res.LanguageSlug, res.ProjectSlug, res.Slug)
	logger := s.logger.With("resource", res.Slug, "project", res.ProjectSlug, "language", res.LanguageSlug)

	if _, err := os.Stat(dest); err == nil && !force {
		logger.Debug("container already downloaded", "path", dest)
		return dest, nil
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat %s: %w", dest, err)
	}

	if err := os.MkdirAll(s.config.ContainersDir, 0o755); err != nil {
		return "", fmt.Errorf("create containers dir: %w", err)
	}
	// Staged next to dest so the final rename stays on one filesystem.
	staging, err := os.MkdirTemp(s.config.ContainersDir, ".download-*")
	if err != nil {
		return "", fmt.Errorf("create staging dir: %w", err)
	}
	defer os.RemoveAll(staging)

	url := res.ContainerFormat.URL
	payload := filepath.Join(staging, "payload")
	resp, err := s.transport.Download(ctx, url, payload, onProgress)
	if err != nil {
		return "", err
	}
	if resp.Status != http.StatusOK {
		return "", &domain.TransportError{URL: url, Status: resp.Status}
	}

	archive := payload
	if _, err := container.ReadManifest(payload, s.config.Container); err != nil {
		// Legacy feeds serve the bare source document.
		if archive, err = s.packSource(ctx, res, payload, staging); err != nil {
			return "", fmt.Errorf("pack container: %w", err)
		}
	}
	if err := os.Rename(archive, dest); err != nil {
		return "", fmt.Errorf("store container: %w", err)
	}

	logger.Info("downloaded container", "path", dest)
	return dest, nil
}

// packSource wraps a legacy source document in a resource container built
// from the indexed metadata and returns the archive path.
func (s *Indexer) packSource(ctx context.Context, res domain.Resource, payload, staging string) (string, error) {
	manifest, err := s.sourceManifest(ctx, res)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(staging, manifest.Slug())
	if _, err := container.Make(dir, *manifest, s.config.Container); err != nil {
		return "", err
	}
	if err := os.Rename(payload, filepath.Join(dir, container.ContentDir, sourceFile)); err != nil {
		return "", fmt.Errorf("move source: %w", err)
	}
	return container.Close(dir, s.config.Container)
}

const sourceFile = "source.json"

func (s *Indexer) sourceManifest(ctx context.Context, res domain.Resource) (*container.Manifest, error) {
	lang, err := s.index.GetSourceLanguage(ctx, res.LanguageSlug)
	if err != nil {
		return nil, fmt.Errorf("get source language: %w", err)
	}
	project, err := s.index.GetProject(ctx, res.LanguageSlug, res.ProjectSlug)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	m := &container.Manifest{
		ModifiedAt:      res.ContainerFormat.ModifiedAt,
		ContentMimeType: "application/json",
		Language:        container.Language{Slug: res.LanguageSlug, Name: res.LanguageSlug, Dir: "ltr"},
		Project:         container.Project{Slug: res.ProjectSlug, Name: res.ProjectSlug},
		Resource: container.Resource{
			Slug: res.Slug,
			Name: res.Name,
			Type: strings.TrimPrefix(res.ContainerFormat.MimeType, domain.ContainerMimePrefix),
			Status: container.Status{
				TranslateMode: res.TranslateMode,
				CheckingLevel: res.CheckingLevel,
				Comments:      res.Comments,
				PubDate:       res.PubDate,
				License:       res.License,
				Version:       res.Version,
			},
		},
	}
	if lang != nil {
		m.Language.Name = lang.Name
		m.Language.Dir = lang.Direction
	}
	if project != nil {
		m.Project.Name = project.Name
		m.Project.Desc = project.Desc
		m.Project.Icon = project.Icon
		m.Project.Sort = project.Sort
	}
	return m, nil
}

// DownloadResult lists the archives fetched by DownloadResourceContainers.
type DownloadResult struct {
	Paths  []string
	Failed int
}

// DownloadResourceContainers fetches the containers of every indexed
// resource, narrowed by language and project when they are non-empty. A
// failing resource is logged and the rest still download.
func (s *Indexer) DownloadResourceContainers(
	ctx context.Context,
	language, project string,
	force bool,
	onProgress DownloadProgress,
) (*DownloadResult, error) {
	resources, err := s.index.GetResources(ctx, language, project)
	if err != nil {
		return nil, fmt.Errorf("get resources: %w", err)
	}

	result := &DownloadResult{}
	result.Paths, err = chain.Map(ctx, resources,
		func(ctx context.Context, res domain.Resource) (string, bool, error) {
			if res.ContainerFormat == nil {
				return "", false, &domain.NotFoundError{
					Kind: domain.NotFoundContainerFormat,
					Key:  fmt.Sprintf("%s/%s/%s", res.LanguageSlug, res.ProjectSlug, res.Slug),
				}
			}
			var progress transport.ProgressFunc
			if onProgress != nil {
				progress = func(total, completed int64) { onProgress(res, total, completed) }
			}
			path, err := s.download(ctx, res, force, progress)
			return path, err == nil, err
		},
		chain.SkipWith[domain.Resource](func(res domain.Resource, err error) {
			result.Failed++
			s.logger.Warn("failed to download container",
				"language", res.LanguageSlug, "project", res.ProjectSlug, "resource", res.Slug, "error", err)
		}),
	)
	return result, err
}
