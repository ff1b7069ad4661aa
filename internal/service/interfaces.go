package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"resource_catalog/internal/domain"
	"resource_catalog/internal/transport"
)

type Transport interface {
	Read(ctx context.Context, uri string) (*transport.Response, error)
	Download(ctx context.Context, uri, dest string, onProgress transport.ProgressFunc) (*transport.Response, error)
}

// Index is the subset of the index repository the sync engine drives.
type Index interface {
	AddSourceLanguage(ctx context.Context, lang domain.SourceLanguage) (int64, error)
	AddTargetLanguage(ctx context.Context, lang domain.TargetLanguage) (int64, error)
	AddProject(ctx context.Context, project domain.Project, categories []domain.Category, sourceLanguageID int64) (int64, error)
	AddResource(ctx context.Context, resource domain.Resource, projectID int64) (int64, error)
	AddCatalog(ctx context.Context, catalog domain.Catalog) (int64, error)
	AddQuestionnaire(ctx context.Context, q domain.Questionnaire) (int64, error)
	AddQuestion(ctx context.Context, q domain.Question, questionnaireID int64) (int64, error)
	AddVersification(ctx context.Context, v domain.Versification, sourceLanguageID int64) (int64, error)
	AddChunkMarker(ctx context.Context, marker domain.ChunkMarker, projectSlug string, versificationID int64) (int64, error)

	GetSourceLanguage(ctx context.Context, slug string) (*domain.SourceLanguage, error)
	GetProject(ctx context.Context, languageSlug, projectSlug string) (*domain.Project, error)
	GetProjects(ctx context.Context, languageSlug string) ([]domain.Project, error)
	GetResource(ctx context.Context, languageSlug, projectSlug, resourceSlug string) (*domain.Resource, error)
	GetResources(ctx context.Context, languageSlug, projectSlug string) ([]domain.Resource, error)
	GetCatalog(ctx context.Context, slug string) (*domain.Catalog, error)
	GetCatalogs(ctx context.Context) ([]domain.Catalog, error)
}

type Publisher interface {
	Publish(ctx context.Context, event *domain.CatalogEvent) error
	Close() error
}
