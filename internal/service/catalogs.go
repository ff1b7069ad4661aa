package service

import (
	"context"
	"fmt"
	"net/http"

	"resource_catalog/internal/chain"
	"resource_catalog/internal/domain"
	"resource_catalog/internal/source/door43"
)

// UpdateCatalogIndex refreshes the catalog family (target languages,
// questionnaires) from every indexed catalog, or only from the named ones.
//
// A catalog that answers 404 has no content and is passed over. Any other
// failure stops the remaining catalogs; writes made before it are kept.
func (s *Indexer) UpdateCatalogIndex(ctx context.Context, onProgress ProgressFunc, slugs ...string) (*domain.SyncStats, error) {
	catalogs, err := s.selectCatalogs(ctx, slugs)
	if err != nil {
		return nil, err
	}

	stats := &domain.SyncStats{}
	progress := newProgress(StageCatalogs, len(catalogs), onProgress)

	_, err = chain.Map(ctx, catalogs,
		func(ctx context.Context, catalog domain.Catalog) (struct{}, bool, error) {
			defer progress.step()
			return struct{}{}, false, s.indexCatalog(ctx, catalog, stats)
		},
		chain.Abort[domain.Catalog](),
	)
	return stats, err
}

func (s *Indexer) selectCatalogs(ctx context.Context, slugs []string) ([]domain.Catalog, error) {
	if len(slugs) == 0 {
		catalogs, err := s.index.GetCatalogs(ctx)
		if err != nil {
			return nil, fmt.Errorf("get catalogs: %w", err)
		}
		return catalogs, nil
	}

	catalogs := make([]domain.Catalog, 0, len(slugs))
	for _, slug := range slugs {
		catalog, err := s.index.GetCatalog(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("get catalog %s: %w", slug, err)
		}
		if catalog == nil {
			return nil, &domain.NotFoundError{Kind: domain.NotFoundCatalog, Key: slug}
		}
		catalogs = append(catalogs, *catalog)
	}
	return catalogs, nil
}

func (s *Indexer) indexCatalog(ctx context.Context, catalog domain.Catalog, stats *domain.SyncStats) error {
	logger := s.logger.With("catalog", catalog.Slug, "url", catalog.URL)

	resp, err := s.transport.Read(ctx, catalog.URL)
	if err != nil {
		return err
	}
	switch resp.Status {
	case http.StatusOK:
	case http.StatusNotFound:
		logger.Info("catalog has no content")
		return nil
	default:
		return &domain.TransportError{URL: catalog.URL, Status: resp.Status}
	}

	switch catalog.Slug {
	case domain.CatalogLangnames:
		err = s.indexTargetLanguages(ctx, resp.Data, stats)
	case domain.CatalogNewLanguageQuestions:
		err = s.indexQuestionnaires(ctx, resp.Data, stats)
	default:
		logger.Debug("no handler for catalog")
		return nil
	}
	if err != nil {
		return fmt.Errorf("catalog %s: %w", catalog.Slug, err)
	}
	stats.Catalogs++
	return nil
}

func (s *Indexer) indexTargetLanguages(ctx context.Context, data []byte, stats *domain.SyncStats) error {
	languages, err := door43.DecodeLangnames(data)
	if err != nil {
		return err
	}
	for _, lang := range languages {
		if _, err := s.index.AddTargetLanguage(ctx, lang); err != nil {
			return fmt.Errorf("add target language %s: %w", lang.Slug, err)
		}
		stats.TargetLanguages++
	}
	return nil
}

func (s *Indexer) indexQuestionnaires(ctx context.Context, data []byte, stats *domain.SyncStats) error {
	sets, err := door43.DecodeQuestionnaires(data)
	if err != nil {
		return err
	}
	for _, set := range sets {
		questionnaireID, err := s.index.AddQuestionnaire(ctx, set.Questionnaire)
		if err != nil {
			return fmt.Errorf("add questionnaire %d: %w", set.Questionnaire.TdID, err)
		}
		for _, question := range set.Questions {
			if _, err := s.index.AddQuestion(ctx, question, questionnaireID); err != nil {
				return fmt.Errorf("add question %d: %w", question.TdID, err)
			}
		}
		stats.Questionnaires++
	}
	return nil
}
