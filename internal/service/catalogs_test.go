package service

import (
	"context"
	"errors"

	"go.uber.org/mock/gomock"

	"resource_catalog/internal/domain"
)

const (
	langnamesURL = "https://td.test/exports/langnames.json"
	questionsURL = "https://td.test/api/questionnaire/"
	extraURL     = "https://td.test/extra.json"
)

const langnamesFeed = `[
	{"lc": "aa", "ln": "Afaraf", "ang": "Afar", "ld": "ltr", "lr": "Africa", "gw": false, "cc": ["DJ"], "pk": 6},
	{"lc": "ar", "ln": "العربية", "ang": "Arabic", "ld": "rtl", "lr": "Asia", "gw": true, "cc": ["SA"], "pk": 7}
]`

const questionsFeed = `{"languages": [{
	"questionnaire_id": 11,
	"language_slug": "en",
	"language_name": "English",
	"language_direction": "ltr",
	"questions": [
		{"id": 0, "text": "Language name?", "help": "", "required": true, "input_type": "string", "sort": 1, "depends_on": null},
		{"id": 1, "text": "Also known as?", "help": "", "required": false, "input_type": "string", "sort": 2, "depends_on": 0}
	]
}]}`

func catalogFamily() []domain.Catalog {
	return []domain.Catalog{
		{ID: 1, Slug: domain.CatalogLangnames, URL: langnamesURL},
		{ID: 2, Slug: domain.CatalogNewLanguageQuestions, URL: questionsURL},
		{ID: 3, Slug: "extra", URL: extraURL},
	}
}

func (s *IndexerTestSuite) TestUpdateCatalogIndex() {
	s.index.EXPECT().GetCatalogs(gomock.Any()).Return(catalogFamily()[:2], nil)
	s.expectRead(langnamesURL, ok(langnamesFeed))
	s.expectRead(questionsURL, ok(questionsFeed))

	var targets []domain.TargetLanguage
	s.index.EXPECT().AddTargetLanguage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, lang domain.TargetLanguage) (int64, error) {
			targets = append(targets, lang)
			return int64(len(targets)), nil
		}).Times(2)

	s.index.EXPECT().AddQuestionnaire(gomock.Any(), domain.Questionnaire{
		LanguageSlug: "en", LanguageName: "English", LanguageDirection: "ltr", TdID: 11,
	}).Return(int64(5), nil)

	var questions []domain.Question
	s.index.EXPECT().AddQuestion(gomock.Any(), gomock.Any(), int64(5)).
		DoAndReturn(func(_ context.Context, q domain.Question, _ int64) (int64, error) {
			questions = append(questions, q)
			return int64(len(questions)), nil
		}).Times(2)

	stats, err := s.indexer.UpdateCatalogIndex(s.ctx, nil)

	s.Require().NoError(err)
	s.Equal(2, stats.Catalogs)
	s.Equal(2, stats.TargetLanguages)
	s.Equal(1, stats.Questionnaires)

	s.Require().Len(targets, 2)
	s.Equal(domain.TargetLanguage{
		Slug: "ar", Name: "العربية", AnglicizedName: "Arabic", Direction: "rtl", Region: "Asia", IsGatewayLanguage: true,
	}, targets[1])

	s.Require().Len(questions, 2)
	s.Nil(questions[0].DependsOn)
	s.Require().NotNil(questions[1].DependsOn)
	s.Equal(int64(0), *questions[1].DependsOn)
	s.Equal(2, questions[1].Sort)
}

func (s *IndexerTestSuite) TestUpdateCatalogIndex_NotFoundIsNoContent() {
	s.index.EXPECT().GetCatalogs(gomock.Any()).Return(catalogFamily()[:2], nil)
	s.expectRead(langnamesURL, status(404))
	s.expectRead(questionsURL, ok(`{"languages": []}`))

	stats, err := s.indexer.UpdateCatalogIndex(s.ctx, nil)

	s.Require().NoError(err)
	s.Equal(1, stats.Catalogs)
	s.Zero(stats.TargetLanguages)
}

func (s *IndexerTestSuite) TestUpdateCatalogIndex_AbortsOnHandlerError() {
	s.index.EXPECT().GetCatalogs(gomock.Any()).Return(catalogFamily(), nil)
	s.expectRead(langnamesURL, ok(langnamesFeed))
	s.expectRead(questionsURL, ok(`{"languages": [`))

	s.index.EXPECT().AddTargetLanguage(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(2)

	stats, err := s.indexer.UpdateCatalogIndex(s.ctx, nil)

	s.Error(err)
	s.Contains(err.Error(), "new-language-questions")
	s.Equal(1, stats.Catalogs)
	s.Equal(2, stats.TargetLanguages)
}

func (s *IndexerTestSuite) TestUpdateCatalogIndex_AbortsOnPanic() {
	s.index.EXPECT().GetCatalogs(gomock.Any()).Return(catalogFamily(), nil)
	s.expectRead(langnamesURL, ok(langnamesFeed))
	s.expectRead(questionsURL, ok(questionsFeed))

	s.index.EXPECT().AddTargetLanguage(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(2)
	s.index.EXPECT().AddQuestionnaire(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Questionnaire) (int64, error) {
			panic("unexpected questionnaire shape")
		})

	_, err := s.indexer.UpdateCatalogIndex(s.ctx, nil)

	s.Error(err)
	s.Contains(err.Error(), "visitor panic")
}

func (s *IndexerTestSuite) TestUpdateCatalogIndex_AbortsOnServerError() {
	s.index.EXPECT().GetCatalogs(gomock.Any()).Return(catalogFamily(), nil)
	s.expectRead(langnamesURL, status(502))

	_, err := s.indexer.UpdateCatalogIndex(s.ctx, nil)

	var te *domain.TransportError
	s.Require().ErrorAs(err, &te)
	s.Equal(502, te.Status)
}

func (s *IndexerTestSuite) TestUpdateCatalogIndex_UnhandledSlugIsIgnored() {
	s.index.EXPECT().GetCatalog(gomock.Any(), "extra").Return(&catalogFamily()[2], nil)
	s.expectRead(extraURL, ok(`{}`))

	stats, err := s.indexer.UpdateCatalogIndex(s.ctx, nil, "extra")

	s.Require().NoError(err)
	s.Zero(stats.Catalogs)
}

func (s *IndexerTestSuite) TestUpdateCatalogIndex_UnknownCatalog() {
	s.index.EXPECT().GetCatalog(gomock.Any(), "nope").Return(nil, nil)

	_, err := s.indexer.UpdateCatalogIndex(s.ctx, nil, "nope")

	s.True(domain.IsNotFound(err, domain.NotFoundCatalog))
	s.EqualError(err, "Unknown catalog: nope")
}

func (s *IndexerTestSuite) TestUpdateCatalogIndex_TransportFailure() {
	s.index.EXPECT().GetCatalogs(gomock.Any()).Return(catalogFamily()[:1], nil)
	s.transport.EXPECT().Read(gomock.Any(), langnamesURL).Return(nil, errors.New("dial tcp: refused"))

	_, err := s.indexer.UpdateCatalogIndex(s.ctx, nil)
	s.Error(err)
}
