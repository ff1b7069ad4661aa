package service

import (
	"os"
	"path/filepath"

	"go.uber.org/mock/gomock"

	"resource_catalog/internal/container"
	"resource_catalog/internal/domain"
)

// writeArchive closes a minimal container into the containers dir.
func (s *IndexerTestSuite) writeArchive(language, project, resource string, modifiedAt int64) {
	dir := filepath.Join(s.cfg.ContainersDir, language+"_"+project+"_"+resource)
	_, err := container.Make(dir, container.Manifest{
		ModifiedAt: modifiedAt,
		Language:   container.Language{Slug: language, Name: language, Dir: "ltr"},
		Project:    container.Project{Slug: project, Name: project},
		Resource:   container.Resource{Slug: resource, Name: resource, Type: "book"},
	}, container.Options{})
	s.Require().NoError(err)
	_, err = container.Close(dir, container.Options{})
	s.Require().NoError(err)
}

func indexed(language, project, resource string, modifiedAt int64) *domain.Resource {
	return &domain.Resource{
		Slug: resource, LanguageSlug: language, ProjectSlug: project,
		ContainerFormat: &domain.ResourceFormat{MimeType: "application/tsrc+book", ModifiedAt: modifiedAt},
	}
}

func (s *IndexerTestSuite) TestListProjectUpdates_NewerIndex() {
	s.writeArchive("en", "gen", "ulb", 0)
	s.index.EXPECT().GetResource(gomock.Any(), "en", "gen", "ulb").Return(indexed("en", "gen", "ulb", 100), nil)

	updates, err := s.indexer.ListProjectUpdates(s.ctx, "")

	s.Require().NoError(err)
	s.Equal([]string{"gen"}, updates)
}

func (s *IndexerTestSuite) TestListProjectUpdates_NewerLocal() {
	s.writeArchive("en", "gen", "ulb", 100)
	s.index.EXPECT().GetResource(gomock.Any(), "en", "gen", "ulb").Return(indexed("en", "gen", "ulb", 0), nil)

	updates, err := s.indexer.ListProjectUpdates(s.ctx, "")

	s.Require().NoError(err)
	s.Empty(updates)
}

func (s *IndexerTestSuite) TestListProjectUpdates_FiltersByLanguage() {
	s.writeArchive("en", "gen", "ulb", 0)
	s.writeArchive("fr", "exo", "ulb", 0)
	s.index.EXPECT().GetResource(gomock.Any(), "fr", "exo", "ulb").Return(indexed("fr", "exo", "ulb", 5), nil)

	updates, err := s.indexer.ListProjectUpdates(s.ctx, "fr")

	s.Require().NoError(err)
	s.Equal([]string{"exo"}, updates)
}

func (s *IndexerTestSuite) TestListSourceLanguageUpdates() {
	s.writeArchive("en", "gen", "ulb", 0)
	s.writeArchive("en", "gen", "udb", 0)
	s.writeArchive("fr", "gen", "ulb", 50)
	s.writeArchive("de", "gen", "ulb", 50)

	// Only one stale container per language is needed.
	s.index.EXPECT().GetResource(gomock.Any(), "en", "gen", gomock.Any()).Return(indexed("en", "gen", "udb", 10), nil).Times(1)
	s.index.EXPECT().GetResource(gomock.Any(), "fr", "gen", "ulb").Return(indexed("fr", "gen", "ulb", 50), nil)
	s.index.EXPECT().GetResource(gomock.Any(), "de", "gen", "ulb").Return(nil, nil)

	updates, err := s.indexer.ListSourceLanguageUpdates(s.ctx)

	s.Require().NoError(err)
	s.Equal([]string{"en"}, updates)
}

func (s *IndexerTestSuite) TestListUpdates_IgnoresForeignFiles() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.cfg.ContainersDir, "notes.txt"), []byte("x"), 0o644))
	s.Require().NoError(os.WriteFile(filepath.Join(s.cfg.ContainersDir, "en_gen_ulb.tsrc"), []byte("corrupt"), 0o644))

	updates, err := s.indexer.ListSourceLanguageUpdates(s.ctx)

	s.Require().NoError(err)
	s.Empty(updates)
}

func (s *IndexerTestSuite) TestListUpdates_MissingDir() {
	indexer := NewIndexer(s.transport, s.index, nil, s.logger, Config{ContainersDir: filepath.Join(s.cfg.ContainersDir, "nope")})

	updates, err := indexer.ListProjectUpdates(s.ctx, "")

	s.Require().NoError(err)
	s.Empty(updates)
}

func (s *IndexerTestSuite) TestCheckUpdates_Publishes() {
	s.writeArchive("en", "gen", "ulb", 0)
	s.index.EXPECT().GetResource(gomock.Any(), "en", "gen", "ulb").Return(indexed("en", "gen", "ulb", 100), nil).Times(2)
	s.publisher.EXPECT().Publish(gomock.Any(), &domain.CatalogEvent{
		Action:  domain.EventUpdatesAvailable,
		Updates: &domain.Updates{SourceLanguages: []string{"en"}, Projects: []string{"gen"}},
	}).Return(nil)

	updates, err := s.indexer.CheckUpdates(s.ctx, "")

	s.Require().NoError(err)
	s.False(updates.Empty())
}

func (s *IndexerTestSuite) TestCheckUpdates_NothingToAnnounce() {
	s.writeArchive("en", "gen", "ulb", 100)
	s.index.EXPECT().GetResource(gomock.Any(), "en", "gen", "ulb").Return(indexed("en", "gen", "ulb", 100), nil).Times(2)

	updates, err := s.indexer.CheckUpdates(s.ctx, "")

	s.Require().NoError(err)
	s.True(updates.Empty())
}

func (s *IndexerTestSuite) TestOpenAndCloseContainer() {
	s.writeArchive("en", "gen", "ulb", 7)

	c, err := s.indexer.OpenContainer("en", "gen", "ulb")
	s.Require().NoError(err)
	s.Equal("en_gen_ulb", c.Slug())
	s.DirExists(filepath.Join(s.cfg.ContainersDir, "en_gen_ulb"))

	archive, err := s.indexer.CloseContainer("en", "gen", "ulb")
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.cfg.ContainersDir, "en_gen_ulb.tsrc"), archive)
	s.NoDirExists(filepath.Join(s.cfg.ContainersDir, "en_gen_ulb"))
}

func (s *IndexerTestSuite) TestOpenContainer_NotDownloaded() {
	_, err := s.indexer.OpenContainer("en", "gen", "ulb")
	s.ErrorIs(err, domain.ErrContainerMissing)
}
