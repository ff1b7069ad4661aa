package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/mock/gomock"

	"resource_catalog/internal/container"
	"resource_catalog/internal/domain"
	"resource_catalog/internal/transport"
)

const ulbURL = "https://api.test/ts/txt/2/gen/en/ulb/source.tsrc"

func ulb(format *domain.ResourceFormat) *domain.Resource {
	return &domain.Resource{
		ID: 1, Slug: "ulb", Name: "ULB", ProjectID: 1,
		LanguageSlug: "en", ProjectSlug: "gen",
		ContainerFormat: format,
	}
}

func bookFormat() *domain.ResourceFormat {
	return &domain.ResourceFormat{MimeType: "application/tsrc+book", URL: ulbURL, ModifiedAt: 100}
}

func (s *IndexerTestSuite) expectDownload(url string, body string, code int) *gomock.Call {
	return s.transport.EXPECT().Download(gomock.Any(), url, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest string, onProgress transport.ProgressFunc) (*transport.Response, error) {
			if code == 200 {
				s.Require().NoError(os.WriteFile(dest, []byte(body), 0o644))
				if onProgress != nil {
					onProgress(int64(len(body)), int64(len(body)))
				}
			}
			return &transport.Response{Status: code}, nil
		})
}

// expectSourceMetadata answers the lookups made when a legacy source
// document is packed into a container.
func (s *IndexerTestSuite) expectSourceMetadata() {
	s.index.EXPECT().GetSourceLanguage(gomock.Any(), "en").
		Return(&domain.SourceLanguage{ID: 1, Slug: "en", Name: "English", Direction: "ltr"}, nil).AnyTimes()
	s.index.EXPECT().GetProject(gomock.Any(), "en", "gen").
		Return(&domain.Project{ID: 1, Slug: "gen", Name: "Genesis", Sort: 1}, nil).AnyTimes()
}

func (s *IndexerTestSuite) TestDownloadResourceContainer() {
	s.index.EXPECT().GetResource(gomock.Any(), "en", "gen", "ulb").Return(ulb(bookFormat()), nil)
	s.expectSourceMetadata()
	s.expectDownload(ulbURL, `{"chapters":[]}`, 200)

	var completed int64
	path, err := s.indexer.DownloadResourceContainer(s.ctx, "en", "gen", "ulb", false, func(_, c int64) { completed = c })

	s.Require().NoError(err)
	s.Equal(filepath.Join(s.cfg.ContainersDir, "en_gen_ulb.tsrc"), path)
	s.Equal(int64(len(`{"chapters":[]}`)), completed)

	manifest, err := container.ReadManifest(path, container.Options{})
	s.Require().NoError(err)
	s.Equal("en_gen_ulb", manifest.Slug())
	s.Equal(int64(100), manifest.ModifiedAt)
	s.Equal("book", manifest.Resource.Type)
	s.Equal("English", manifest.Language.Name)
	s.Equal("Genesis", manifest.Project.Name)

	entries, err := os.ReadDir(s.cfg.ContainersDir)
	s.Require().NoError(err)
	s.Len(entries, 1, "staging files are cleaned up")
}

func (s *IndexerTestSuite) TestDownloadResourceContainer_PackedSourceOpens() {
	s.index.EXPECT().GetResource(gomock.Any(), "en", "gen", "ulb").Return(ulb(bookFormat()), nil)
	s.expectSourceMetadata()
	s.expectDownload(ulbURL, `{"chapters":[]}`, 200)

	_, err := s.indexer.DownloadResourceContainer(s.ctx, "en", "gen", "ulb", false, nil)
	s.Require().NoError(err)

	c, err := s.indexer.OpenContainer("en", "gen", "ulb")
	s.Require().NoError(err)
	data, err := os.ReadFile(filepath.Join(c.Path(), container.ContentDir, "source.json"))
	s.Require().NoError(err)
	s.JSONEq(`{"chapters":[]}`, string(data))
}

func (s *IndexerTestSuite) TestDownloadResourceContainer_NewerIndexIsAnUpdate() {
	gomock.InOrder(
		s.index.EXPECT().GetResource(gomock.Any(), "en", "gen", "ulb").Return(ulb(bookFormat()), nil),
		s.index.EXPECT().GetResource(gomock.Any(), "en", "gen", "ulb").
			Return(ulb(&domain.ResourceFormat{MimeType: "application/tsrc+book", URL: ulbURL, ModifiedAt: 200}), nil),
	)
	s.expectSourceMetadata()
	s.expectDownload(ulbURL, `{"chapters":[]}`, 200)

	_, err := s.indexer.DownloadResourceContainer(s.ctx, "en", "gen", "ulb", false, nil)
	s.Require().NoError(err)

	updates, err := s.indexer.ListProjectUpdates(s.ctx, "en")
	s.Require().NoError(err)
	s.Equal([]string{"gen"}, updates)
}

func (s *IndexerTestSuite) TestDownloadResourceContainer_ArchivePassesThrough() {
	src := filepath.Join(s.T().TempDir(), "en_gen_ulb")
	_, err := container.Make(src, container.Manifest{
		ModifiedAt: 42,
		Language:   container.Language{Slug: "en", Name: "English", Dir: "ltr"},
		Project:    container.Project{Slug: "gen", Name: "Genesis"},
		Resource:   container.Resource{Slug: "ulb", Name: "ULB", Type: "book"},
	}, container.Options{})
	s.Require().NoError(err)
	packed, err := container.Close(src, container.Options{})
	s.Require().NoError(err)
	body, err := os.ReadFile(packed)
	s.Require().NoError(err)

	s.index.EXPECT().GetResource(gomock.Any(), "en", "gen", "ulb").Return(ulb(bookFormat()), nil)
	s.expectDownload(ulbURL, string(body), 200)

	path, err := s.indexer.DownloadResourceContainer(s.ctx, "en", "gen", "ulb", false, nil)
	s.Require().NoError(err)

	stored, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal(body, stored)
}

func (s *IndexerTestSuite) TestDownloadResourceContainer_KeepsExistingArchive() {
	existing := filepath.Join(s.cfg.ContainersDir, "en_gen_ulb.tsrc")
	s.Require().NoError(os.WriteFile(existing, []byte("old"), 0o644))
	s.index.EXPECT().GetResource(gomock.Any(), "en", "gen", "ulb").Return(ulb(bookFormat()), nil).Times(2)

	path, err := s.indexer.DownloadResourceContainer(s.ctx, "en", "gen", "ulb", false, nil)
	s.Require().NoError(err)
	s.Equal(existing, path)

	s.expectSourceMetadata()
	s.expectDownload(ulbURL, `{"chapters":[]}`, 200)
	_, err = s.indexer.DownloadResourceContainer(s.ctx, "en", "gen", "ulb", true, nil)
	s.Require().NoError(err)

	_, err = container.ReadManifest(existing, container.Options{})
	s.NoError(err, "forced download replaces the old file")
}

func (s *IndexerTestSuite) TestDownloadResourceContainer_UnknownResource() {
	s.index.EXPECT().GetResource(gomock.Any(), "en", "gen", "xyz").Return(nil, nil)

	_, err := s.indexer.DownloadResourceContainer(s.ctx, "en", "gen", "xyz", false, nil)

	s.True(domain.IsNotFound(err, domain.NotFoundResource))
}

func (s *IndexerTestSuite) TestDownloadResourceContainer_MissingContainerFormat() {
	s.index.EXPECT().GetResource(gomock.Any(), "en", "gen", "ulb").Return(ulb(nil), nil)

	_, err := s.indexer.DownloadResourceContainer(s.ctx, "en", "gen", "ulb", false, nil)

	s.True(domain.IsNotFound(err, domain.NotFoundContainerFormat))
	s.Contains(err.Error(), "Missing resource container format")
}

func (s *IndexerTestSuite) TestDownloadResourceContainer_NonOKStatus() {
	s.index.EXPECT().GetResource(gomock.Any(), "en", "gen", "ulb").Return(ulb(bookFormat()), nil)
	s.expectDownload(ulbURL, "", 404)

	_, err := s.indexer.DownloadResourceContainer(s.ctx, "en", "gen", "ulb", false, nil)

	var te *domain.TransportError
	s.Require().ErrorAs(err, &te)
	s.Equal(404, te.Status)
	entries, err := os.ReadDir(s.cfg.ContainersDir)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *IndexerTestSuite) TestDownloadResourceContainers_ContinuesPastFailures() {
	udbURL := "https://api.test/ts/txt/2/gen/en/udb/source.tsrc"
	udb := ulb(&domain.ResourceFormat{MimeType: "application/tsrc+book", URL: udbURL})
	udb.Slug = "udb"
	notes := ulb(nil)
	notes.Slug = "notes"

	s.index.EXPECT().GetResources(gomock.Any(), "en", "").
		Return([]domain.Resource{*notes, *udb, *ulb(bookFormat())}, nil)
	s.transport.EXPECT().Download(gomock.Any(), udbURL, gomock.Any(), gomock.Any()).
		Return(nil, &domain.TransportError{URL: udbURL, Err: errors.New("connection reset")})
	s.expectSourceMetadata()
	s.expectDownload(ulbURL, `{"chapters":[]}`, 200)

	var progressed []string
	result, err := s.indexer.DownloadResourceContainers(s.ctx, "en", "", false,
		func(res domain.Resource, total, completed int64) {
			progressed = append(progressed, res.Slug)
		})

	s.Require().NoError(err)
	s.Equal([]string{filepath.Join(s.cfg.ContainersDir, "en_gen_ulb.tsrc")}, result.Paths)
	s.Equal(2, result.Failed)
	s.Equal([]string{"ulb"}, progressed)
}
