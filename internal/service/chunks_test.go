package service

import (
	"errors"

	"go.uber.org/mock/gomock"

	"resource_catalog/internal/domain"
)

const genChunksURL = "https://api.test/bible/txt/1/gen/chunks.json"

func (s *IndexerTestSuite) TestUpdateChunks() {
	s.index.EXPECT().GetProjects(gomock.Any(), "").Return([]domain.Project{
		{ID: 1, Slug: "gen", ChunksURL: genChunksURL, SourceLanguageID: 1, LanguageSlug: "en"},
		{ID: 2, Slug: "gen", ChunksURL: genChunksURL, SourceLanguageID: 2, LanguageSlug: "es"},
		{ID: 3, Slug: "obs", SourceLanguageID: 1, LanguageSlug: "en"},
	}, nil)
	s.expectRead(genChunksURL, ok(`[{"chp": "01", "firstvs": "01"}, {"chp": "01", "firstvs": "03"}]`)).Times(1)

	versification := domain.Versification{Slug: "en-US", Name: "American English"}
	s.index.EXPECT().AddVersification(gomock.Any(), versification, int64(1)).Return(int64(9), nil)
	s.index.EXPECT().AddVersification(gomock.Any(), versification, int64(2)).Return(int64(9), nil)

	gomock.InOrder(
		s.index.EXPECT().AddChunkMarker(gomock.Any(), domain.ChunkMarker{Chapter: "01", Verse: "01"}, "gen", int64(9)).Return(int64(1), nil),
		s.index.EXPECT().AddChunkMarker(gomock.Any(), domain.ChunkMarker{Chapter: "01", Verse: "03"}, "gen", int64(9)).Return(int64(2), nil),
	)

	stats, err := s.indexer.UpdateChunks(s.ctx, nil)

	s.Require().NoError(err)
	s.Equal(2, stats.ChunkMarkers)
	s.Zero(stats.Skipped)
}

func (s *IndexerTestSuite) TestUpdateChunks_SkipsUnavailableFeed() {
	s.index.EXPECT().GetProjects(gomock.Any(), "").Return([]domain.Project{
		{ID: 1, Slug: "gen", ChunksURL: genChunksURL, SourceLanguageID: 1},
		{ID: 2, Slug: "exo", ChunksURL: "https://api.test/bible/txt/1/exo/chunks.json", SourceLanguageID: 1},
	}, nil)
	s.expectRead(genChunksURL, status(404))
	s.expectRead("https://api.test/bible/txt/1/exo/chunks.json", ok(`[{"chp": "01", "firstvs": "01"}]`))

	s.index.EXPECT().AddVersification(gomock.Any(), gomock.Any(), int64(1)).Return(int64(4), nil)
	s.index.EXPECT().AddChunkMarker(gomock.Any(), gomock.Any(), "exo", int64(4)).Return(int64(1), nil)

	stats, err := s.indexer.UpdateChunks(s.ctx, nil)

	s.Require().NoError(err)
	s.Equal(1, stats.ChunkMarkers)
	s.Equal(1, stats.Skipped)
}

func (s *IndexerTestSuite) TestUpdateChunks_RetriesMarkersAfterFailure() {
	s.index.EXPECT().GetProjects(gomock.Any(), "").Return([]domain.Project{
		{ID: 1, Slug: "gen", ChunksURL: genChunksURL, SourceLanguageID: 1, LanguageSlug: "en"},
		{ID: 2, Slug: "gen", ChunksURL: genChunksURL, SourceLanguageID: 2, LanguageSlug: "es"},
	}, nil)
	s.expectRead(genChunksURL, ok(`[{"chp": "01", "firstvs": "01"}]`)).Times(1)
	s.index.EXPECT().AddVersification(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(9), nil).Times(2)

	marker := domain.ChunkMarker{Chapter: "01", Verse: "01"}
	gomock.InOrder(
		s.index.EXPECT().AddChunkMarker(gomock.Any(), marker, "gen", int64(9)).Return(int64(0), errors.New("disk I/O error")),
		s.index.EXPECT().AddChunkMarker(gomock.Any(), marker, "gen", int64(9)).Return(int64(1), nil),
	)

	stats, err := s.indexer.UpdateChunks(s.ctx, nil)

	s.Require().NoError(err)
	s.Equal(1, stats.ChunkMarkers)
	s.Equal(1, stats.Skipped)
}
